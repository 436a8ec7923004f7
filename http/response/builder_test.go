package response // import "github.com/mybooks/mybooks/http/response"

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func TestResponseHasCommonHeaders(t *testing.T) {
	r, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		New(w, r).Write()
	})

	handler.ServeHTTP(w, r)
	resp := w.Result()

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
	}

	for header, expected := range headers {
		actual := resp.Header.Get(header)
		if actual != expected {
			t.Fatalf(`Unexpected header value, got %q instead of %q`, actual, expected)
		}
	}
}

func TestOKResponseIsJSON(t *testing.T) {
	r, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		OK(w, r, map[string]string{"message": "ok"})
	})

	handler.ServeHTTP(w, r)
	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf(`Unexpected status, got %d instead of %d`, resp.StatusCode, http.StatusOK)
	}
	if actual := resp.Header.Get("Content-Type"); actual != "application/json" {
		t.Fatalf(`Unexpected content type, got %q instead of %q`, actual, "application/json")
	}
	expected := `{"message":"ok"}`
	if actual := w.Body.String(); actual != expected {
		t.Fatalf(`Unexpected body, got %q instead of %q`, actual, expected)
	}
}

func TestErrorResponseHasDetailField(t *testing.T) {
	r, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		NotFound(zap.NewNop(), w, r, errors.New("Autor não encontrado!"))
	})

	handler.ServeHTTP(w, r)
	resp := w.Result()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf(`Unexpected status, got %d instead of %d`, resp.StatusCode, http.StatusNotFound)
	}
	expected := `{"detail":"Autor não encontrado!"}`
	if actual := w.Body.String(); actual != expected {
		t.Fatalf(`Unexpected body, got %q instead of %q`, actual, expected)
	}
}
