package request // import "github.com/mybooks/mybooks/http/request"

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/mybooks/mybooks/model"
	"github.com/pkg/errors"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// RouteUUIDParam parses a uuid path variable.
func RouteUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars[name])
	if err != nil {
		return uuid.Nil, errors.Errorf("Valor inválido para %s!", name)
	}
	return id, nil
}

// QueryUUIDParam parses a required uuid query parameter.
func QueryUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return uuid.Nil, errors.Errorf("Parâmetro %s é obrigatório!", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Errorf("Valor inválido para %s!", name)
	}
	return id, nil
}

// OptionalQueryUUIDParam returns nil when the parameter is absent.
func OptionalQueryUUIDParam(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.Errorf("Valor inválido para %s!", name)
	}
	return &id, nil
}

func OptionalQueryStringParam(r *http.Request, name string) *string {
	if !r.URL.Query().Has(name) {
		return nil
	}
	v := r.URL.Query().Get(name)
	return &v
}

func OptionalQueryFloatParam(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Errorf("Valor inválido para %s!", name)
	}
	return &f, nil
}

// OptionalQueryDateParam parses an ISO (AAAA-MM-DD) date filter.
func OptionalQueryDateParam(r *http.Request, name string) (*model.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := model.ParseDate(raw)
	if err != nil {
		return nil, errors.New("Formato de data inválido. Use AAAA-MM-DD!")
	}
	return &d, nil
}

// OptionalQueryDateBRParam parses a DD-MM-AAAA date filter. Only the author
// birth date filter uses this format.
func OptionalQueryDateBRParam(r *http.Request, name string) (*model.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := model.ParseDateBR(raw)
	if err != nil {
		return nil, errors.New("Formato de data inválido. Use DD-MM-AAAA!")
	}
	return &d, nil
}

// Pagination reads page and limit with the shared defaults and bounds.
func Pagination(r *http.Request) (page, limit int, err error) {
	page, err = queryIntParam(r, "page", defaultPage)
	if err != nil || page < 1 {
		return 0, 0, errors.New("Valor inválido para page!")
	}
	limit, err = queryIntParam(r, "limit", defaultLimit)
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, 0, errors.New("Valor inválido para limit!")
	}
	return page, limit, nil
}

func queryIntParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
