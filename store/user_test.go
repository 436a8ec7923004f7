package store

import (
	"context"
	"testing"

	"github.com/mybooks/mybooks/model"
	"github.com/pkg/errors"
)

func TestCreateUserDuplicateCPF(t *testing.T) {
	s := newTestStore(t)
	mustCreateUser(t, s, "ana", "12345678900")

	_, err := s.CreateUser(context.Background(), &model.UserCreate{
		Name:  "bia",
		Email: "bia@x.com",
		CPF:   "12345678900",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf(`Expected ErrConflict, got %v`, err)
	}
	if err.Error() != "Já existe um usuário com esse CPF!" {
		t.Fatalf(`Unexpected detail: %q`, err.Error())
	}
}

func TestCreateUserDefaultsRegistrationDate(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "ana", "123")

	if !user.RegisteredAt.Equal(model.Today()) {
		t.Fatalf(`Expected today's registration date, got %s`, user.RegisteredAt)
	}
}

func TestFilterUsersCPFIsExact(t *testing.T) {
	s := newTestStore(t)
	mustCreateUser(t, s, "ana", "12345678900")

	// A CPF prefix is not a match; equality only.
	cpf := "123456789"
	_, err := s.FilterUsers(context.Background(), &model.FindUser{CPF: &cpf})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf(`Expected ErrNotFound for a partial CPF, got %v`, err)
	}

	full := "12345678900"
	matched, err := s.FilterUsers(context.Background(), &model.FindUser{CPF: &full})
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 1 {
		t.Fatalf(`Expected 1 match, got %d`, len(matched))
	}
}
