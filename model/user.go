package model

import "github.com/google/uuid"

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"nome"`
	Email        string    `json:"email"`
	CPF          string    `json:"cpf"`
	RegisteredAt Date      `json:"data_cadastro"`
}

type UserCreate struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
	// RegisteredAt defaults to the creation day when omitted.
	RegisteredAt *Date `json:"data_cadastro"`
}

type UserUpdate struct {
	Name         *string `json:"nome"`
	Email        *string `json:"email"`
	CPF          *string `json:"cpf"`
	RegisteredAt *Date   `json:"data_cadastro"`
}

// FindUser holds the /usuarios/filtrar criteria. CPF matches by exact
// equality, the rest by case-insensitive substring.
type FindUser struct {
	Name  *string
	Email *string
	CPF   *string
}

type UserCount struct {
	Total int `json:"total_usuarios"`
}
