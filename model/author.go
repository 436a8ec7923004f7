package model

import "github.com/google/uuid"

type Author struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"nome"`
	Email       string    `json:"email"`
	BirthDate   Date      `json:"data_nascimento"`
	Nationality string    `json:"nacionalidade"`
	Bio         *string   `json:"biografia"`
}

type AuthorCreate struct {
	Name        string  `json:"nome"`
	Email       string  `json:"email"`
	BirthDate   Date    `json:"data_nascimento"`
	Nationality string  `json:"nacionalidade"`
	Bio         *string `json:"biografia"`
}

// AuthorUpdate is a partial update: only non-nil fields are applied.
type AuthorUpdate struct {
	Name        *string `json:"nome"`
	Email       *string `json:"email"`
	BirthDate   *Date   `json:"data_nascimento"`
	Nationality *string `json:"nacionalidade"`
	Bio         *string `json:"biografia"`
}

// FindAuthor holds the /autores/filtrar criteria. Text fields match by
// case-insensitive substring, the date by same calendar day.
type FindAuthor struct {
	Name        *string
	Email       *string
	Nationality *string
	BirthDate   *Date
}

type AuthorCount struct {
	Total int `json:"total_autores"`
}
