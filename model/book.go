package model

import "github.com/google/uuid"

type Book struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"titulo"`
	Synopsis    *string   `json:"sinopse"`
	Genre       string    `json:"genero"`
	Price       float64   `json:"preco"`
	PublishDate Date      `json:"data_publicacao"`
	AuthorID    uuid.UUID `json:"autor_id"`
	PublisherID uuid.UUID `json:"editora_id"`
}

type BookCreate struct {
	Title       string    `json:"titulo"`
	Synopsis    *string   `json:"sinopse"`
	Genre       string    `json:"genero"`
	Price       float64   `json:"preco"`
	PublishDate Date      `json:"data_publicacao"`
	AuthorID    uuid.UUID `json:"autor_id"`
	PublisherID uuid.UUID `json:"editora_id"`
}

type BookUpdate struct {
	Title       *string    `json:"titulo"`
	Synopsis    *string    `json:"sinopse"`
	Genre       *string    `json:"genero"`
	Price       *float64   `json:"preco"`
	PublishDate *Date      `json:"data_publicacao"`
	AuthorID    *uuid.UUID `json:"autor_id"`
	PublisherID *uuid.UUID `json:"editora_id"`
}

// FindBook holds the /livros/filtrar criteria.
type FindBook struct {
	Title       *string
	Genre       *string
	PriceMin    *float64
	PriceMax    *float64
	AuthorID    *uuid.UUID
	PublisherID *uuid.UUID
}

type BookCount struct {
	Total int `json:"total_livros"`
}
