package model

import "github.com/google/uuid"

// Shapes of the cross-entity queries under /consulta-usuario and
// /editoras/com-livros-e-autores.

type BookInfo struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"titulo"`
	AuthorName string    `json:"autor_nome"`
}

type PaymentInfo struct {
	ID          uuid.UUID `json:"id"`
	Value       float64   `json:"valor"`
	PaymentDate Date      `json:"data_pagamento"`
}

// OrderDetail is one order of a user with its linked books and payments fully
// materialized. The inner lists are never paginated.
type OrderDetail struct {
	ID        uuid.UUID     `json:"id"`
	OrderDate Date          `json:"data_pedido"`
	Books     []BookInfo    `json:"livros"`
	Payments  []PaymentInfo `json:"pagamentos"`
}

type AuthorRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"nome"`
}

// BookWithAuthor pairs a book with its author; Author is null when the
// referenced row is gone.
type BookWithAuthor struct {
	ID     uuid.UUID  `json:"id"`
	Title  string     `json:"titulo"`
	Author *AuthorRef `json:"autor"`
}

// PublisherDetail is a publisher with a page of its books. TotalBooks counts
// the unpaginated book list.
type PublisherDetail struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"nome"`
	Address    string           `json:"endereco"`
	Phone      string           `json:"telefone"`
	Email      string           `json:"email"`
	Books      []BookWithAuthor `json:"livros"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalBooks int              `json:"total_livros"`
}

// PublisherWithBooks is one element of /editoras/com-livros-e-autores, with
// the full (unpaginated) book list of that publisher.
type PublisherWithBooks struct {
	ID      uuid.UUID        `json:"id"`
	Name    string           `json:"nome"`
	Address string           `json:"endereco"`
	Phone   string           `json:"telefone"`
	Email   string           `json:"email"`
	Books   []BookWithAuthor `json:"livros"`
}
