package model

import "github.com/google/uuid"

type Publisher struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"nome"`
	Address string    `json:"endereco"`
	Phone   string    `json:"telefone"`
	Email   string    `json:"email"`
}

type PublisherCreate struct {
	Name    string `json:"nome"`
	Address string `json:"endereco"`
	Phone   string `json:"telefone"`
	Email   string `json:"email"`
}

type PublisherUpdate struct {
	Name    *string `json:"nome"`
	Address *string `json:"endereco"`
	Phone   *string `json:"telefone"`
	Email   *string `json:"email"`
}

// FindPublisher holds the /editoras/filtrar criteria. Phone matches by plain
// substring, the rest case-insensitively.
type FindPublisher struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
}

type PublisherCount struct {
	Total int `json:"total_editoras"`
}
