package model

import "github.com/google/uuid"

// OrderBookLink is a row of the pedido_livro association table
// (partition key pedido_id, clustering key livro_id).
type OrderBookLink struct {
	OrderID uuid.UUID `json:"pedido_id"`
	BookID  uuid.UUID `json:"livro_id"`
}

// OrderPaymentLink is a row of the pedido_pagamento association table.
type OrderPaymentLink struct {
	OrderID   uuid.UUID `json:"pedido_id"`
	PaymentID uuid.UUID `json:"pagamento_id"`
}
