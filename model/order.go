package model

import "github.com/google/uuid"

type Order struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"usuario_id"`
	Status     string    `json:"status"`
	TotalValue float64   `json:"valor_total"`
	OrderDate  Date      `json:"data_pedido"`
}

type OrderCreate struct {
	UserID     uuid.UUID `json:"usuario_id"`
	Status     string    `json:"status"`
	TotalValue float64   `json:"valor_total"`
	OrderDate  Date      `json:"data_pedido"`
}

type OrderUpdate struct {
	UserID     *uuid.UUID `json:"usuario_id"`
	Status     *string    `json:"status"`
	TotalValue *float64   `json:"valor_total"`
	OrderDate  *Date      `json:"data_pedido"`
}

// FindOrder holds the /pedidos/filtrar criteria.
type FindOrder struct {
	UserID    *uuid.UUID
	Status    *string
	OrderDate *Date
	ValueMin  *float64
	ValueMax  *float64
}

// The original exposes the order count under "quantidade", unlike the other
// entities. Kept as-is.
type OrderCount struct {
	Total int `json:"quantidade"`
}
