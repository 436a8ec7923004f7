package model

import "github.com/google/uuid"

type Payment struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"pedido_id"`
	Value       float64   `json:"valor"`
	PaymentDate Date      `json:"data_pagamento"`
	Method      string    `json:"forma_pagamento"`
}

type PaymentCreate struct {
	OrderID     uuid.UUID `json:"pedido_id"`
	Value       float64   `json:"valor"`
	PaymentDate Date      `json:"data_pagamento"`
	Method      string    `json:"forma_pagamento"`
}

type PaymentUpdate struct {
	OrderID     *uuid.UUID `json:"pedido_id"`
	Value       *float64   `json:"valor"`
	PaymentDate *Date      `json:"data_pagamento"`
	Method      *string    `json:"forma_pagamento"`
}

// FindPayment holds the /pagamentos/filtrar criteria.
type FindPayment struct {
	OrderID     *uuid.UUID
	Method      *string
	PaymentDate *Date
	ValueMin    *float64
	ValueMax    *float64
}

type PaymentCount struct {
	Total int `json:"total_pagamentos"`
}
