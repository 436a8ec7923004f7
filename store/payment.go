package store

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mybooks/mybooks/model"
	"github.com/mybooks/mybooks/store/db"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (s *Store) decodePayment(row db.Row) (*model.Payment, error) {
	paid, err := s.rowDate(row, "data_pagamento")
	if err != nil {
		return nil, err
	}
	return &model.Payment{
		ID:          rowUUID(row, "id"),
		OrderID:     rowUUID(row, "pedido_id"),
		Value:       rowFloat(row, "valor"),
		PaymentDate: paid,
		Method:      rowString(row, "forma_pagamento"),
	}, nil
}

func encodePayment(p *model.Payment) db.Row {
	return db.Row{
		"id":              p.ID,
		"pedido_id":       p.OrderID,
		"valor":           p.Value,
		"data_pagamento":  p.PaymentDate.Time,
		"forma_pagamento": p.Method,
	}
}

func (s *Store) GetPayment(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	row, err := s.db.Get(ctx, db.TablePayments, db.Row{"id": id})
	if err != nil {
		if errors.Is(err, db.ErrRowNotFound) {
			return nil, notFound("Pagamento não encontrado!")
		}
		return nil, err
	}
	return s.decodePayment(row)
}

func (s *Store) checkOrderRef(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetOrder(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.Warn("payment references missing order", zap.String("pedido_id", id.String()))
			return invalid("Pedido não encontrado!")
		}
		return err
	}
	return nil
}

// CreatePayment enforces at most one payment per order with a pre-check scan.
func (s *Store) CreatePayment(ctx context.Context, create *model.PaymentCreate) (*model.Payment, error) {
	if err := s.checkOrderRef(ctx, create.OrderID); err != nil {
		return nil, err
	}

	exists, err := s.anyMatch(ctx, db.TablePayments, db.Row{"pedido_id": create.OrderID})
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Warn("order already has a payment", zap.String("pedido_id", create.OrderID.String()))
		return nil, conflict("Já existe um pagamento para este pedido!")
	}

	payment := &model.Payment{
		ID:          uuid.New(),
		OrderID:     create.OrderID,
		Value:       create.Value,
		PaymentDate: create.PaymentDate,
		Method:      create.Method,
	}
	if err := s.db.Insert(ctx, db.TablePayments, encodePayment(payment)); err != nil {
		return nil, err
	}

	s.logger.Info("payment created",
		zap.String("id", payment.ID.String()),
		zap.String("pedido_id", payment.OrderID.String()),
	)
	return payment, nil
}

func (s *Store) UpdatePayment(ctx context.Context, id uuid.UUID, update *model.PaymentUpdate) (*model.Payment, error) {
	payment, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := db.Row{}
	if update.OrderID != nil {
		if err := s.checkOrderRef(ctx, *update.OrderID); err != nil {
			return nil, err
		}
		taken, err := s.anyOther(ctx, db.TablePayments, db.Row{"pedido_id": *update.OrderID}, id)
		if err != nil {
			return nil, err
		}
		if taken {
			s.logger.Warn("order already has a payment", zap.String("pedido_id", update.OrderID.String()))
			return nil, conflict("Já existe um pagamento para este pedido!")
		}
		payment.OrderID = *update.OrderID
		changes["pedido_id"] = *update.OrderID
	}
	if update.Value != nil {
		payment.Value = *update.Value
		changes["valor"] = *update.Value
	}
	if update.PaymentDate != nil {
		payment.PaymentDate = *update.PaymentDate
		changes["data_pagamento"] = update.PaymentDate.Time
	}
	if update.Method != nil {
		payment.Method = *update.Method
		changes["forma_pagamento"] = *update.Method
	}

	if len(changes) > 0 {
		if err := s.db.Update(ctx, db.TablePayments, db.Row{"id": id}, changes); err != nil {
			return nil, err
		}
	}

	s.logger.Info("payment updated", zap.String("id", id.String()))
	return payment, nil
}

func (s *Store) ListPayments(ctx context.Context) ([]model.Payment, error) {
	rows, err := s.db.Scan(ctx, db.TablePayments, nil, false)
	if err != nil {
		return nil, err
	}
	payments := make([]model.Payment, 0, len(rows))
	for _, row := range rows {
		payment, err := s.decodePayment(row)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, nil
}

func (s *Store) CountPayments(ctx context.Context) (int, error) {
	rows, err := s.db.Scan(ctx, db.TablePayments, nil, false)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *Store) DeletePayment(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetPayment(ctx, id); err != nil {
		return err
	}
	if err := s.db.Delete(ctx, db.TablePayments, db.Row{"id": id}); err != nil {
		return err
	}
	s.logger.Info("payment deleted", zap.String("id", id.String()))
	return nil
}

func (s *Store) FilterPayments(ctx context.Context, find *model.FindPayment) ([]model.Payment, error) {
	payments, err := s.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	var matched []model.Payment
	for _, p := range payments {
		if find.OrderID != nil && p.OrderID != *find.OrderID {
			continue
		}
		if find.Method != nil && !strings.Contains(strings.ToLower(p.Method), strings.ToLower(*find.Method)) {
			continue
		}
		if find.PaymentDate != nil && !p.PaymentDate.Equal(*find.PaymentDate) {
			continue
		}
		if find.ValueMin != nil && p.Value < *find.ValueMin {
			continue
		}
		if find.ValueMax != nil && p.Value > *find.ValueMax {
			continue
		}
		matched = append(matched, p)
	}

	if len(matched) == 0 {
		return nil, notFound("Nenhum pagamento encontrado com os filtros informados!")
	}
	return matched, nil
}
