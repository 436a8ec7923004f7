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

func (s *Store) decodeOrder(row db.Row) (*model.Order, error) {
	orderDate, err := s.rowDate(row, "data_pedido")
	if err != nil {
		return nil, err
	}
	return &model.Order{
		ID:         rowUUID(row, "id"),
		UserID:     rowUUID(row, "usuario_id"),
		Status:     rowString(row, "status"),
		TotalValue: rowFloat(row, "valor_total"),
		OrderDate:  orderDate,
	}, nil
}

func encodeOrder(o *model.Order) db.Row {
	return db.Row{
		"id":          o.ID,
		"usuario_id":  o.UserID,
		"status":      o.Status,
		"valor_total": o.TotalValue,
		"data_pedido": o.OrderDate.Time,
	}
}

func (s *Store) GetOrder(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	row, err := s.db.Get(ctx, db.TableOrders, db.Row{"id": id})
	if err != nil {
		if errors.Is(err, db.ErrRowNotFound) {
			return nil, notFound("Pedido não encontrado!")
		}
		return nil, err
	}
	return s.decodeOrder(row)
}

func (s *Store) checkUserRef(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.Warn("order references missing user", zap.String("usuario_id", id.String()))
			return invalid("Usuário não encontrado!")
		}
		return err
	}
	return nil
}

func (s *Store) CreateOrder(ctx context.Context, create *model.OrderCreate) (*model.Order, error) {
	if err := s.checkUserRef(ctx, create.UserID); err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:         uuid.New(),
		UserID:     create.UserID,
		Status:     create.Status,
		TotalValue: create.TotalValue,
		OrderDate:  create.OrderDate,
	}
	if err := s.db.Insert(ctx, db.TableOrders, encodeOrder(order)); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("id", order.ID.String()),
		zap.String("usuario_id", order.UserID.String()),
	)
	return order, nil
}

func (s *Store) UpdateOrder(ctx context.Context, id uuid.UUID, update *model.OrderUpdate) (*model.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := db.Row{}
	if update.UserID != nil {
		if err := s.checkUserRef(ctx, *update.UserID); err != nil {
			return nil, err
		}
		order.UserID = *update.UserID
		changes["usuario_id"] = *update.UserID
	}
	if update.Status != nil {
		order.Status = *update.Status
		changes["status"] = *update.Status
	}
	if update.TotalValue != nil {
		order.TotalValue = *update.TotalValue
		changes["valor_total"] = *update.TotalValue
	}
	if update.OrderDate != nil {
		order.OrderDate = *update.OrderDate
		changes["data_pedido"] = update.OrderDate.Time
	}

	if len(changes) > 0 {
		if err := s.db.Update(ctx, db.TableOrders, db.Row{"id": id}, changes); err != nil {
			return nil, err
		}
	}

	s.logger.Info("order updated", zap.String("id", id.String()))
	return order, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := s.db.Scan(ctx, db.TableOrders, nil, false)
	if err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(rows))
	for _, row := range rows {
		order, err := s.decodeOrder(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// ListOrdersByUser scans by usuario_id, a non-key column.
func (s *Store) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	rows, err := s.db.Scan(ctx, db.TableOrders, db.Row{"usuario_id": userID}, true)
	if err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(rows))
	for _, row := range rows {
		order, err := s.decodeOrder(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (s *Store) CountOrders(ctx context.Context) (int, error) {
	rows, err := s.db.Scan(ctx, db.TableOrders, nil, false)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *Store) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetOrder(ctx, id); err != nil {
		return err
	}
	if err := s.db.Delete(ctx, db.TableOrders, db.Row{"id": id}); err != nil {
		return err
	}
	s.logger.Info("order deleted", zap.String("id", id.String()))
	return nil
}

func (s *Store) FilterOrders(ctx context.Context, find *model.FindOrder) ([]model.Order, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	var matched []model.Order
	for _, o := range orders {
		if find.UserID != nil && o.UserID != *find.UserID {
			continue
		}
		if find.Status != nil && !strings.Contains(strings.ToLower(o.Status), strings.ToLower(*find.Status)) {
			continue
		}
		if find.OrderDate != nil && !o.OrderDate.Equal(*find.OrderDate) {
			continue
		}
		if find.ValueMin != nil && o.TotalValue < *find.ValueMin {
			continue
		}
		if find.ValueMax != nil && o.TotalValue > *find.ValueMax {
			continue
		}
		matched = append(matched, o)
	}

	if len(matched) == 0 {
		return nil, notFound("Nenhum pedido encontrado com os filtros informados!")
	}
	return matched, nil
}
