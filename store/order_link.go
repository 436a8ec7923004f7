package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/mybooks/mybooks/model"
	"github.com/mybooks/mybooks/store/db"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Association tables. Link rows carry no payload beyond the pair of ids, and
// creation does not verify that either side exists. Kept as found.

func (s *Store) LinkOrderBook(ctx context.Context, link *model.OrderBookLink) error {
	key := db.Row{"pedido_id": link.OrderID, "livro_id": link.BookID}
	if _, err := s.db.Get(ctx, db.TableOrderBook, key); err == nil {
		return conflict("Relação já existe.")
	} else if !errors.Is(err, db.ErrRowNotFound) {
		return err
	}
	if err := s.db.Insert(ctx, db.TableOrderBook, key); err != nil {
		return err
	}
	s.logger.Info("order-book link created",
		zap.String("pedido_id", link.OrderID.String()),
		zap.String("livro_id", link.BookID.String()),
	)
	return nil
}

// ListOrderBooks returns the book ids linked to an order. pedido_id is the
// partition key, so the scan needs no filtering opt-in.
func (s *Store) ListOrderBooks(ctx context.Context, orderID uuid.UUID) ([]model.OrderBookLink, error) {
	rows, err := s.db.Scan(ctx, db.TableOrderBook, db.Row{"pedido_id": orderID}, false)
	if err != nil {
		return nil, err
	}
	links := make([]model.OrderBookLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, model.OrderBookLink{
			OrderID: rowUUID(row, "pedido_id"),
			BookID:  rowUUID(row, "livro_id"),
		})
	}
	return links, nil
}

func (s *Store) UnlinkOrderBook(ctx context.Context, link *model.OrderBookLink) error {
	key := db.Row{"pedido_id": link.OrderID, "livro_id": link.BookID}
	if _, err := s.db.Get(ctx, db.TableOrderBook, key); err != nil {
		if errors.Is(err, db.ErrRowNotFound) {
			return notFound("Relação não encontrada.")
		}
		return err
	}
	if err := s.db.Delete(ctx, db.TableOrderBook, key); err != nil {
		return err
	}
	s.logger.Info("order-book link removed",
		zap.String("pedido_id", link.OrderID.String()),
		zap.String("livro_id", link.BookID.String()),
	)
	return nil
}

func (s *Store) LinkOrderPayment(ctx context.Context, link *model.OrderPaymentLink) error {
	key := db.Row{"pedido_id": link.OrderID, "pagamento_id": link.PaymentID}
	if _, err := s.db.Get(ctx, db.TableOrderPayment, key); err == nil {
		return conflict("Relação já existe.")
	} else if !errors.Is(err, db.ErrRowNotFound) {
		return err
	}
	if err := s.db.Insert(ctx, db.TableOrderPayment, key); err != nil {
		return err
	}
	s.logger.Info("order-payment link created",
		zap.String("pedido_id", link.OrderID.String()),
		zap.String("pagamento_id", link.PaymentID.String()),
	)
	return nil
}

func (s *Store) ListOrderPayments(ctx context.Context, orderID uuid.UUID) ([]model.OrderPaymentLink, error) {
	rows, err := s.db.Scan(ctx, db.TableOrderPayment, db.Row{"pedido_id": orderID}, false)
	if err != nil {
		return nil, err
	}
	links := make([]model.OrderPaymentLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, model.OrderPaymentLink{
			OrderID:   rowUUID(row, "pedido_id"),
			PaymentID: rowUUID(row, "pagamento_id"),
		})
	}
	return links, nil
}

func (s *Store) UnlinkOrderPayment(ctx context.Context, link *model.OrderPaymentLink) error {
	key := db.Row{"pedido_id": link.OrderID, "pagamento_id": link.PaymentID}
	if _, err := s.db.Get(ctx, db.TableOrderPayment, key); err != nil {
		if errors.Is(err, db.ErrRowNotFound) {
			return notFound("Relação não encontrada.")
		}
		return err
	}
	if err := s.db.Delete(ctx, db.TableOrderPayment, key); err != nil {
		return err
	}
	s.logger.Info("order-payment link removed",
		zap.String("pedido_id", link.OrderID.String()),
		zap.String("pagamento_id", link.PaymentID.String()),
	)
	return nil
}
