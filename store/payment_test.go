package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mybooks/mybooks/model"
	"github.com/pkg/errors"
)

func TestCreatePaymentChecksOrder(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreatePayment(context.Background(), &model.PaymentCreate{
		OrderID:     uuid.New(),
		Value:       50,
		PaymentDate: model.NewDate(2024, 5, 11),
		Method:      "pix",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf(`Expected ErrValidation, got %v`, err)
	}
	if err.Error() != "Pedido não encontrado!" {
		t.Fatalf(`Unexpected detail: %q`, err.Error())
	}
}

func TestCreatePaymentOnePerOrder(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "ana", "123")
	order := mustCreateOrder(t, s, user)

	create := &model.PaymentCreate{
		OrderID:     order.ID,
		Value:       100,
		PaymentDate: model.NewDate(2024, 5, 11),
		Method:      "pix",
	}
	if _, err := s.CreatePayment(context.Background(), create); err != nil {
		t.Fatal(err)
	}

	_, err := s.CreatePayment(context.Background(), create)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf(`Expected ErrConflict, got %v`, err)
	}
	if err.Error() != "Já existe um pagamento para este pedido!" {
		t.Fatalf(`Unexpected detail: %q`, err.Error())
	}
}

func TestUpdatePaymentKeepsOwnOrder(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "ana", "123")
	order := mustCreateOrder(t, s, user)

	payment, err := s.CreatePayment(context.Background(), &model.PaymentCreate{
		OrderID:     order.ID,
		Value:       100,
		PaymentDate: model.NewDate(2024, 5, 11),
		Method:      "pix",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Re-sending the payment's own order must not conflict with itself.
	value := 120.0
	updated, err := s.UpdatePayment(context.Background(), payment.ID, &model.PaymentUpdate{
		OrderID: &order.ID,
		Value:   &value,
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Value != 120 {
		t.Fatalf(`Value not updated: %+v`, updated)
	}
}

func TestUpdatePaymentToTakenOrder(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "ana", "123")
	first := mustCreateOrder(t, s, user)
	second := mustCreateOrder(t, s, user)

	if _, err := s.CreatePayment(context.Background(), &model.PaymentCreate{
		OrderID: first.ID, Value: 100, PaymentDate: model.NewDate(2024, 5, 11), Method: "pix",
	}); err != nil {
		t.Fatal(err)
	}
	other, err := s.CreatePayment(context.Background(), &model.PaymentCreate{
		OrderID: second.ID, Value: 50, PaymentDate: model.NewDate(2024, 5, 12), Method: "boleto",
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = s.UpdatePayment(context.Background(), other.ID, &model.PaymentUpdate{OrderID: &first.ID})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf(`Expected ErrConflict, got %v`, err)
	}
}
