package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func TestMemoryGetInsertRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id := uuid.New()
	row := Row{"id": id, "nome": "Editora Alfa", "endereco": "Rua A", "telefone": "11 1111", "email": "alfa@x.com"}
	if err := m.Insert(ctx, TablePublishers, row); err != nil {
		t.Fatal(err)
	}

	got, err := m.Get(ctx, TablePublishers, Row{"id": id})
	if err != nil {
		t.Fatal(err)
	}
	if got["nome"] != "Editora Alfa" {
		t.Fatalf(`Unexpected nome, got %q instead of %q`, got["nome"], "Editora Alfa")
	}

	// Mutating the returned row must not leak into the stored copy.
	got["nome"] = "changed"
	again, err := m.Get(ctx, TablePublishers, Row{"id": id})
	if err != nil {
		t.Fatal(err)
	}
	if again["nome"] != "Editora Alfa" {
		t.Fatal("stored row was mutated through a returned copy")
	}
}

func TestMemoryGetMissing(t *testing.T) {
	m := NewMemory()
	_, err := m.Get(context.Background(), TableAuthors, Row{"id": uuid.New()})
	if !errors.Is(err, ErrRowNotFound) {
		t.Fatalf(`Expected ErrRowNotFound, got %v`, err)
	}
}

func TestMemoryUnknownTable(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Insert(ctx, "inexistente", Row{"id": uuid.New()}); err == nil {
		t.Fatal("expected an error for a table outside the schema")
	}

	// Declared tables work before any insert touched them.
	rows, err := m.Scan(ctx, TablePayments, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Fatalf(`Expected no rows, got %d`, len(rows))
	}
}

func TestMemoryScanFilteringRule(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id := uuid.New()
	if err := m.Insert(ctx, TableAuthors, Row{"id": id, "nome": "Jane", "email": "jane@x.com"}); err != nil {
		t.Fatal(err)
	}

	// Equality on a non-key column needs the allow-filtering opt-in.
	if _, err := m.Scan(ctx, TableAuthors, Row{"nome": "Jane"}, false); !errors.Is(err, ErrFilterNotAllowed) {
		t.Fatalf(`Expected ErrFilterNotAllowed, got %v`, err)
	}

	rows, err := m.Scan(ctx, TableAuthors, Row{"nome": "Jane"}, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf(`Expected 1 row, got %d`, len(rows))
	}

	// Key column filters never need the opt-in.
	if _, err := m.Scan(ctx, TableAuthors, Row{"id": id}, false); err != nil {
		t.Fatal(err)
	}
}

func TestMemoryCompositeKey(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	orderID, bookID := uuid.New(), uuid.New()
	link := Row{"pedido_id": orderID, "livro_id": bookID}
	if err := m.Insert(ctx, TableOrderBook, link); err != nil {
		t.Fatal(err)
	}
	if err := m.Insert(ctx, TableOrderBook, Row{"pedido_id": orderID, "livro_id": uuid.New()}); err != nil {
		t.Fatal(err)
	}

	if _, err := m.Get(ctx, TableOrderBook, link); err != nil {
		t.Fatal(err)
	}

	rows, err := m.Scan(ctx, TableOrderBook, Row{"pedido_id": orderID}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf(`Expected 2 links, got %d`, len(rows))
	}

	if err := m.Delete(ctx, TableOrderBook, link); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Get(ctx, TableOrderBook, link); !errors.Is(err, ErrRowNotFound) {
		t.Fatalf(`Expected ErrRowNotFound after delete, got %v`, err)
	}
}

func TestMemoryUpdate(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id := uuid.New()
	if err := m.Insert(ctx, TableUsers, Row{"id": id, "nome": "Ana", "email": "ana@x.com", "cpf": "123"}); err != nil {
		t.Fatal(err)
	}
	if err := m.Update(ctx, TableUsers, Row{"id": id}, Row{"nome": "Ana Maria"}); err != nil {
		t.Fatal(err)
	}

	got, err := m.Get(ctx, TableUsers, Row{"id": id})
	if err != nil {
		t.Fatal(err)
	}
	if got["nome"] != "Ana Maria" {
		t.Fatalf(`Unexpected nome after update: %q`, got["nome"])
	}
	if got["cpf"] != "123" {
		t.Fatal("untouched column changed during update")
	}
}

func TestMemoryScanOrderIsStable(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		id := uuid.New()
		ids = append(ids, id)
		if err := m.Insert(ctx, TableOrders, Row{"id": id, "status": "novo"}); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := m.Scan(ctx, TableOrders, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	for i, row := range rows {
		if row["id"] != ids[i] {
			t.Fatal("scan did not preserve insertion order")
		}
	}
}
