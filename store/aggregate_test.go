package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mybooks/mybooks/model"
	"github.com/pkg/errors"
)

func TestOrderDetailsByUserMissingUser(t *testing.T) {
	s := newTestStore(t)

	_, err := s.OrderDetailsByUser(context.Background(), uuid.New(), 1, 10)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf(`Expected ErrNotFound, got %v`, err)
	}
	if err.Error() != "Usuário não encontrado" {
		t.Fatalf(`Unexpected detail: %q`, err.Error())
	}
}

func TestOrderDetailsByUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	author := mustCreateAuthor(t, s, "Jane", "jane@x.com")
	publisher := mustCreatePublisher(t, s, "Alfa", "alfa@x.com")
	book := mustCreateBook(t, s, "Iracema", author, publisher)
	user := mustCreateUser(t, s, "ana", "123")
	order := mustCreateOrder(t, s, user)

	payment, err := s.CreatePayment(ctx, &model.PaymentCreate{
		OrderID: order.ID, Value: 100, PaymentDate: model.NewDate(2024, 5, 11), Method: "pix",
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.LinkOrderBook(ctx, &model.OrderBookLink{OrderID: order.ID, BookID: book.ID}); err != nil {
		t.Fatal(err)
	}
	if err := s.LinkOrderPayment(ctx, &model.OrderPaymentLink{OrderID: order.ID, PaymentID: payment.ID}); err != nil {
		t.Fatal(err)
	}

	page, err := s.OrderDetailsByUser(ctx, user.ID, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 1 || len(page.Items) != 1 {
		t.Fatalf(`Unexpected page: %+v`, page)
	}

	detail := page.Items[0]
	if detail.ID != order.ID {
		t.Fatalf(`Unexpected order: %+v`, detail)
	}
	if len(detail.Books) != 1 || detail.Books[0].AuthorName != "Jane" {
		t.Fatalf(`Unexpected books: %+v`, detail.Books)
	}
	if len(detail.Payments) != 1 || detail.Payments[0].Value != 100 {
		t.Fatalf(`Unexpected payments: %+v`, detail.Payments)
	}
}

func TestOrderDetailsDropsMissingBook(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := mustCreateUser(t, s, "ana", "123")
	order := mustCreateOrder(t, s, user)
	if err := s.LinkOrderBook(ctx, &model.OrderBookLink{OrderID: order.ID, BookID: uuid.New()}); err != nil {
		t.Fatal(err)
	}

	page, err := s.OrderDetailsByUser(ctx, user.ID, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Items) != 1 {
		t.Fatalf(`Expected the order itself to remain, got %+v`, page)
	}
	if len(page.Items[0].Books) != 0 {
		t.Fatalf(`Dangling link should be dropped, got %+v`, page.Items[0].Books)
	}
}

func TestOrderDetailsEmptyOrder(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "ana", "123")
	mustCreateOrder(t, s, user)

	page, err := s.OrderDetailsByUser(context.Background(), user.ID, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	detail := page.Items[0]
	if detail.Books == nil || detail.Payments == nil {
		t.Fatal("inner lists must be empty, not null")
	}
}

func TestPublisherDetail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	author := mustCreateAuthor(t, s, "Jane", "jane@x.com")
	publisher := mustCreatePublisher(t, s, "Alfa", "alfa@x.com")
	for _, title := range []string{"A", "B", "C"} {
		mustCreateBook(t, s, title, author, publisher)
	}

	detail, err := s.PublisherDetail(ctx, publisher.ID, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if detail.TotalBooks != 3 {
		t.Fatalf(`total_livros must count the unpaginated list, got %d`, detail.TotalBooks)
	}
	if len(detail.Books) != 2 {
		t.Fatalf(`Expected a 2-item page, got %d`, len(detail.Books))
	}
	if detail.Books[0].Author == nil || detail.Books[0].Author.Name != "Jane" {
		t.Fatalf(`Unexpected author: %+v`, detail.Books[0].Author)
	}
}

func TestPublisherDetailNullAuthor(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	author := mustCreateAuthor(t, s, "Jane", "jane@x.com")
	publisher := mustCreatePublisher(t, s, "Alfa", "alfa@x.com")
	mustCreateBook(t, s, "A", author, publisher)
	if err := s.DeleteAuthor(ctx, author.ID); err != nil {
		t.Fatal(err)
	}

	detail, err := s.PublisherDetail(ctx, publisher.ID, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(detail.Books) != 1 {
		t.Fatalf(`The book must survive its author, got %+v`, detail.Books)
	}
	if detail.Books[0].Author != nil {
		t.Fatal("author of a deleted row must be null")
	}
}

func TestPublishersWithBooksEmpty(t *testing.T) {
	s := newTestStore(t)

	_, err := s.PublishersWithBooks(context.Background(), 1, 10)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf(`Expected ErrNotFound, got %v`, err)
	}
	if err.Error() != "Nenhuma editora encontrada." {
		t.Fatalf(`Unexpected detail: %q`, err.Error())
	}
}

func TestPublishersWithBooks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	author := mustCreateAuthor(t, s, "Jane", "jane@x.com")
	first := mustCreatePublisher(t, s, "Alfa", "alfa@x.com")
	mustCreatePublisher(t, s, "Beta", "beta@x.com")
	mustCreateBook(t, s, "A", author, first)

	page, err := s.PublishersWithBooks(ctx, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 2 || len(page.Items) != 2 {
		t.Fatalf(`Unexpected page: %+v`, page)
	}
	if len(page.Items[0].Books) != 1 {
		t.Fatalf(`Expected one book for the first publisher, got %+v`, page.Items[0].Books)
	}
	if len(page.Items[1].Books) != 0 {
		t.Fatalf(`Expected no books for the second publisher, got %+v`, page.Items[1].Books)
	}
}
