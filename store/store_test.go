package store

import (
	"context"
	"testing"

	"github.com/mybooks/mybooks/model"
	"github.com/mybooks/mybooks/store/db"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(db.NewMemory(), zap.NewNop())
}

func mustCreateAuthor(t *testing.T, s *Store, name, email string) *model.Author {
	t.Helper()
	author, err := s.CreateAuthor(context.Background(), &model.AuthorCreate{
		Name:        name,
		Email:       email,
		BirthDate:   model.NewDate(1980, 1, 1),
		Nationality: "BR",
	})
	if err != nil {
		t.Fatal(err)
	}
	return author
}

func mustCreatePublisher(t *testing.T, s *Store, name, email string) *model.Publisher {
	t.Helper()
	publisher, err := s.CreatePublisher(context.Background(), &model.PublisherCreate{
		Name:    name,
		Address: "Rua das Flores, 1",
		Phone:   "11 99999-0000",
		Email:   email,
	})
	if err != nil {
		t.Fatal(err)
	}
	return publisher
}

func mustCreateBook(t *testing.T, s *Store, title string, author *model.Author, publisher *model.Publisher) *model.Book {
	t.Helper()
	book, err := s.CreateBook(context.Background(), &model.BookCreate{
		Title:       title,
		Genre:       "Romance",
		Price:       49.9,
		PublishDate: model.NewDate(2020, 6, 1),
		AuthorID:    author.ID,
		PublisherID: publisher.ID,
	})
	if err != nil {
		t.Fatal(err)
	}
	return book
}

func mustCreateUser(t *testing.T, s *Store, name, cpf string) *model.User {
	t.Helper()
	user, err := s.CreateUser(context.Background(), &model.UserCreate{
		Name:  name,
		Email: name + "@x.com",
		CPF:   cpf,
	})
	if err != nil {
		t.Fatal(err)
	}
	return user
}

func mustCreateOrder(t *testing.T, s *Store, user *model.User) *model.Order {
	t.Helper()
	order, err := s.CreateOrder(context.Background(), &model.OrderCreate{
		UserID:     user.ID,
		Status:     "novo",
		TotalValue: 100,
		OrderDate:  model.NewDate(2024, 5, 10),
	})
	if err != nil {
		t.Fatal(err)
	}
	return order
}
