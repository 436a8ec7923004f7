package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/mybooks/mybooks/model"
	"github.com/mybooks/mybooks/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Cross-entity queries. Each one materializes its sub-entities with one
// lookup per id; dangling references are dropped (for inner lists) or
// rendered null (for book authors), with a warn log either way.

// OrderDetailsByUser returns a page of the user's orders, each with its linked
// books and payments fully resolved. Only the outer order list is paginated.
func (s *Store) OrderDetailsByUser(ctx context.Context, userID uuid.UUID, page, limit int) (*model.Paginated[model.OrderDetail], error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, notFound("Usuário não encontrado")
		}
		return nil, err
	}

	orders, err := s.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := len(orders)
	window := util.Paginate(orders, page, limit)

	details := make([]model.OrderDetail, 0, len(window))
	for _, order := range window {
		detail := model.OrderDetail{
			ID:        order.ID,
			OrderDate: order.OrderDate,
			Books:     []model.BookInfo{},
			Payments:  []model.PaymentInfo{},
		}

		bookLinks, err := s.ListOrderBooks(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		for _, link := range bookLinks {
			book, err := s.GetBook(ctx, link.BookID)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					s.logger.Warn("linked book missing, dropped from order detail",
						zap.String("pedido_id", order.ID.String()),
						zap.String("livro_id", link.BookID.String()),
					)
					continue
				}
				return nil, err
			}
			info := model.BookInfo{ID: book.ID, Title: book.Title}
			author, err := s.GetAuthor(ctx, book.AuthorID)
			if err != nil {
				if !errors.Is(err, ErrNotFound) {
					return nil, err
				}
				s.logger.Warn("book author missing",
					zap.String("livro_id", book.ID.String()),
					zap.String("autor_id", book.AuthorID.String()),
				)
			} else {
				info.AuthorName = author.Name
			}
			detail.Books = append(detail.Books, info)
		}

		paymentLinks, err := s.ListOrderPayments(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		for _, link := range paymentLinks {
			payment, err := s.GetPayment(ctx, link.PaymentID)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					s.logger.Warn("linked payment missing, dropped from order detail",
						zap.String("pedido_id", order.ID.String()),
						zap.String("pagamento_id", link.PaymentID.String()),
					)
					continue
				}
				return nil, err
			}
			detail.Payments = append(detail.Payments, model.PaymentInfo{
				ID:          payment.ID,
				Value:       payment.Value,
				PaymentDate: payment.PaymentDate,
			})
		}

		details = append(details, detail)
	}

	return &model.Paginated[model.OrderDetail]{
		Page:  page,
		Limit: limit,
		Total: total,
		Items: details,
	}, nil
}

// booksWithAuthors resolves the author of each book, leaving it null when the
// referenced row is gone.
func (s *Store) booksWithAuthors(ctx context.Context, books []model.Book) ([]model.BookWithAuthor, error) {
	out := make([]model.BookWithAuthor, 0, len(books))
	for _, book := range books {
		entry := model.BookWithAuthor{ID: book.ID, Title: book.Title}
		author, err := s.GetAuthor(ctx, book.AuthorID)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}
			s.logger.Warn("book author missing",
				zap.String("livro_id", book.ID.String()),
				zap.String("autor_id", book.AuthorID.String()),
			)
		} else {
			entry.Author = &model.AuthorRef{ID: author.ID, Name: author.Name}
		}
		out = append(out, entry)
	}
	return out, nil
}

// PublisherDetail returns the publisher with a page of its books, each
// carrying its author. TotalBooks counts the full book list of the publisher.
func (s *Store) PublisherDetail(ctx context.Context, id uuid.UUID, page, limit int) (*model.PublisherDetail, error) {
	publisher, err := s.GetPublisher(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := s.ListBooksByPublisher(ctx, id)
	if err != nil {
		return nil, err
	}
	total := len(books)

	window := util.Paginate(books, page, limit)
	withAuthors, err := s.booksWithAuthors(ctx, window)
	if err != nil {
		return nil, err
	}

	return &model.PublisherDetail{
		ID:         publisher.ID,
		Name:       publisher.Name,
		Address:    publisher.Address,
		Phone:      publisher.Phone,
		Email:      publisher.Email,
		Books:      withAuthors,
		Page:       page,
		Limit:      limit,
		TotalBooks: total,
	}, nil
}

// PublishersWithBooks pages over all publishers, each with its full book list
// and authors resolved.
func (s *Store) PublishersWithBooks(ctx context.Context, page, limit int) (*model.Paginated[model.PublisherWithBooks], error) {
	publishers, err := s.ListPublishers(ctx)
	if err != nil {
		return nil, err
	}
	if len(publishers) == 0 {
		return nil, notFound("Nenhuma editora encontrada.")
	}

	total := len(publishers)
	window := util.Paginate(publishers, page, limit)

	items := make([]model.PublisherWithBooks, 0, len(window))
	for _, publisher := range window {
		books, err := s.ListBooksByPublisher(ctx, publisher.ID)
		if err != nil {
			return nil, err
		}
		withAuthors, err := s.booksWithAuthors(ctx, books)
		if err != nil {
			return nil, err
		}
		items = append(items, model.PublisherWithBooks{
			ID:      publisher.ID,
			Name:    publisher.Name,
			Address: publisher.Address,
			Phone:   publisher.Phone,
			Email:   publisher.Email,
			Books:   withAuthors,
		})
	}

	return &model.Paginated[model.PublisherWithBooks]{
		Page:  page,
		Limit: limit,
		Total: total,
		Items: items,
	}, nil
}
