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

func (s *Store) decodeBook(row db.Row) (*model.Book, error) {
	published, err := s.rowDate(row, "data_publicacao")
	if err != nil {
		return nil, err
	}
	return &model.Book{
		ID:          rowUUID(row, "id"),
		Title:       rowString(row, "titulo"),
		Synopsis:    rowOptString(row, "sinopse"),
		Genre:       rowString(row, "genero"),
		Price:       rowFloat(row, "preco"),
		PublishDate: published,
		AuthorID:    rowUUID(row, "autor_id"),
		PublisherID: rowUUID(row, "editora_id"),
	}, nil
}

func encodeBook(b *model.Book) db.Row {
	return db.Row{
		"id":              b.ID,
		"titulo":          b.Title,
		"sinopse":         optText(b.Synopsis),
		"genero":          b.Genre,
		"preco":           b.Price,
		"data_publicacao": b.PublishDate.Time,
		"autor_id":        b.AuthorID,
		"editora_id":      b.PublisherID,
	}
}

func (s *Store) GetBook(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	row, err := s.db.Get(ctx, db.TableBooks, db.Row{"id": id})
	if err != nil {
		if errors.Is(err, db.ErrRowNotFound) {
			return nil, notFound("Livro não encontrado!")
		}
		return nil, err
	}
	return s.decodeBook(row)
}

// checkAuthorRef rejects an autor_id that references no existing row.
// A missing reference is a bad request, not a 404.
func (s *Store) checkAuthorRef(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetAuthor(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.Warn("book references missing author", zap.String("autor_id", id.String()))
			return invalid("Autor não encontrado!")
		}
		return err
	}
	return nil
}

func (s *Store) checkPublisherRef(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetPublisher(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.Warn("book references missing publisher", zap.String("editora_id", id.String()))
			return invalid("Editora não encontrada!")
		}
		return err
	}
	return nil
}

func (s *Store) CreateBook(ctx context.Context, create *model.BookCreate) (*model.Book, error) {
	if err := s.checkAuthorRef(ctx, create.AuthorID); err != nil {
		return nil, err
	}
	if err := s.checkPublisherRef(ctx, create.PublisherID); err != nil {
		return nil, err
	}

	// Title uniqueness is only enforced on update. Kept as found.
	book := &model.Book{
		ID:          uuid.New(),
		Title:       create.Title,
		Synopsis:    create.Synopsis,
		Genre:       create.Genre,
		Price:       create.Price,
		PublishDate: create.PublishDate,
		AuthorID:    create.AuthorID,
		PublisherID: create.PublisherID,
	}
	if err := s.db.Insert(ctx, db.TableBooks, encodeBook(book)); err != nil {
		return nil, err
	}

	s.logger.Info("book created",
		zap.String("id", book.ID.String()),
		zap.String("titulo", book.Title),
	)
	return book, nil
}

func (s *Store) UpdateBook(ctx context.Context, id uuid.UUID, update *model.BookUpdate) (*model.Book, error) {
	book, err := s.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := db.Row{}
	if update.Title != nil {
		taken, err := s.anyOther(ctx, db.TableBooks, db.Row{"titulo": *update.Title}, id)
		if err != nil {
			return nil, err
		}
		if taken {
			s.logger.Warn("book title already used by another book", zap.String("titulo", *update.Title))
			return nil, conflict("Já existe um livro com esse título!")
		}
		book.Title = *update.Title
		changes["titulo"] = *update.Title
	}
	if update.AuthorID != nil {
		if err := s.checkAuthorRef(ctx, *update.AuthorID); err != nil {
			return nil, err
		}
		book.AuthorID = *update.AuthorID
		changes["autor_id"] = *update.AuthorID
	}
	if update.PublisherID != nil {
		if err := s.checkPublisherRef(ctx, *update.PublisherID); err != nil {
			return nil, err
		}
		book.PublisherID = *update.PublisherID
		changes["editora_id"] = *update.PublisherID
	}
	if update.Synopsis != nil {
		book.Synopsis = update.Synopsis
		changes["sinopse"] = *update.Synopsis
	}
	if update.Genre != nil {
		book.Genre = *update.Genre
		changes["genero"] = *update.Genre
	}
	if update.Price != nil {
		book.Price = *update.Price
		changes["preco"] = *update.Price
	}
	if update.PublishDate != nil {
		book.PublishDate = *update.PublishDate
		changes["data_publicacao"] = update.PublishDate.Time
	}

	if len(changes) > 0 {
		if err := s.db.Update(ctx, db.TableBooks, db.Row{"id": id}, changes); err != nil {
			return nil, err
		}
	}

	s.logger.Info("book updated", zap.String("id", id.String()))
	return book, nil
}

func (s *Store) ListBooks(ctx context.Context) ([]model.Book, error) {
	rows, err := s.db.Scan(ctx, db.TableBooks, nil, false)
	if err != nil {
		return nil, err
	}
	books := make([]model.Book, 0, len(rows))
	for _, row := range rows {
		book, err := s.decodeBook(row)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}
	return books, nil
}

// ListBooksByPublisher scans by the editora_id column; it is not a key
// column, so the scan opts in to client-side filtering.
func (s *Store) ListBooksByPublisher(ctx context.Context, publisherID uuid.UUID) ([]model.Book, error) {
	rows, err := s.db.Scan(ctx, db.TableBooks, db.Row{"editora_id": publisherID}, true)
	if err != nil {
		return nil, err
	}
	books := make([]model.Book, 0, len(rows))
	for _, row := range rows {
		book, err := s.decodeBook(row)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}
	return books, nil
}

func (s *Store) CountBooks(ctx context.Context) (int, error) {
	rows, err := s.db.Scan(ctx, db.TableBooks, nil, false)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *Store) DeleteBook(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetBook(ctx, id); err != nil {
		return err
	}
	// Association rows pointing at this book are left behind. There is no
	// cascading delete anywhere in this system.
	if err := s.db.Delete(ctx, db.TableBooks, db.Row{"id": id}); err != nil {
		return err
	}
	s.logger.Info("book deleted", zap.String("id", id.String()))
	return nil
}

func (s *Store) FilterBooks(ctx context.Context, find *model.FindBook) ([]model.Book, error) {
	books, err := s.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	var matched []model.Book
	for _, b := range books {
		if find.Title != nil && !strings.Contains(strings.ToLower(b.Title), strings.ToLower(*find.Title)) {
			continue
		}
		if find.Genre != nil && !strings.Contains(strings.ToLower(b.Genre), strings.ToLower(*find.Genre)) {
			continue
		}
		if find.PriceMin != nil && b.Price < *find.PriceMin {
			continue
		}
		if find.PriceMax != nil && b.Price > *find.PriceMax {
			continue
		}
		if find.AuthorID != nil && b.AuthorID != *find.AuthorID {
			continue
		}
		if find.PublisherID != nil && b.PublisherID != *find.PublisherID {
			continue
		}
		matched = append(matched, b)
	}

	if len(matched) == 0 {
		return nil, notFound("Nenhum livro encontrado com os filtros informados!")
	}
	return matched, nil
}
