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

func (s *Store) decodeAuthor(row db.Row) (*model.Author, error) {
	birth, err := s.rowDate(row, "data_nascimento")
	if err != nil {
		return nil, err
	}
	return &model.Author{
		ID:          rowUUID(row, "id"),
		Name:        rowString(row, "nome"),
		Email:       rowString(row, "email"),
		BirthDate:   birth,
		Nationality: rowString(row, "nacionalidade"),
		Bio:         rowOptString(row, "biografia"),
	}, nil
}

func encodeAuthor(a *model.Author) db.Row {
	return db.Row{
		"id":              a.ID,
		"nome":            a.Name,
		"email":           a.Email,
		"data_nascimento": a.BirthDate.Time,
		"nacionalidade":   a.Nationality,
		"biografia":       optText(a.Bio),
	}
}

func (s *Store) GetAuthor(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	row, err := s.db.Get(ctx, db.TableAuthors, db.Row{"id": id})
	if err != nil {
		if errors.Is(err, db.ErrRowNotFound) {
			return nil, notFound("Autor não encontrado!")
		}
		return nil, err
	}
	return s.decodeAuthor(row)
}

func (s *Store) CreateAuthor(ctx context.Context, create *model.AuthorCreate) (*model.Author, error) {
	taken, err := s.anyMatch(ctx, db.TableAuthors, db.Row{"nome": create.Name})
	if err != nil {
		return nil, err
	}
	if taken {
		s.logger.Warn("author name already in use", zap.String("nome", create.Name))
		return nil, conflict("Já existe um autor com esse nome!")
	}

	taken, err = s.anyMatch(ctx, db.TableAuthors, db.Row{"email": create.Email})
	if err != nil {
		return nil, err
	}
	if taken {
		s.logger.Warn("author email already in use", zap.String("email", create.Email))
		return nil, conflict("Já existe um autor com esse e-mail!")
	}

	author := &model.Author{
		ID:          uuid.New(),
		Name:        create.Name,
		Email:       create.Email,
		BirthDate:   create.BirthDate,
		Nationality: create.Nationality,
		Bio:         create.Bio,
	}
	if err := s.db.Insert(ctx, db.TableAuthors, encodeAuthor(author)); err != nil {
		return nil, err
	}

	s.logger.Info("author created",
		zap.String("id", author.ID.String()),
		zap.String("nome", author.Name),
		zap.String("email", author.Email),
	)
	return author, nil
}

func (s *Store) UpdateAuthor(ctx context.Context, id uuid.UUID, update *model.AuthorUpdate) (*model.Author, error) {
	author, err := s.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := db.Row{}
	if update.Name != nil {
		taken, err := s.anyOther(ctx, db.TableAuthors, db.Row{"nome": *update.Name}, id)
		if err != nil {
			return nil, err
		}
		if taken {
			s.logger.Warn("author name already used by another author", zap.String("nome", *update.Name))
			return nil, conflict("Já existe um autor com esse nome!")
		}
		author.Name = *update.Name
		changes["nome"] = *update.Name
	}
	if update.Email != nil {
		taken, err := s.anyOther(ctx, db.TableAuthors, db.Row{"email": *update.Email}, id)
		if err != nil {
			return nil, err
		}
		if taken {
			s.logger.Warn("author email already used by another author", zap.String("email", *update.Email))
			return nil, conflict("Já existe um autor com esse e-mail!")
		}
		author.Email = *update.Email
		changes["email"] = *update.Email
	}
	if update.BirthDate != nil {
		author.BirthDate = *update.BirthDate
		changes["data_nascimento"] = update.BirthDate.Time
	}
	if update.Nationality != nil {
		author.Nationality = *update.Nationality
		changes["nacionalidade"] = *update.Nationality
	}
	if update.Bio != nil {
		author.Bio = update.Bio
		changes["biografia"] = *update.Bio
	}

	if len(changes) > 0 {
		if err := s.db.Update(ctx, db.TableAuthors, db.Row{"id": id}, changes); err != nil {
			return nil, err
		}
	}

	s.logger.Info("author updated", zap.String("id", id.String()))
	return author, nil
}

func (s *Store) ListAuthors(ctx context.Context) ([]model.Author, error) {
	rows, err := s.db.Scan(ctx, db.TableAuthors, nil, false)
	if err != nil {
		return nil, err
	}
	authors := make([]model.Author, 0, len(rows))
	for _, row := range rows {
		author, err := s.decodeAuthor(row)
		if err != nil {
			return nil, err
		}
		authors = append(authors, *author)
	}
	return authors, nil
}

func (s *Store) CountAuthors(ctx context.Context) (int, error) {
	rows, err := s.db.Scan(ctx, db.TableAuthors, nil, false)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *Store) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetAuthor(ctx, id); err != nil {
		return err
	}
	if err := s.db.Delete(ctx, db.TableAuthors, db.Row{"id": id}); err != nil {
		return err
	}
	s.logger.Info("author deleted", zap.String("id", id.String()))
	return nil
}

// FilterAuthors intersects the given criteria over the full collection.
// Zero matches is an error, not an empty result.
func (s *Store) FilterAuthors(ctx context.Context, find *model.FindAuthor) ([]model.Author, error) {
	authors, err := s.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}

	var matched []model.Author
	for _, a := range authors {
		if find.Name != nil && !strings.Contains(strings.ToLower(a.Name), strings.ToLower(*find.Name)) {
			continue
		}
		if find.Email != nil && !strings.Contains(strings.ToLower(a.Email), strings.ToLower(*find.Email)) {
			continue
		}
		if find.Nationality != nil && !strings.Contains(strings.ToLower(a.Nationality), strings.ToLower(*find.Nationality)) {
			continue
		}
		if find.BirthDate != nil && !a.BirthDate.Equal(*find.BirthDate) {
			continue
		}
		matched = append(matched, a)
	}

	if len(matched) == 0 {
		return nil, notFound("Nenhum autor encontrado com os filtros informados!")
	}
	return matched, nil
}
