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

func decodePublisher(row db.Row) *model.Publisher {
	return &model.Publisher{
		ID:      rowUUID(row, "id"),
		Name:    rowString(row, "nome"),
		Address: rowString(row, "endereco"),
		Phone:   rowString(row, "telefone"),
		Email:   rowString(row, "email"),
	}
}

func encodePublisher(p *model.Publisher) db.Row {
	return db.Row{
		"id":       p.ID,
		"nome":     p.Name,
		"endereco": p.Address,
		"telefone": p.Phone,
		"email":    p.Email,
	}
}

func (s *Store) GetPublisher(ctx context.Context, id uuid.UUID) (*model.Publisher, error) {
	row, err := s.db.Get(ctx, db.TablePublishers, db.Row{"id": id})
	if err != nil {
		if errors.Is(err, db.ErrRowNotFound) {
			return nil, notFound("Editora não encontrada!")
		}
		return nil, err
	}
	return decodePublisher(row), nil
}

func (s *Store) CreatePublisher(ctx context.Context, create *model.PublisherCreate) (*model.Publisher, error) {
	taken, err := s.anyMatch(ctx, db.TablePublishers, db.Row{"nome": create.Name})
	if err != nil {
		return nil, err
	}
	if taken {
		s.logger.Warn("publisher name already in use", zap.String("nome", create.Name))
		return nil, conflict("Já existe uma editora com esse nome!")
	}

	taken, err = s.anyMatch(ctx, db.TablePublishers, db.Row{"email": create.Email})
	if err != nil {
		return nil, err
	}
	if taken {
		s.logger.Warn("publisher email already in use", zap.String("email", create.Email))
		return nil, conflict("Já existe uma editora com esse e-mail!")
	}

	publisher := &model.Publisher{
		ID:      uuid.New(),
		Name:    create.Name,
		Address: create.Address,
		Phone:   create.Phone,
		Email:   create.Email,
	}
	if err := s.db.Insert(ctx, db.TablePublishers, encodePublisher(publisher)); err != nil {
		return nil, err
	}

	s.logger.Info("publisher created",
		zap.String("id", publisher.ID.String()),
		zap.String("nome", publisher.Name),
	)
	return publisher, nil
}

func (s *Store) UpdatePublisher(ctx context.Context, id uuid.UUID, update *model.PublisherUpdate) (*model.Publisher, error) {
	publisher, err := s.GetPublisher(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := db.Row{}
	if update.Name != nil {
		taken, err := s.anyOther(ctx, db.TablePublishers, db.Row{"nome": *update.Name}, id)
		if err != nil {
			return nil, err
		}
		if taken {
			s.logger.Warn("publisher name already used by another publisher", zap.String("nome", *update.Name))
			return nil, conflict("Já existe uma editora com esse nome!")
		}
		publisher.Name = *update.Name
		changes["nome"] = *update.Name
	}
	if update.Email != nil {
		taken, err := s.anyOther(ctx, db.TablePublishers, db.Row{"email": *update.Email}, id)
		if err != nil {
			return nil, err
		}
		if taken {
			s.logger.Warn("publisher email already used by another publisher", zap.String("email", *update.Email))
			return nil, conflict("Já existe uma editora com esse e-mail!")
		}
		publisher.Email = *update.Email
		changes["email"] = *update.Email
	}
	if update.Address != nil {
		publisher.Address = *update.Address
		changes["endereco"] = *update.Address
	}
	if update.Phone != nil {
		publisher.Phone = *update.Phone
		changes["telefone"] = *update.Phone
	}

	if len(changes) > 0 {
		if err := s.db.Update(ctx, db.TablePublishers, db.Row{"id": id}, changes); err != nil {
			return nil, err
		}
	}

	s.logger.Info("publisher updated", zap.String("id", id.String()))
	return publisher, nil
}

func (s *Store) ListPublishers(ctx context.Context) ([]model.Publisher, error) {
	rows, err := s.db.Scan(ctx, db.TablePublishers, nil, false)
	if err != nil {
		return nil, err
	}
	publishers := make([]model.Publisher, 0, len(rows))
	for _, row := range rows {
		publishers = append(publishers, *decodePublisher(row))
	}
	return publishers, nil
}

func (s *Store) CountPublishers(ctx context.Context) (int, error) {
	rows, err := s.db.Scan(ctx, db.TablePublishers, nil, false)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *Store) DeletePublisher(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetPublisher(ctx, id); err != nil {
		return err
	}
	if err := s.db.Delete(ctx, db.TablePublishers, db.Row{"id": id}); err != nil {
		return err
	}
	s.logger.Info("publisher deleted", zap.String("id", id.String()))
	return nil
}

func (s *Store) FilterPublishers(ctx context.Context, find *model.FindPublisher) ([]model.Publisher, error) {
	publishers, err := s.ListPublishers(ctx)
	if err != nil {
		return nil, err
	}

	var matched []model.Publisher
	for _, p := range publishers {
		if find.Name != nil && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(*find.Name)) {
			continue
		}
		if find.Address != nil && !strings.Contains(strings.ToLower(p.Address), strings.ToLower(*find.Address)) {
			continue
		}
		// Phone matches by plain substring, case preserved.
		if find.Phone != nil && !strings.Contains(p.Phone, *find.Phone) {
			continue
		}
		if find.Email != nil && !strings.Contains(strings.ToLower(p.Email), strings.ToLower(*find.Email)) {
			continue
		}
		matched = append(matched, p)
	}

	if len(matched) == 0 {
		return nil, notFound("Nenhuma editora encontrada com os filtros informados!")
	}
	return matched, nil
}
