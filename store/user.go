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

func (s *Store) decodeUser(row db.Row) (*model.User, error) {
	registered, err := s.rowDate(row, "data_cadastro")
	if err != nil {
		return nil, err
	}
	return &model.User{
		ID:           rowUUID(row, "id"),
		Name:         rowString(row, "nome"),
		Email:        rowString(row, "email"),
		CPF:          rowString(row, "cpf"),
		RegisteredAt: registered,
	}, nil
}

func encodeUser(u *model.User) db.Row {
	return db.Row{
		"id":            u.ID,
		"nome":          u.Name,
		"email":         u.Email,
		"cpf":           u.CPF,
		"data_cadastro": u.RegisteredAt.Time,
	}
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	row, err := s.db.Get(ctx, db.TableUsers, db.Row{"id": id})
	if err != nil {
		if errors.Is(err, db.ErrRowNotFound) {
			return nil, notFound("Usuário não encontrado!")
		}
		return nil, err
	}
	return s.decodeUser(row)
}

func (s *Store) CreateUser(ctx context.Context, create *model.UserCreate) (*model.User, error) {
	taken, err := s.anyMatch(ctx, db.TableUsers, db.Row{"cpf": create.CPF})
	if err != nil {
		return nil, err
	}
	if taken {
		s.logger.Warn("cpf already registered", zap.String("cpf", create.CPF))
		return nil, conflict("Já existe um usuário com esse CPF!")
	}

	registered := model.Today()
	if create.RegisteredAt != nil {
		registered = *create.RegisteredAt
	}
	user := &model.User{
		ID:           uuid.New(),
		Name:         create.Name,
		Email:        create.Email,
		CPF:          create.CPF,
		RegisteredAt: registered,
	}
	if err := s.db.Insert(ctx, db.TableUsers, encodeUser(user)); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.String("id", user.ID.String()),
		zap.String("nome", user.Name),
		zap.String("email", user.Email),
	)
	return user, nil
}

func (s *Store) UpdateUser(ctx context.Context, id uuid.UUID, update *model.UserUpdate) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := db.Row{}
	if update.CPF != nil {
		taken, err := s.anyOther(ctx, db.TableUsers, db.Row{"cpf": *update.CPF}, id)
		if err != nil {
			return nil, err
		}
		if taken {
			s.logger.Warn("cpf already used by another user", zap.String("cpf", *update.CPF))
			return nil, conflict("Já existe um usuário com esse CPF!")
		}
		user.CPF = *update.CPF
		changes["cpf"] = *update.CPF
	}
	if update.Name != nil {
		user.Name = *update.Name
		changes["nome"] = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
		changes["email"] = *update.Email
	}
	if update.RegisteredAt != nil {
		user.RegisteredAt = *update.RegisteredAt
		changes["data_cadastro"] = update.RegisteredAt.Time
	}

	if len(changes) > 0 {
		if err := s.db.Update(ctx, db.TableUsers, db.Row{"id": id}, changes); err != nil {
			return nil, err
		}
	}

	s.logger.Info("user updated", zap.String("id", id.String()))
	return user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.Scan(ctx, db.TableUsers, nil, false)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		user, err := s.decodeUser(row)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	rows, err := s.db.Scan(ctx, db.TableUsers, nil, false)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	if err := s.db.Delete(ctx, db.TableUsers, db.Row{"id": id}); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("id", id.String()))
	return nil
}

func (s *Store) FilterUsers(ctx context.Context, find *model.FindUser) ([]model.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	var matched []model.User
	for _, u := range users {
		if find.Name != nil && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(*find.Name)) {
			continue
		}
		if find.Email != nil && !strings.Contains(strings.ToLower(u.Email), strings.ToLower(*find.Email)) {
			continue
		}
		// CPF is an exact match, not a substring.
		if find.CPF != nil && u.CPF != *find.CPF {
			continue
		}
		matched = append(matched, u)
	}

	if len(matched) == 0 {
		return nil, notFound("Nenhum usuário encontrado com os filtros informados!")
	}
	return matched, nil
}
