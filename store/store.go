package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mybooks/mybooks/model"
	"github.com/mybooks/mybooks/store/db"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Store is the repository layer: one set of methods per entity, all running
// on the keyed-lookup + scan session. It owns the uniqueness and reference
// pre-checks and the wire-facing error messages.
type Store struct {
	db     db.Session
	logger *zap.Logger
}

func NewStore(session db.Session, logger *zap.Logger) *Store {
	return &Store{db: session, logger: logger}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) Close() {
	s.db.Close()
}

// Error kinds matched with errors.Is at the route boundary. The concrete
// errors carry the exact response detail, so Error() is the wire message.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("invalid value")
)

type kindError struct {
	kind   error
	detail string
}

func (e *kindError) Error() string { return e.detail }

func (e *kindError) Is(target error) bool { return target == e.kind }

func notFound(detail string) error { return &kindError{kind: ErrNotFound, detail: detail} }

func conflict(detail string) error { return &kindError{kind: ErrConflict, detail: detail} }

func invalid(detail string) error { return &kindError{kind: ErrValidation, detail: detail} }

// Row decode helpers. Every date column must arrive as the driver's native
// date type; anything else is logged and rejected, never coerced.

func rowUUID(row db.Row, col string) uuid.UUID {
	if id, ok := row[col].(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func rowString(row db.Row, col string) string {
	if s, ok := row[col].(string); ok {
		return s
	}
	return ""
}

// rowOptString maps an empty or absent text column to nil. The store keeps no
// distinction between null and empty text, so none survives here either.
func rowOptString(row db.Row, col string) *string {
	s, ok := row[col].(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

func rowFloat(row db.Row, col string) float64 {
	if f, ok := row[col].(float64); ok {
		return f
	}
	return 0
}

func (s *Store) rowDate(row db.Row, col string) (model.Date, error) {
	v, ok := row[col].(time.Time)
	if !ok {
		s.logger.Warn("invalid date column value",
			zap.String("column", col),
			zap.Any("value", row[col]),
		)
		return model.Date{}, invalid("Valor de data inválido para " + col + "!")
	}
	return model.DateOf(v), nil
}

// anyMatch reports whether any row matches the equality filter. This is the
// uniqueness pre-check: a scan followed by a separate insert, so two
// concurrent creates can both pass it. Accepted property of the design.
func (s *Store) anyMatch(ctx context.Context, table string, filter db.Row) (bool, error) {
	rows, err := s.db.Scan(ctx, table, filter, true)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

// anyOther is the update-path variant: a match on a different id.
func (s *Store) anyOther(ctx context.Context, table string, filter db.Row, selfID uuid.UUID) (bool, error) {
	rows, err := s.db.Scan(ctx, table, filter, true)
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if rowUUID(row, "id") != selfID {
			return true, nil
		}
	}
	return false, nil
}

func optText(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
