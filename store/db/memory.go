package db

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Memory is an in-process Session used by the test suites. It follows the
// contract of the Cassandra session, including the allow-filtering rule for
// equality filters on non-key columns, using the shared schema definitions.
type Memory struct {
	mu     sync.Mutex
	tables map[string]*memTable
}

type memTable struct {
	def  Table
	rows map[string]Row
	// insertion order, so scans and therefore pagination are stable
	order []string
}

func NewMemory() *Memory {
	return &Memory{tables: make(map[string]*memTable)}
}

// table materializes a declared table on first use. Callers hold mu.
func (m *Memory) table(name string) (*memTable, error) {
	if t, ok := m.tables[name]; ok {
		return t, nil
	}
	def, ok := TableDef(name)
	if !ok {
		return nil, errors.Errorf("db: unknown table %s", name)
	}
	t := &memTable{def: def, rows: make(map[string]Row)}
	m.tables[name] = t
	return t, nil
}

func (t *memTable) keyFor(row Row) (string, error) {
	var parts []string
	for _, col := range t.def.KeyColumns() {
		v, ok := row[col]
		if !ok {
			return "", errors.Errorf("db: missing key column %s for table %s", col, t.def.Name)
		}
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	return strings.Join(parts, "|"), nil
}

func (m *Memory) Get(ctx context.Context, table string, key Row) (Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.table(table)
	if err != nil {
		return nil, err
	}
	k, err := t.keyFor(key)
	if err != nil {
		return nil, err
	}
	row, ok := t.rows[k]
	if !ok {
		return nil, ErrRowNotFound
	}
	return row.Copy(), nil
}

func (m *Memory) Scan(ctx context.Context, table string, filter Row, allowFiltering bool) ([]Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.table(table)
	if err != nil {
		return nil, err
	}
	for col := range filter {
		if !t.def.IsKeyColumn(col) && !allowFiltering {
			return nil, ErrFilterNotAllowed
		}
	}

	var rows []Row
	for _, k := range t.order {
		row := t.rows[k]
		if matches(row, filter) {
			rows = append(rows, row.Copy())
		}
	}
	return rows, nil
}

func (m *Memory) Insert(ctx context.Context, table string, row Row) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.table(table)
	if err != nil {
		return err
	}
	k, err := t.keyFor(row)
	if err != nil {
		return err
	}
	if _, exists := t.rows[k]; !exists {
		t.order = append(t.order, k)
	}
	t.rows[k] = row.Copy()
	return nil
}

func (m *Memory) Update(ctx context.Context, table string, key Row, changes Row) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.table(table)
	if err != nil {
		return err
	}
	k, err := t.keyFor(key)
	if err != nil {
		return err
	}
	row, ok := t.rows[k]
	if !ok {
		// Upsert, like the real store.
		row = key.Copy()
		t.order = append(t.order, k)
		t.rows[k] = row
	}
	for col, v := range changes {
		row[col] = v
	}
	return nil
}

func (m *Memory) Delete(ctx context.Context, table string, key Row) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.table(table)
	if err != nil {
		return err
	}
	k, err := t.keyFor(key)
	if err != nil {
		return err
	}
	if _, ok := t.rows[k]; !ok {
		return nil
	}
	delete(t.rows, k)
	for i, existing := range t.order {
		if existing == k {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) Close() {}

func matches(row Row, filter Row) bool {
	for col, want := range filter {
		if !valueEqual(row[col], want) {
			return false
		}
	}
	return true
}

func valueEqual(a, b interface{}) bool {
	at, aok := a.(time.Time)
	bt, bok := b.(time.Time)
	if aok && bok {
		return at.Equal(bt)
	}
	return a == b
}
