package db

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/mybooks/mybooks/config"
	"github.com/pkg/errors"
)

// Cassandra implements Session on a gocql session. Statements are plain CQL
// built from the contract verbs; the driver handles paging and retries.
type Cassandra struct {
	session  *gocql.Session
	keyspace string
}

// NewCassandra connects to the cluster, provisions the keyspace and tables
// when missing, and returns a ready session.
func NewCassandra(opts *config.Options) (*Cassandra, error) {
	cluster := gocql.NewCluster(opts.CassandraHosts...)
	cluster.Port = opts.CassandraPort
	cluster.Timeout = 10 * time.Second
	cluster.Consistency = gocql.Quorum

	// First session has no keyspace bound so the keyspace itself can be created.
	setup, err := cluster.CreateSession()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to cassandra")
	}
	if err := provision(setup, opts.Keyspace, opts.ReplicationFactor); err != nil {
		setup.Close()
		return nil, err
	}
	setup.Close()

	cluster.Keyspace = opts.Keyspace
	session, err := cluster.CreateSession()
	if err != nil {
		return nil, errors.Wrapf(err, "unable to bind keyspace %s", opts.Keyspace)
	}

	return &Cassandra{session: session, keyspace: opts.Keyspace}, nil
}

func provision(session *gocql.Session, keyspace string, replication int) error {
	ddl := fmt.Sprintf(`CREATE KEYSPACE IF NOT EXISTS %s
		WITH replication = {'class': 'SimpleStrategy', 'replication_factor': %d}`,
		keyspace, replication)
	if err := session.Query(ddl).Exec(); err != nil {
		return errors.Wrapf(err, "unable to create keyspace %s", keyspace)
	}

	for _, table := range Tables {
		if err := session.Query(tableDDL(keyspace, table)).Exec(); err != nil {
			return errors.Wrapf(err, "unable to create table %s", table.Name)
		}
	}
	return nil
}

func tableDDL(keyspace string, t Table) string {
	var cols []string
	for _, c := range t.Columns {
		cols = append(cols, fmt.Sprintf("%s %s", c.Name, c.Type))
	}

	pk := fmt.Sprintf("(%s)", strings.Join(t.PartitionKey, ", "))
	if len(t.ClusteringKey) > 0 {
		pk = fmt.Sprintf("%s, %s", pk, strings.Join(t.ClusteringKey, ", "))
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s.%s (%s, PRIMARY KEY (%s))",
		keyspace, t.Name, strings.Join(cols, ", "), pk)
	if len(t.ClusteringKey) > 0 {
		var order []string
		for _, ck := range t.ClusteringKey {
			order = append(order, ck+" ASC")
		}
		ddl += fmt.Sprintf(" WITH CLUSTERING ORDER BY (%s)", strings.Join(order, ", "))
	}
	return ddl
}

func (c *Cassandra) Get(ctx context.Context, table string, key Row) (Row, error) {
	where, args := whereClause(key)
	stmt := fmt.Sprintf("SELECT * FROM %s WHERE %s", table, where)

	m := map[string]interface{}{}
	if err := c.session.Query(stmt, args...).WithContext(ctx).MapScan(m); err != nil {
		if err == gocql.ErrNotFound {
			return nil, ErrRowNotFound
		}
		return nil, errors.Wrapf(err, "get %s", table)
	}
	return fromCQLRow(m), nil
}

func (c *Cassandra) Scan(ctx context.Context, table string, filter Row, allowFiltering bool) ([]Row, error) {
	stmt := fmt.Sprintf("SELECT * FROM %s", table)
	var args []interface{}
	if len(filter) > 0 {
		where, whereArgs := whereClause(filter)
		stmt, args = stmt+" WHERE "+where, whereArgs
	}
	if allowFiltering {
		stmt += " ALLOW FILTERING"
	}

	iter := c.session.Query(stmt, args...).WithContext(ctx).Iter()
	var rows []Row
	for {
		m := map[string]interface{}{}
		if !iter.MapScan(m) {
			break
		}
		rows = append(rows, fromCQLRow(m))
	}
	if err := iter.Close(); err != nil {
		return nil, errors.Wrapf(err, "scan %s", table)
	}
	return rows, nil
}

func (c *Cassandra) Insert(ctx context.Context, table string, row Row) error {
	cols := sortedColumns(row)
	var marks []string
	var args []interface{}
	for _, col := range cols {
		marks = append(marks, "?")
		args = append(args, toCQL(row[col]))
	}
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(marks, ", "))
	return errors.Wrapf(c.session.Query(stmt, args...).WithContext(ctx).Exec(), "insert %s", table)
}

func (c *Cassandra) Update(ctx context.Context, table string, key Row, changes Row) error {
	var sets []string
	var args []interface{}
	for _, col := range sortedColumns(changes) {
		sets = append(sets, col+" = ?")
		args = append(args, toCQL(changes[col]))
	}
	where, whereArgs := whereClause(key)
	args = append(args, whereArgs...)

	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE %s", table, strings.Join(sets, ", "), where)
	return errors.Wrapf(c.session.Query(stmt, args...).WithContext(ctx).Exec(), "update %s", table)
}

func (c *Cassandra) Delete(ctx context.Context, table string, key Row) error {
	where, args := whereClause(key)
	stmt := fmt.Sprintf("DELETE FROM %s WHERE %s", table, where)
	return errors.Wrapf(c.session.Query(stmt, args...).WithContext(ctx).Exec(), "delete %s", table)
}

func (c *Cassandra) Ping(ctx context.Context) error {
	var release string
	return c.session.Query("SELECT release_version FROM system.local").
		WithContext(ctx).Scan(&release)
}

func (c *Cassandra) Close() {
	c.session.Close()
}

func whereClause(key Row) (string, []interface{}) {
	var conds []string
	var args []interface{}
	for _, col := range sortedColumns(key) {
		conds = append(conds, col+" = ?")
		args = append(args, toCQL(key[col]))
	}
	return strings.Join(conds, " AND "), args
}

func sortedColumns(row Row) []string {
	cols := make([]string, 0, len(row))
	for col := range row {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// toCQL maps canonical row values to driver types.
func toCQL(v interface{}) interface{} {
	if id, ok := v.(uuid.UUID); ok {
		return gocql.UUID(id)
	}
	return v
}

// fromCQLRow maps driver values back to the canonical ones. Dates stay
// time.Time; uuid columns come back as gocql.UUID and are converted.
func fromCQLRow(m map[string]interface{}) Row {
	row := make(Row, len(m))
	for col, v := range m {
		if id, ok := v.(gocql.UUID); ok {
			row[col] = uuid.UUID(id)
			continue
		}
		row[col] = v
	}
	return row
}
