package db

// Table names of the mybooks keyspace. The wire names are the original
// Portuguese ones; they are part of the persisted schema.
const (
	TableAuthors       = "autores"
	TablePublishers    = "editoras"
	TableBooks         = "livros"
	TableUsers         = "usuarios"
	TableOrders        = "pedidos"
	TablePayments      = "pagamentos"
	TableOrderBook     = "pedido_livro"
	TableOrderPayment  = "pedido_pagamento"
)

type Column struct {
	Name string
	Type string // CQL type: uuid, text, date, double
}

type Table struct {
	Name          string
	Columns       []Column
	PartitionKey  []string
	ClusteringKey []string
}

// KeyColumns returns partition followed by clustering columns.
func (t Table) KeyColumns() []string {
	return append(append([]string{}, t.PartitionKey...), t.ClusteringKey...)
}

func (t Table) IsKeyColumn(name string) bool {
	for _, k := range t.KeyColumns() {
		if k == name {
			return true
		}
	}
	return false
}

// Tables declares the full schema. Both session implementations share it: the
// Cassandra one provisions these tables at startup, the in-memory one uses the
// key columns for row addressing and the allow-filtering rule.
var Tables = []Table{
	{
		Name: TableAuthors,
		Columns: []Column{
			{"id", "uuid"}, {"nome", "text"}, {"email", "text"},
			{"data_nascimento", "date"}, {"nacionalidade", "text"}, {"biografia", "text"},
		},
		PartitionKey: []string{"id"},
	},
	{
		Name: TablePublishers,
		Columns: []Column{
			{"id", "uuid"}, {"nome", "text"}, {"endereco", "text"},
			{"telefone", "text"}, {"email", "text"},
		},
		PartitionKey: []string{"id"},
	},
	{
		Name: TableBooks,
		Columns: []Column{
			{"id", "uuid"}, {"titulo", "text"}, {"sinopse", "text"},
			{"genero", "text"}, {"preco", "double"}, {"data_publicacao", "date"},
			{"autor_id", "uuid"}, {"editora_id", "uuid"},
		},
		PartitionKey: []string{"id"},
	},
	{
		Name: TableUsers,
		Columns: []Column{
			{"id", "uuid"}, {"nome", "text"}, {"email", "text"},
			{"cpf", "text"}, {"data_cadastro", "date"},
		},
		PartitionKey: []string{"id"},
	},
	{
		Name: TableOrders,
		Columns: []Column{
			{"id", "uuid"}, {"usuario_id", "uuid"}, {"status", "text"},
			{"valor_total", "double"}, {"data_pedido", "date"},
		},
		PartitionKey: []string{"id"},
	},
	{
		Name: TablePayments,
		Columns: []Column{
			{"id", "uuid"}, {"pedido_id", "uuid"}, {"valor", "double"},
			{"data_pagamento", "date"}, {"forma_pagamento", "text"},
		},
		PartitionKey: []string{"id"},
	},
	{
		Name: TableOrderBook,
		Columns: []Column{
			{"pedido_id", "uuid"}, {"livro_id", "uuid"},
		},
		PartitionKey:  []string{"pedido_id"},
		ClusteringKey: []string{"livro_id"},
	},
	{
		Name: TableOrderPayment,
		Columns: []Column{
			{"pedido_id", "uuid"}, {"pagamento_id", "uuid"},
		},
		PartitionKey:  []string{"pedido_id"},
		ClusteringKey: []string{"pagamento_id"},
	},
}

// TableDef looks a table up by name.
func TableDef(name string) (Table, bool) {
	for _, t := range Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
