package config

const (
	defaultLogFile           = "mybooks.log"
	defaultLogLevel          = "info"
	defaultLogFileMaxSize    = 20
	defaultLogFileMaxBackups = 3
	defaultLogFileMaxAge     = 28
	defaultLogCompress       = false
	defaultHost              = "0.0.0.0"
	defaultPort              = 8000
	defaultKeyspace          = "mybooks"
	defaultCassandraHost     = "127.0.0.1"
	defaultCassandraPort     = 9042
	defaultReplicationFactor = 1
	defaultRequestTimeout    = 30
)

// Why use mapstructure instead of json, if use json as field tags, it can't recgnize the field, since the viper use mapstructure.
// see: https://pkg.go.dev/github.com/mitchellh/mapstructure#hdr-Field_Tags
type Options struct {
	// LogFile is the file to write logs to
	LogFile string `mapstructure:"log_file"`
	// LogLevel is the level of logging to show
	LogLevel string `mapstructure:"log_level"`
	// LogFileMaxSize is the maximum size of the log file before it is rotated
	LogFileMaxSize int `mapstructure:"log_file_max_size"`
	// LogFileMaxBackups is the maximum number of log files to keep
	LogFileMaxBackups int `mapstructure:"log_file_max_backups"`
	// LogFileMaxAge is the maximum number of days to keep a log file
	LogFileMaxAge int `mapstructure:"log_file_max_age"`
	// LogCompress is whether or not to compress the log files
	LogCompress bool `mapstructure:"log_compress"`
	// Host is the host to listen on
	Host string `mapstructure:"host"`
	// Port is the port to listen on
	Port int `mapstructure:"port"`
	// CassandraHosts is the list of Cassandra contact points
	CassandraHosts []string `mapstructure:"cassandra_hosts"`
	// CassandraPort is the CQL native protocol port
	CassandraPort int `mapstructure:"cassandra_port"`
	// Keyspace is the keyspace holding all tables
	Keyspace string `mapstructure:"keyspace"`
	// ReplicationFactor is used when the keyspace is created on startup
	ReplicationFactor int `mapstructure:"replication_factor"`
	// RequestTimeout is the read/write timeout of the HTTP server, in seconds
	RequestTimeout int `mapstructure:"request_timeout"`
}

func GetDefaultOptions() *Options {
	return &Options{
		LogFile:           defaultLogFile,
		LogLevel:          defaultLogLevel,
		LogFileMaxSize:    defaultLogFileMaxSize,
		LogFileMaxBackups: defaultLogFileMaxBackups,
		LogFileMaxAge:     defaultLogFileMaxAge,
		LogCompress:       defaultLogCompress,
		Host:              defaultHost,
		Port:              defaultPort,
		CassandraHosts:    []string{defaultCassandraHost},
		CassandraPort:     defaultCassandraPort,
		Keyspace:          defaultKeyspace,
		ReplicationFactor: defaultReplicationFactor,
		RequestTimeout:    defaultRequestTimeout,
	}
}
