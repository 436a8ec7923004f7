package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// GetConfig builds the effective options: defaults, then the optional config
// file, then MYBOOKS_* environment variables.
func GetConfig(file string) (*Options, error) {
	opts := GetDefaultOptions()

	if file != "" {
		parsed, err := ParseFile(opts, file)
		if err != nil {
			return nil, err
		}
		opts = parsed
	}

	applyEnv(opts)

	if opts.Port <= 0 || opts.Port > 65535 {
		return nil, errors.Errorf("invalid port: %d", opts.Port)
	}
	if len(opts.CassandraHosts) == 0 {
		return nil, errors.New("no cassandra hosts configured")
	}
	if opts.Keyspace == "" {
		return nil, errors.New("keyspace must not be empty")
	}

	return opts, nil
}

func ParseFile(opts *Options, file string) (*Options, error) {
	// Check if file exists
	if _, err := os.Stat(file); err != nil {
		return nil, errors.Wrapf(err, "unable to access config file %s", file)
	}

	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func applyEnv(opts *Options) {
	if v := os.Getenv("MYBOOKS_CASSANDRA_HOSTS"); v != "" {
		opts.CassandraHosts = strings.Split(v, ",")
	}
	if v := os.Getenv("MYBOOKS_KEYSPACE"); v != "" {
		opts.Keyspace = v
	}
	if v := os.Getenv("MYBOOKS_HOST"); v != "" {
		opts.Host = v
	}
	if v := os.Getenv("MYBOOKS_LOG_LEVEL"); v != "" {
		opts.LogLevel = v
	}
}
