package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetConfigDefaults(t *testing.T) {
	opts, err := GetConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if opts.Port != 8000 {
		t.Fatalf(`Unexpected default port: %d`, opts.Port)
	}
	if opts.Keyspace != "mybooks" {
		t.Fatalf(`Unexpected default keyspace: %q`, opts.Keyspace)
	}
	if len(opts.CassandraHosts) != 1 || opts.CassandraHosts[0] != "127.0.0.1" {
		t.Fatalf(`Unexpected default cassandra hosts: %v`, opts.CassandraHosts)
	}
}

func TestGetConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("port: 9001\nkeyspace: livraria\nlog_level: debug\ncassandra_hosts:\n  - 10.0.0.1\n  - 10.0.0.2\n")
	if err := os.WriteFile(file, content, 0o600); err != nil {
		t.Fatal(err)
	}

	opts, err := GetConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Port != 9001 {
		t.Fatalf(`Unexpected port: %d`, opts.Port)
	}
	if opts.Keyspace != "livraria" {
		t.Fatalf(`Unexpected keyspace: %q`, opts.Keyspace)
	}
	if opts.LogLevel != "debug" {
		t.Fatalf(`Unexpected log level: %q`, opts.LogLevel)
	}
	if len(opts.CassandraHosts) != 2 {
		t.Fatalf(`Unexpected cassandra hosts: %v`, opts.CassandraHosts)
	}
	// Untouched settings keep their defaults.
	if opts.Host != "0.0.0.0" {
		t.Fatalf(`Unexpected host: %q`, opts.Host)
	}
}

func TestGetConfigMissingFile(t *testing.T) {
	if _, err := GetConfig("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestGetConfigEnvOverride(t *testing.T) {
	t.Setenv("MYBOOKS_KEYSPACE", "from_env")
	t.Setenv("MYBOOKS_CASSANDRA_HOSTS", "10.1.1.1,10.1.1.2")

	opts, err := GetConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if opts.Keyspace != "from_env" {
		t.Fatalf(`Environment override ignored: %q`, opts.Keyspace)
	}
	if len(opts.CassandraHosts) != 2 || opts.CassandraHosts[1] != "10.1.1.2" {
		t.Fatalf(`Unexpected cassandra hosts: %v`, opts.CassandraHosts)
	}
}
