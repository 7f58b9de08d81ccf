// Package storage elige la fuente de records según DATASET_SOURCE.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"shelter-outcomes/internal/adapters/storage/csvfile"
	"shelter-outcomes/internal/adapters/storage/postgres"
	"shelter-outcomes/internal/adapters/storage/remote"
	"shelter-outcomes/internal/adapters/storage/sqlite"
	"shelter-outcomes/internal/domain/outcomes"
	"shelter-outcomes/internal/platform/httpclient"
)

// Kind es el tipo de fuente detectado a partir del URI.
type Kind string

const (
	KindFile     Kind = "file"
	KindHTTP     Kind = "http"
	KindPostgres Kind = "postgres"
	KindSQLite   Kind = "sqlite"
)

// Options configura Open.
type Options struct {
	Table        string
	FetchTimeout time.Duration
}

// Importer lo implementan las fuentes que aceptan escritura (postgres, sqlite, memory).
type Importer interface {
	Import(ctx context.Context, recs []outcomes.Record) error
}

// Handle es la fuente abierta más su cierre (no-op para archivos/HTTP).
type Handle struct {
	Kind   Kind
	Source outcomes.Source
	db     *sql.DB
}

func (h *Handle) Close() error {
	if h == nil || h.db == nil {
		return nil
	}
	return h.db.Close()
}

// Importer devuelve la fuente como Importer si soporta escritura.
func (h *Handle) Importer() (Importer, bool) {
	imp, ok := h.Source.(Importer)
	return imp, ok
}

// Detect clasifica el URI: postgres://, postgresql://, sqlite://, http(s)://, file:// o path.
func Detect(uri string) (Kind, string) {
	uri = strings.TrimSpace(uri)
	switch {
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return KindPostgres, uri
	case strings.HasPrefix(uri, "sqlite://"):
		return KindSQLite, strings.TrimPrefix(uri, "sqlite://")
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return KindHTTP, uri
	case strings.HasPrefix(uri, "file://"):
		return KindFile, strings.TrimPrefix(uri, "file://")
	default:
		return KindFile, uri
	}
}

// Open abre la fuente indicada por uri.
func Open(uri string, opts Options) (*Handle, error) {
	kind, target := Detect(uri)
	if strings.TrimSpace(target) == "" {
		return nil, fmt.Errorf("empty dataset source %q", uri)
	}
	table := opts.Table
	if table == "" {
		table = "animal_outcomes"
	}

	switch kind {
	case KindPostgres:
		db, err := postgres.Open(target)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return &Handle{Kind: kind, Source: postgres.NewRecordSource(db, table), db: db}, nil
	case KindSQLite:
		db, err := sqlite.Open(target)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return &Handle{Kind: kind, Source: sqlite.NewRecordSource(db, table), db: db}, nil
	case KindHTTP:
		client := httpclient.New(opts.FetchTimeout)
		return &Handle{Kind: kind, Source: remote.NewSource(client, target)}, nil
	default:
		return &Handle{Kind: KindFile, Source: csvfile.NewSource(target)}, nil
	}
}
