// Package database is the persistence core: it owns the connection pool,
// provisions and migrates the schema, and exposes the repository operations
// used by the rest of the application.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// BackendKind identifies which engine the pool talks to. The choice is made
// once when the DataSource is opened and never changes for the rest of the
// process lifetime.
type BackendKind int

const (
	BackendPostgres BackendKind = iota
	BackendSQLite
)

func (k BackendKind) String() string {
	if k == BackendPostgres {
		return "postgres"
	}
	return "sqlite"
}

// Connection targets are compiled in; backend selection is not a runtime
// concern of this core.
const (
	primaryDSN = "host=localhost port=5432 user=school password=school dbname=school sslmode=disable connect_timeout=5"

	fallbackPath    = "data/school.db"
	fallbackOptions = "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	maxPoolSize = 10
)

// ErrBackendUnavailable means neither the primary nor the fallback store
// could be opened. Startup cannot continue past it.
var ErrBackendUnavailable = errors.New("no database backend available")

// DataSource owns the pooled connections to the single active backend.
// Acquire/release is the pool's own behaviour: each operation borrows a
// connection for its duration and returns it on every exit path.
type DataSource struct {
	db      *sql.DB
	backend BackendKind

	closeOnce sync.Once
}

// Open probes the primary PostgreSQL backend once and, if it is unreachable
// for any reason, falls back to the embedded SQLite store. There is no
// re-probing later: the decision holds until Shutdown.
func Open() (*DataSource, error) {
	db, err := sql.Open("postgres", primaryDSN)
	if err == nil {
		err = db.Ping()
	}
	if err == nil {
		configurePool(db)
		log.Println("Connected to primary PostgreSQL backend")
		return &DataSource{db: db, backend: BackendPostgres}, nil
	}
	if db != nil {
		db.Close()
	}
	log.Printf("Primary backend unreachable, falling back to SQLite: %v", err)

	ds, err := OpenSQLite(fallbackPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	log.Printf("Using embedded SQLite database at %s", fallbackPath)
	return ds, nil
}

// OpenSQLite opens the embedded store at path directly, bypassing the
// primary probe. The cross-backend migrator and auxiliary tooling use it to
// reach the fallback file regardless of which backend is active.
func OpenSQLite(path string) (*DataSource, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite3", path+fallbackOptions)
	if err == nil {
		err = db.Ping()
	}
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, err
	}
	configurePool(db)
	return &DataSource{db: db, backend: BackendSQLite}, nil
}

func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(maxPoolSize)
	db.SetMaxIdleConns(maxPoolSize)
}

// Pool exposes the underlying pool for callers that issue their own
// statements, such as the cross-backend migrator's source handle.
func (ds *DataSource) Pool() *sql.DB {
	return ds.db
}

// Backend reports which engine is active.
func (ds *DataSource) Backend() BackendKind {
	return ds.backend
}

// UsingPrimary reports whether the primary PostgreSQL backend is active.
func (ds *DataSource) UsingPrimary() bool {
	return ds.backend == BackendPostgres
}

// Shutdown closes the pool. It is safe to call more than once; after the
// first call every further operation on the DataSource fails.
func (ds *DataSource) Shutdown() {
	ds.closeOnce.Do(func() {
		if err := ds.db.Close(); err != nil {
			log.Printf("Error closing connection pool: %v", err)
		}
	})
}

// Rebind rewrites a query written with ? placeholders into the placeholder
// style of the active backend. SQLite takes ? as is; PostgreSQL needs $1..$n.
func (ds *DataSource) Rebind(query string) string {
	if ds.backend != BackendPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
