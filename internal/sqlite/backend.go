// Package sqlite implements the SQLite storage backend for Icebox.
// SQLite acts as the query engine; the per-collection JSONL files in the
// data directory are the durable source of truth and are reloaded on
// every attach.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/frostkeep/icebox/pkg/types"
)

// dbFileName is the SQLite cache file inside the data directory.
const dbFileName = "icebox.db"

// Backend implements types.Icebox using SQLite as the query engine and
// JSONL files as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	dataDir  string
	db       *sql.DB
	tables   map[string]types.Table
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		tables: make(map[string]types.Table),
	}
}

// GetTable returns a Table interface for the specified table name.
// Returns ErrTableNotFound if the table name is not recognized.
// Returns ErrIceboxDetached if the backend is not attached.
func (b *Backend) GetTable(name string) (types.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrIceboxDetached
	}

	table, ok := b.tables[name]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	return table, nil
}

// Attach initializes the backend with the given configuration. Creates
// the data directory if needed, rebuilds the SQLite cache, creates any
// missing collection files (additive schema evolution), loads the JSONL
// collections, and seeds the default categories when the categories
// collection is initialized for the first time.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// The db file is a rebuildable cache; start fresh each attach.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.dataDir = dataDir

	created, err := b.ensureCollectionFiles()
	if err != nil {
		db.Close()
		return err
	}

	if err := b.loadAllCollections(); err != nil {
		db.Close()
		return fmt.Errorf("load collections: %w", err)
	}

	if created[categoriesFile] {
		if err := seedDefaultCategories(db, dataDir); err != nil {
			db.Close()
			return fmt.Errorf("seed categories: %w", err)
		}
	}

	b.attached = true

	b.tables[types.TableFoodItems] = &foodItemsTable{backend: b}
	b.tables[types.TableCategories] = &categoriesTable{backend: b}
	b.tables[types.TableRecipes] = &recipesTable{backend: b}

	return nil
}

// Detach releases all resources held by the backend. Closes the SQLite
// connection. After Detach, all operations return ErrIceboxDetached.
// Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.tables = make(map[string]types.Table)

	return nil
}

// ensureAttachedLocked reports ErrIceboxDetached when the backend is not
// attached. Callers must hold b.mu.
func (b *Backend) ensureAttachedLocked() error {
	if !b.attached {
		return types.ErrIceboxDetached
	}
	return nil
}

// newUUID generates a UUID v7 string for entity IDs.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}
