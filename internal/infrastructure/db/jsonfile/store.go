// Package jsonfile persists each named table as a single JSON document on
// disk: an array of records, read and replaced whole. There is no caching
// between operations and no partial update primitive; every mutation is
// expressed as read table, compute new table, write table.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// ErrCorrupt reports that a table's backing document exists but is not valid
// JSON. It aborts the calling operation; there is no repair path.
var ErrCorrupt = errors.New("corrupt table document")

// Store is a whole-document table store rooted at a directory. A missing
// backing file is an empty table, not an error.
//
// Each table has its own mutex serializing individual Read and Write calls,
// so concurrent writes cannot tear a file. A read-modify-write sequence is
// still NOT isolated: two concurrent sequences on the same table can race and
// the later write discards the earlier one's effect. The purchase transaction
// carries its own advisory lock for exactly this reason.
type Store struct {
	dir string
	log zerolog.Logger

	mu     sync.Mutex
	tables map[string]*sync.Mutex
}

func NewStore(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{
		dir:    dir,
		log:    log,
		tables: make(map[string]*sync.Mutex),
	}, nil
}

// Read unmarshals the table document into out, which must be a pointer to a
// slice. out is left untouched when the document is missing or empty.
func (s *Store) Read(ctx context.Context, table string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock := s.tableLock(table)
	lock.Lock()
	defer lock.Unlock()

	data, err := os.ReadFile(s.path(table))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read table %s: %w", table, err)
	}
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		s.log.Error().Err(err).Str("table", table).Msg("table document is not valid JSON")
		return fmt.Errorf("table %s: %w", table, ErrCorrupt)
	}
	return nil
}

// Write replaces the table document with records, marshalled as an indented
// JSON array. The previous contents are discarded entirely.
func (s *Store) Write(ctx context.Context, table string, records any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal table %s: %w", table, err)
	}

	lock := s.tableLock(table)
	lock.Lock()
	defer lock.Unlock()

	if err := os.WriteFile(s.path(table), data, 0o644); err != nil {
		return fmt.Errorf("write table %s: %w", table, err)
	}
	return nil
}

func (s *Store) path(table string) string {
	return filepath.Join(s.dir, table+".json")
}

func (s *Store) tableLock(table string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.tables[table]
	if !ok {
		lock = &sync.Mutex{}
		s.tables[table] = lock
	}
	return lock
}
