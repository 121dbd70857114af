// Package vault keeps a local catalog of where secrets were embedded, so
// they can be listed again later without re-scanning every file. The catalog
// is advisory; the codec and container never depend on it.
package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// ErrEntryNotFound is returned when a lookup matches no catalog entry.
var ErrEntryNotFound = errors.New("vault entry not found")

// Entry records one embedded secret.
type Entry struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	ChunkType string    `json:"chunk_type"`
	Length    int       `json:"length"`
	CreatedAt time.Time `json:"created_at"`
}

// Vault is a pebble-backed catalog. Keys are ksuid bytes, so iteration
// order is creation order.
type Vault struct {
	db *pebble.DB
}

// Open opens (or creates) the catalog under dir.
func Open(dir string) (*Vault, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("opening vault at %q: %w", dir, err)
	}
	return &Vault{db: db}, nil
}

// Record stores a new entry for a secret embedded in file under chunkType.
func (v *Vault) Record(file, chunkType string, length int) (Entry, error) {
	id := ksuid.New()
	entry := Entry{
		ID:        id.String(),
		File:      file,
		ChunkType: chunkType,
		Length:    length,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return Entry{}, err
	}
	if err := v.db.Set(id.Bytes(), data, pebble.Sync); err != nil {
		return Entry{}, fmt.Errorf("recording vault entry: %w", err)
	}

	return entry, nil
}

// Get returns the entry with the given ksuid string.
func (v *Vault) Get(id string) (Entry, error) {
	kid, err := ksuid.Parse(id)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: bad id %q", ErrEntryNotFound, id)
	}

	data, closer, err := v.db.Get(kid.Bytes())
	if err == pebble.ErrNotFound {
		return Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	if err != nil {
		return Entry{}, err
	}
	defer closer.Close()

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, fmt.Errorf("decoding vault entry %s: %w", id, err)
	}
	return entry, nil
}

// List returns all entries in creation order.
func (v *Vault) List() ([]Entry, error) {
	iter, err := v.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var entries []Entry
	for iter.First(); iter.Valid(); iter.Next() {
		var entry Entry
		if err := json.Unmarshal(iter.Value(), &entry); err != nil {
			return nil, fmt.Errorf("decoding vault entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Forget deletes the first entry matching file and chunkType, mirroring the
// container's remove-first-match semantics.
func (v *Vault) Forget(file, chunkType string) error {
	iter, err := v.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		var entry Entry
		if err := json.Unmarshal(iter.Value(), &entry); err != nil {
			return fmt.Errorf("decoding vault entry: %w", err)
		}
		if entry.File == file && entry.ChunkType == chunkType {
			key := append([]byte{}, iter.Key()...)
			return v.db.Delete(key, pebble.Sync)
		}
	}
	if err := iter.Error(); err != nil {
		return err
	}

	return fmt.Errorf("%w: %s in %q", ErrEntryNotFound, chunkType, file)
}

// Close closes the underlying database.
func (v *Vault) Close() error {
	return v.db.Close()
}
