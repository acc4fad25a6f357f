// Package storage keeps parsed Datastream documents in a pebble database,
// keyed by time-ordered ksuids.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/barnettben/Datastream/pkg/datastream"
)

var (
	// ErrNotFound is returned when no document has the requested id
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned for ids that are not ksuids
	ErrInvalidID = errors.New("invalid document id")
)

var (
	docPrefix  = []byte("doc/")
	metaPrefix = []byte("meta/")
)

// Entry describes one archived document
type Entry struct {
	ID       string             `json:"id" yaml:"id"`
	Source   string             `json:"source" yaml:"source"`
	StoredAt time.Time          `json:"storedAt" yaml:"stored_at"`
	Summary  datastream.Summary `json:"summary" yaml:"summary"`
}

// Archive stores parsed documents. It is safe for concurrent use.
type Archive struct {
	db *pebble.DB
}

// Open opens or creates an archive in dir
func Open(dir string) (*Archive, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return &Archive{db: db}, nil
}

func key(prefix []byte, id ksuid.KSUID) []byte {
	return append(append([]byte{}, prefix...), id.Bytes()...)
}

// upperBound returns the first key after every key starting with prefix
func upperBound(prefix []byte) []byte {
	end := append([]byte{}, prefix...)
	end[len(end)-1]++
	return end
}

func parseID(id string) (ksuid.KSUID, error) {
	parsed, err := ksuid.Parse(id)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return parsed, nil
}

// Put stores doc under a new id. source names where the document came from.
func (a *Archive) Put(source string, doc *datastream.Document) (Entry, error) {
	return a.put(ksuid.New(), source, doc)
}

func (a *Archive) put(id ksuid.KSUID, source string, doc *datastream.Document) (Entry, error) {
	entry := Entry{
		ID:       id.String(),
		Source:   source,
		StoredAt: id.Time().UTC(),
		Summary:  doc.Summary(),
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to encode document: %w", err)
	}
	meta, err := json.Marshal(entry)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to encode entry: %w", err)
	}

	b := a.db.NewBatch()
	defer b.Close()
	if err := b.Set(key(docPrefix, id), data, nil); err != nil {
		return Entry{}, err
	}
	if err := b.Set(key(metaPrefix, id), meta, nil); err != nil {
		return Entry{}, err
	}
	if err := b.Commit(pebble.Sync); err != nil {
		return Entry{}, fmt.Errorf("failed to store document: %w", err)
	}
	return entry, nil
}

func (a *Archive) read(k []byte, v any) error {
	data, closer, err := a.db.Get(k)
	if errors.Is(err, pebble.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	defer closer.Close()

	return json.Unmarshal(data, v)
}

// Get returns the document stored under id
func (a *Archive) Get(id string) (*datastream.Document, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc datastream.Document
	if err := a.read(key(docPrefix, parsed), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Entry returns the listing entry for id
func (a *Archive) Entry(id string) (Entry, error) {
	parsed, err := parseID(id)
	if err != nil {
		return Entry{}, err
	}
	var entry Entry
	if err := a.read(key(metaPrefix, parsed), &entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// List returns every entry, newest first
func (a *Archive) List() ([]Entry, error) {
	iter, err := a.db.NewIter(&pebble.IterOptions{
		LowerBound: metaPrefix,
		UpperBound: upperBound(metaPrefix),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	entries := []Entry{}
	for iter.Last(); iter.Valid(); iter.Prev() {
		var entry Entry
		if err := json.Unmarshal(iter.Value(), &entry); err != nil {
			return nil, fmt.Errorf("failed to decode entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, iter.Error()
}

// Delete removes the document stored under id
func (a *Archive) Delete(id string) error {
	parsed, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := a.Entry(id); err != nil {
		return err
	}

	b := a.db.NewBatch()
	defer b.Close()
	if err := b.Delete(key(docPrefix, parsed), nil); err != nil {
		return err
	}
	if err := b.Delete(key(metaPrefix, parsed), nil); err != nil {
		return err
	}
	return b.Commit(pebble.Sync)
}

// Close closes the underlying database
func (a *Archive) Close() error {
	return a.db.Close()
}
