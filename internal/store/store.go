// Package store implements the file-backed datastore: the entire
// application state lives in a single JSON document that is read and
// rewritten whole on every operation.  A FileStore serializes all access
// through one mutex, so within a single process a load-mutate-save cycle
// can never lose another request's write.  Running two processes against
// the same file still ends in last-write-wins; that limitation is
// documented in the tests rather than papered over.
package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/carmate/carmate/internal/model"
)

// FileStore reads and writes the whole marketplace document at a fixed
// path.  It also hands out record identifiers: an atomic counter seeded
// from wall-clock milliseconds, so IDs remain time-ordered across restarts
// without the collision risk of raw timestamps.
type FileStore struct {
	mu     sync.Mutex // serializes every load/save pair
	path   string
	lastID atomic.Int64
}

// NewFileStore creates a store backed by the file at path.  The file is
// not created eagerly; a missing file simply reads as the empty document.
func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path}
	s.lastID.Store(time.Now().UnixMilli())
	return s
}

// NextID returns a fresh record identifier.
func (s *FileStore) NextID() int64 {
	return s.lastID.Add(1)
}

// Load reads and decodes the backing file.  It never fails: a missing or
// unparsable file is logged and replaced by the empty document, so a
// corrupt store degrades to an empty marketplace instead of a crash.
func (s *FileStore) Load() model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Save encodes the document and replaces the backing file.  Unlike Load,
// write errors are surfaced to the caller so a handler can report that a
// mutation did not persist.
func (s *FileStore) Save(doc model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

// Update runs fn against the current document and persists the result,
// all under one mutex hold.  If fn returns an error the document is not
// written and the error is passed through.  Every repository mutation
// goes through here; this is the single-writer discipline that replaces
// the original design's unlocked read-modify-write.
func (s *FileStore) Update(fn func(*model.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.read()
	if err := fn(&doc); err != nil {
		return err
	}
	return s.write(doc)
}

// read decodes the file without locking; callers hold s.mu.
func (s *FileStore) read() model.Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: read %s: %v", s.path, err)
		}
		return model.EmptyDocument()
	}
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("store: decode %s: %v", s.path, err)
		return model.EmptyDocument()
	}
	if doc.Cars == nil {
		doc.Cars = []model.Car{}
	}
	if doc.Rentals == nil {
		doc.Rentals = []model.Rental{}
	}
	// Documents edited by hand may omit a car's reviews key entirely;
	// the reviews list is defined to always be present.
	for i := range doc.Cars {
		if doc.Cars[i].Reviews == nil {
			doc.Cars[i].Reviews = []model.Review{}
		}
	}
	return doc
}

// write encodes doc to a temp file in the same directory and renames it
// over the target, so an interrupted write can never leave a truncated
// document behind.  Callers hold s.mu.
func (s *FileStore) write(doc model.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".carmate-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
