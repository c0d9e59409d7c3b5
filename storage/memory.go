package storage

import (
	"context"
	"strconv"
	"sync"

	"github.com/Dosada05/volei-torneio/models"
)

// MemoryDocumentStore keeps the document encoded in memory. It is used for
// local runs and tests and honours versions like the remote backends.
type MemoryDocumentStore struct {
	mu       sync.Mutex
	data     []byte
	revision int
}

func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{}
}

func (s *MemoryDocumentStore) Load(_ context.Context) (*models.Database, Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := DecodeDocument(s.data)
	if err != nil {
		return nil, "", err
	}
	return doc, s.version(), nil
}

func (s *MemoryDocumentStore) Save(_ context.Context, doc *models.Database, expected Version) (Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if expected != s.version() {
		return "", ErrVersionConflict
	}
	data, err := EncodeDocument(doc)
	if err != nil {
		return "", err
	}
	s.data = data
	s.revision++
	return s.version(), nil
}

func (s *MemoryDocumentStore) version() Version {
	if s.revision == 0 {
		return ""
	}
	return Version(strconv.Itoa(s.revision))
}
