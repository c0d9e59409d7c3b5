package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Dosada05/volei-torneio/models"
)

var (
	// ErrVersionConflict means the document changed since it was loaded.
	ErrVersionConflict = errors.New("document was modified concurrently")
	ErrInvalidDocument = errors.New("stored document is not valid JSON")
)

// Version is an opaque token identifying one revision of the document. An
// empty Version means the document does not exist yet.
type Version string

// DocumentStore loads and replaces the whole tournament document. There are no
// partial updates.
type DocumentStore interface {
	Load(ctx context.Context) (*models.Database, Version, error)
	// Save replaces the document if it is still at expected. Backends without
	// version support ignore expected and the last write wins.
	Save(ctx context.Context, doc *models.Database, expected Version) (Version, error)
}

// DecodeDocument parses a stored document. Empty input yields an empty document.
func DecodeDocument(data []byte) (*models.Database, error) {
	doc := models.NewDatabase()
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	doc.Normalize()
	return doc, nil
}

// EncodeDocument serialises the document for a backend.
func EncodeDocument(doc *models.Database) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}
