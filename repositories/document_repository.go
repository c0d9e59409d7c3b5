package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/Dosada05/volei-torneio/models"
	"github.com/Dosada05/volei-torneio/storage"
)

const documentSchema = `
	CREATE TABLE IF NOT EXISTS tournament_documents (
		id         TEXT PRIMARY KEY,
		body       JSONB NOT NULL,
		version    BIGINT NOT NULL DEFAULT 1,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

// PostgresDocumentRepository stores the tournament document as one jsonb row.
// The version column backs optimistic concurrency.
type PostgresDocumentRepository struct {
	db         SQLExecutor
	documentID string
}

func NewPostgresDocumentRepository(db SQLExecutor, documentID string) *PostgresDocumentRepository {
	return &PostgresDocumentRepository{db: db, documentID: documentID}
}

// EnsureSchema creates the documents table when it is missing.
func (r *PostgresDocumentRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, documentSchema); err != nil {
		return fmt.Errorf("failed to create tournament_documents table: %w", err)
	}
	return nil
}

func (r *PostgresDocumentRepository) Load(ctx context.Context) (*models.Database, storage.Version, error) {
	query := `SELECT body, version FROM tournament_documents WHERE id = $1`

	var body []byte
	var version int64
	err := r.db.QueryRowContext(ctx, query, r.documentID).Scan(&body, &version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NewDatabase(), "", nil
		}
		return nil, "", fmt.Errorf("failed to load document %q: %w", r.documentID, err)
	}

	doc, err := storage.DecodeDocument(body)
	if err != nil {
		return nil, "", err
	}
	return doc, storage.Version(strconv.FormatInt(version, 10)), nil
}

func (r *PostgresDocumentRepository) Save(ctx context.Context, doc *models.Database, expected storage.Version) (storage.Version, error) {
	body, err := storage.EncodeDocument(doc)
	if err != nil {
		return "", err
	}

	if expected == "" {
		return r.insert(ctx, r.db, body)
	}

	current, err := strconv.ParseInt(string(expected), 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid document version %q: %w", expected, err)
	}

	query := `
		UPDATE tournament_documents
		SET body = $2, version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $3`
	result, err := r.db.ExecContext(ctx, query, r.documentID, body, current)
	if err != nil {
		return "", fmt.Errorf("failed to update document %q: %w", r.documentID, err)
	}
	if err := checkAffectedRows(result, storage.ErrVersionConflict); err != nil {
		return "", err
	}
	return storage.Version(strconv.FormatInt(current+1, 10)), nil
}

func (r *PostgresDocumentRepository) insert(ctx context.Context, exec SQLExecutor, body []byte) (storage.Version, error) {
	query := `
		INSERT INTO tournament_documents (id, body, version)
		VALUES ($1, $2, 1)
		ON CONFLICT (id) DO NOTHING`
	result, err := exec.ExecContext(ctx, query, r.documentID, body)
	if err != nil {
		return "", fmt.Errorf("failed to insert document %q: %w", r.documentID, err)
	}
	// Строка уже есть: кто-то создал документ раньше нас.
	if err := checkAffectedRows(result, storage.ErrVersionConflict); err != nil {
		return "", err
	}
	return storage.Version("1"), nil
}
