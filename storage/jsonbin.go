package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Dosada05/volei-torneio/models"
)

const DefaultJSONBinBaseURL = "https://api.jsonbin.io/v3"

type JSONBinConfig struct {
	BaseURL string
	BinID   string
	APIKey  string
	Timeout time.Duration
}

// JSONBinDocumentStore talks to a JSONBin.io v3 bin. The API has no
// conditional writes, so versions are not tracked and the last write wins.
type JSONBinDocumentStore struct {
	client  *http.Client
	baseURL string
	binID   string
	apiKey  string
}

func NewJSONBinDocumentStore(cfg JSONBinConfig) (*JSONBinDocumentStore, error) {
	if cfg.BinID == "" || cfg.APIKey == "" {
		return nil, errors.New("invalid JSONBin configuration: bin id and api key are required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultJSONBinBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &JSONBinDocumentStore{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		binID:   cfg.BinID,
		apiKey:  cfg.APIKey,
	}, nil
}

type jsonBinEnvelope struct {
	Record json.RawMessage `json:"record"`
}

func (s *JSONBinDocumentStore) Load(ctx context.Context) (*models.Database, Version, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/b/"+s.binID+"/latest", nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build JSONBin request: %w", err)
	}
	body, err := s.do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch document: %w", err)
	}

	var env jsonBinEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	doc, err := DecodeDocument(env.Record)
	if err != nil {
		return nil, "", err
	}
	return doc, "", nil
}

func (s *JSONBinDocumentStore) Save(ctx context.Context, doc *models.Database, _ Version) (Version, error) {
	data, err := EncodeDocument(doc)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.baseURL+"/b/"+s.binID, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to build JSONBin request: %w", err)
	}
	if _, err := s.do(req); err != nil {
		return "", fmt.Errorf("failed to update document: %w", err)
	}
	return "", nil
}

func (s *JSONBinDocumentStore) do(req *http.Request) ([]byte, error) {
	req.Header.Set("X-Master-Key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("jsonbin responded %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
