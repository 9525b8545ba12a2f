package blob

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chirp/utils"
)

// Store is the opaque blob collaborator: uploads return a servable URL,
// deletion takes the identifier derived from that URL. Cleanup callers
// treat failures as best-effort.
type Store interface {
	Upload(ctx context.Context, data string) (string, error)
	Delete(ctx context.Context, assetID string) error
}

// AssetID derives the deletable identifier from a stored URL: the last
// path segment with its extension stripped.
func AssetID(url string) string {
	segment := url
	if idx := strings.LastIndex(segment, "/"); idx >= 0 {
		segment = segment[idx+1:]
	}
	return strings.TrimSuffix(segment, filepath.Ext(segment))
}

// LocalStore keeps post images on local disk under a static directory,
// served by the router's static file handler.
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: baseURL}
}

// Upload accepts a base64 payload (raw or data-URI) and writes it out
// under a generated name.
func (s *LocalStore) Upload(_ context.Context, data string) (string, error) {
	payload := data
	ext := ".jpg"
	if strings.HasPrefix(payload, "data:") {
		meta, rest, ok := strings.Cut(payload, ",")
		if !ok {
			return "", fmt.Errorf("malformed data URI")
		}
		if strings.Contains(meta, "image/png") {
			ext = ".png"
		}
		payload = rest
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode image payload: %w", err)
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", err
	}

	filename := utils.GenerateID() + ext
	if err := os.WriteFile(filepath.Join(s.Dir, filename), raw, 0644); err != nil {
		return "", err
	}

	return s.BaseURL + "/" + filename, nil
}

// Delete removes the blob backing assetID, whatever extension it was
// stored with.
func (s *LocalStore) Delete(_ context.Context, assetID string) error {
	matches, err := filepath.Glob(filepath.Join(s.Dir, assetID+".*"))
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return fmt.Errorf("asset %s not found", assetID)
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return err
		}
	}
	return nil
}
