package blob

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAssetID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"/static/postpic/abc123.jpg", "abc123"},
		{"https://cdn.example.com/v1/upload/xyz789.png", "xyz789"},
		{"abc123.jpg", "abc123"},
		{"/static/postpic/noext", "noext"},
	}
	for _, c := range cases {
		if got := AssetID(c.url); got != c.want {
			t.Errorf("AssetID(%q) = %q, want %q", c.url, got, c.want)
		}
	}
}

func TestLocalStoreUploadDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/static/postpic")
	ctx := context.Background()

	payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))
	url, err := store.Upload(ctx, payload)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !strings.HasPrefix(url, "/static/postpic/") {
		t.Fatalf("unexpected URL %q", url)
	}

	assetID := AssetID(url)
	matches, _ := filepath.Glob(filepath.Join(dir, assetID+".*"))
	if len(matches) != 1 {
		t.Fatalf("expected one stored file for %s, got %v", assetID, matches)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil || string(data) != "fake image bytes" {
		t.Fatalf("stored bytes wrong: %v %q", err, data)
	}

	if err := store.Delete(ctx, assetID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	matches, _ = filepath.Glob(filepath.Join(dir, assetID+".*"))
	if len(matches) != 0 {
		t.Errorf("blob still present after delete: %v", matches)
	}

	if err := store.Delete(ctx, assetID); err == nil {
		t.Error("expected error deleting missing asset")
	}
}

func TestLocalStoreUploadDataURI(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/static/postpic")

	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png bytes"))
	url, err := store.Upload(context.Background(), payload)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Errorf("expected .png URL for png data URI, got %q", url)
	}
}
