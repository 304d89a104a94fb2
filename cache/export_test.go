package cache

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-redis/redismock/v9"
)

func TestExport(t *testing.T) {
	c := NewMemoryCache(3600, 0)
	c.Set("key1", "value1")
	c.Set("key2", "value2")

	var buf bytes.Buffer
	if err := Export(c, &buf, map[string]string{"pair": "english:hindi"}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var export ExportFormat
	if err := json.Unmarshal(buf.Bytes(), &export); err != nil {
		t.Fatalf("failed to parse export: %v", err)
	}

	if export.Version != "1.0" {
		t.Errorf("version = %s, want 1.0", export.Version)
	}
	if len(export.Entries) != 2 {
		t.Errorf("entries = %d, want 2", len(export.Entries))
	}
	if export.Metadata["pair"] != "english:hindi" {
		t.Errorf("metadata = %v", export.Metadata)
	}
}

func TestExportUnsupportedCache(t *testing.T) {
	db, _ := redismock.NewClientMock()
	defer db.Close()

	c := NewRedisCacheFromClient(db, 0, "")
	var buf bytes.Buffer
	if err := Export(c, &buf, nil); err == nil {
		t.Error("redis cache must not support export")
	}
}

func TestImport(t *testing.T) {
	jsonData := `{
		"version": "1.0",
		"exported_at": "2026-01-01T00:00:00Z",
		"entries": [
			{"key": "key1", "value": "value1"},
			{"key": "key2", "value": "value2"}
		],
		"metadata": {"pair": "english:hindi"}
	}`

	c := NewMemoryCache(3600, 0)
	result, err := Import(c, strings.NewReader(jsonData))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if result.Imported != 2 || result.Failed != 0 {
		t.Errorf("imported %d, failed %d", result.Imported, result.Failed)
	}
	if val, ok := c.Get("key1"); !ok || val != "value1" {
		t.Errorf("key1 missing or wrong: %q", val)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := NewMemoryCache(3600, 0)
	src.Set("english:hindi:hash1", `{"text":"नमस्ते"}`)
	src.Set("english:hindi:hash2", `{"text":"धन्यवाद"}`)

	var buf bytes.Buffer
	if err := Export(src, &buf, nil); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	dst := NewMemoryCache(3600, 0)
	result, err := Import(dst, &buf)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("imported = %d, want 2", result.Imported)
	}
	if val, ok := dst.Get("english:hindi:hash1"); !ok || val != `{"text":"नमस्ते"}` {
		t.Errorf("round trip lost entry: %q", val)
	}
}

func TestExportEmptyCache(t *testing.T) {
	c := NewMemoryCache(3600, 0)

	var buf bytes.Buffer
	if err := Export(c, &buf, nil); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var export ExportFormat
	json.Unmarshal(buf.Bytes(), &export)
	if len(export.Entries) != 0 {
		t.Errorf("entries = %d, want 0", len(export.Entries))
	}
}

func TestImportInvalidJSON(t *testing.T) {
	c := NewMemoryCache(3600, 0)
	if _, err := Import(c, strings.NewReader("invalid json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
