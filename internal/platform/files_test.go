package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetAppDataDir(t *testing.T) {
	dir, err := GetAppDataDir()
	if err != nil {
		t.Fatalf("GetAppDataDir failed: %v", err)
	}
	if !strings.HasSuffix(dir, AppDataDirName) {
		t.Errorf("Expected data dir to end with %s, got %s", AppDataDirName, dir)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("CreateDirectoryIfNotExists failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Created path should be a directory")
	}

	// Calling again on an existing directory should not fail
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("CreateDirectoryIfNotExists on existing dir failed: %v", err)
	}
}

func TestOpenInBrowser_RejectsBadInput(t *testing.T) {
	if err := OpenInBrowser(""); err == nil {
		t.Error("Expected error for empty URL")
	}
	if err := OpenInBrowser("   "); err == nil {
		t.Error("Expected error for blank URL")
	}
	if err := OpenInBrowser("example.com"); err == nil {
		t.Error("Expected error for URL without scheme")
	}
	if err := OpenInBrowser("ftp://example.com"); err == nil {
		t.Error("Expected error for non-http scheme")
	}
}
