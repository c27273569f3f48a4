package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var testROM = []byte{0x00, 0xC3, 0x50, 0x01, 0xCE, 0xED, 0x66, 0x66}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	w.Write(testROM)
	w.Close()

	var zipped bytes.Buffer
	zw := zip.NewWriter(&zipped)
	f, err := zw.Create("test.gb")
	if err != nil {
		t.Fatal(err)
	}
	f.Write(testROM)
	zw.Close()

	tests := []struct {
		name string
		data []byte
	}{
		{"test.gb", testROM},
		{"test.gbc", testROM},
		{"test", testROM},
		{"test.gb.gz", gz.Bytes()},
		{"test.ZIP", zipped.Bytes()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadFile(writeFile(t, tt.name, tt.data))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, testROM) {
				t.Errorf("expected % X, got % X", testROM, got)
			}
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.gb")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}

	var empty bytes.Buffer
	zip.NewWriter(&empty).Close()
	if _, err := LoadFile(writeFile(t, "empty.zip", empty.Bytes())); !errors.Is(err, ErrEmptyArchive) {
		t.Errorf("expected ErrEmptyArchive, got %v", err)
	}

	for _, name := range []string{"corrupt.gz", "corrupt.zip", "corrupt.7z"} {
		if _, err := LoadFile(writeFile(t, name, testROM)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}
