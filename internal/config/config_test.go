package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseWithHexKey(t *testing.T) {
	keyHex := strings.Repeat("ab", 32)
	cfg, err := Parse([]string{
		"-op", "encrypt",
		"-key", keyHex,
		"-in", "plaintext.bin",
		"-out", "ciphertext.bin",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.Key) != 32 {
		t.Fatalf("len(Key) = %d, want 32", len(cfg.Key))
	}
	if cfg.Operation != "encrypt" {
		t.Fatalf("Operation = %q, want encrypt", cfg.Operation)
	}
}

func TestParseWithKeyFile(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "key.bin")
	if err := os.WriteFile(keyPath, make([]byte, 32), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Parse([]string{
		"-op", "decrypt",
		"-key-file", keyPath,
		"-in", "in.bin",
		"-out", "out.bin",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.Key) != 32 {
		t.Fatalf("len(Key) = %d, want 32", len(cfg.Key))
	}
}

func TestParseRejectsBothKeySources(t *testing.T) {
	_, err := Parse([]string{
		"-op", "encrypt",
		"-key", strings.Repeat("00", 32),
		"-key-file", "/tmp/whatever",
		"-in", "in.bin",
		"-out", "out.bin",
	})
	if err == nil {
		t.Fatal("Parse accepted both -key and -key-file")
	}
}

func TestParseRejectsBadOperation(t *testing.T) {
	_, err := Parse([]string{
		"-op", "scramble",
		"-key", strings.Repeat("00", 32),
		"-in", "in.bin",
		"-out", "out.bin",
	})
	if err == nil {
		t.Fatal("Parse accepted an unknown operation")
	}
}

func TestParseRejectsWrongKeyLength(t *testing.T) {
	_, err := Parse([]string{
		"-op", "encrypt",
		"-key", "ab",
		"-in", "in.bin",
		"-out", "out.bin",
	})
	if err == nil {
		t.Fatal("Parse accepted a short key")
	}
}

func TestParseRequiresInputAndOutput(t *testing.T) {
	_, err := Parse([]string{
		"-op", "encrypt",
		"-key", strings.Repeat("00", 32),
	})
	if err == nil {
		t.Fatal("Parse accepted a config missing -in/-out")
	}
}
