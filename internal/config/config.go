// Package config parses the command-line configuration for a single
// baksheesh CLI invocation: which operation to run, where the key and
// input data come from, and where results go.
package config

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
)

// ErrInvalidConfig is returned when the parsed flags don't describe a
// runnable operation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// CipherConfig holds one CLI invocation's resolved settings.
type CipherConfig struct {
	Operation string // "encrypt" or "decrypt"
	Key       []byte // always BlockBytes-length, checked by Validate
	InputPath string
	OutputPath string
	AuditDBPath string
}

// Parse parses args (typically os.Args[1:]) into a CipherConfig.
func Parse(args []string) (*CipherConfig, error) {
	fs := flag.NewFlagSet("baksheesh", flag.ContinueOnError)

	operation := fs.String("op", "", "operation to perform: encrypt or decrypt")
	keyHex := fs.String("key", "", "32-byte key, as 64 hex characters")
	keyFile := fs.String("key-file", "", "path to a file containing the raw 32-byte key")
	inputPath := fs.String("in", "", "input file path")
	outputPath := fs.String("out", "", "output file path")
	auditDB := fs.String("audit-db", "", "path to the SQLite operations ledger (optional)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &CipherConfig{
		Operation:   *operation,
		InputPath:   *inputPath,
		OutputPath:  *outputPath,
		AuditDBPath: *auditDB,
	}

	switch {
	case *keyHex != "" && *keyFile != "":
		return nil, fmt.Errorf("%w: -key and -key-file are mutually exclusive", ErrInvalidConfig)
	case *keyHex != "":
		key, err := hex.DecodeString(*keyHex)
		if err != nil {
			return nil, fmt.Errorf("%w: -key is not valid hex: %v", ErrInvalidConfig, err)
		}
		cfg.Key = key
	case *keyFile != "":
		key, err := os.ReadFile(*keyFile)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read -key-file: %v", ErrInvalidConfig, err)
		}
		cfg.Key = key
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg describes a runnable operation.
func (cfg *CipherConfig) Validate() error {
	if cfg.Operation != "encrypt" && cfg.Operation != "decrypt" {
		return fmt.Errorf("%w: -op must be \"encrypt\" or \"decrypt\", got %q", ErrInvalidConfig, cfg.Operation)
	}
	if len(cfg.Key) != 32 {
		return fmt.Errorf("%w: key must be exactly 32 bytes, got %d", ErrInvalidConfig, len(cfg.Key))
	}
	if cfg.InputPath == "" {
		return fmt.Errorf("%w: -in is required", ErrInvalidConfig)
	}
	if cfg.OutputPath == "" {
		return fmt.Errorf("%w: -out is required", ErrInvalidConfig)
	}
	return nil
}
