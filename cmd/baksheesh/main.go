// Command baksheesh is the CLI entry point: it parses a CipherConfig,
// runs the requested ECB operation over a file, and optionally records
// the result in the audit ledger.
package main

import (
	"fmt"
	"os"

	"github.com/lirsty/baksheesh/internal/audit"
	"github.com/lirsty/baksheesh/internal/baksheesh"
	"github.com/lirsty/baksheesh/internal/cipherlog"
	"github.com/lirsty/baksheesh/internal/config"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "baksheesh: %v\n", err)
		os.Exit(1)
	}

	logger := cipherlog.New("cli")

	if err := run(cfg, logger); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func run(cfg *config.CipherConfig, logger *cipherlog.Logger) error {
	input, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cfg.InputPath, err)
	}

	ctx, err := baksheesh.New(cfg.Key)
	if err != nil {
		return fmt.Errorf("failed to initialize cipher: %w", err)
	}
	defer ctx.Close()

	var output []byte
	var outputLen int

	switch cfg.Operation {
	case "encrypt":
		output, outputLen, err = ctx.Encrypt(input)
	case "decrypt":
		output, outputLen, err = ctx.Decrypt(input)
	default:
		return fmt.Errorf("unsupported operation %q", cfg.Operation)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", cfg.Operation, err)
	}

	truncated := len(input) - outputLen
	if truncated > 0 {
		logger.Warn("input was not block-aligned, %d trailing byte(s) dropped", truncated)
	}

	if err := os.WriteFile(cfg.OutputPath, output, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.OutputPath, err)
	}
	logger.Info("%s complete: %d bytes in, %d bytes out", cfg.Operation, len(input), outputLen)

	if cfg.AuditDBPath != "" {
		ledger, err := audit.Open(cfg.AuditDBPath)
		if err != nil {
			return fmt.Errorf("failed to open audit ledger: %w", err)
		}
		defer ledger.Close()

		ciphertext := output
		if cfg.Operation == "decrypt" {
			ciphertext = input[:outputLen]
		}

		if _, err := ledger.Record(audit.OperationRecord{
			Operation:      cfg.Operation,
			InputLen:       len(input),
			OutputLen:      outputLen,
			TruncatedBytes: truncated,
			CiphertextSHA3: audit.Digest(ciphertext),
		}); err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}
		logger.Audit(cfg.Operation, cfg.OutputPath, "success")
	}

	return nil
}
