package audit

import (
	"path/filepath"
	"testing"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audit.db")
	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestRecordAndRecent(t *testing.T) {
	l := openTestLedger(t)

	rec := OperationRecord{
		Operation:      "encrypt",
		InputLen:       64,
		OutputLen:      64,
		TruncatedBytes: 0,
		CiphertextSHA3: Digest([]byte("ciphertext")),
	}

	id, err := l.Record(rec)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if id == 0 {
		t.Fatal("Record returned id 0")
	}

	recent, err := l.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("len(recent) = %d, want 1", len(recent))
	}
	if recent[0].Operation != "encrypt" {
		t.Fatalf("Operation = %q, want encrypt", recent[0].Operation)
	}
	if recent[0].CiphertextSHA3 != rec.CiphertextSHA3 {
		t.Fatal("stored digest does not match recorded digest")
	}
}

func TestRecentLimit(t *testing.T) {
	l := openTestLedger(t)

	for i := 0; i < 5; i++ {
		if _, err := l.Record(OperationRecord{
			Operation:      "decrypt",
			InputLen:       32,
			OutputLen:      32,
			CiphertextSHA3: Digest([]byte{byte(i)}),
		}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	recent, err := l.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len(recent) = %d, want 2", len(recent))
	}
}

func TestDigestIsDeterministic(t *testing.T) {
	a := Digest([]byte("same input"))
	b := Digest([]byte("same input"))
	if a != b {
		t.Fatal("Digest is not deterministic for identical input")
	}
	if a == Digest([]byte("different input")) {
		t.Fatal("Digest collided for different input")
	}
}
