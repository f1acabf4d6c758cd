package bakstable

import "testing"

func TestSBoxInvolutionPair(t *testing.T) {
	for x := 0; x < 16; x++ {
		if got := InvSBox[SBox[x]]; int(got) != x {
			t.Fatalf("InvSBox[SBox[%d]] = %d, want %d", x, got, x)
		}
		if got := SBox[InvSBox[x]]; int(got) != x {
			t.Fatalf("SBox[InvSBox[%d]] = %d, want %d", x, got, x)
		}
	}
}

func TestSBoxIsBijection(t *testing.T) {
	seen := map[byte]bool{}
	for _, v := range SBox {
		if v > 15 {
			t.Fatalf("SBox entry %d out of nibble range", v)
		}
		if seen[v] {
			t.Fatalf("SBox is not injective: %d appears twice", v)
		}
		seen[v] = true
	}
}

func TestPBoxIsBijection(t *testing.T) {
	seen := make([]bool, 128)
	for i, dest := range PBox {
		if dest < 0 || dest >= 128 {
			t.Fatalf("PBox[%d] = %d out of range", i, dest)
		}
		if seen[dest] {
			t.Fatalf("PBox is not injective: position %d reached twice", dest)
		}
		seen[dest] = true
	}
}

func TestPBoxRoundTrip(t *testing.T) {
	for i := 0; i < 128; i++ {
		if got := InvPBox[PBox[i]]; got != i {
			t.Fatalf("InvPBox[PBox[%d]] = %d, want %d", i, got, i)
		}
	}
}

func TestRoundConstantsAreSixBitValues(t *testing.T) {
	if len(RoundConstants) != Rounds {
		t.Fatalf("expected %d round constants, got %d", Rounds, len(RoundConstants))
	}
	for r, rc := range RoundConstants {
		if rc > 63 {
			t.Fatalf("RC[%d] = %d exceeds 6-bit range", r, rc)
		}
	}
}
