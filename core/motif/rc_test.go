// core/motif/rc_test.go
package motif

import (
	"bytes"
	"testing"
)

func TestRevCompSimple(t *testing.T) {
	got := RevComp([]byte("AGTC"))
	want := []byte("GACT")
	if !bytes.Equal(got, want) {
		t.Errorf("RevComp(AGTC) = %s, want %s", got, want)
	}
}

func TestRevCompPreservesCase(t *testing.T) {
	got := RevComp([]byte("AAGcTaG"))
	want := []byte("CtAgCTT")
	if !bytes.Equal(got, want) {
		t.Errorf("RevComp(AAGcTaG) = %s, want %s", got, want)
	}
}

func TestRevCompAmbiguous(t *testing.T) {
	in := []byte("RYSWKMBDHVN")
	want := []byte("NBDHVKMWSRY")
	got := RevComp(in)
	if !bytes.Equal(got, want) {
		t.Errorf("RevComp(%s) = %s, want %s", in, got, want)
	}
}

func TestRevCompUnknownPassThrough(t *testing.T) {
	got := RevComp([]byte("A-.xT"))
	want := []byte("Ax.-T")
	if !bytes.Equal(got, want) {
		t.Errorf("RevComp(A-.xT) = %s, want %s", got, want)
	}
}

func TestRevCompUracil(t *testing.T) {
	if got := RevComp([]byte("UUu")); string(got) != "aAA" {
		t.Errorf("RevComp(UUu) = %s, want aAA", got)
	}
}

func TestRevCompInvolution(t *testing.T) {
	for _, s := range []string{"ACGT", "acgtn", "RYSWKMBDHVN", "AAGAGAGACTATCGTGCCTaG", "x-y"} {
		if got := RevComp(RevComp([]byte(s))); string(got) != s {
			t.Errorf("RevComp(RevComp(%q)) = %q", s, got)
		}
	}
}

func TestRevCompEmpty(t *testing.T) {
	if RevComp(nil) != nil {
		t.Errorf("RevComp(nil) should return nil")
	}
	if out := RevComp([]byte("")); len(out) != 0 {
		t.Errorf("RevComp(\"\") length = %d, want 0", len(out))
	}
}
