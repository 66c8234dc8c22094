// core/motif/rc.go
package motif

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	pairs := []struct{ a, b byte }{
		{'A', 'T'}, {'C', 'G'}, {'U', 'A'},
		{'R', 'Y'}, // A/G  <->  C/T
		{'S', 'S'}, {'W', 'W'},
		{'K', 'M'},
		{'B', 'V'},
		{'D', 'H'},
		{'N', 'N'},
	}
	for _, p := range pairs {
		complement[p.a] = p.b
		complement[p.a|0x20] = p.b | 0x20
		if p.a != 'U' {
			complement[p.b] = p.a
			complement[p.b|0x20] = p.a | 0x20
		}
	}
}

// Complement returns the Watson-Crick partner of b. IUPAC ambiguity codes map
// to their complementary code, case is preserved, and any other byte is
// returned unchanged.
func Complement(b byte) byte { return complement[b] }

// RevComp returns the reverse complement of seq.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}
