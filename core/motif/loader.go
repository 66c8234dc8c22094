// core/motif/loader.go
package motif

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadTSV reads "group motif [motif...]" lines. Groups keep the order in which
// their name first appears; '#' starts a comment line.
func LoadTSV(path string) ([]Group, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var (
		list  []Group
		index = map[string]int{}
	)
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			return nil, fmt.Errorf("%s:%d bad field count", path, ln)
		}
		i, ok := index[f[0]]
		if !ok {
			i = len(list)
			index[f[0]] = i
			list = append(list, Group{Name: f[0]})
		}
		list[i].Motifs = append(list[i].Motifs, f[1:]...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
