package mason

import (
	"errors"
	"strings"
)

// ErrNoBricks is returned when `mason list` reports "(empty)".
var ErrNoBricks = errors.New("no bricks installed")

var treeGlyphs = map[string]bool{
	"├──": true,
	"└──": true,
	"│":   true,
	"-":   true,
}

// ParseList extracts brick names from `mason list` output. The first
// non-blank line is a header; each following row contributes its first
// token after any tree glyphs.
func ParseList(output string) ([]string, error) {
	var names []string
	headerSeen := false
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !headerSeen {
			headerSeen = true
			continue
		}

		fields := strings.Fields(line)
		for len(fields) > 0 && treeGlyphs[fields[0]] {
			fields = fields[1:]
		}
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "(empty)" {
			return nil, ErrNoBricks
		}
		names = append(names, fields[0])
	}
	return names, nil
}
