// Package dimacs reads the DIMACS CNF text format into a clause database,
// grounded on the teacher's own hand-rolled scanner loop
// (rhartert/yass's internal/dimacs/dimacs.go), but permissive about variable
// names the way spec.md §4.4 requires: a token is a variable name, not
// necessarily a decimal integer.
package dimacs

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/tshepard/cogito/internal/cdcl"
)

// Parse tokenizes r as DIMACS CNF and returns a Builder populated with every
// variable and clause it found. Comment lines ('c'), the problem line
// ('p'), and blank lines are ignored; everything else is whitespace-
// separated tokens, with "0" terminating the clause under construction.
// Clauses may span multiple lines, and a missing trailing terminator is
// tolerated: whatever was accumulated becomes the final clause.
func Parse(r io.Reader) (*cdcl.Builder, error) {
	b := cdcl.NewBuilder()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var current []cdcl.Literal
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == 'c' || line[0] == 'p' {
			continue
		}

		for _, tok := range strings.Fields(line) {
			if tok == "0" {
				if len(current) > 0 {
					b.AddClause(current...)
					current = nil
				}
				continue
			}
			if strings.HasPrefix(tok, "-") {
				current = append(current, b.Neg(tok[1:]))
			} else {
				current = append(current, b.Pos(tok))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Tolerate a missing trailing terminator (spec.md §4.4).
	if len(current) > 0 {
		b.AddClause(current...)
	}

	return b, nil
}

// ParseFile opens path and parses it as DIMACS CNF.
func ParseFile(path string) (*cdcl.Builder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
