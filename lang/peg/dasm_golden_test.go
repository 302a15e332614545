package peg

import (
	"testing"

	"github.com/mna/pegc/internal/filetest"
)

var updateDasmGolden = false

// TestDasmGolden disassembles the hand-built worked-example patterns and
// diffs the result against the golden .want files in testdata/dasm, the
// same file-per-case/golden-file layout the host language's own scanner
// and parser tests use.
func TestDasmGolden(t *testing.T) {
	dir := "testdata/dasm"
	fis := filetest.SourceFiles(t, dir, ".in")
	for _, fi := range fis {
		fi := fi
		t.Run(fi.Name(), func(t *testing.T) {
			p, err := goldenPattern(fi.Name())
			if err != nil {
				t.Fatal(err)
			}
			filetest.DiffOutput(t, fi, ToString(p, nil), dir, &updateDasmGolden)
		})
	}
}

func goldenPattern(name string) (Pattern, error) {
	switch name {
	case "scenario3.in":
		return Optional(Str("a"))
	case "scenario4.in":
		var cs CharSet
		cs.AddRange('a', 'z')
		return Star(Set(cs))
	case "scenario8.in":
		return Diff(Str("y"), Str("x"))
	default:
		return nil, nil
	}
}
