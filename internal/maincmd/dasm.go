package maincmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/pegc/lang/peg"
)

// Dasm reads a textual pattern-assembly fixture (see peg.Asm for the
// format) from args[0], or from stdio.Stdin if no file is given, and
// prints its disassembly to stdio.Stdout.
func (c *Cmd) Dasm(ctx context.Context, stdio mainer.Stdio, args []string) error {
	var (
		src []byte
		err error
	)
	if len(args) > 0 {
		src, err = os.ReadFile(args[0])
	} else {
		src, err = io.ReadAll(stdio.Stdin)
	}
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "dasm: %s\n", err)
		return err
	}

	p, err := peg.Asm(src)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "dasm: %s\n", err)
		return err
	}

	fmt.Fprint(stdio.Stdout, peg.ToString(p, nil))
	return nil
}
