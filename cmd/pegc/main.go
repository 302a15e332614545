// Command pegc inspects the pattern-algebra core: it builds the
// worked-example patterns and prints their disassembly.
package main

import (
	"os"

	"github.com/mna/mainer"
	"github.com/mna/pegc/internal/maincmd"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	c := &maincmd.Cmd{BuildVersion: version, BuildDate: buildDate}
	code := c.Main(os.Args[1:], mainer.CurrentStdio())
	os.Exit(int(code))
}
