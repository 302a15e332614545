package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/pegc/lang/peg"
)

type namedScenario struct {
	name string
	expr string
	pat  func() (peg.Pattern, error)
}

func ok(p peg.Pattern, err error) func() (peg.Pattern, error) {
	return func() (peg.Pattern, error) { return p, err }
}

var scenarioList = []namedScenario{
	{"1", `"a"`, ok(peg.Str("a"), nil)},
	{"2", `Set({'a'..'z'})`, func() (peg.Pattern, error) {
		var cs peg.CharSet
		cs.AddRange('a', 'z')
		return peg.Set(cs), nil
	}},
	{"3", `?"a"`, func() (peg.Pattern, error) { return peg.Optional(peg.Str("a")) }},
	{"4", `*{'a'..'z'}`, func() (peg.Pattern, error) {
		var cs peg.CharSet
		cs.AddRange('a', 'z')
		return peg.Star(peg.Set(cs))
	}},
	{"5", `*"ab"`, func() (peg.Pattern, error) { return peg.Star(peg.Str("ab")) }},
	{"6", `'a'|'b'|'c'`, func() (peg.Pattern, error) {
		ab, err := peg.Choice(peg.Str("a"), peg.Str("b"))
		if err != nil {
			return nil, err
		}
		return peg.Choice(ab, peg.Str("c"))
	}},
	{"7", `"ab"|"cd"|"ef"`, func() (peg.Pattern, error) {
		ab, err := peg.Choice(peg.Str("ab"), peg.Str("cd"))
		if err != nil {
			return nil, err
		}
		return peg.Choice(ab, peg.Str("ef"))
	}},
	{"8", `'y' - 'x'`, func() (peg.Pattern, error) { return peg.Diff(peg.Str("y"), peg.Str("x")) }},
	{"9", `@"end"`, func() (peg.Pattern, error) { return peg.Search(peg.Str("end")) }},
}

// Scenarios builds and disassembles the worked-example patterns used as the
// pattern algebra's testable properties, printing each one's source form
// and instruction listing to stdio.Stdout.
func (c *Cmd) Scenarios(ctx context.Context, stdio mainer.Stdio, args []string) error {
	for _, sc := range scenarioList {
		p, err := sc.pat()
		if err != nil {
			fmt.Fprintf(stdio.Stderr, "scenario %s (%s): %s\n", sc.name, sc.expr, err)
			return err
		}
		fmt.Fprintf(stdio.Stdout, "scenario %s: %s\n", sc.name, sc.expr)
		fmt.Fprint(stdio.Stdout, peg.ToString(p, nil))
		fmt.Fprintln(stdio.Stdout)
	}
	return nil
}
