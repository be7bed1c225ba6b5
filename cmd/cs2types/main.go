// Command cs2types inspects the script type catalog, descriptors,
// casts and the attribute stack-type table.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"text/tabwriter"
	"unicode/utf8"

	"fortio.org/safecast"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/cs2dec/internal/analyzer"
	"github.com/funvibe/cs2dec/internal/ast"
	"github.com/funvibe/cs2dec/internal/config"
	"github.com/funvibe/cs2dec/internal/pipeline"
	"github.com/funvibe/cs2dec/internal/prettyprinter"
	"github.com/funvibe/cs2dec/internal/symbols"
	"github.com/funvibe/cs2dec/internal/typesystem"
)

const usage = `Usage: cs2types <command> [flags] [args]

Commands:
  catalog                      list all atomic types
  compact [-byte N] [char]     decode a compact descriptor
  desc [-dump] [-interned] <descriptor>...
                               parse textual descriptors
  cast [-int N | -var TYPE]... <type>...
                               cast literals or typed variables, one per type
  attrs [-config FILE] [-id N] load and print attribute stack types
`

var errUsage = errors.New("invalid usage")

func main() {
	log.SetFlags(0)          // Disable timestamp in logs
	log.SetOutput(os.Stderr) // Keep stdout for command output
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	setupColor(config.ColorAuto)
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "catalog":
		err = runCatalog(stdout)
	case "compact":
		err = runCompact(args[1:], stdout, stderr)
	case "desc":
		err = runDesc(args[1:], stdout, stderr)
	case "cast":
		err = runCast(args[1:], stdout, stderr)
	case "attrs":
		err = runAttrs(args[1:], stdout, stderr)
	case "help", "-help", "--help", "-h":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	if err != nil {
		color.New(color.FgRed).Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(stderr, usage)
			return 2
		}
		return 1
	}
	return 0
}

// setupColor decides whether diagnostics are painted.
func setupColor(mode string) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	default:
		fd := os.Stderr.Fd()
		color.NoColor = !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
	}
}

func runCatalog(stdout io.Writer) error {
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTACK\tDESC\tWIRE")
	for _, t := range typesystem.Catalog() {
		desc, wire := "-", "-"
		if c, ok := t.Descriptor(); ok {
			desc = string(c)
		}
		if b, ok := typesystem.EncodeCompact(t); ok {
			wire = fmt.Sprintf("0x%02X", b)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t, t.Footprint(), desc, wire)
	}
	return w.Flush()
}

func runCompact(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("compact", flag.ContinueOnError)
	fs.SetOutput(stderr)
	raw := fs.Int("byte", -1, "decode a raw Windows-1252 metadata byte")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var t *typesystem.Atomic
	switch {
	case *raw >= 0:
		if *raw > 0xFF {
			return fmt.Errorf("%w: -byte must be in 0..255", errUsage)
		}
		t = typesystem.DecodeCompactByte(byte(*raw))
	case fs.NArg() == 0:
		t = typesystem.DecodeCompact(typesystem.NoDescriptor)
	case fs.NArg() == 1 && utf8.RuneCountInString(fs.Arg(0)) == 1:
		r, _ := utf8.DecodeRuneInString(fs.Arg(0))
		t = typesystem.DecodeCompact(r)
	default:
		return fmt.Errorf("%w: compact takes a single character", errUsage)
	}
	fmt.Fprintln(stdout, t)
	return nil
}

func runDesc(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("desc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dump := fs.Bool("dump", false, "dump the resolved type structure")
	interned := fs.Bool("interned", false, "list the interned composites afterwards")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: desc takes at least one descriptor", errUsage)
	}

	for _, arg := range fs.Args() {
		t, ok := typesystem.ParseText(arg)
		if !ok {
			return fmt.Errorf("unknown type descriptor %q", arg)
		}
		fmt.Fprintf(stdout, "%s %s\n", typesystem.ToText(t), t.Footprint())
		if *dump {
			fmt.Fprint(stdout, spew.Sdump(t))
		}
	}
	if *interned {
		for i, c := range typesystem.InternedComposites() {
			fmt.Fprintf(stdout, "#%d {%s} %s\n", i, c, c.Footprint())
		}
	}
	return nil
}

// castArgs collects -int and -var flags in command-line order.
type castArgs []ast.Expression

type intArg struct{ args *castArgs }

func (f intArg) String() string { return "" }

func (f intArg) Set(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	v, err := safecast.Conv[int32](n)
	if err != nil {
		return err
	}
	*f.args = append(*f.args, &ast.IntLiteral{Value: v})
	return nil
}

type varArg struct{ args *castArgs }

func (f varArg) String() string { return "" }

func (f varArg) Set(s string) error {
	vt, ok := typesystem.ParseText(s)
	if !ok {
		return fmt.Errorf("unknown type descriptor %q", s)
	}
	*f.args = append(*f.args, &ast.Variable{Name: fmt.Sprintf("v%d", len(*f.args)), VarType: vt})
	return nil
}

func runCast(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("cast", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var exprs castArgs
	fs.Var(intArg{&exprs}, "int", "cast an integer literal (repeatable)")
	fs.Var(varArg{&exprs}, "var", "cast a variable of this type (repeatable)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: cast takes at least one target type", errUsage)
	}
	if len(exprs) == 0 {
		exprs = castArgs{&ast.IntLiteral{Value: 0}}
	}

	required := make([]typesystem.Type, fs.NArg())
	for i, arg := range fs.Args() {
		t, ok := typesystem.ParseText(arg)
		if !ok {
			return fmt.Errorf("unknown type descriptor %q", arg)
		}
		required[i] = t
	}

	out, err := analyzer.CastAll(exprs, required)
	if err != nil {
		return err
	}
	for _, e := range out {
		fmt.Fprintf(stdout, "%s : %s\n", prettyprinter.Print(e), e.Type())
	}
	return nil
}

func runAttrs(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("attrs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", config.DefaultConfigFile, "configuration file")
	id := fs.Int("id", -1, "print only this attribute")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	ctx := pipeline.NewContext(*cfgPath)
	ctx = pipeline.New(
		&pipeline.ConfigProcessor{},
		&pipeline.StoreProcessor{},
		&symbols.AttributeProcessor{},
	).Run(ctx)
	defer closeContext(ctx)
	if ctx.Config != nil {
		setupColor(ctx.Config.Color)
	}
	if ctx.Failed() {
		return errors.Join(ctx.Errors...)
	}

	if *id >= 0 {
		t, ok := symbols.Attributes.Lookup(*id)
		if !ok {
			return fmt.Errorf("attribute %d not found", *id)
		}
		fmt.Fprintf(stdout, "%d\t%s\n", *id, t)
		return nil
	}

	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, attr := range symbols.Attributes.IDs() {
		fmt.Fprintf(w, "%d\t%s\n", attr, symbols.Attributes.TypeOf(attr))
	}
	return w.Flush()
}

func closeContext(ctx *pipeline.PipelineContext) {
	if err := ctx.Close(); err != nil {
		log.Printf("Error closing params store: %v", err)
	}
}
