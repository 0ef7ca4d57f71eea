package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"pkt.systems/fracjson"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type cli struct {
	opts fracjson.Options

	configPath   string
	indent       string
	output       string
	check        bool
	write        bool
	compact      bool
	strictJSON   bool
	forceColor   bool
	noColor      bool
	listPalettes bool
	dumpConfig   bool
	verbose      bool
	url          urlOptions

	noNestedBracketPadding bool
	noSimpleBracketPadding bool
	noColonPadding         bool
	noCommaPadding         bool
	noCommentPadding       bool
	noPreserveBlankLines   bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	base := fracjson.DefaultOptions
	if path := scanConfigFlag(args); path != "" {
		loaded, err := fracjson.LoadOptions(path, nil)
		if err != nil {
			fmt.Fprintf(stderr, "fracjson: %v\n", err)
			return exitUsage
		}
		base = loaded
	}

	c := &cli{opts: *base}
	fs := c.flags(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "fracjson: %v\n", err)
		return exitUsage
	}
	if err := c.apply(fs); err != nil {
		fmt.Fprintf(stderr, "fracjson: %v\n", err)
		return exitUsage
	}
	log := newLogger(stderr, c.verbose)

	if c.listPalettes {
		for _, name := range fracjson.PaletteNames() {
			fmt.Fprintln(stdout, name)
		}
		return exitOK
	}
	if c.dumpConfig {
		out, err := fracjson.EncodeOptions(&c.opts)
		if err != nil {
			fmt.Fprintf(stderr, "fracjson: %v\n", err)
			return exitFailure
		}
		_, _ = stdout.Write(out)
		return exitOK
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	if c.write && c.output != "" {
		fmt.Fprintln(stderr, "fracjson: --write and --output are mutually exclusive")
		return exitUsage
	}

	out := stdout
	if c.output != "" && !c.check {
		f, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(stderr, "fracjson: %v\n", err)
			return exitFailure
		}
		defer f.Close()
		out = f
	}

	log.Debug("options",
		"max-line-length", c.opts.MaxTotalLineLength,
		"max-inline-complexity", c.opts.MaxInlineComplexity,
		"comment-policy", c.opts.CommentPolicy.String(),
		"eol", c.opts.EOL.String())

	status := exitOK
	for _, name := range inputs {
		start := time.Now()
		code := c.process(name, stdin, out, stderr)
		log.Debug("processed", "input", name, "elapsed", time.Since(start), "status", code)
		if code > status {
			status = code
		}
	}
	return status
}

func (c *cli) flags(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("fracjson", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fracjson [flags] [file|url|- ...]\n\n")
		fs.PrintDefaults()
	}
	o := &c.opts

	fs.StringVar(&c.configPath, "config", c.configPath, "load options from a YAML or JSON `file`; flags override it")
	fs.IntVar(&o.MaxTotalLineLength, "max-line-length", o.MaxTotalLineLength, "maximum total line length for inlined containers")
	fs.StringVar(&c.indent, "indent", "", "indentation: number of spaces or \"tab\"")
	fs.Var(&o.CommentPolicy, "comment-policy", "comment handling: preserve or remove")
	fs.IntVar(&o.MaxInlineComplexity, "max-inline-complexity", o.MaxInlineComplexity, "maximum nesting rendered on one line")
	fs.IntVar(&o.MaxCompactArrayComplexity, "max-compact-array-complexity", o.MaxCompactArrayComplexity, "maximum nesting of arrays packed several items per line")
	fs.IntVar(&o.MaxTableRowComplexity, "max-table-row-complexity", o.MaxTableRowComplexity, "maximum nesting of containers rendered as tables")
	fs.IntVar(&o.MaxPropNamePadding, "max-prop-name-padding", o.MaxPropNamePadding, "maximum width property names are padded to")
	fs.BoolVar(&o.ColonBeforePropNamePadding, "colon-before-prop-name-padding", o.ColonBeforePropNamePadding, "write the colon before the property name padding")
	fs.Var(&o.TableCommaPlacement, "table-comma-placement", "table row commas: end-of-line or next-line")
	fs.IntVar(&o.MinCompactArrayRowItems, "min-compact-array-row-items", o.MinCompactArrayRowItems, "fewest items an array needs to be packed")
	fs.IntVar(&o.AlwaysExpandDepth, "always-expand-depth", o.AlwaysExpandDepth, "expand every container nested shallower than this depth")
	fs.BoolVar(&c.noNestedBracketPadding, "no-nested-bracket-padding", false, "no spaces inside brackets of nested containers")
	fs.BoolVar(&c.noSimpleBracketPadding, "no-simple-bracket-padding", false, "no spaces inside brackets of simple containers")
	fs.BoolVar(&c.noColonPadding, "no-colon-padding", false, "no space after colons")
	fs.BoolVar(&c.noCommaPadding, "no-comma-padding", false, "no space after commas")
	fs.BoolVar(&c.noCommentPadding, "no-comment-padding", false, "no space around comments")
	fs.Var(&o.NumberListAlignment, "number-list-alignment", "number alignment: none, left or decimal")
	fs.StringVar(&o.PrefixString, "prefix-string", o.PrefixString, "string written at the start of every line")
	fs.BoolVar(&c.noPreserveBlankLines, "no-preserve-blank-lines", false, "drop blank lines between elements")
	fs.BoolVar(&o.AllowTrailingCommas, "allow-trailing-commas", o.AllowTrailingCommas, "write a comma after the last element of expanded containers")
	fs.Var(&o.EOL, "eol", "line ending: default, lf or crlf")
	fs.BoolVarP(&c.strictJSON, "json", "j", false, "strict JSON output: remove comments, LF line endings")
	fs.BoolVarP(&c.check, "check", "c", false, "report inputs that are not formatted and exit 1")
	fs.BoolVarP(&c.write, "write", "w", false, "rewrite files in place")
	fs.StringVarP(&c.output, "output", "o", "", "write output to `file`")
	fs.BoolVar(&c.compact, "compact", false, "minify each document onto one line")
	fs.BoolVar(&o.Unwrap, "unwrap", o.Unwrap, "decode strings that hold JSON documents")
	fs.StringVar(&o.Palette, "palette", o.Palette, "colour palette (see --list-palettes)")
	fs.BoolVar(&c.forceColor, "color", false, "colour output even when not writing to a terminal")
	fs.BoolVar(&c.noColor, "no-color", false, "disable coloured output")
	fs.BoolVar(&c.listPalettes, "list-palettes", false, "list palette names and exit")
	fs.BoolVar(&c.dumpConfig, "dump-config", false, "print the resolved options as YAML and exit")
	fs.BoolVarP(&c.url.insecure, "insecure", "k", false, "skip TLS verification for https inputs")
	fs.BoolVar(&c.url.acceptAll, "accept-all", false, "send Accept: */* for URL inputs")
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "log diagnostics to stderr")
	return fs
}

// apply folds the negated and derived flags into the options.
func (c *cli) apply(fs *pflag.FlagSet) error {
	o := &c.opts
	if c.indent != "" {
		if strings.EqualFold(c.indent, "tab") {
			o.UseTabToIndent = true
		} else {
			n, err := strconv.Atoi(c.indent)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid --indent %q: want a number of spaces or \"tab\"", c.indent)
			}
			o.IndentSpaces = n
			o.UseTabToIndent = false
		}
	}
	if c.noNestedBracketPadding {
		o.NestedBracketPadding = false
	}
	if c.noSimpleBracketPadding {
		o.SimpleBracketPadding = false
	}
	if c.noColonPadding {
		o.ColonPadding = false
	}
	if c.noCommaPadding {
		o.CommaPadding = false
	}
	if c.noCommentPadding {
		o.CommentPadding = false
	}
	if c.noPreserveBlankLines {
		o.PreserveBlankLines = false
	}
	if c.strictJSON {
		*o = *o.StrictJSON()
	}
	if c.forceColor && c.noColor {
		return errors.New("--color and --no-color are mutually exclusive")
	}
	if c.forceColor {
		o.ForceColor = true
	}
	if c.noColor || c.check || c.write || c.compact {
		o.ForceColor = false
		if c.noColor || c.write {
			o.Palette = "none"
		}
	}
	if fs.Changed("palette") && !c.noColor {
		for _, name := range fracjson.PaletteNames() {
			if name == strings.ToLower(o.Palette) {
				return nil
			}
		}
		return fmt.Errorf("%w: unknown palette %q", fracjson.ErrBadOption, o.Palette)
	}
	return nil
}

// process handles one input and returns its exit status.
func (c *cli) process(name string, stdin io.Reader, out, stderr io.Writer) int {
	data, err := readInput(name, stdin, c.url)
	if err != nil {
		fmt.Fprintf(stderr, "fracjson: %v\n", err)
		return exitFailure
	}

	switch {
	case c.compact:
		if err := fracjson.CompactTo(out, bytes.NewReader(data), &c.opts); err != nil {
			fmt.Fprintf(stderr, "fracjson: %s: %v\n", name, err)
			return exitFailure
		}
		return exitOK
	case c.check || c.write:
		formatted, ok, err := fracjson.Check(data, &c.opts)
		if err != nil {
			fmt.Fprintf(stderr, "fracjson: %s: %v\n", name, err)
			return exitFailure
		}
		if ok {
			return exitOK
		}
		if c.write {
			return c.rewrite(name, formatted, stderr)
		}
		c.printDiff(out, name, data, formatted)
		return exitFailure
	default:
		if err := fracjson.PrettyTo(out, data, &c.opts); err != nil {
			fmt.Fprintf(stderr, "fracjson: %s: %v\n", name, err)
			return exitFailure
		}
		return exitOK
	}
}

func (c *cli) rewrite(name string, formatted []byte, stderr io.Writer) int {
	if name == "-" {
		fmt.Fprintln(stderr, "fracjson: --write needs file arguments")
		return exitUsage
	}
	if _, isURL, _ := parseHTTPURL(name); isURL {
		fmt.Fprintf(stderr, "fracjson: cannot --write to %s\n", name)
		return exitUsage
	}
	mode := os.FileMode(0o644)
	if st, err := os.Stat(name); err == nil {
		mode = st.Mode().Perm()
	}
	if err := os.WriteFile(name, formatted, mode); err != nil {
		fmt.Fprintf(stderr, "fracjson: %v\n", err)
		return exitFailure
	}
	return exitOK
}

// printDiff writes a line diff between the input and its formatted form.
func (c *cli) printDiff(w io.Writer, name string, data, formatted []byte) {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	hdr := color.New(color.Bold)
	for _, col := range []*color.Color{del, ins, hdr} {
		switch {
		case c.forceColor:
			col.EnableColor()
		case c.noColor || !isTerminal(w):
			col.DisableColor()
		}
	}
	hdr.Fprintf(w, "--- %s\n", name)
	hdr.Fprintf(w, "+++ %s (formatted)\n", name)
	for _, l := range fracjson.Diff(string(data), string(formatted)) {
		switch l.Op {
		case fracjson.DiffDelete:
			del.Fprintf(w, "-%s\n", l.Text)
		case fracjson.DiffInsert:
			ins.Fprintf(w, "+%s\n", l.Text)
		default:
			fmt.Fprintf(w, " %s\n", l.Text)
		}
	}
}

// scanConfigFlag finds the --config value before flags are bound, so the
// file can supply the flag defaults.
func scanConfigFlag(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			break
		}
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
