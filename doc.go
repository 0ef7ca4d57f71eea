// Package fracjson formats JSON and JSONC (JSON with comments) so that it is
// both compact and easy to read.
//
// Every container is laid out independently in one of four ways: inline on a
// single line, as a compact array with several items per line, as a table
// whose rows share aligned columns, or expanded with one child per line. The
// choice is driven by three measures computed bottom-up over the tree
// (complexity, minimum single-line length and whether a comment forces the
// container onto several lines) and by the budgets in Options.
//
// Comments are attached to the values they annotate by the parser and are
// written back next to the same values. Blank lines between elements are
// kept.
//
// Basic usage:
//
//	src := []byte(`{"name":"demo","tags":["a","b"] /* note */}`)
//	out, err := fracjson.Pretty(src, &fracjson.Options{Palette: "none"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(string(out))
//
// Working with trees:
//
//	root, err := fracjson.Parse(src)
//	if err != nil {
//		log.Fatal(err)
//	}
//	opts := *fracjson.DefaultOptions
//	opts.MaxInlineComplexity = 0
//	fmt.Print(fracjson.Format(root, &opts))
//
// Streaming:
//
//	if err := fracjson.PrettyStream(os.Stdout, os.Stdin, nil); err != nil {
//		log.Fatal(err)
//	}
package fracjson
