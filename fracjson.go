package fracjson

import (
	"bytes"
	"io"

	"github.com/mattn/go-isatty"
)

// Pretty formats every JSONC document in `in` and colours the result when
// opts.ForceColor is set. Input holding no document yields empty output.
func Pretty(in []byte, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	out, err := formatDocuments(bytes.NewReader(in), opts, nil)
	if err != nil {
		return nil, err
	}
	pal, err := resolvePalette(opts, opts.ForceColor)
	if err != nil {
		return nil, err
	}
	return Colorize(out, pal), nil
}

// PrettyTo formats in and writes it to w, colouring it when w is a terminal
// or opts.ForceColor is set.
func PrettyTo(w io.Writer, in []byte, opts *Options) error {
	return PrettyStream(w, bytes.NewReader(in), opts)
}

// PrettyStream formats each document read from r and writes it to w as soon
// as it is complete.
func PrettyStream(w io.Writer, r io.Reader, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions
	}
	pal, err := resolvePalette(opts, shouldColor(w, opts))
	if err != nil {
		return err
	}
	f := acquireFormatter(opts)
	defer releaseFormatter(f)
	return eachDocument(r, func(n *Node) error {
		f.buf = f.buf[:0]
		f.document(measure(prepare(n, opts), opts))
		_, err := w.Write(Colorize(f.buf, pal))
		return err
	})
}

// Check formats in and reports whether it was already formatted. Leading
// and trailing whitespace is ignored in the comparison.
func Check(in []byte, opts *Options) (formatted []byte, ok bool, err error) {
	if opts == nil {
		opts = DefaultOptions
	}
	out, err := formatDocuments(bytes.NewReader(in), opts, nil)
	if err != nil {
		return nil, false, err
	}
	return out, bytes.Equal(bytes.TrimSpace(in), bytes.TrimSpace(out)), nil
}

// formatDocuments formats every document of r, appending to dst.
func formatDocuments(r io.Reader, opts *Options, dst []byte) ([]byte, error) {
	err := eachDocument(r, func(n *Node) error {
		dst = AppendFormat(dst, prepare(n, opts), opts)
		return nil
	})
	return dst, err
}

// prepare applies the tree transforms selected by opts.
func prepare(n *Node, opts *Options) *Node {
	if opts.Unwrap {
		return Unwrap(n, unwrapDepth())
	}
	return n
}

type fder interface {
	Fd() uintptr
}

func shouldColor(w io.Writer, opts *Options) bool {
	if opts != nil && opts.Palette == paletteNoneName {
		return false
	}
	if opts != nil && opts.ForceColor {
		return true
	}
	f, ok := w.(fder)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
