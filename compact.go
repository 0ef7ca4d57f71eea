package fracjson

import (
	"bytes"
	"io"

	"pkt.systems/jpact"
)

// CompactTo writes each JSONC document read from r to w as minified JSON,
// one document per line. Comments are dropped. When opts.Unwrap is true,
// JSON-looking strings are decoded recursively before compaction.
func CompactTo(w io.Writer, r io.Reader, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions
	}
	strict := opts.StrictJSON()
	strict.PrefixString = ""
	f := acquireFormatter(strict)
	defer releaseFormatter(f)
	var src bytes.Reader
	return eachDocument(r, func(n *Node) error {
		f.buf = f.buf[:0]
		f.document(measure(prepare(n, opts), strict))
		src.Reset(bytes.TrimRight(f.buf, "\n"))
		if err := jpact.CompactWriter(w, &src, 0); err != nil {
			return err
		}
		return writeNewline(w)
	})
}

// CompactToBuffer compacts JSONC into memory. It preserves the
// one-document-per-line behavior of CompactTo.
func CompactToBuffer(r io.Reader, opts *Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := CompactTo(&buf, r, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var newlineBytes = []byte{'\n'}

func writeNewline(w io.Writer) error {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw.WriteByte('\n')
	}
	_, err := w.Write(newlineBytes)
	return err
}
