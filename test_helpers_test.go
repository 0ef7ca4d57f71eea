package fracjson

import (
	"bytes"
	"errors"
	"io"
)

type noFdWriter struct {
	buf bytes.Buffer
}

func (w *noFdWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *noFdWriter) String() string {
	return w.buf.String()
}

type fdWriter struct{}

func (fdWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func (fdWriter) Fd() uintptr {
	return ^uintptr(0)
}

type zeroReader struct {
	called bool
}

func (r *zeroReader) Read(_ []byte) (int, error) {
	if r.called {
		return 0, io.EOF
	}
	r.called = true
	return 0, nil
}

type errReader struct{}

func (errReader) Read(_ []byte) (int, error) {
	return 0, errors.New("read err")
}

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write err")
}

type errAfterReader struct {
	data []byte
	err  error
}

func (r *errAfterReader) Read(p []byte) (int, error) {
	if len(r.data) > 0 {
		n := copy(p, r.data)
		r.data = r.data[n:]
		return n, nil
	}
	if r.err == nil {
		r.err = errors.New("read err")
	}
	return 0, r.err
}

// oneByteReader hands out its data one byte per Read.
type oneByteReader struct {
	data []byte
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = r.data[0]
	r.data = r.data[1:]
	return 1, nil
}

type failAfterWriter struct {
	count int
	fail  int
	buf   bytes.Buffer
}

func (w *failAfterWriter) Write(p []byte) (int, error) {
	w.count++
	if w.count > w.fail {
		return 0, errors.New("write err")
	}
	return w.buf.Write(p)
}

type failNewlineWriter struct {
	buf bytes.Buffer
}

func (w *failNewlineWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *failNewlineWriter) WriteByte(_ byte) error {
	return errors.New("newline err")
}
