package fracjson

import (
	"bytes"
	"strings"
	"testing"
)

func TestCompact_MultiDoc(t *testing.T) {
	input := strings.NewReader("{\"a\": 1}\n{\"b\": [1, 2,3]}\n\"str\"\nnull\n")

	var buf bytes.Buffer
	if err := CompactTo(&buf, input, DefaultOptions); err != nil {
		t.Fatalf("CompactTo failed: %v", err)
	}

	const expected = "{\"a\":1}\n{\"b\":[1,2,3]}\n\"str\"\nnull\n"
	if buf.String() != expected {
		t.Fatalf("unexpected compact output\nexpected:\n%q\nactual:\n%q", expected, buf.String())
	}
}

func TestCompact_DropsComments(t *testing.T) {
	input := strings.NewReader("// head\n{\n  \"a\": 1, // one\n  /* b */ \"b\": [1, 2,],\n}\n")

	out, err := CompactToBuffer(input, nil)
	if err != nil {
		t.Fatalf("CompactToBuffer failed: %v", err)
	}

	const expected = "{\"a\":1,\"b\":[1,2]}\n"
	if string(out) != expected {
		t.Fatalf("unexpected compact output\nexpected:\n%q\nactual:\n%q", expected, out)
	}
}

func TestCompact_KeepsStringContent(t *testing.T) {
	input := strings.NewReader(`{"s":"a  b // not a comment","n":-1.5e3}`)

	out, err := CompactToBuffer(input, DefaultOptions)
	if err != nil {
		t.Fatalf("CompactToBuffer failed: %v", err)
	}

	const expected = "{\"s\":\"a  b // not a comment\",\"n\":-1.5e3}\n"
	if string(out) != expected {
		t.Fatalf("unexpected compact output\nexpected:\n%q\nactual:\n%q", expected, out)
	}
}

func TestCompact_Unwrap_RewritesStrings(t *testing.T) {
	input := strings.NewReader("{\"payload\":\"{\\\"a\\\":1,\\\"b\\\":[2,3]}\",\"raw\":\"hi\"}\n")
	opts := *DefaultOptions
	opts.Unwrap = true

	var buf bytes.Buffer
	if err := CompactTo(&buf, input, &opts); err != nil {
		t.Fatalf("CompactTo failed: %v", err)
	}

	const expected = "{\"payload\":{\"a\":1,\"b\":[2,3]},\"raw\":\"hi\"}\n"
	if buf.String() != expected {
		t.Fatalf("unexpected unwrap output\nexpected:\n%q\nactual:\n%q", expected, buf.String())
	}
}

func TestCompact_UnwrapDepthOnce(t *testing.T) {
	t.Cleanup(func() { MaxNestedJSONDepth = 10 })
	MaxNestedJSONDepth = 0

	input := strings.NewReader("{\"payload\":\"{\\\"inner\\\":\\\"{\\\\\\\"x\\\\\\\":1}\\\"}\"}")
	opts := *DefaultOptions
	opts.Unwrap = true

	var buf bytes.Buffer
	if err := CompactTo(&buf, input, &opts); err != nil {
		t.Fatalf("CompactTo failed: %v", err)
	}

	const expected = "{\"payload\":{\"inner\":\"{\\\"x\\\":1}\"}}\n"
	if buf.String() != expected {
		t.Fatalf("unexpected depth output\nexpected:\n%q\nactual:\n%q", expected, buf.String())
	}
}

func TestCompact_Errors(t *testing.T) {
	if err := CompactTo(&bytes.Buffer{}, strings.NewReader(`{"a":`), nil); err == nil {
		t.Fatalf("expected syntax error")
	}
	if err := CompactTo(errWriter{}, strings.NewReader(`1`), nil); err == nil {
		t.Fatalf("expected write error")
	}
	if err := CompactTo(&failNewlineWriter{}, strings.NewReader(`1`), nil); err == nil || err.Error() != "newline err" {
		t.Fatalf("expected newline error, got %v", err)
	}
	if _, err := CompactToBuffer(errReader{}, nil); err == nil {
		t.Fatalf("expected read error")
	}
}
