package fracjson

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeOptions_LayersOverBase(t *testing.T) {
	data := []byte(`
max-total-line-length: 80
indent-spaces: 2
comment-policy: remove
number-list-alignment: decimal
table-comma-placement: next-line
eol: crlf
comma-padding: false
`)
	got, err := DecodeOptions(data, nil)
	if err != nil {
		t.Fatalf("DecodeOptions failed: %v", err)
	}
	want := *DefaultOptions
	want.MaxTotalLineLength = 80
	want.IndentSpaces = 2
	want.CommentPolicy = CommentsRemove
	want.NumberListAlignment = AlignDecimal
	want.TableCommaPlacement = CommaNextLine
	want.EOL = EOLCRLF
	want.CommaPadding = false
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if DefaultOptions.MaxTotalLineLength != 120 {
		t.Fatalf("DecodeOptions must not modify its base")
	}
}

func TestDecodeOptions_AcceptsJSON(t *testing.T) {
	got, err := DecodeOptions([]byte(`{"max-inline-complexity": 3, "palette": "jq"}`), nil)
	if err != nil {
		t.Fatalf("DecodeOptions failed: %v", err)
	}
	if got.MaxInlineComplexity != 3 || got.Palette != "jq" {
		t.Fatalf("unexpected options %+v", got)
	}
}

func TestDecodeOptions_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "max-width: 3\n"},
		{"bad enum", "eol: cr\n"},
		{"bad policy", "comment-policy: keep\n"},
		{"bad type", "indent-spaces: four\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeOptions([]byte(tt.data), nil); err == nil {
				t.Fatalf("expected error for %q", tt.data)
			}
		})
	}
}

func TestEncodeOptions_RoundTrip(t *testing.T) {
	opts := withOptions(func(o *Options) {
		o.UseTabToIndent = true
		o.NumberListAlignment = AlignLeft
		o.PrefixString = "# "
	})
	data, err := EncodeOptions(opts)
	if err != nil {
		t.Fatalf("EncodeOptions failed: %v", err)
	}
	if !strings.Contains(string(data), "number-list-alignment: left") {
		t.Fatalf("enums must encode by name:\n%s", data)
	}
	back, err := DecodeOptions(data, &Options{})
	if err != nil {
		t.Fatalf("DecodeOptions failed: %v", err)
	}
	if diff := cmp.Diff(*opts, *back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fracjson.yaml")
	if err := os.WriteFile(path, []byte("always-expand-depth: 2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	opts, err := LoadOptions(path, nil)
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}
	if opts.AlwaysExpandDepth != 2 || opts.IndentSpaces != 4 {
		t.Fatalf("unexpected options %+v", opts)
	}

	if _, err := LoadOptions(filepath.Join(dir, "missing.yaml"), nil); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
