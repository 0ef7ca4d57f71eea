package fracjson

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"pkt.systems/fracjson/internal/ansi"
)

func testPalette() ColorPalette {
	return ColorPalette{
		Key:         "<k>",
		String:      "<s>",
		Number:      "<n>",
		True:        "<t>",
		False:       "<f>",
		Null:        "<z>",
		Brackets:    "<b>",
		Punctuation: "<p>",
		Comment:     "<c>",
	}
}

func TestColorize_Tokens(t *testing.T) {
	src := []byte("{ \"k\": [ -1.5e3, true, false, null, \"v\" ] } // c\n")
	got := string(Colorize(src, testPalette()))
	r := ansi.Reset
	want := "<b>{" + r + " <k>\"k\"" + r + "<p>:" + r + " <b>[" + r +
		" <n>-1.5e3" + r + "<p>," + r +
		" <t>true" + r + "<p>," + r +
		" <f>false" + r + "<p>," + r +
		" <z>null" + r + "<p>," + r +
		" <s>\"v\"" + r + " <b>]" + r + " <b>}" + r +
		" <c>// c" + r + "\n"
	if got != want {
		t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", want, got)
	}
}

func TestColorize_StringsWithSpecialBytes(t *testing.T) {
	src := []byte(`["a\"b // x", "{not: a key}"]`)
	got := string(Colorize(src, testPalette()))
	if strings.Contains(got, "<c>") || strings.Contains(got, "<k>") {
		t.Fatalf("string content must not be styled as comment or key: %q", got)
	}
	if !strings.Contains(got, `<s>"a\"b // x"`+ansi.Reset) {
		t.Fatalf("escaped quote must not end the string: %q", got)
	}
}

func TestColorize_MultiLineComment(t *testing.T) {
	src := []byte("/* a\r\n b */ 1")
	got := string(Colorize(src, testPalette()))
	want := "<c>/* a" + ansi.Reset + "\r\n<c> b */" + ansi.Reset + " <n>1" + ansi.Reset
	if got != want {
		t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", want, got)
	}
}

func TestColorize_NoPaletteReturnsInput(t *testing.T) {
	src := []byte(`{"a":1}`)
	out := Colorize(src, NoColorPalette())
	if &out[0] != &src[0] {
		t.Fatalf("expected input to be returned unchanged")
	}
}

func TestResolvePalette(t *testing.T) {
	pal, err := resolvePalette(&Options{Palette: " Tokyo-Night "}, true)
	if err != nil {
		t.Fatalf("resolvePalette failed: %v", err)
	}
	if pal.Key != ansi.PaletteTokyoNight.Key || pal.Comment == "" {
		t.Fatalf("unexpected palette %+v", pal)
	}

	pal, err = resolvePalette(&Options{Palette: "jq"}, false)
	if err != nil || !pal.isZero() {
		t.Fatalf("disabled colour must give the empty palette, got %+v err %v", pal, err)
	}

	if _, err := resolvePalette(&Options{Palette: "missing"}, false); !errors.Is(err, ErrBadOption) {
		t.Fatalf("unknown names must be rejected even without colour, got %v", err)
	}

	pal, err = resolvePalette(nil, true)
	if err != nil || pal.Key != ansi.PaletteJQDefault.Key {
		t.Fatalf("nil options must select the default palette, got %+v err %v", pal, err)
	}
}

func TestPaletteNames(t *testing.T) {
	names := PaletteNames()
	seen := map[string]bool{}
	for i, n := range names {
		if i > 0 && names[i-1] > n {
			t.Fatalf("names are not sorted: %v", names)
		}
		seen[n] = true
	}
	for _, want := range []string{"default", "none", "jq", "synthwave84", "basic-16"} {
		if !seen[want] {
			t.Fatalf("missing palette %q in %v", want, names)
		}
	}
	if seen["classic"] {
		t.Fatalf("unexpected palette alias in %v", names)
	}
}

func TestPalettes_ColorEveryClass(t *testing.T) {
	for name, ap := range paletteRegistry {
		pal := colorPaletteFromAnsi(ap)
		out := Colorize([]byte(`{"k":[1,true,null,"s"]} // c`), pal)
		if bytes.Count(out, []byte(ansi.Reset)) < 8 {
			t.Fatalf("palette %s leaves tokens unstyled: %q", name, out)
		}
	}
}
