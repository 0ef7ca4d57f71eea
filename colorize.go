package fracjson

import (
	"bytes"

	"pkt.systems/fracjson/internal/ansi"
)

// ColorPalette holds the ANSI sequence written before each token class.
type ColorPalette struct {
	Key         string
	String      string
	Number      string
	True        string
	False       string
	Null        string
	Brackets    string
	Punctuation string
	Comment     string
}

func (p ColorPalette) isZero() bool {
	return p == ColorPalette{}
}

// Colorize wraps the tokens of formatted JSONC text in the palette's ANSI
// sequences. Whitespace and line structure are left untouched.
func Colorize(src []byte, pal ColorPalette) []byte {
	if pal.isZero() {
		return src
	}
	out := make([]byte, 0, len(src)+len(src)/2)
	styled := func(style string, tok []byte) {
		if style == "" {
			out = append(out, tok...)
			return
		}
		out = append(out, style...)
		out = append(out, tok...)
		out = append(out, ansi.Reset...)
	}

	for i := 0; i < len(src); {
		ch := src[i]
		switch ch {
		case '{', '}', '[', ']':
			styled(pal.Brackets, src[i:i+1])
			i++
		case ':', ',':
			styled(pal.Punctuation, src[i:i+1])
			i++
		case '"':
			start := i
			i++
			for i < len(src) {
				if src[i] == '\\' && i+1 < len(src) {
					i += 2
					continue
				}
				if src[i] == '"' {
					i++
					break
				}
				i++
			}
			if isKey(src, i) {
				styled(pal.Key, src[start:i])
			} else {
				styled(pal.String, src[start:i])
			}
		case '/':
			end := commentEnd(src, i)
			if end == i {
				out = append(out, ch)
				i++
				continue
			}
			// Style each line separately so resets never span a line break.
			for _, line := range bytes.SplitAfter(src[i:end], []byte{'\n'}) {
				body := bytes.TrimRight(line, "\r\n")
				styled(pal.Comment, body)
				out = append(out, line[len(body):]...)
			}
			i = end
		default:
			if (ch >= '0' && ch <= '9') || ch == '-' {
				start := i
				i++
				for i < len(src) {
					c := src[i]
					if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
						i++
					} else {
						break
					}
				}
				styled(pal.Number, src[start:i])
				continue
			}
			if bytes.HasPrefix(src[i:], []byte("true")) {
				styled(pal.True, src[i:i+4])
				i += 4
				continue
			}
			if bytes.HasPrefix(src[i:], []byte("false")) {
				styled(pal.False, src[i:i+5])
				i += 5
				continue
			}
			if bytes.HasPrefix(src[i:], []byte("null")) {
				styled(pal.Null, src[i:i+4])
				i += 4
				continue
			}
			out = append(out, ch)
			i++
		}
	}
	return out
}

// isKey reports whether the string ending before i is an object key, i.e.
// the next non-blank byte is a colon.
func isKey(src []byte, i int) bool {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	return i < len(src) && src[i] == ':'
}

// commentEnd returns the end of the comment starting at i, or i when no
// comment starts there.
func commentEnd(src []byte, i int) int {
	if i+1 >= len(src) {
		return i
	}
	switch src[i+1] {
	case '/':
		if j := bytes.IndexByte(src[i:], '\n'); j >= 0 {
			return i + j
		}
		return len(src)
	case '*':
		if j := bytes.Index(src[i+2:], []byte("*/")); j >= 0 {
			return i + 2 + j + 2
		}
		return len(src)
	}
	return i
}
