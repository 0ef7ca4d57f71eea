package fracjson

import "strings"

// needsEscape reports whether s contains a byte that must be escaped inside
// a JSON string literal.
func needsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c == '"' || c == '\\' {
			return true
		}
	}
	return false
}

// appendQuoted appends s as a quoted JSON string literal.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	dst = appendEscaped(dst, s)
	return append(dst, '"')
}

func appendEscaped(dst []byte, s string) []byte {
	if !needsEscape(s) {
		return append(dst, s...)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\', '"':
			dst = append(dst, '\\', c)
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if c < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0', hexDigit(c>>4), hexDigit(c&0x0f))
				continue
			}
			dst = append(dst, c)
		}
	}
	return dst
}

// escapedLen is the byte length of s after escaping, without quotes.
func escapedLen(s string) int {
	n := len(s)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\', '"', '\b', '\f', '\n', '\r', '\t':
			n++
		default:
			if c < 0x20 {
				n += 5
			}
		}
	}
	return n
}

// quotedLen is the byte length of s rendered as a JSON string literal.
func quotedLen(s string) int {
	return escapedLen(s) + 2
}

func hexDigit(v byte) byte {
	if v < 10 {
		return '0' + v
	}
	return 'a' + (v - 10)
}

const spaces = "                                                                "

// appendSpaces appends n spaces; n <= 0 appends nothing.
func appendSpaces(dst []byte, n int) []byte {
	for n > 0 {
		k := n
		if k > len(spaces) {
			k = len(spaces)
		}
		dst = append(dst, spaces[:k]...)
		n -= k
	}
	return dst
}

// isLineComment reports whether text is a // comment.
func isLineComment(text string) bool {
	return strings.HasPrefix(text, "//")
}

// integerPart returns the part of a number literal before its decimal point.
func integerPart(num string) string {
	if i := strings.IndexByte(num, '.'); i >= 0 {
		return num[:i]
	}
	return num
}

// numberColumn aligns a list of sibling number literals.
type numberColumn struct {
	mode   NumberListAlignment
	maxLen int
	maxInt int
}

// newNumberColumn returns the alignment for values, or a column with mode
// AlignNone when alignment is off or any value is not a number.
func newNumberColumn(mode NumberListAlignment, values []*item) numberColumn {
	if mode == AlignNone || len(values) == 0 {
		return numberColumn{}
	}
	col := numberColumn{mode: mode}
	for _, v := range values {
		if v.node.Kind != Number {
			return numberColumn{}
		}
		if n := len(v.node.Value); n > col.maxLen {
			col.maxLen = n
		}
		if n := len(integerPart(v.node.Value)); n > col.maxInt {
			col.maxInt = n
		}
	}
	return col
}

// lead is the number of spaces written before num.
func (c numberColumn) lead(num string) int {
	if c.mode != AlignDecimal {
		return 0
	}
	return c.maxInt - len(integerPart(num))
}

// trail is the number of spaces owed after num.
func (c numberColumn) trail(num string) int {
	if c.mode != AlignLeft {
		return 0
	}
	return c.maxLen - len(num)
}

// splitCommentLines breaks comment text into lines, trimming the carriage
// returns of CRLF input.
func splitCommentLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}

// commentSegments splits attached comment text at line breaks that fall
// outside block comments. Segments are trimmed and empty ones dropped.
func commentSegments(text string) []string {
	if text == "" {
		return nil
	}
	var segs []string
	start := 0
	walkComment(text, func(i int) {
		if seg := strings.TrimSpace(text[start:i]); seg != "" {
			segs = append(segs, seg)
		}
		start = i + 1
	}, nil)
	if seg := strings.TrimSpace(text[start:]); seg != "" {
		segs = append(segs, seg)
	}
	return segs
}

// hasLineComment reports whether text holds a // comment outside any block
// comment.
func hasLineComment(text string) bool {
	found := false
	walkComment(text, nil, func() { found = true })
	return found
}

// walkComment scans comment text, calling newline for each line break
// outside a block comment and line for each // comment.
func walkComment(text string, newline func(int), line func()) {
	inBlock := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case inBlock:
			if c == '*' && i+1 < len(text) && text[i+1] == '/' {
				inBlock = false
				i++
			}
		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			inBlock = true
			i++
		case c == '/' && i+1 < len(text) && text[i+1] == '/':
			if line != nil {
				line()
			}
			j := strings.IndexByte(text[i:], '\n')
			if j < 0 {
				return
			}
			i += j - 1
		case c == '\n':
			if newline != nil {
				newline(i)
			}
		}
	}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
