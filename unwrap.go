package fracjson

import (
	"bytes"
	"io"
)

// MaxNestedJSONDepth controls how deep Unwrap recursively parses JSON that
// appears inside string values. Set to 10 by default. Special case:
//   - If MaxNestedJSONDepth == 0, we still unwrap one level (i.e., parse the
//     string as JSON once, but do not recurse further).
//
// Example meanings:
//
//	0  -> unwrap once (non-recursive)
//	1  -> unwrap once (same as 0)
//	2+ -> unwrap up to that many recursive levels
var MaxNestedJSONDepth = 10

func unwrapDepth() int {
	if MaxNestedJSONDepth <= 0 {
		return 1
	}
	return MaxNestedJSONDepth
}

// Unwrap returns root with every string value that holds a JSON object or
// array replaced by the parsed document, recursing up to depth levels.
// Nodes that do not change are shared with root; root is not modified.
func Unwrap(root *Node, depth int) *Node {
	if root == nil || depth <= 0 {
		return root
	}
	switch root.Kind {
	case String:
		parsed, ok := tryParseInlineJSON(root.Value)
		if !ok {
			return root
		}
		parsed = Unwrap(parsed, depth-1)
		parsed.Name = root.Name
		parsed.Pos = root.Pos
		parsed.PrefixComment = root.PrefixComment
		parsed.MiddleComment = root.MiddleComment
		parsed.PostfixComment = root.PostfixComment
		parsed.PostfixLineStyle = root.PostfixLineStyle
		return parsed
	case Object, Array:
		var kids []*Node
		for i, c := range root.Children {
			u := Unwrap(c, depth)
			if u == c && kids == nil {
				continue
			}
			if kids == nil {
				kids = make([]*Node, len(root.Children))
				copy(kids, root.Children[:i])
			}
			kids[i] = u
		}
		if kids == nil {
			return root
		}
		cp := *root
		cp.Children = kids
		return &cp
	default:
		return root
	}
}

// tryParseInlineJSON parses s when it looks like a JSON object or array.
// Comments are not accepted inside embedded documents.
func tryParseInlineJSON(s string) (*Node, bool) {
	b := trimSpaceBytes([]byte(s))
	if !looksLikeJSONBytes(b) || bytes.Contains(b, []byte("/")) && hasCommentOutsideStrings(b) {
		return nil, false
	}
	p := acquireParser()
	defer releaseParser(p)
	p.sliceReader.Reset(b)
	p.reset(&p.sliceReader)
	p.silentErr = true
	n, err := p.parseDocument()
	if err != nil || n.HasComments() {
		return nil, false
	}
	if _, err := p.scanner.peekByte(); err != io.EOF {
		return nil, false
	}
	return n, true
}

// hasCommentOutsideStrings reports whether b holds a // or /* sequence
// outside string literals.
func hasCommentOutsideStrings(b []byte) bool {
	inStr := false
	for i := 0; i < len(b); i++ {
		c := b[i]
		if inStr {
			switch c {
			case '\\':
				i++
			case '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '/':
			if i+1 < len(b) && (b[i+1] == '/' || b[i+1] == '*') {
				return true
			}
		}
	}
	return false
}

func trimSpaceBytes(b []byte) []byte {
	start := 0
	end := len(b)
	for start < end && b[start] <= ' ' {
		start++
	}
	for start < end && b[end-1] <= ' ' {
		end--
	}
	return b[start:end]
}

func looksLikeJSONBytes(trimmed []byte) bool {
	if len(trimmed) < 2 {
		return false
	}
	first := trimmed[0]
	last := trimmed[len(trimmed)-1]
	return (first == '{' && last == '}') || (first == '[' && last == ']')
}
