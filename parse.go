package fracjson

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// MaxNestingDepth bounds how deeply containers may nest in parsed input.
var MaxNestingDepth = 512

var (
	// ErrSyntax is wrapped by every parse failure caused by malformed input.
	ErrSyntax = errors.New("fracjson: syntax error")
	// ErrTooDeep is wrapped when input nests deeper than MaxNestingDepth.
	ErrTooDeep = errors.New("fracjson: nesting too deep")
)

// errInvalidJSON is returned instead of a SyntaxError while probing.
var errInvalidJSON = errors.New("json: invalid")

// SyntaxError describes malformed input and where it was found.
type SyntaxError struct {
	Line   int
	Column int
	Offset int
	Msg    string
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("json: %s at line %d, column %d", e.Msg, e.Line, e.Column)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Parse reads exactly one JSONC document from src. Comments are attached to
// the nodes they annotate and blank lines between elements are kept as
// BlankLine children.
func Parse(src []byte) (*Node, error) {
	p := acquireParser()
	defer releaseParser(p)
	p.sliceReader.Reset(src)
	p.reset(&p.sliceReader)
	return p.parseSingle()
}

// ParseAll reads every JSONC document in src. Input holding only
// whitespace and comments yields no documents.
func ParseAll(src []byte) ([]*Node, error) {
	return ParseReader(bytes.NewReader(src))
}

// ParseReader reads every JSONC document from r.
func ParseReader(r io.Reader) ([]*Node, error) {
	var docs []*Node
	err := eachDocument(r, func(n *Node) error {
		docs = append(docs, n)
		return nil
	})
	return docs, err
}

// eachDocument parses documents from r one at a time and hands each to fn.
func eachDocument(r io.Reader, fn func(*Node) error) error {
	p := acquireParser()
	defer releaseParser(p)
	p.reset(r)
	for {
		n, err := p.parseDocument()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(n); err != nil {
			return err
		}
	}
}

type parser struct {
	scanner     scanner
	maxDepth    int
	silentErr   bool
	decodedBuf  []byte
	sliceReader bytes.Reader

	// comments carried from the end of one document to the next
	carry []comment
	triv  trivia
}

func (p *parser) reset(r io.Reader) {
	p.scanner.Reset(r)
	p.maxDepth = MaxNestingDepth
	p.silentErr = false
	p.carry = p.carry[:0]
	p.triv.reset()
}

func (p *parser) errorf(format string, args ...any) error {
	return p.fail(ErrSyntax, format, args...)
}

func (p *parser) fail(kind error, format string, args ...any) error {
	if p.silentErr {
		return errInvalidJSON
	}
	return &SyntaxError{
		Line:   p.scanner.lastLine,
		Column: p.scanner.lastCol,
		Offset: max(p.scanner.offset-1, 0),
		Msg:    fmt.Sprintf(format, args...),
		Err:    kind,
	}
}

// eofError turns a premature io.EOF into a SyntaxError.
func (p *parser) eofError(err error) error {
	if err == io.EOF {
		if p.silentErr {
			return errInvalidJSON
		}
		return &SyntaxError{
			Line:   p.scanner.line,
			Column: p.scanner.col,
			Offset: p.scanner.offset,
			Msg:    "unexpected end of input",
			Err:    ErrSyntax,
		}
	}
	return err
}

func (p *parser) parseSingle() (*Node, error) {
	n, err := p.parseDocument()
	if err == io.EOF {
		return nil, p.eofError(err)
	}
	if err != nil {
		return nil, err
	}
	if len(p.carry) > 0 {
		attachPostfix(n, p.carry)
		p.carry = p.carry[:0]
	}
	if _, err := p.scanner.peekByte(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		b, _ := p.scanner.readByte()
		return nil, p.errorf("unexpected character %q after top-level value", b)
	}
	return n, nil
}

// parseDocument reads one top-level value with its surrounding comments.
// It returns io.EOF when only trivia remains.
func (p *parser) parseDocument() (*Node, error) {
	t := &p.triv
	err := p.skipTrivia(t)
	lead := append(p.carry[:0:0], p.carry...)
	lead = append(lead, t.comments...)
	p.carry = p.carry[:0]
	if err != nil {
		return nil, err
	}

	b, _ := p.scanner.readByte()
	n, err := p.parseValue(b, 0)
	if err != nil {
		return nil, err
	}
	n.PrefixComment = joinComments(lead)

	err = p.skipTrivia(t)
	if err != nil && err != io.EOF {
		return nil, err
	}
	same := sameLine(t.comments)
	attachPostfix(n, t.comments[:same])
	rest := t.comments[same:]
	if err == io.EOF {
		attachPostfix(n, rest)
	} else {
		p.carry = append(p.carry, rest...)
	}
	return n, nil
}

// sameLine counts the leading comments that share the previous token's line.
func sameLine(cs []comment) int {
	n := 0
	for n < len(cs) && cs[n].breaks == 0 {
		n++
	}
	return n
}

// joinComments joins comment texts, keeping comments of one line together.
func joinComments(cs []comment) string {
	switch len(cs) {
	case 0:
		return ""
	case 1:
		return cs[0].text
	}
	var sb strings.Builder
	for i, c := range cs {
		if i > 0 {
			if c.breaks > 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(c.text)
	}
	return sb.String()
}

// attachPostfix appends cs to the postfix comment of n.
func attachPostfix(n *Node, cs []comment) {
	if len(cs) == 0 {
		return
	}
	text := joinComments(cs)
	if n.PostfixComment != "" {
		sep := " "
		if cs[0].breaks > 0 || n.PostfixLineStyle {
			sep = "\n"
		}
		text = n.PostfixComment + sep + text
	}
	n.PostfixComment = text
	for _, c := range cs {
		if c.line {
			n.PostfixLineStyle = true
		}
	}
}

func (p *parser) parseValue(first byte, depth int) (*Node, error) {
	pos := Position{Line: p.scanner.lastLine, Column: p.scanner.lastCol}
	var n *Node
	var err error
	switch first {
	case '{', '[':
		if depth >= p.maxDepth {
			return nil, p.fail(ErrTooDeep, "exceeded max depth of %d", p.maxDepth)
		}
		if first == '{' {
			n, err = p.parseObject(depth + 1)
		} else {
			n, err = p.parseArray(depth + 1)
		}
	case '"':
		var s []byte
		s, err = p.readStringValue()
		if err == nil {
			n = &Node{Kind: String, Value: string(s)}
		}
	case 't', 'f', 'n':
		n, err = p.parseLiteral(first)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, err = p.parseNumber(first)
	default:
		return nil, p.errorf("unexpected character %q", first)
	}
	if err != nil {
		return nil, err
	}
	n.Pos = pos
	return n, nil
}

// container accumulates the children of an array or object together with
// the comments waiting for the next element.
type container struct {
	node    *Node
	pending []comment
	values  int
}

// absorb records the trivia before an element or closing bracket. Blank
// lines become BlankLine children once the container has children.
func (c *container) absorb(cs []comment, breaks int) {
	for _, cm := range cs {
		if cm.breaks >= 2 {
			c.blank()
		}
		c.pending = append(c.pending, cm)
	}
	if breaks >= 2 {
		c.blank()
	}
}

func (c *container) blank() {
	if len(c.node.Children) == 0 && len(c.pending) == 0 {
		return
	}
	if c.node.Kind == Array {
		c.flushStandalone()
	}
	if n := len(c.node.Children); n > 0 && c.node.Children[n-1].Kind == BlankLine {
		return
	}
	if len(c.node.Children) > 0 {
		c.node.Children = append(c.node.Children, &Node{Kind: BlankLine})
	}
}

// flushStandalone turns pending comments into comment children.
func (c *container) flushStandalone() {
	for _, cm := range c.pending {
		c.node.Children = append(c.node.Children, NewComment(cm.text))
	}
	c.pending = c.pending[:0]
}

// add appends a value child, giving it the pending comments as prefix.
func (c *container) add(n *Node) {
	if len(c.pending) > 0 {
		n.PrefixComment = joinComments(c.pending)
		c.pending = c.pending[:0]
	}
	c.node.Children = append(c.node.Children, n)
	c.values++
}

// close settles the comments left before the closing bracket.
func (c *container) close() {
	if len(c.pending) > 0 {
		if c.node.Kind == Object && c.values > 0 {
			attachPostfix(c.lastValue(), c.pending)
			c.pending = c.pending[:0]
		} else {
			c.flushStandalone()
		}
	}
	kids := c.node.Children
	for len(kids) > 0 && kids[len(kids)-1].Kind == BlankLine {
		kids = kids[:len(kids)-1]
	}
	c.node.Children = kids
}

func (c *container) lastValue() *Node {
	for i := len(c.node.Children) - 1; i >= 0; i-- {
		if !c.node.Children[i].Kind.IsCommentOrBlank() {
			return c.node.Children[i]
		}
	}
	return nil
}

// afterValue reads the comments following a value and the separator or
// closing bracket. It reports whether the container was closed.
func (p *parser) afterValue(c *container, n *Node, closer byte) (bool, error) {
	t := &p.triv
	if err := p.skipTrivia(t); err != nil {
		return false, p.eofError(err)
	}
	same := sameLine(t.comments)
	attachPostfix(n, t.comments[:same])
	c.absorb(t.comments[same:], t.breaks)

	b, _ := p.scanner.readByte()
	switch b {
	case ',':
	case closer:
		c.close()
		return true, nil
	default:
		return false, p.errorf("expected ',' or '%c'", closer)
	}

	if err := p.skipTrivia(t); err != nil {
		return false, p.eofError(err)
	}
	same = sameLine(t.comments)
	rest := t.comments[same:]
	brokenAfter := len(rest) > 0 || t.breaks > 0
	if same > 0 && brokenAfter && len(c.pending) == 0 {
		attachPostfix(n, t.comments[:same])
		c.absorb(rest, t.breaks)
	} else {
		c.absorb(t.comments, t.breaks)
	}
	return false, nil
}

func (p *parser) parseArray(depth int) (*Node, error) {
	c := &container{node: &Node{Kind: Array}}
	t := &p.triv
	if err := p.skipTrivia(t); err != nil {
		return nil, p.eofError(err)
	}
	c.absorb(t.comments, t.breaks)
	for {
		b, err := p.scanner.readByte()
		if err != nil {
			return nil, p.eofError(err)
		}
		if b == ']' {
			c.close()
			return c.node, nil
		}
		n, err := p.parseValue(b, depth)
		if err != nil {
			return nil, err
		}
		c.add(n)
		closed, err := p.afterValue(c, n, ']')
		if err != nil {
			return nil, err
		}
		if closed {
			return c.node, nil
		}
	}
}

func (p *parser) parseObject(depth int) (*Node, error) {
	c := &container{node: &Node{Kind: Object}}
	t := &p.triv
	if err := p.skipTrivia(t); err != nil {
		return nil, p.eofError(err)
	}
	c.absorb(t.comments, t.breaks)
	for {
		b, err := p.scanner.readByte()
		if err != nil {
			return nil, p.eofError(err)
		}
		if b == '}' {
			c.close()
			return c.node, nil
		}
		if b != '"' {
			return nil, p.errorf("expected object key")
		}
		key, err := p.readStringValue()
		if err != nil {
			return nil, err
		}
		name := string(key)

		var middle []comment
		if err := p.skipTrivia(t); err != nil {
			return nil, p.eofError(err)
		}
		middle = append(middle, t.comments...)
		b, _ = p.scanner.readByte()
		if b != ':' {
			return nil, p.errorf("expected ':' after object key")
		}
		if err := p.skipTrivia(t); err != nil {
			return nil, p.eofError(err)
		}
		middle = append(middle, t.comments...)

		b, _ = p.scanner.readByte()
		n, err := p.parseValue(b, depth)
		if err != nil {
			return nil, err
		}
		n.Name = name
		n.MiddleComment = joinComments(middle)
		c.add(n)
		closed, err := p.afterValue(c, n, '}')
		if err != nil {
			return nil, err
		}
		if closed {
			return c.node, nil
		}
	}
}

func (p *parser) readStringValue() ([]byte, error) {
	p.decodedBuf = p.decodedBuf[:0]
	for {
		b, err := p.scanner.readByte()
		if err != nil {
			return nil, p.eofError(err)
		}
		if b == '"' {
			return p.decodedBuf, nil
		}
		if b < 0x20 {
			return nil, p.errorf("invalid control character in string")
		}
		if b != '\\' {
			p.decodedBuf = append(p.decodedBuf, b)
			continue
		}
		esc, err := p.scanner.readByte()
		if err != nil {
			return nil, p.eofError(err)
		}
		switch esc {
		case '"', '\\', '/':
			p.decodedBuf = append(p.decodedBuf, esc)
		case 'b':
			p.decodedBuf = append(p.decodedBuf, '\b')
		case 'f':
			p.decodedBuf = append(p.decodedBuf, '\f')
		case 'n':
			p.decodedBuf = append(p.decodedBuf, '\n')
		case 'r':
			p.decodedBuf = append(p.decodedBuf, '\r')
		case 't':
			p.decodedBuf = append(p.decodedBuf, '\t')
		case 'u':
			r, err := p.readUnicodeEscape()
			if err != nil {
				return nil, err
			}
			p.decodedBuf = utf8.AppendRune(p.decodedBuf, r)
		default:
			return nil, p.errorf("invalid escape sequence")
		}
	}
}

func (p *parser) readUnicodeEscape() (rune, error) {
	n1, err := p.readHex4()
	if err != nil {
		return 0, err
	}
	if n1 < 0xD800 || n1 > 0xDBFF {
		return n1, nil
	}
	b, err := p.scanner.readByte()
	if err != nil {
		return 0, p.eofError(err)
	}
	if b != '\\' {
		return utf8.RuneError, p.errorf("invalid surrogate pair")
	}
	b, err = p.scanner.readByte()
	if err != nil {
		return 0, p.eofError(err)
	}
	if b != 'u' {
		return utf8.RuneError, p.errorf("invalid surrogate pair")
	}
	n2, err := p.readHex4()
	if err != nil {
		return 0, err
	}
	if n2 < 0xDC00 || n2 > 0xDFFF {
		return utf8.RuneError, p.errorf("invalid surrogate pair")
	}
	return utf16.DecodeRune(n1, n2), nil
}

func (p *parser) readHex4() (rune, error) {
	var val rune
	for i := 0; i < 4; i++ {
		b, err := p.scanner.readByte()
		if err != nil {
			return 0, p.eofError(err)
		}
		if !isHex(b) {
			return 0, p.errorf("invalid unicode escape")
		}
		val = val<<4 | rune(fromHex(b))
	}
	return val, nil
}

func (p *parser) parseLiteral(first byte) (*Node, error) {
	var lit string
	var kind Kind
	switch first {
	case 't':
		lit, kind = "true", True
	case 'f':
		lit, kind = "false", False
	default:
		lit, kind = "null", Null
	}
	for i := 1; i < len(lit); i++ {
		b, err := p.scanner.readByte()
		if err != nil {
			return nil, p.eofError(err)
		}
		if b != lit[i] {
			return nil, p.errorf("invalid literal")
		}
	}
	if b, err := p.scanner.peekByte(); err == nil && !isTerminator(b) {
		return nil, p.errorf("invalid literal")
	}
	return &Node{Kind: kind, Value: lit}, nil
}

func (p *parser) parseNumber(first byte) (*Node, error) {
	state, ok := numStartState(first)
	if !ok {
		return nil, p.errorf("invalid number")
	}
	var sb strings.Builder
	sb.WriteByte(first)
	for {
		b, err := p.scanner.peekByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if isTerminator(b) {
			break
		}
		next, ok := numNextState(state, b)
		if !ok {
			_, _ = p.scanner.readByte()
			return nil, p.errorf("invalid number")
		}
		state = next
		_, _ = p.scanner.readByte()
		sb.WriteByte(b)
	}
	if !numIsTerminal(state) {
		return nil, p.errorf("invalid number")
	}
	return &Node{Kind: Number, Value: sb.String()}, nil
}
