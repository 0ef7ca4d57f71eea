package fracjson

import (
	"io"
	"strings"
)

// scanner is a buffered byte reader that tracks the source position.
type scanner struct {
	r   io.Reader
	buf [4096]byte
	pos int
	n   int

	offset int
	line   int
	col    int
	// position of the last byte returned by readByte
	lastLine int
	lastCol  int
}

func (s *scanner) Reset(r io.Reader) {
	s.r = r
	s.pos = 0
	s.n = 0
	s.offset = 0
	s.line = 1
	s.col = 1
	s.lastLine = 1
	s.lastCol = 0
}

// maxEmptyReads bounds consecutive reads returning no data and no error.
const maxEmptyReads = 100

func (s *scanner) fill() error {
	if s.r == nil {
		return io.EOF
	}
	for i := 0; i < maxEmptyReads; i++ {
		n, err := s.r.Read(s.buf[:])
		if n > 0 {
			s.pos = 0
			s.n = n
			return nil
		}
		if err != nil {
			return err
		}
	}
	return io.ErrNoProgress
}

func (s *scanner) readByte() (byte, error) {
	if s.pos >= s.n {
		if err := s.fill(); err != nil {
			return 0, err
		}
	}
	b := s.buf[s.pos]
	s.pos++
	s.offset++
	s.lastLine, s.lastCol = s.line, s.col
	if b == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return b, nil
}

func (s *scanner) peekByte() (byte, error) {
	if s.pos >= s.n {
		if err := s.fill(); err != nil {
			return 0, err
		}
	}
	return s.buf[s.pos], nil
}

// comment is one comment met between tokens.
type comment struct {
	text string
	line bool
	// newlines between the previous token or comment and this comment
	breaks int
}

// trivia collects the whitespace and comments between two tokens.
type trivia struct {
	comments []comment
	// newlines between the last comment (or token) and the next token
	breaks int
}

func (t *trivia) reset() {
	t.comments = t.comments[:0]
	t.breaks = 0
}

// skipTrivia consumes whitespace and comments up to the next token or the
// end of input, recording them in t. It returns io.EOF at the end of input.
func (p *parser) skipTrivia(t *trivia) error {
	t.reset()
	for {
		b, err := p.scanner.peekByte()
		if err != nil {
			return err
		}
		switch {
		case b == '\n':
			t.breaks++
			_, _ = p.scanner.readByte()
		case isSpaceByte(b):
			_, _ = p.scanner.readByte()
		case b == '/':
			c, err := p.readComment()
			if err != nil {
				return err
			}
			c.breaks = t.breaks
			t.breaks = 0
			t.comments = append(t.comments, c)
		default:
			return nil
		}
	}
}

// readComment reads a // or /* */ comment starting at the current byte.
func (p *parser) readComment() (comment, error) {
	_, _ = p.scanner.readByte()
	b, err := p.scanner.readByte()
	if err != nil {
		return comment{}, p.eofError(err)
	}
	var sb strings.Builder
	sb.WriteByte('/')
	sb.WriteByte(b)
	switch b {
	case '/':
		for {
			c, err := p.scanner.peekByte()
			if err == io.EOF || c == '\n' {
				break
			}
			if err != nil {
				return comment{}, err
			}
			_, _ = p.scanner.readByte()
			sb.WriteByte(c)
		}
		return comment{text: strings.TrimRight(sb.String(), " \t\r"), line: true}, nil
	case '*':
		prev := byte(0)
		for {
			c, err := p.scanner.readByte()
			if err != nil {
				if err == io.EOF {
					return comment{}, p.errorf("unterminated block comment")
				}
				return comment{}, err
			}
			sb.WriteByte(c)
			if prev == '*' && c == '/' {
				return comment{text: sb.String()}, nil
			}
			prev = c
		}
	default:
		return comment{}, p.errorf("unexpected character %q after '/'", b)
	}
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func fromHex(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	default:
		return 0
	}
}

func isTerminator(b byte) bool {
	return b <= ' ' || b == ',' || b == '}' || b == ']' || b == '/'
}

type numState int

const (
	numInvalid numState = iota
	numSign
	numZero
	numInt
	numDot
	numFrac
	numExp
	numExpSign
	numExpDigits
)

func numStartState(first byte) (numState, bool) {
	switch {
	case first == '-':
		return numSign, true
	case first == '0':
		return numZero, true
	case first >= '1' && first <= '9':
		return numInt, true
	default:
		return numInvalid, false
	}
}

func numNextState(state numState, b byte) (numState, bool) {
	isDigit := b >= '0' && b <= '9'
	switch state {
	case numSign:
		if b == '0' {
			return numZero, true
		}
		if isDigit {
			return numInt, true
		}
	case numZero:
		switch b {
		case '.':
			return numDot, true
		case 'e', 'E':
			return numExp, true
		}
	case numInt:
		switch {
		case b == '.':
			return numDot, true
		case b == 'e' || b == 'E':
			return numExp, true
		case isDigit:
			return numInt, true
		}
	case numDot:
		if isDigit {
			return numFrac, true
		}
	case numFrac:
		switch {
		case b == 'e' || b == 'E':
			return numExp, true
		case isDigit:
			return numFrac, true
		}
	case numExp:
		switch {
		case b == '+' || b == '-':
			return numExpSign, true
		case isDigit:
			return numExpDigits, true
		}
	case numExpSign, numExpDigits:
		if isDigit {
			return numExpDigits, true
		}
	}
	return numInvalid, false
}

func numIsTerminal(state numState) bool {
	switch state {
	case numZero, numInt, numFrac, numExpDigits:
		return true
	default:
		return false
	}
}
