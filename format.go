package fracjson

// Format renders root as text. A nil opts selects DefaultOptions. The
// result always ends with the end-of-line sequence.
func Format(root *Node, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions
	}
	if root == nil {
		root = NewNull()
	}
	f := acquireFormatter(opts)
	defer releaseFormatter(f)
	f.document(measure(root, opts))
	return string(f.buf)
}

// AppendFormat appends the rendering of root to dst.
func AppendFormat(dst []byte, root *Node, opts *Options) []byte {
	if opts == nil {
		opts = DefaultOptions
	}
	if root == nil {
		root = NewNull()
	}
	f := acquireFormatter(opts)
	defer releaseFormatter(f)
	f.buf = dst
	f.document(measure(root, opts))
	out := f.buf
	f.buf = nil
	return out
}

type formatter struct {
	opts *Options
	eol  string
	buf  []byte
}

// elem describes how one child of an expanded container is written.
type elem struct {
	comma   bool
	object  bool
	namePad int
	// leader is written at the start of the line, before any comment.
	leader string
}

func (f *formatter) document(root *item) {
	f.element(root, 0, elem{}, func() { f.value(root, 0) })
}

// startLine writes the line prefix and the indentation for depth.
func (f *formatter) startLine(depth int) {
	f.buf = append(f.buf, f.opts.PrefixString...)
	if f.opts.UseTabToIndent {
		for i := 0; i < depth; i++ {
			f.buf = append(f.buf, '\t')
		}
		return
	}
	f.buf = appendSpaces(f.buf, depth*f.opts.IndentSpaces)
}

// endLine drops trailing blanks from the current line and terminates it.
func (f *formatter) endLine() {
	n := len(f.buf)
	for n > 0 && (f.buf[n-1] == ' ' || f.buf[n-1] == '\t') {
		n--
	}
	f.buf = append(f.buf[:n], f.eol...)
}

func (f *formatter) blankLine() {
	f.buf = append(f.buf, f.opts.PrefixString...)
	f.endLine()
}

func (f *formatter) comma() {
	f.buf = append(f.buf, ',')
	if f.opts.CommaPadding {
		f.buf = append(f.buf, ' ')
	}
}

func (f *formatter) commentPad() {
	if f.opts.CommentPadding {
		f.buf = append(f.buf, ' ')
	}
}

// value writes it starting at the current position. Containers pick their
// layout for depth.
func (f *formatter) value(it *item, depth int) {
	if !it.node.Kind.IsContainer() {
		f.scalar(it)
		return
	}
	switch chooseLayout(it, f.opts, depth) {
	case Inline:
		f.inline(it)
	case CompactArray:
		f.compactArray(it, depth)
	case Table:
		f.table(it, depth)
	default:
		f.expanded(it, depth)
	}
}

func (f *formatter) scalar(it *item) {
	if it.node.Kind == String {
		f.buf = appendQuoted(f.buf, it.node.Value)
		return
	}
	f.buf = append(f.buf, it.node.literal()...)
}

func brackets(k Kind) (byte, byte) {
	if k == Object {
		return '{', '}'
	}
	return '[', ']'
}

// inline writes it on the current line. The output length equals
// it.MinimumLength.
func (f *formatter) inline(it *item) {
	if it.capped {
		f.buf = append(f.buf, it.flat...)
		return
	}
	if !it.node.Kind.IsContainer() {
		f.scalar(it)
		return
	}
	open, close := brackets(it.node.Kind)
	f.buf = append(f.buf, open)
	if len(it.values) == 0 {
		f.buf = append(f.buf, close)
		return
	}
	pad := bracketPadding(it, f.opts)
	if pad {
		f.buf = append(f.buf, ' ')
	}
	for i, v := range it.values {
		if i > 0 {
			f.comma()
		}
		if it.node.Kind == Object {
			f.propName(v.node.Name, 0)
		}
		f.inline(v)
	}
	if pad {
		f.buf = append(f.buf, ' ')
	}
	f.buf = append(f.buf, close)
}

// namePadding is the width object member names are padded to.
func (f *formatter) namePadding(values []*item) int {
	w := 0
	for _, v := range values {
		if n := escapedLen(v.node.Name); n > w {
			w = n
		}
	}
	return min(w, f.opts.MaxPropNamePadding)
}

// propName writes `"name":` padded to pad name bytes.
func (f *formatter) propName(name string, pad int) {
	f.buf = appendQuoted(f.buf, name)
	extra := pad - escapedLen(name)
	if f.opts.ColonBeforePropNamePadding {
		f.buf = append(f.buf, ':')
		f.buf = appendSpaces(f.buf, extra)
	} else {
		f.buf = appendSpaces(f.buf, extra)
		f.buf = append(f.buf, ':')
	}
	if f.opts.ColonPadding {
		f.buf = append(f.buf, ' ')
	}
}

func (f *formatter) expanded(it *item, depth int) {
	open, close := brackets(it.node.Kind)
	f.buf = append(f.buf, open)
	f.endLine()

	var col numberColumn
	if it.node.Kind == Array {
		col = newNumberColumn(f.opts.NumberListAlignment, it.values)
	}
	e := elem{object: it.node.Kind == Object}
	if e.object {
		e.namePad = f.namePadding(it.values)
	}
	var last *item
	if len(it.values) > 0 {
		last = it.values[len(it.values)-1]
	}
	for _, c := range it.children {
		switch {
		case c.node.Kind == BlankLine:
			f.blankLine()
		case c.node.Kind.IsComment():
			f.startLine(depth + 1)
			f.appendComment(c.node.Value)
			f.endLine()
		default:
			e.comma = c != last || f.opts.AllowTrailingCommas
			child := c
			if col.mode != AlignNone {
				f.element(c, depth+1, e, func() { f.alignedNumber(child, col) })
				continue
			}
			f.element(c, depth+1, e, func() { f.value(child, depth+1) })
		}
	}
	f.startLine(depth)
	f.buf = append(f.buf, close)
}

// element writes one line-owning child: its prefix comment, name, middle
// comment, body, comma and postfix comment. It ends the final line.
func (f *formatter) element(c *item, depth int, e elem, body func()) {
	lead := f.prefixComments(c.prefix, depth)
	f.startLine(depth)
	f.buf = append(f.buf, e.leader...)
	if lead != "" {
		f.appendComment(lead)
		f.commentPad()
	}
	if e.object {
		f.propName(c.node.Name, e.namePad)
	}
	if c.middle != "" {
		f.endLine()
		for _, seg := range commentSegments(c.middle) {
			f.startLine(depth)
			f.appendComment(seg)
			f.endLine()
		}
		f.startLine(depth)
	}
	body()
	f.finish(c, depth, e.comma)
}

// alignedNumber writes a number padded to its column. Trailing padding is
// dropped by endLine when nothing follows it.
func (f *formatter) alignedNumber(it *item, col numberColumn) {
	f.buf = appendSpaces(f.buf, col.lead(it.node.Value))
	f.scalar(it)
	f.buf = appendSpaces(f.buf, col.trail(it.node.Value))
}

// prefixComments writes every prefix segment that must own its line and
// returns the final segment when it can share the line with the value.
func (f *formatter) prefixComments(text string, depth int) string {
	if text == "" {
		return ""
	}
	segs := commentSegments(text)
	last := ""
	if n := len(segs); n > 0 && !hasLineComment(segs[n-1]) {
		last = segs[n-1]
		segs = segs[:n-1]
	}
	for _, seg := range segs {
		f.startLine(depth)
		f.appendComment(seg)
		f.endLine()
	}
	return last
}

// finish writes the comma and postfix comment of an element and ends the
// line. A single block comment goes before the comma.
func (f *formatter) finish(c *item, depth int, comma bool) {
	segs := commentSegments(c.postfix)
	if len(segs) == 1 && !c.lineNote && !hasLineComment(segs[0]) {
		f.commentPad()
		f.appendComment(segs[0])
		if comma {
			f.buf = append(f.buf, ',')
		}
		f.endLine()
		return
	}
	if comma {
		f.buf = append(f.buf, ',')
	}
	for i, seg := range segs {
		if i == 0 {
			f.commentPad()
		} else {
			f.endLine()
			f.startLine(depth)
		}
		f.appendComment(seg)
	}
	f.endLine()
}

// appendComment writes comment text verbatim. Line breaks inside a block
// comment are rewritten with the configured end-of-line sequence.
func (f *formatter) appendComment(text string) {
	for i, line := range splitCommentLines(text) {
		if i > 0 {
			f.endLine()
		}
		f.buf = append(f.buf, line...)
	}
}
