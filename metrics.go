package fracjson

// Metrics are the layout measures of one node, derived bottom-up.
type Metrics struct {
	// Complexity is 0 for leaves and 1 + the deepest child for containers.
	Complexity int
	// MinimumLength is the byte length of the node rendered on one line.
	MinimumLength int
	// ForcesMultiline is set when a comment anywhere below the node rules
	// out single-line rendering.
	ForcesMultiline bool
}

// item pairs a node with its metrics and the items of its children. Items
// are built once per Format call and never modified afterwards.
type item struct {
	node *Node
	Metrics

	// children holds every child that is rendered in expanded layout,
	// including standalone comments and blank lines.
	children []*item
	// values holds the value children only.
	values []*item
	// nested is set when a value child is itself a container.
	nested bool

	// Comments that survive the comment policy.
	prefix   string
	middle   string
	postfix  string
	lineNote bool

	// flat holds the one-line rendering of a container nested deeper than
	// MaxNestingDepth. Such items have no children.
	flat   string
	capped bool
}

// hasComments reports whether the item carries an attached comment.
func (it *item) hasComments() bool {
	return it.prefix != "" || it.middle != "" || it.postfix != ""
}

// measure builds the item tree for root in a single bottom-up pass.
// Containers nested deeper than MaxNestingDepth are not descended into; they
// are rendered on one line without their comments.
func measure(root *Node, opts *Options) *item {
	return measureNode(root, opts, 0)
}

func measureNode(n *Node, opts *Options, depth int) *item {
	it := &item{node: n}
	if n.Kind.IsContainer() && depth >= MaxNestingDepth {
		flat, levels := appendFlat(nil, n, opts)
		it.flat = string(flat)
		it.capped = true
		it.MinimumLength = len(flat)
		it.Complexity = levels
		return it
	}
	if opts.preserveComments() {
		it.prefix = n.PrefixComment
		it.middle = n.MiddleComment
		it.postfix = n.PostfixComment
		it.lineNote = n.PostfixLineStyle && n.PostfixComment != ""
	}

	switch n.Kind {
	case Object, Array:
		measureContainer(it, opts, depth)
	case String:
		it.MinimumLength = quotedLen(n.Value)
	case BlankLine:
		it.MinimumLength = 0
	default:
		it.MinimumLength = len(n.literal())
	}
	return it
}

func measureContainer(it *item, opts *Options, depth int) {
	n := it.node
	properties := false
	if n.Kind == Object {
		for _, c := range n.Children {
			if !c.Kind.IsCommentOrBlank() {
				properties = true
				break
			}
		}
	}

	it.children = make([]*item, 0, len(n.Children))
	for _, c := range n.Children {
		switch {
		case c.Kind.IsComment():
			if !opts.preserveComments() || properties {
				continue
			}
		case c.Kind == BlankLine:
			if !opts.PreserveBlankLines {
				continue
			}
			// Leading blank lines and runs of blank lines collapse.
			if len(it.children) == 0 || it.children[len(it.children)-1].node.Kind == BlankLine {
				continue
			}
		}
		child := measureNode(c, opts, depth+1)
		it.children = append(it.children, child)
		if !c.Kind.IsCommentOrBlank() {
			it.values = append(it.values, child)
		}
	}
	for len(it.children) > 0 && it.children[len(it.children)-1].node.Kind == BlankLine {
		it.children = it.children[:len(it.children)-1]
	}

	maxChild := 0
	length := 0
	for _, c := range it.children {
		if c.Complexity > maxChild {
			maxChild = c.Complexity
		}
		if c.node.Kind.IsComment() || c.hasComments() || c.ForcesMultiline {
			it.ForcesMultiline = true
		}
	}
	it.Complexity = 1 + maxChild

	for _, v := range it.values {
		if v.node.Kind.IsContainer() {
			it.nested = true
		}
		length += v.MinimumLength
		if n.Kind == Object {
			length += quotedLen(v.node.Name) + 1
			if opts.ColonPadding {
				length++
			}
		}
	}
	if k := len(it.values); k > 0 {
		length += (k - 1) * commaWidth(opts)
		if bracketPadding(it, opts) {
			length += 2
		}
	}
	it.MinimumLength = length + 2
}

// commaWidth is the width of an inline separator.
func commaWidth(opts *Options) int {
	if opts.CommaPadding {
		return 2
	}
	return 1
}

// bracketPadding reports whether the inline form of it pads its brackets.
func bracketPadding(it *item, opts *Options) bool {
	if len(it.values) == 0 {
		return false
	}
	if it.nested {
		return opts.NestedBracketPadding
	}
	return opts.SimpleBracketPadding
}

// appendFlat writes n on one line using an explicit stack and returns the
// number of container levels it holds. Comments and blank lines are dropped
// and brackets are never padded.
func appendFlat(dst []byte, n *Node, opts *Options) ([]byte, int) {
	type frame struct {
		n     *Node
		next  int
		count int
	}
	sep := ","
	if opts.CommaPadding {
		sep = ", "
	}
	colon := ":"
	if opts.ColonPadding {
		colon = ": "
	}

	var stack []frame
	levels := 0
	write := func(v *Node) {
		if !v.Kind.IsContainer() {
			if v.Kind == String {
				dst = appendQuoted(dst, v.Value)
			} else {
				dst = append(dst, v.literal()...)
			}
			return
		}
		open, _ := brackets(v.Kind)
		dst = append(dst, open)
		stack = append(stack, frame{n: v})
		levels = max(levels, len(stack))
	}

	write(n)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.n.Children) {
			_, close := brackets(top.n.Kind)
			dst = append(dst, close)
			stack = stack[:len(stack)-1]
			continue
		}
		c := top.n.Children[top.next]
		top.next++
		if c.Kind.IsCommentOrBlank() {
			continue
		}
		if top.count > 0 {
			dst = append(dst, sep...)
		}
		top.count++
		if top.n.Kind == Object {
			dst = appendQuoted(dst, c.Name)
			dst = append(dst, colon...)
		}
		write(c)
	}
	return dst, levels
}
