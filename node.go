package fracjson

// Kind identifies the type of a Node.
type Kind uint8

const (
	Null Kind = iota
	False
	True
	String
	Number
	Object
	Array
	BlankLine
	LineComment
	BlockComment
)

var kindNames = [...]string{
	Null:         "null",
	False:        "false",
	True:         "true",
	String:       "string",
	Number:       "number",
	Object:       "object",
	Array:        "array",
	BlankLine:    "blank-line",
	LineComment:  "line-comment",
	BlockComment: "block-comment",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsComment reports whether k is a line or block comment.
func (k Kind) IsComment() bool {
	return k == LineComment || k == BlockComment
}

// IsCommentOrBlank reports whether k is a comment or a blank line.
func (k Kind) IsCommentOrBlank() bool {
	return k.IsComment() || k == BlankLine
}

// IsContainer reports whether k owns children (Object or Array).
func (k Kind) IsContainer() bool {
	return k == Object || k == Array
}

// IsValue reports whether k is a scalar JSON value.
func (k Kind) IsValue() bool {
	switch k {
	case String, Number, True, False, Null:
		return true
	default:
		return false
	}
}

// Position is a 1-based line and column in the source text.
type Position struct {
	Line   int
	Column int
}

// Node is one element of a document tree.
//
// Value holds the decoded text of a string, the raw literal of a number, or
// the full text of a comment including its delimiters. Only containers own
// Children, and only the children of an Object carry a Name. An empty
// comment field means no comment is attached.
type Node struct {
	Kind     Kind
	Name     string
	Value    string
	Children []*Node

	PrefixComment  string
	MiddleComment  string
	PostfixComment string
	// PostfixLineStyle is set when PostfixComment ends the line (a // comment).
	PostfixLineStyle bool

	Pos Position
}

// HasComments reports whether any comment is attached to n.
func (n *Node) HasComments() bool {
	return n.PrefixComment != "" || n.MiddleComment != "" || n.PostfixComment != ""
}

// IsEmpty reports whether n is a container without children.
func (n *Node) IsEmpty() bool {
	return n.Kind.IsContainer() && len(n.Children) == 0
}

// literal returns the text a scalar renders as.
func (n *Node) literal() string {
	switch n.Kind {
	case True:
		return "true"
	case False:
		return "false"
	case Null:
		return "null"
	default:
		return n.Value
	}
}

// NewObject returns an Object node owning children.
func NewObject(children ...*Node) *Node {
	return &Node{Kind: Object, Children: children}
}

// NewArray returns an Array node owning children.
func NewArray(children ...*Node) *Node {
	return &Node{Kind: Array, Children: children}
}

// NewString returns a String node holding the decoded text s.
func NewString(s string) *Node {
	return &Node{Kind: String, Value: s}
}

// NewNumber returns a Number node holding the literal text s.
func NewNumber(s string) *Node {
	return &Node{Kind: Number, Value: s}
}

// NewBool returns a True or False node.
func NewBool(v bool) *Node {
	if v {
		return &Node{Kind: True, Value: "true"}
	}
	return &Node{Kind: False, Value: "false"}
}

// NewNull returns a Null node.
func NewNull() *Node {
	return &Node{Kind: Null, Value: "null"}
}

// NewComment returns a standalone comment node. Text must include its
// delimiters; a leading "//" selects LineComment.
func NewComment(text string) *Node {
	if isLineComment(text) {
		return &Node{Kind: LineComment, Value: text}
	}
	return &Node{Kind: BlockComment, Value: text}
}

// Named sets n.Name and returns n, for building object members.
func (n *Node) Named(name string) *Node {
	n.Name = name
	return n
}
