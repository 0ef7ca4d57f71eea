package fracjson

// Layout is the rendering strategy chosen for one container.
type Layout int

const (
	Inline Layout = iota
	CompactArray
	Table
	Expanded
)

func (l Layout) String() string {
	switch l {
	case Inline:
		return "inline"
	case CompactArray:
		return "compact-array"
	case Table:
		return "table"
	default:
		return "expanded"
	}
}

// chooseLayout picks the layout of a container rendered at depth. Scalars
// and empty containers are always Inline.
func chooseLayout(it *item, opts *Options, depth int) Layout {
	if !it.node.Kind.IsContainer() || len(it.children) == 0 {
		return Inline
	}
	if depth < opts.AlwaysExpandDepth {
		return Expanded
	}
	if fitsInline(it, opts, depth) {
		return Inline
	}
	if fitsCompactArray(it, opts) {
		return CompactArray
	}
	if fitsTable(it, opts) {
		return Table
	}
	return Expanded
}

func fitsInline(it *item, opts *Options, depth int) bool {
	if it.ForcesMultiline || it.hasComments() {
		return false
	}
	if it.Complexity > opts.MaxInlineComplexity {
		return false
	}
	return it.MinimumLength+depth*opts.IndentSpaces <= opts.MaxTotalLineLength
}

func fitsCompactArray(it *item, opts *Options) bool {
	if it.node.Kind != Array || it.ForcesMultiline || it.hasComments() {
		return false
	}
	if len(it.values) == 0 || it.Complexity > opts.MaxCompactArrayComplexity {
		return false
	}
	return len(it.values) >= opts.MinCompactArrayRowItems
}

// fitsTable reports whether it renders as rows of aligned columns. A forced
// array never qualifies; an object qualifies on the shape of its rows alone,
// provided no row carries comments of its own.
func fitsTable(it *item, opts *Options) bool {
	if len(it.values) == 0 || it.Complexity > opts.MaxTableRowComplexity {
		return false
	}
	switch it.node.Kind {
	case Array:
		if it.ForcesMultiline {
			return false
		}
		return uniformRows(it.values)
	case Object:
		return uniformObjectRows(it.values)
	}
	return false
}

// tableKind classifies a row for the array uniformity check. Empty
// containers have no table kind.
func tableKind(it *item) (Kind, bool) {
	if it.node.Kind.IsContainer() && len(it.values) == 0 {
		return 0, false
	}
	return it.node.Kind, true
}

func uniformRows(rows []*item) bool {
	first, ok := tableKind(rows[0])
	if !ok {
		return false
	}
	for _, r := range rows[1:] {
		k, ok := tableKind(r)
		if !ok || k != first {
			return false
		}
	}
	return true
}

func uniformObjectRows(rows []*item) bool {
	for _, r := range rows {
		if r.node.Kind != Object || len(r.values) == 0 || r.ForcesMultiline {
			return false
		}
	}
	names := rows[0].values
	for _, r := range rows[1:] {
		if len(r.values) != len(names) {
			return false
		}
		for i, v := range r.values {
			if v.node.Name != names[i].node.Name {
				return false
			}
		}
	}
	return true
}
