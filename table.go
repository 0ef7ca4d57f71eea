package fracjson

// tableRow is the pre-rendered form of one table row.
type tableRow struct {
	it *item
	// cells holds the rendered cells of a container row, or the row's own
	// text for a scalar row.
	cells []string
	open  byte
	close byte
}

// buildRows renders every cell of rows flat.
func (f *formatter) buildRows(rows []*item) []tableRow {
	out := make([]tableRow, len(rows))
	for i, r := range rows {
		out[i].it = r
		if !r.node.Kind.IsContainer() {
			out[i].cells = []string{f.flat(r)}
			continue
		}
		out[i].open, out[i].close = brackets(r.node.Kind)
		out[i].cells = make([]string, len(r.values))
		for j, v := range r.values {
			cell := f.flat(v)
			if r.node.Kind == Object {
				cell = f.flatName(v.node.Name) + cell
			}
			out[i].cells[j] = cell
		}
	}
	return out
}

// columnWidths returns the widest cell of every column across rows.
func columnWidths(rows []tableRow) []int {
	var widths []int
	for _, r := range rows {
		for j, c := range r.cells {
			if j == len(widths) {
				widths = append(widths, 0)
			}
			widths[j] = max(widths[j], len(c))
		}
	}
	return widths
}

// flat returns the single-line rendering of it.
func (f *formatter) flat(it *item) string {
	saved := f.buf
	f.buf = make([]byte, 0, it.MinimumLength)
	f.inline(it)
	s := string(f.buf)
	f.buf = saved
	return s
}

func (f *formatter) flatName(name string) string {
	saved := f.buf
	f.buf = make([]byte, 0, quotedLen(name)+2)
	f.propName(name, 0)
	s := string(f.buf)
	f.buf = saved
	return s
}

// table writes the values of it as rows of aligned columns. Cells never
// carry number alignment.
func (f *formatter) table(it *item, depth int) {
	open, close := brackets(it.node.Kind)
	f.buf = append(f.buf, open)
	f.endLine()

	rows := f.buildRows(it.values)
	widths := columnWidths(rows)
	pad := false
	for _, r := range it.values {
		if bracketPadding(r, f.opts) {
			pad = true
			break
		}
	}

	e := elem{object: it.node.Kind == Object}
	if e.object {
		e.namePad = f.namePadding(it.values)
	}
	nextLine := f.opts.TableCommaPlacement == CommaNextLine
	last := len(rows) - 1
	for i := range rows {
		row := &rows[i]
		e.comma = i < last && !nextLine
		e.leader = ""
		if nextLine {
			e.leader = "  "
			if i > 0 {
				e.leader = ", "
			}
			if !f.opts.CommaPadding {
				e.leader = e.leader[:1]
			}
		}
		f.element(row.it, depth+1, e, func() { f.tableRow(row, widths, pad) })
	}
	f.startLine(depth)
	f.buf = append(f.buf, close)
}

func (f *formatter) tableRow(row *tableRow, widths []int, pad bool) {
	if !row.it.node.Kind.IsContainer() {
		f.buf = append(f.buf, row.cells[0]...)
		return
	}
	f.buf = append(f.buf, row.open)
	if pad {
		f.buf = append(f.buf, ' ')
	}
	last := len(row.cells) - 1
	for j, c := range row.cells {
		f.buf = append(f.buf, c...)
		if j < last {
			f.buf = appendSpaces(f.buf, widths[j]-len(c))
			f.comma()
		}
	}
	if pad {
		f.buf = append(f.buf, ' ')
	}
	f.buf = append(f.buf, row.close)
}
