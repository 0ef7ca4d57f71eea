package fracjson

// itemsPerRow is how many values of it share one line in compact layout
// at depth. It is never less than one.
func itemsPerRow(it *item, opts *Options, depth int) int {
	if len(it.values) == 0 {
		return 1
	}
	avail := max(opts.MaxTotalLineLength-(depth+1)*opts.IndentSpaces, 0)
	total := 0
	for _, v := range it.values {
		total += v.MinimumLength
	}
	avg := total / len(it.values)
	if avg == 0 {
		return 1
	}
	return max(avail/avg, 1)
}

// compactArray packs the values of it several per line. Every value except
// the last one overall is followed by a comma.
func (f *formatter) compactArray(it *item, depth int) {
	f.buf = append(f.buf, '[')
	f.endLine()

	perRow := itemsPerRow(it, f.opts, depth)
	col := newNumberColumn(f.opts.NumberListAlignment, it.values)
	last := len(it.values) - 1
	for i, v := range it.values {
		if i%perRow == 0 {
			if i > 0 {
				f.endLine()
			}
			f.startLine(depth + 1)
		}
		if col.mode != AlignNone {
			f.alignedNumber(v, col)
		} else {
			f.inline(v)
		}
		if i < last {
			f.comma()
		}
	}
	f.endLine()
	f.startLine(depth)
	f.buf = append(f.buf, ']')
}
