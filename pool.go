package fracjson

import "sync"

const maxScratchCap = 64 * 1024

var parserPool = sync.Pool{
	New: func() any {
		return &parser{}
	},
}

var formatterPool = sync.Pool{
	New: func() any {
		return &formatter{}
	},
}

func acquireParser() *parser {
	return parserPool.Get().(*parser)
}

func releaseParser(p *parser) {
	if p == nil {
		return
	}
	p.scanner.Reset(nil)
	p.sliceReader.Reset(nil)
	p.silentErr = false
	p.carry = p.carry[:0]
	p.triv.reset()
	if cap(p.decodedBuf) > maxScratchCap {
		p.decodedBuf = nil
	} else {
		p.decodedBuf = p.decodedBuf[:0]
	}
	parserPool.Put(p)
}

func acquireFormatter(opts *Options) *formatter {
	f := formatterPool.Get().(*formatter)
	f.opts = opts
	f.eol = opts.EOLString()
	f.buf = f.buf[:0]
	return f
}

func releaseFormatter(f *formatter) {
	if f == nil {
		return
	}
	f.opts = nil
	if cap(f.buf) > maxScratchCap {
		f.buf = nil
	} else {
		f.buf = f.buf[:0]
	}
	formatterPool.Put(f)
}
