package format

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/chronofmt"
	"github.com/npillmayer/chronofmt/symbols"
	pool "github.com/jolestar/go-commons-pool"
)

// printContext carries the per-call state of one print run: the symbol
// set, the locale's name table and the value source.
type printContext struct {
	syms  *symbols.Symbols
	names *symbols.FieldNames
	src   chronofmt.FieldSource
}

// parseContext carries the mutable state of one parse run. It starts
// out case-sensitive and strict; toggle elements flip the flags as the
// parse passes over them. Field values are recorded last-write-wins.
type parseContext struct {
	syms          *symbols.Symbols
	names         *symbols.FieldNames
	caseSensitive bool
	strict        bool
	fields        chronofmt.FieldMap
	offset        chronofmt.Offset
	hasOffset     bool
	zone          string
}

func (pc *parseContext) reset(syms *symbols.Symbols, names *symbols.FieldNames) {
	pc.syms = syms
	pc.names = names
	pc.caseSensitive = true
	pc.strict = true
	if pc.fields == nil {
		pc.fields = make(chronofmt.FieldMap, 8)
	} else {
		for f := range pc.fields {
			delete(pc.fields, f)
		}
	}
	pc.offset = 0
	pc.hasOffset = false
	pc.zone = ""
}

func (pc *parseContext) setField(f *chronofmt.FieldRule, v int64) {
	pc.fields[f] = v
}

func (pc *parseContext) setOffset(off chronofmt.Offset) {
	pc.offset = off
	pc.hasOffset = true
}

func (pc *parseContext) setZone(id string) {
	pc.zone = id
}

// match tests whether text at pos begins with pattern, honoring the
// context's case sensitivity. It returns the number of bytes of text
// matched, or -1. Under case folding the matched length may differ
// from len(pattern).
func (pc *parseContext) match(text string, pos int, pattern string) int {
	if pc.caseSensitive {
		if strings.HasPrefix(text[pos:], pattern) {
			return len(pattern)
		}
		return -1
	}
	rest := text[pos:]
	n := 0
	for _, pr := range pattern {
		tr, size := utf8.DecodeRuneInString(rest[n:])
		if size == 0 || !runesEqualFold(tr, pr) {
			return -1
		}
		n += size
	}
	return n
}

// commonPrefix reports how many bytes of text at pos match a leading
// part of pattern, honoring the context's case sensitivity.
func (pc *parseContext) commonPrefix(text string, pos int, pattern string) int {
	rest := text[pos:]
	n := 0
	for _, pr := range pattern {
		tr, size := utf8.DecodeRuneInString(rest[n:])
		if size == 0 {
			break
		}
		if pc.caseSensitive {
			if tr != pr {
				break
			}
		} else if !runesEqualFold(tr, pr) {
			break
		}
		n += size
	}
	return n
}

// Runes compare equal under folding when either their upper or their
// lower case forms agree.
func runesEqualFold(a, b rune) bool {
	return a == b ||
		unicode.ToUpper(a) == unicode.ToUpper(b) ||
		unicode.ToLower(a) == unicode.ToLower(b)
}

// parseFrame captures the recorded state of a parse context, so that
// an optional section can discard everything its children recorded
// when the section fails as a whole.
type parseFrame struct {
	fields    chronofmt.FieldMap
	offset    chronofmt.Offset
	hasOffset bool
	zone      string
}

func (pc *parseContext) snapshot() parseFrame {
	fields := make(chronofmt.FieldMap, len(pc.fields))
	for f, v := range pc.fields {
		fields[f] = v
	}
	return parseFrame{
		fields:    fields,
		offset:    pc.offset,
		hasOffset: pc.hasOffset,
		zone:      pc.zone,
	}
}

func (pc *parseContext) restore(fr parseFrame) {
	for f := range pc.fields {
		delete(pc.fields, f)
	}
	for f, v := range fr.fields {
		pc.fields[f] = v
	}
	pc.offset = fr.offset
	pc.hasOffset = fr.hasOffset
	pc.zone = fr.zone
}

// harvest copies the parse results out of the context, so the context
// can be recycled.
func (pc *parseContext) harvest() *Parsed {
	fields := make(chronofmt.FieldMap, len(pc.fields))
	for f, v := range pc.fields {
		fields[f] = v
	}
	return &Parsed{
		fields:    fields,
		offset:    pc.offset,
		hasOffset: pc.hasOffset,
		zone:      pc.zone,
	}
}

// Parse contexts are short-lived objects. To avoid multiple allocation
// of small objects we will pool them.
type contextPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalContextPool *contextPool

func init() {
	globalContextPool = &contextPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			pc := &parseContext{}
			return pc, nil
		})
	globalContextPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalContextPool.opool = pool.NewObjectPool(globalContextPool.ctx, factory, config)
}

// borrowParseContext returns a parse context from the pool, reset to
// the default flags.
func borrowParseContext(syms *symbols.Symbols, names *symbols.FieldNames) *parseContext {
	o, _ := globalContextPool.opool.BorrowObject(globalContextPool.ctx)
	pc := o.(*parseContext)
	pc.reset(syms, names)
	return pc
}

// Clears the context and puts it back into the pool.
func (pc *parseContext) release() {
	pc.syms = nil
	pc.names = nil
	_ = globalContextPool.opool.ReturnObject(globalContextPool.ctx, pc)
}
