// Package console prints tagged, line-oriented log output without fmt.
//
//	log := console.New(w, "thermo")
//	log.Line().Str("temp ").Int(21500).Str(" mC").End()   // [thermo] temp 21500 mC
//
// A Console is not safe for concurrent use; each rig owns one.
package console

import (
	"io"

	"embeddedpg-go/x/conv"
)

const lineMax = 160

// Console formats one line at a time into a fixed buffer and writes it to
// the sink on End. Lines longer than the buffer are truncated.
type Console struct {
	w   io.Writer
	tag string
	buf [lineMax]byte
	n   int
	tmp [64]byte
}

// New returns a console writing to w. An empty tag omits the prefix.
func New(w io.Writer, tag string) *Console {
	if w == nil {
		w = io.Discard
	}
	return &Console{w: w, tag: tag}
}

// With returns a console sharing the sink under another tag.
func (c *Console) With(tag string) *Console { return New(c.w, tag) }

// Line starts a new line, discarding any unfinished one.
func (c *Console) Line() *Console {
	c.n = 0
	if c.tag != "" {
		c.put("[")
		c.put(c.tag)
		c.put("] ")
	}
	return c
}

// Str appends s.
func (c *Console) Str(s string) *Console { c.put(s); return c }

// Bytes appends b verbatim.
func (c *Console) Bytes(b []byte) *Console { c.putb(b); return c }

// Char appends a single byte.
func (c *Console) Char(b byte) *Console {
	if c.n < lineMax {
		c.buf[c.n] = b
		c.n++
	}
	return c
}

// Int appends n in base 10.
func (c *Console) Int(n int64) *Console { c.putb(conv.Itoa(c.tmp[:20], n)); return c }

// Uint appends n in base 10.
func (c *Console) Uint(n uint64) *Console { c.putb(conv.Utoa(c.tmp[:20], n)); return c }

// Hex appends n in lowercase hex without a prefix.
func (c *Console) Hex(n uint64) *Console { c.putb(conv.Hex(c.tmp[:16], n)); return c }

// HexBytes appends each byte as two hex digits separated by sep.
func (c *Console) HexBytes(b []byte, sep byte) *Console {
	for i, v := range b {
		if i > 0 && sep != 0 {
			c.Char(sep)
		}
		c.putb(conv.Byte2Hex(c.tmp[:2], v))
	}
	return c
}

// Bin appends v in base 2, zero-padded to width digits.
func (c *Console) Bin(v uint64, width int) *Console {
	c.putb(conv.Bin(c.tmp[:], v, width))
	return c
}

// Err appends err's message, or "<nil>".
func (c *Console) Err(err error) *Console {
	if err == nil {
		c.put("<nil>")
		return c
	}
	c.put(err.Error())
	return c
}

// End terminates the line and writes it out. Sink errors are dropped.
func (c *Console) End() {
	if c.n == lineMax {
		c.buf[lineMax-1] = '\n'
	} else {
		c.buf[c.n] = '\n'
		c.n++
	}
	_, _ = c.w.Write(c.buf[:c.n])
	c.n = 0
}

// Print writes s as a whole line.
func (c *Console) Print(s string) { c.Line().Str(s).End() }

// Error writes "msg: err" as a whole line.
func (c *Console) Error(msg string, err error) { c.Line().Str(msg).Str(": ").Err(err).End() }

func (c *Console) put(s string) {
	c.n += copy(c.buf[c.n:], s)
}

func (c *Console) putb(b []byte) {
	c.n += copy(c.buf[c.n:], b)
}
