// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classindex

import "math"

// cursor is a bounds-checked big-endian reader over a byte slice. It
// carries no state beyond the slice and a moving offset.
type cursor struct {
	data []byte
	off  uint32
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

func (c *cursor) remaining() uint32 {
	return uint32(len(c.data)) - c.off
}

func (c *cursor) atEnd() bool {
	return c.off >= uint32(len(c.data))
}

func (c *cursor) require(n uint32) error {
	if c.off > uint32(len(c.data)) || c.remaining() < n {
		return newError(Truncated, "", int(c.off), "need %d bytes, have %d", n, c.remaining())
	}
	return nil
}

func (c *cursor) u8() (uint8, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	v := c.data[c.off]
	c.off++
	return v, nil
}

func (c *cursor) u16() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := uint16(c.data[c.off])<<8 | uint16(c.data[c.off+1])
	c.off += 2
	return v, nil
}

func (c *cursor) u32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := uint32(c.data[c.off])<<24 | uint32(c.data[c.off+1])<<16 |
		uint32(c.data[c.off+2])<<8 | uint32(c.data[c.off+3])
	c.off += 4
	return v, nil
}

func (c *cursor) u64() (uint64, error) {
	hi, err := c.u32()
	if err != nil {
		return 0, err
	}
	lo, err := c.u32()
	if err != nil {
		return 0, err
	}
	return uint64(hi)<<32 | uint64(lo), nil
}

func (c *cursor) i32() (int32, error) {
	v, err := c.u32()
	return int32(v), err
}

func (c *cursor) i64() (int64, error) {
	v, err := c.u64()
	return int64(v), err
}

func (c *cursor) f32() (float32, error) {
	v, err := c.u32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (c *cursor) f64() (float64, error) {
	v, err := c.u64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (c *cursor) skip(n uint32) error {
	if err := c.require(n); err != nil {
		return err
	}
	c.off += n
	return nil
}

func (c *cursor) take(n uint32) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}
