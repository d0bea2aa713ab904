// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classindex

import "strings"

// decodeModifiedUTF8 decodes the JVM's "modified UTF-8" variant of a
// Utf8 constant-pool entry into a Go string. ASCII 0x01-0x7F passes
// through as-is; the 2-byte form covers U+0000 and U+0080-U+07FF; the
// 3-byte form covers U+0800-U+FFFF; a supplementary character is
// represented as a pair of 3-byte sequences encoding a UTF-16
// surrogate pair, which must be recombined into one scalar.
func decodeModifiedUTF8(b []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(b))

	i := 0
	n := len(b)
	for i < n {
		b0 := b[i]
		switch {
		case b0 >= 0x01 && b0 <= 0x7F:
			sb.WriteByte(b0)
			i++

		case b0&0xE0 == 0xC0:
			if i+1 >= n {
				return "", newError(BadString, "", i, "truncated 2-byte sequence")
			}
			b1 := b[i+1]
			if b1&0xC0 != 0x80 {
				return "", newError(BadString, "", i, "malformed 2-byte sequence")
			}
			r := (rune(b0&0x1F) << 6) | rune(b1&0x3F)
			sb.WriteRune(r)
			i += 2

		case b0&0xF0 == 0xE0:
			if i+2 >= n {
				return "", newError(BadString, "", i, "truncated 3-byte sequence")
			}
			b1, b2 := b[i+1], b[i+2]
			if b1&0xC0 != 0x80 || b2&0xC0 != 0x80 {
				return "", newError(BadString, "", i, "malformed 3-byte sequence")
			}
			r := (rune(b0&0x0F) << 12) | (rune(b1&0x3F) << 6) | rune(b2&0x3F)

			if r >= 0xD800 && r <= 0xDBFF {
				// High surrogate: must be followed by a second 3-byte
				// sequence encoding the low surrogate.
				if i+5 >= n || b[i+3] != 0xED {
					return "", newError(BadString, "", i, "unpaired high surrogate")
				}
				b3, b4, b5 := b[i+3], b[i+4], b[i+5]
				if b4&0xC0 != 0x80 || b5&0xC0 != 0x80 {
					return "", newError(BadString, "", i, "malformed low surrogate sequence")
				}
				low := (rune(b3&0x0F) << 12) | (rune(b4&0x3F) << 6) | rune(b5&0x3F)
				if low < 0xDC00 || low > 0xDFFF {
					return "", newError(BadString, "", i, "invalid low surrogate")
				}
				scalar := 0x10000 + ((r - 0xD800) << 10) + (low - 0xDC00)
				sb.WriteRune(scalar)
				i += 6
				continue
			}
			if r >= 0xDC00 && r <= 0xDFFF {
				return "", newError(BadString, "", i, "unpaired low surrogate")
			}
			sb.WriteRune(r)
			i += 3

		default:
			return "", newError(BadString, "", i, "invalid leading byte 0x%02x", b0)
		}
	}
	return sb.String(), nil
}
