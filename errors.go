// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classindex

import "fmt"

// ErrorKind enumerates the structured failure modes a decode can produce.
type ErrorKind int

const (
	// BadMagic means the first four bytes are not 0xCAFEBABE.
	BadMagic ErrorKind = iota

	// Truncated means a read ran past the end of the buffer or past a
	// declared attribute length.
	Truncated

	// BadPool means an unknown constant-pool tag, unsupported tag width,
	// or invalid index was encountered.
	BadPool

	// WrongPoolKind means an index resolved to an entry of the wrong tag
	// for its use.
	WrongPoolKind

	// BadString means a malformed modified-UTF-8 sequence was found.
	BadString

	// UnexpectedTrailing is a non-fatal warning: bytes remain after the
	// last declared attribute.
	UnexpectedTrailing
)

func (k ErrorKind) String() string {
	switch k {
	case BadMagic:
		return "BadMagic"
	case Truncated:
		return "Truncated"
	case BadPool:
		return "BadPool"
	case WrongPoolKind:
		return "WrongPoolKind"
	case BadString:
		return "BadString"
	case UnexpectedTrailing:
		return "UnexpectedTrailing"
	default:
		return "Unknown"
	}
}

// DecodeError carries a structured failure kind plus the decoding
// context (which table, which index) so callers can react without
// string-matching a message.
type DecodeError struct {
	Kind    ErrorKind
	Table   string
	Index   int
	Message string
}

func (e *DecodeError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (table=%s index=%d)", e.Kind, e.Message, e.Table, e.Index)
}

func newError(kind ErrorKind, table string, index int, format string, args ...interface{}) *DecodeError {
	return &DecodeError{
		Kind:    kind,
		Table:   table,
		Index:   index,
		Message: fmt.Sprintf(format, args...),
	}
}
