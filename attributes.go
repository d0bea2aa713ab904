// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classindex

// attributeSet is the result of scanning an attribute_info table: the
// two attributes this decoder cares about (Signature, Exceptions), with
// everything else skipped by its declared length. Untracked attributes
// are intentionally dropped rather than retained by name/bytes, since
// nothing downstream of §4.D consumes them.
type attributeSet struct {
	// signature is nil when no Signature attribute was present,
	// distinguishing "absent" from "present but empty" per the Open
	// Question resolved in SPEC_FULL.md §9.
	signature *string

	// exceptionClassNames holds the resolved binary class names of an
	// Exceptions attribute's checked-exception table, if present.
	exceptionClassNames []string
}

// parseAttributes reads an attribute_info table of the given count,
// recognizing "Signature" and "Exceptions" by name and skipping every
// other attribute by its declared attribute_length, same tolerant
// skip-unknown approach the daimatz-gojvm parser and ParseDataDirectories'
// per-entry dispatch both use: one attribute's shape never needs to be
// understood to move past it.
func parseAttributes(c *cursor, pool *constantPool, count uint16) (*attributeSet, error) {
	set := &attributeSet{}

	for i := uint16(0); i < count; i++ {
		nameIndex, err := c.u16()
		if err != nil {
			return nil, err
		}
		length, err := c.u32()
		if err != nil {
			return nil, err
		}
		name, err := pool.utf8(nameIndex)
		if err != nil {
			return nil, err
		}

		body, err := c.take(length)
		if err != nil {
			return nil, err
		}

		switch name {
		case "Signature":
			sig, err := parseSignatureAttribute(body, pool)
			if err != nil {
				return nil, err
			}
			set.signature = &sig

		case "Exceptions":
			names, err := parseExceptionsAttribute(body, pool)
			if err != nil {
				return nil, err
			}
			set.exceptionClassNames = names
		}
	}

	return set, nil
}

// parseSignatureAttribute reads a Signature attribute's single
// signature_index field out of its already-isolated body.
func parseSignatureAttribute(body []byte, pool *constantPool) (string, error) {
	c := newCursor(body)
	idx, err := c.u16()
	if err != nil {
		return "", err
	}
	return pool.utf8(idx)
}

// parseExceptionsAttribute reads an Exceptions attribute's
// number_of_exceptions-prefixed table of Class-entry indexes, resolving
// each to its binary class name.
func parseExceptionsAttribute(body []byte, pool *constantPool) ([]string, error) {
	c := newCursor(body)
	count, err := c.u16()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for i := uint16(0); i < count; i++ {
		idx, err := c.u16()
		if err != nil {
			return nil, err
		}
		name, err := pool.className(idx)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}
