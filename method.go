// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classindex

// MethodRecord describes one method_info entry resolved against the
// constant pool, per spec §3, including any checked exceptions declared
// via an Exceptions attribute.
type MethodRecord struct {
	AccessFlags AccessFlags
	Name        string
	Descriptor  string
	Signature   *string
	Exceptions  []string
}

// parseMethods reads the methods_count-prefixed method_info table.
// Every entry is walked regardless of keep, so the cursor always lands
// past the table at the correct offset; keep controls whether the
// decoded records are retained in the result.
func parseMethods(c *cursor, pool *constantPool, count uint16, keep bool) ([]MethodRecord, error) {
	methods := make([]MethodRecord, 0, count)
	for i := uint16(0); i < count; i++ {
		m, err := parseMethod(c, pool)
		if err != nil {
			return nil, err
		}
		if keep {
			methods = append(methods, m)
		}
	}
	return methods, nil
}

func parseMethod(c *cursor, pool *constantPool) (MethodRecord, error) {
	accessFlags, err := c.u16()
	if err != nil {
		return MethodRecord{}, err
	}
	nameIndex, err := c.u16()
	if err != nil {
		return MethodRecord{}, err
	}
	descriptorIndex, err := c.u16()
	if err != nil {
		return MethodRecord{}, err
	}
	attrCount, err := c.u16()
	if err != nil {
		return MethodRecord{}, err
	}

	name, err := pool.utf8(nameIndex)
	if err != nil {
		return MethodRecord{}, err
	}
	descriptor, err := pool.utf8(descriptorIndex)
	if err != nil {
		return MethodRecord{}, err
	}
	attrs, err := parseAttributes(c, pool, attrCount)
	if err != nil {
		return MethodRecord{}, err
	}

	return MethodRecord{
		AccessFlags: AccessFlags(accessFlags),
		Name:        name,
		Descriptor:  descriptor,
		Signature:   attrs.signature,
		Exceptions:  attrs.exceptionClassNames,
	}, nil
}
