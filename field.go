// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classindex

// FieldRecord describes one field_info entry resolved against the
// constant pool, per spec §3.
type FieldRecord struct {
	AccessFlags AccessFlags
	Name        string
	Descriptor  string
	Signature   *string
}

// parseFields reads the fields_count-prefixed field_info table. Every
// entry is walked regardless of keep, so the cursor always lands past
// the table at the correct offset; keep controls whether the decoded
// records are retained in the result.
func parseFields(c *cursor, pool *constantPool, count uint16, keep bool) ([]FieldRecord, error) {
	fields := make([]FieldRecord, 0, count)
	for i := uint16(0); i < count; i++ {
		f, err := parseField(c, pool)
		if err != nil {
			return nil, err
		}
		if keep {
			fields = append(fields, f)
		}
	}
	return fields, nil
}

func parseField(c *cursor, pool *constantPool) (FieldRecord, error) {
	accessFlags, err := c.u16()
	if err != nil {
		return FieldRecord{}, err
	}
	nameIndex, err := c.u16()
	if err != nil {
		return FieldRecord{}, err
	}
	descriptorIndex, err := c.u16()
	if err != nil {
		return FieldRecord{}, err
	}
	attrCount, err := c.u16()
	if err != nil {
		return FieldRecord{}, err
	}

	name, err := pool.utf8(nameIndex)
	if err != nil {
		return FieldRecord{}, err
	}
	descriptor, err := pool.utf8(descriptorIndex)
	if err != nil {
		return FieldRecord{}, err
	}
	attrs, err := parseAttributes(c, pool, attrCount)
	if err != nil {
		return FieldRecord{}, err
	}

	return FieldRecord{
		AccessFlags: AccessFlags(accessFlags),
		Name:        name,
		Descriptor:  descriptor,
		Signature:   attrs.signature,
	}, nil
}
