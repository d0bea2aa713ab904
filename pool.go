// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classindex

// Constant pool tag values, JVM spec table 4.4-A.
const (
	TagUtf8               = 1
	TagInteger            = 3
	TagFloat              = 4
	TagLong               = 5
	TagDouble             = 6
	TagClass              = 7
	TagString             = 8
	TagFieldref           = 9
	TagMethodref          = 10
	TagInterfaceMethodref = 11
	TagNameAndType        = 12
	TagMethodHandle       = 15
	TagMethodType         = 16
	TagDynamic            = 17
	TagInvokeDynamic      = 18
	TagModule             = 19
	TagPackage            = 20
)

// poolEntry is one slot of the constant pool. Only the fields relevant
// to the tag are populated; the rest are left at their zero value. This
// mirrors the daimatz-gojvm parser's flat-struct-per-entry shape rather
// than a Go interface-per-variant hierarchy, because nearly every
// consumer only ever needs name/ref resolution, not type-switching.
type poolEntry struct {
	tag byte

	// TagUtf8
	utf8Value string

	// TagClass, TagString, TagMethodType, TagModule, TagPackage
	nameIndex uint16

	// TagFieldref, TagMethodref, TagInterfaceMethodref
	classIndex       uint16
	nameAndTypeIndex uint16

	// TagNameAndType
	descriptorIndex uint16

	// TagInteger, TagFloat, TagLong, TagDouble
	intValue    int32
	floatValue  float32
	longValue   int64
	doubleValue float64

	// TagMethodHandle
	referenceKind  uint8
	referenceIndex uint16

	// TagDynamic, TagInvokeDynamic
	bootstrapMethodAttrIndex uint16

	// reserved is true for the unused slot that follows a Long or
	// Double entry, per JVM spec 4.4.5: "the constant_pool index n+1
	// must be considered invalid".
	reserved bool
}

// constantPool holds the decoded constant pool, 1-indexed as the class
// file format defines it; slot 0 is always invalid and unused.
type constantPool struct {
	entries []poolEntry
}

// parseConstantPool reads constant_pool_count-1 entries, honoring the
// Long/Double double-slot reservation rule.
func parseConstantPool(c *cursor, count uint16) (*constantPool, error) {
	pool := &constantPool{entries: make([]poolEntry, count)}

	for i := uint16(1); i < count; i++ {
		tag, err := c.u8()
		if err != nil {
			return nil, err
		}

		entry := poolEntry{tag: tag}

		switch tag {
		case TagUtf8:
			length, err := c.u16()
			if err != nil {
				return nil, err
			}
			raw, err := c.take(uint32(length))
			if err != nil {
				return nil, err
			}
			s, err := decodeModifiedUTF8(raw)
			if err != nil {
				return nil, err
			}
			entry.utf8Value = s

		case TagInteger:
			v, err := c.i32()
			if err != nil {
				return nil, err
			}
			entry.intValue = v

		case TagFloat:
			v, err := c.f32()
			if err != nil {
				return nil, err
			}
			entry.floatValue = v

		case TagLong:
			v, err := c.i64()
			if err != nil {
				return nil, err
			}
			entry.longValue = v

		case TagDouble:
			v, err := c.f64()
			if err != nil {
				return nil, err
			}
			entry.doubleValue = v

		case TagClass, TagString, TagMethodType, TagModule, TagPackage:
			v, err := c.u16()
			if err != nil {
				return nil, err
			}
			entry.nameIndex = v

		case TagFieldref, TagMethodref, TagInterfaceMethodref:
			ci, err := c.u16()
			if err != nil {
				return nil, err
			}
			nti, err := c.u16()
			if err != nil {
				return nil, err
			}
			entry.classIndex = ci
			entry.nameAndTypeIndex = nti

		case TagNameAndType:
			ni, err := c.u16()
			if err != nil {
				return nil, err
			}
			di, err := c.u16()
			if err != nil {
				return nil, err
			}
			entry.nameIndex = ni
			entry.descriptorIndex = di

		case TagMethodHandle:
			rk, err := c.u8()
			if err != nil {
				return nil, err
			}
			ri, err := c.u16()
			if err != nil {
				return nil, err
			}
			entry.referenceKind = rk
			entry.referenceIndex = ri

		case TagDynamic, TagInvokeDynamic:
			bmai, err := c.u16()
			if err != nil {
				return nil, err
			}
			ni, err := c.u16()
			if err != nil {
				return nil, err
			}
			entry.bootstrapMethodAttrIndex = bmai
			entry.nameAndTypeIndex = ni

		default:
			return nil, newError(BadPool, "constant_pool", int(i), "unknown tag %d", tag)
		}

		pool.entries[i] = entry

		if tag == TagLong || tag == TagDouble {
			i++
			if i < count {
				pool.entries[i] = poolEntry{reserved: true}
			}
		}
	}

	return pool, nil
}

func (p *constantPool) get(index uint16, table string) (*poolEntry, error) {
	if index == 0 || int(index) >= len(p.entries) {
		return nil, newError(BadPool, table, int(index), "index out of range")
	}
	e := &p.entries[index]
	if e.reserved {
		return nil, newError(BadPool, table, int(index), "index refers to unused slot after Long/Double")
	}
	return e, nil
}

// utf8 resolves a Utf8 entry at index.
func (p *constantPool) utf8(index uint16) (string, error) {
	e, err := p.get(index, "Utf8")
	if err != nil {
		return "", err
	}
	if e.tag != TagUtf8 {
		return "", newError(WrongPoolKind, "Utf8", int(index), "expected Utf8, got tag %d", e.tag)
	}
	return e.utf8Value, nil
}

// className resolves a Class entry at index to its binary name string.
func (p *constantPool) className(index uint16) (string, error) {
	e, err := p.get(index, "Class")
	if err != nil {
		return "", err
	}
	if e.tag != TagClass {
		return "", newError(WrongPoolKind, "Class", int(index), "expected Class, got tag %d", e.tag)
	}
	return p.utf8(e.nameIndex)
}

// nameAndType resolves a NameAndType entry at index to its name and
// descriptor strings.
func (p *constantPool) nameAndType(index uint16) (name, descriptor string, err error) {
	e, err := p.get(index, "NameAndType")
	if err != nil {
		return "", "", err
	}
	if e.tag != TagNameAndType {
		return "", "", newError(WrongPoolKind, "NameAndType", int(index), "expected NameAndType, got tag %d", e.tag)
	}
	name, err = p.utf8(e.nameIndex)
	if err != nil {
		return "", "", err
	}
	descriptor, err = p.utf8(e.descriptorIndex)
	if err != nil {
		return "", "", err
	}
	return name, descriptor, nil
}
