// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classindex

import "encoding/binary"

// classBuilder assembles minimal, valid .class byte streams for tests
// without needing real javac output on disk.
type classBuilder struct {
	buf         []byte
	poolEntries [][]byte
}

func newClassBuilder() *classBuilder {
	return &classBuilder{poolEntries: [][]byte{nil}} // index 0 unused
}

func (b *classBuilder) addUtf8(s string) uint16 {
	entry := append([]byte{TagUtf8}, u16(uint16(len(s)))...)
	entry = append(entry, []byte(s)...)
	b.poolEntries = append(b.poolEntries, entry)
	return uint16(len(b.poolEntries) - 1)
}

func (b *classBuilder) addClass(nameIdx uint16) uint16 {
	entry := append([]byte{TagClass}, u16(nameIdx)...)
	b.poolEntries = append(b.poolEntries, entry)
	return uint16(len(b.poolEntries) - 1)
}

func (b *classBuilder) addNameAndType(nameIdx, descIdx uint16) uint16 {
	entry := append([]byte{TagNameAndType}, append(u16(nameIdx), u16(descIdx)...)...)
	b.poolEntries = append(b.poolEntries, entry)
	return uint16(len(b.poolEntries) - 1)
}

func (b *classBuilder) addLong(v int64) uint16 {
	entry := append([]byte{TagLong}, u64(uint64(v))...)
	b.poolEntries = append(b.poolEntries, entry, nil) // reserved slot
	return uint16(len(b.poolEntries) - 2)
}

func u16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func u32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func u64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// signatureAttribute builds a Signature attribute_info given its name
// index (must point at a Utf8 "Signature" constant) and a signature
// index (must point at the Utf8 signature string).
func signatureAttribute(nameIdx, sigIdx uint16) []byte {
	body := u16(sigIdx)
	attr := append(u16(nameIdx), u32(uint32(len(body)))...)
	return append(attr, body...)
}

// exceptionsAttribute builds an Exceptions attribute_info from a name
// index and the Class-entry indexes of each checked exception.
func exceptionsAttribute(nameIdx uint16, exceptionClassIdx ...uint16) []byte {
	body := u16(uint16(len(exceptionClassIdx)))
	for _, idx := range exceptionClassIdx {
		body = append(body, u16(idx)...)
	}
	attr := append(u16(nameIdx), u32(uint32(len(body)))...)
	return append(attr, body...)
}

// build assembles the full class file: magic, versions, constant pool,
// access flags, this/super/interfaces, fields, methods and class
// attributes (each already serialized by the caller).
func (b *classBuilder) build(minor, major uint16, accessFlags uint16, thisClass, superClass uint16,
	interfaces []uint16, fields, methods [][]byte, classAttrs []byte) []byte {

	out := append([]byte{}, u32(magicValue)...)
	out = append(out, u16(minor)...)
	out = append(out, u16(major)...)

	out = append(out, u16(uint16(len(b.poolEntries)))...)
	for i := 1; i < len(b.poolEntries); i++ {
		if b.poolEntries[i] == nil {
			continue // reserved Long/Double slot
		}
		out = append(out, b.poolEntries[i]...)
	}

	out = append(out, u16(accessFlags)...)
	out = append(out, u16(thisClass)...)
	out = append(out, u16(superClass)...)

	out = append(out, u16(uint16(len(interfaces)))...)
	for _, idx := range interfaces {
		out = append(out, u16(idx)...)
	}

	out = append(out, u16(uint16(len(fields)))...)
	for _, f := range fields {
		out = append(out, f...)
	}

	out = append(out, u16(uint16(len(methods)))...)
	for _, m := range methods {
		out = append(out, m...)
	}

	if classAttrs == nil {
		out = append(out, u16(0)...)
	} else {
		out = append(out, classAttrs...)
	}

	return out
}

// fieldInfo builds one field_info entry with no attributes.
func fieldInfo(accessFlags, nameIdx, descIdx uint16) []byte {
	out := append(u16(accessFlags), u16(nameIdx)...)
	out = append(out, u16(descIdx)...)
	out = append(out, u16(0)...) // attributes_count
	return out
}

// fieldInfoWithAttrs builds one field_info entry carrying the given
// already-serialized attribute_info blobs.
func fieldInfoWithAttrs(accessFlags, nameIdx, descIdx uint16, attrs ...[]byte) []byte {
	out := append(u16(accessFlags), u16(nameIdx)...)
	out = append(out, u16(descIdx)...)
	out = append(out, u16(uint16(len(attrs)))...)
	for _, a := range attrs {
		out = append(out, a...)
	}
	return out
}

// methodInfoWithAttrs builds one method_info entry carrying the given
// already-serialized attribute_info blobs.
func methodInfoWithAttrs(accessFlags, nameIdx, descIdx uint16, attrs ...[]byte) []byte {
	return fieldInfoWithAttrs(accessFlags, nameIdx, descIdx, attrs...)
}

// classAttrsBlob wraps a set of already-serialized attribute_info blobs
// into a full attributes_count-prefixed table.
func classAttrsBlob(attrs ...[]byte) []byte {
	out := u16(uint16(len(attrs)))
	for _, a := range attrs {
		out = append(out, a...)
	}
	return out
}

// minimalClass builds the smallest class file the S1 scenario
// describes: public final class Foo extends java.lang.Object, no
// fields, no methods, no class attributes.
func minimalClass() []byte {
	b := newClassBuilder()
	objectName := b.addUtf8("java/lang/Object")
	objectClass := b.addClass(objectName)
	fooName := b.addUtf8("Foo")
	fooClass := b.addClass(fooName)

	return b.build(0, 52, uint16(AccPublic|AccFinal|AccSuper), fooClass, objectClass,
		nil, nil, nil, nil)
}
