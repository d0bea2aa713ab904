// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classindex

import (
	"os"

	"github.com/ajheck/classindex/internal/obslog"
)

// magicValue is the four-byte 0xCAFEBABE class file signature, JVM
// spec 4.1.
const magicValue uint32 = 0xCAFEBABE

// Options controls how Decode/DecodeFile behaves.
type Options struct {
	// Logger receives Debugf/Warnf diagnostics emitted while decoding.
	// A nil Logger discards everything.
	Logger *obslog.Helper
}

func (o *Options) logger() *obslog.Helper {
	if o == nil || o.Logger == nil {
		return obslog.NewHelper(nil)
	}
	return o.Logger
}

// ClassView is the fully decoded, read-only view of one .class file,
// per spec §3.
type ClassView struct {
	MinorVersion uint16
	MajorVersion uint16
	VersionLabel string

	AccessFlags AccessFlags
	ThisClass   string
	SuperClass  string // "" for java/lang/Object, which has no superclass
	Interfaces  []string

	Fields  []FieldRecord
	Methods []MethodRecord

	// Signature is the class-level generic signature, nil if absent.
	Signature *string

	// Warnings holds non-fatal findings, e.g. UnexpectedTrailing.
	Warnings []string

	pool *constantPool
}

// Package returns the dot-separated package name of the class, or ""
// for the unnamed package.
func (v *ClassView) Package() string {
	return fqName(packageOf(v.ThisClass))
}

// SimpleName returns the class's unqualified name.
func (v *ClassView) SimpleName() string {
	return simpleNameOf(v.ThisClass)
}

// FQName returns the dot-separated fully qualified class name.
func (v *ClassView) FQName() string {
	return fqName(v.ThisClass)
}

// TypeLabel returns the class's type category ("class", "interface",
// "enum", "annotation", "abstract class") per §4.E's precedence rule.
func (v *ClassView) TypeLabel() string {
	return v.AccessFlags.TypeLabel()
}

// Decode parses a .class file already held in memory. methodsRequired
// controls whether field_info/method_info payloads are kept in the
// returned ClassView: when false, fields and methods are still walked
// byte-for-byte so the cursor lands at the right offset, but the
// decoded records are dropped rather than retained, per spec §4.G.
func Decode(data []byte, methodsRequired bool, opts *Options) (*ClassView, error) {
	log := opts.logger()
	c := newCursor(data)

	magic, err := c.u32()
	if err != nil {
		return nil, err
	}
	if magic != magicValue {
		return nil, newError(BadMagic, "", 0, "expected 0x%08X, got 0x%08X", magicValue, magic)
	}

	minor, err := c.u16()
	if err != nil {
		return nil, err
	}
	major, err := c.u16()
	if err != nil {
		return nil, err
	}

	poolCount, err := c.u16()
	if err != nil {
		return nil, err
	}
	pool, err := parseConstantPool(c, poolCount)
	if err != nil {
		return nil, err
	}

	accessFlags, err := c.u16()
	if err != nil {
		return nil, err
	}

	thisClassIdx, err := c.u16()
	if err != nil {
		return nil, err
	}
	thisClass, err := pool.className(thisClassIdx)
	if err != nil {
		return nil, err
	}

	superClassIdx, err := c.u16()
	if err != nil {
		return nil, err
	}
	var superClass string
	if superClassIdx != 0 {
		superClass, err = pool.className(superClassIdx)
		if err != nil {
			return nil, err
		}
	}

	interfacesCount, err := c.u16()
	if err != nil {
		return nil, err
	}
	interfaces := make([]string, 0, interfacesCount)
	for i := uint16(0); i < interfacesCount; i++ {
		idx, err := c.u16()
		if err != nil {
			return nil, err
		}
		name, err := pool.className(idx)
		if err != nil {
			return nil, err
		}
		interfaces = append(interfaces, name)
	}

	fieldsCount, err := c.u16()
	if err != nil {
		return nil, err
	}
	fields, err := parseFields(c, pool, fieldsCount, methodsRequired)
	if err != nil {
		return nil, err
	}

	methodsCount, err := c.u16()
	if err != nil {
		return nil, err
	}
	methods, err := parseMethods(c, pool, methodsCount, methodsRequired)
	if err != nil {
		return nil, err
	}

	classAttrCount, err := c.u16()
	if err != nil {
		return nil, err
	}
	classAttrs, err := parseAttributes(c, pool, classAttrCount)
	if err != nil {
		return nil, err
	}

	versionLabel, _ := VersionLabel(major)

	view := &ClassView{
		MinorVersion: minor,
		MajorVersion: major,
		VersionLabel: versionLabel,
		AccessFlags:  AccessFlags(accessFlags),
		ThisClass:    thisClass,
		SuperClass:   superClass,
		Interfaces:   interfaces,
		Fields:       fields,
		Methods:      methods,
		Signature:    classAttrs.signature,
		pool:         pool,
	}

	if !c.atEnd() {
		msg := newError(UnexpectedTrailing, "", int(c.off), "%d trailing byte(s) after class data", c.remaining())
		log.Warnf("%s: %s", thisClass, msg)
		view.Warnings = append(view.Warnings, msg.Error())
	}

	return view, nil
}

// DecodeFile reads name whole and decodes it as a .class file. A class
// file is KB-sized, so a plain read suffices; mmap is reserved for the
// walker's large-archive path (walk.Walker.Open).
func DecodeFile(name string, methodsRequired bool, opts *Options) (*ClassView, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, newError(Truncated, "", 0, "empty file")
	}

	return Decode(data, methodsRequired, opts)
}
