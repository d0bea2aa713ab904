// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classindex

// AccessFlags is the 16-bit set of modifier bits the JVM spec defines
// for classes, fields and methods. The same bit numbers are reused
// across all three sites; legality of a given bit on a given site is
// not enforced here.
type AccessFlags uint16

// Access-flag bits, JVM spec chapter 4.1/4.5/4.6.
const (
	AccPublic       AccessFlags = 0x0001
	AccPrivate      AccessFlags = 0x0002
	AccProtected    AccessFlags = 0x0004
	AccStatic       AccessFlags = 0x0008
	AccFinal        AccessFlags = 0x0010
	AccSynchronized AccessFlags = 0x0020 // == AccSuper on a class
	AccSuper        AccessFlags = 0x0020
	AccVolatile     AccessFlags = 0x0040 // == AccBridge on a method
	AccBridge       AccessFlags = 0x0040
	AccTransient    AccessFlags = 0x0080 // == AccVarargs on a method
	AccVarargs      AccessFlags = 0x0080
	AccNative       AccessFlags = 0x0100
	AccInterface    AccessFlags = 0x0200
	AccAbstract     AccessFlags = 0x0400
	AccStrict       AccessFlags = 0x0800
	AccSynthetic    AccessFlags = 0x1000
	AccAnnotation   AccessFlags = 0x2000
	AccEnum         AccessFlags = 0x4000
	AccModule       AccessFlags = 0x8000
)

func (f AccessFlags) has(bit AccessFlags) bool { return f&bit != 0 }

// IsPublic reports whether the ACC_PUBLIC bit is set.
func (f AccessFlags) IsPublic() bool { return f.has(AccPublic) }

// IsPrivate reports whether the ACC_PRIVATE bit is set.
func (f AccessFlags) IsPrivate() bool { return f.has(AccPrivate) }

// IsProtected reports whether the ACC_PROTECTED bit is set.
func (f AccessFlags) IsProtected() bool { return f.has(AccProtected) }

// IsStatic reports whether the ACC_STATIC bit is set.
func (f AccessFlags) IsStatic() bool { return f.has(AccStatic) }

// IsFinal reports whether the ACC_FINAL bit is set.
func (f AccessFlags) IsFinal() bool { return f.has(AccFinal) }

// IsSynchronized reports whether the ACC_SYNCHRONIZED bit is set
// (methods only).
func (f AccessFlags) IsSynchronized() bool { return f.has(AccSynchronized) }

// IsSuper reports whether the ACC_SUPER bit is set (classes only).
func (f AccessFlags) IsSuper() bool { return f.has(AccSuper) }

// IsVolatile reports whether the ACC_VOLATILE bit is set (fields only).
func (f AccessFlags) IsVolatile() bool { return f.has(AccVolatile) }

// IsBridge reports whether the ACC_BRIDGE bit is set (methods only).
func (f AccessFlags) IsBridge() bool { return f.has(AccBridge) }

// IsTransient reports whether the ACC_TRANSIENT bit is set (fields only).
func (f AccessFlags) IsTransient() bool { return f.has(AccTransient) }

// IsVarargs reports whether the ACC_VARARGS bit is set (methods only).
func (f AccessFlags) IsVarargs() bool { return f.has(AccVarargs) }

// IsNative reports whether the ACC_NATIVE bit is set (methods only).
func (f AccessFlags) IsNative() bool { return f.has(AccNative) }

// IsAbstract reports whether the ACC_ABSTRACT bit is set.
func (f AccessFlags) IsAbstract() bool { return f.has(AccAbstract) }

// IsStrict reports whether the ACC_STRICT bit is set (methods only).
func (f AccessFlags) IsStrict() bool { return f.has(AccStrict) }

// IsSynthetic reports whether the ACC_SYNTHETIC bit is set.
func (f AccessFlags) IsSynthetic() bool { return f.has(AccSynthetic) }

// IsAnnotation reports whether the ACC_ANNOTATION bit is set (classes only).
func (f AccessFlags) IsAnnotation() bool { return f.has(AccAnnotation) }

// IsEnum reports whether the ACC_ENUM bit is set.
func (f AccessFlags) IsEnum() bool { return f.has(AccEnum) }

// IsModule reports whether the ACC_MODULE bit is set (classes only).
func (f AccessFlags) IsModule() bool { return f.has(AccModule) }

// IsInterface reports whether the ACC_INTERFACE bit is set (classes only).
func (f AccessFlags) IsInterface() bool { return f.has(AccInterface) }

// TypeLabel returns the single-valued textual type label for a class's
// access flags, following the fixed precedence of spec §4.E: a class
// whose flags could match more than one label (e.g. an annotation,
// which also sets ACC_INTERFACE and usually ACC_ABSTRACT) resolves to
// exactly one winner.
func (f AccessFlags) TypeLabel() string {
	switch {
	case f.IsEnum():
		return "enum"
	case f.IsAnnotation():
		return "annotation"
	case f.IsInterface():
		return "interface"
	case f.IsAbstract():
		return "abstract class"
	default:
		return "class"
	}
}
