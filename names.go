// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classindex

import "strings"

// normalizeBinaryName converts a class name to its canonical internal
// form (slash-separated), accepting either the constant pool's native
// slash form ("java/lang/Object") or the source/dotted form a caller
// might pass in ("java.lang.Object"), matching findjar.c's suffix
// matching which tolerates both spellings.
func normalizeBinaryName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}

// lastSeparator finds the last '/' or '.' in name, whichever comes
// later, so callers can split a name regardless of which form it
// arrived in (constant pool entries are slash-separated; a caller-
// supplied query is often dotted).
func lastSeparator(name string) int {
	i := strings.LastIndexByte(name, '/')
	if j := strings.LastIndexByte(name, '.'); j > i {
		i = j
	}
	return i
}

// packageOf returns the package portion of a binary class name,
// accepting either slash or dot separators, or "" for the unnamed
// package.
func packageOf(binaryName string) string {
	i := lastSeparator(binaryName)
	if i < 0 {
		return ""
	}
	return binaryName[:i]
}

// simpleNameOf returns the simple (unqualified) class name portion of a
// binary class name, accepting either slash or dot separators.
func simpleNameOf(binaryName string) string {
	i := lastSeparator(binaryName)
	if i < 0 {
		return binaryName
	}
	return binaryName[i+1:]
}

// fqName returns the fully-qualified, dot-separated source form of a
// binary class name ("java.lang.Object"), the form dumpclass.c prints
// as the class's "FQ-name".
func fqName(binaryName string) string {
	return strings.ReplaceAll(binaryName, "/", ".")
}

// isInnerClassName reports whether a binary class name denotes an inner
// (nested) class, identified the same way findjar.c's search_jar skips
// them when walking a jar: the presence of a '$' in the simple name.
func isInnerClassName(binaryName string) bool {
	return strings.ContainsRune(simpleNameOf(binaryName), '$')
}
