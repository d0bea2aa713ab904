// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package index

import "strings"

// packageOf and simpleNameOf split a binary class name the same way
// classindex's internal names.go does (tolerant of both '/' and '.'
// separators); duplicated here in miniature since the sink operates on
// plain strings and shouldn't reach back into the decoder package's
// unexported helpers.
func lastSeparator(name string) int {
	i := strings.LastIndexByte(name, '/')
	if j := strings.LastIndexByte(name, '.'); j > i {
		i = j
	}
	return i
}

func packageOf(binaryName string) string {
	i := lastSeparator(binaryName)
	if i < 0 {
		return ""
	}
	return binaryName[:i]
}

func simpleNameOf(binaryName string) string {
	i := lastSeparator(binaryName)
	if i < 0 {
		return binaryName
	}
	return binaryName[i+1:]
}
