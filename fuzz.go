// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classindex

// Fuzz is the legacy go-fuzz entry point, picked up automatically by
// go-fuzz-build; it is never imported by the rest of this module.
func Fuzz(data []byte) int {
	_, err := Decode(data, true, nil)
	if err != nil {
		return 0
	}
	return 1
}
