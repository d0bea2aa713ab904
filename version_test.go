// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classindex

import "testing"

var versionLabelTests = []struct {
	major  uint16
	want   string
	wantOK bool
}{
	{52, "Java 8", true},
	{61, "Java 17", true},
	{45, "Java 1.1", true},
	{255, "", false},
}

func TestVersionLabel(t *testing.T) {
	for _, tt := range versionLabelTests {
		t.Run(tt.want, func(t *testing.T) {
			got, ok := VersionLabel(tt.major)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("VersionLabel(%d) = (%q, %v), want (%q, %v)", tt.major, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
