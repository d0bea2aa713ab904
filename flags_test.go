// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classindex

import "testing"

var typeLabelTests = []struct {
	name  string
	flags AccessFlags
	want  string
}{
	{"plain class", AccPublic | AccSuper, "class"},
	{"interface", AccInterface | AccAbstract, "interface"},
	{"annotation wins over interface", AccInterface | AccAbstract | AccAnnotation, "annotation"},
	{"enum", AccFinal | AccSuper | AccEnum, "enum"},
	{"abstract class", AccPublic | AccAbstract, "abstract class"},
}

func TestAccessFlagsTypeLabel(t *testing.T) {
	for _, tt := range typeLabelTests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.TypeLabel(); got != tt.want {
				t.Errorf("TypeLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAccessFlagsPredicates(t *testing.T) {
	f := AccPublic | AccStatic | AccFinal
	if !f.IsPublic() || !f.IsStatic() || !f.IsFinal() {
		t.Errorf("expected public/static/final to be set: %v", f)
	}
	if f.IsPrivate() || f.IsInterface() || f.IsAbstract() {
		t.Errorf("unexpected flags set: %v", f)
	}
}
