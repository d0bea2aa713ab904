// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classindex

import "testing"

func TestPackageOf(t *testing.T) {
	if got := packageOf("java/lang/Object"); got != "java/lang" {
		t.Errorf("packageOf = %q, want java/lang", got)
	}
	if got := packageOf("Foo"); got != "" {
		t.Errorf("packageOf(unnamed package) = %q, want empty", got)
	}
	if got := packageOf("java.lang.Object"); got != "java.lang" {
		t.Errorf("packageOf(dotted) = %q, want java.lang", got)
	}
}

func TestSimpleNameOf(t *testing.T) {
	if got := simpleNameOf("java/lang/Object"); got != "Object" {
		t.Errorf("simpleNameOf = %q, want Object", got)
	}
	if got := simpleNameOf("java.lang.Object"); got != "Object" {
		t.Errorf("simpleNameOf(dotted) = %q, want Object", got)
	}
}

func TestPackageOfFQNameRoundTrip(t *testing.T) {
	if got := packageOf(fqName("java/lang/Object")); got != "java.lang" {
		t.Errorf("packageOf(fqName(...)) = %q, want java.lang", got)
	}
}

func TestFQName(t *testing.T) {
	if got := fqName("java/lang/Object"); got != "java.lang.Object" {
		t.Errorf("fqName = %q, want java.lang.Object", got)
	}
}

func TestIsInnerClassName(t *testing.T) {
	if !isInnerClassName("com/example/Outer$Inner") {
		t.Error("expected Outer$Inner to be detected as an inner class")
	}
	if isInnerClassName("com/example/Outer") {
		t.Error("did not expect Outer to be detected as an inner class")
	}
}

func TestNormalizeBinaryName(t *testing.T) {
	if got := normalizeBinaryName("java.lang.Object"); got != "java/lang/Object" {
		t.Errorf("normalizeBinaryName = %q, want java/lang/Object", got)
	}
}
