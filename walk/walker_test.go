// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package walk

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWalkSkipsInnerClassesOnDisk(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Foo.class", []byte("data"))
	writeFile(t, dir, "Foo$Bar.class", []byte("data"))

	w := NewWalker(nil)
	var seen []Candidate
	err := w.Walk(dir, true, func(c Candidate) error {
		seen = append(seen, c)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(seen) != 1 || seen[0].BinaryName != "Foo" {
		t.Errorf("seen = %v, want [Foo]", seen)
	}
	if !seen[0].MethodsRequired {
		t.Error("expected MethodsRequired to be propagated from Walk's argument")
	}
}

func TestWalkArchiveSkipsInnerClasses(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "a.jar")
	f, err := os.Create(archivePath)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for _, name := range []string{"com/example/Foo.class", "com/example/Foo$Inner.class"} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		w.Write([]byte("data"))
	}
	zw.Close()
	f.Close()

	w := NewWalker(nil)
	var seen []Candidate
	err = w.Walk(archivePath, false, func(c Candidate) error {
		seen = append(seen, c)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(seen) != 1 || seen[0].BinaryName != "Foo" || !seen[0].IsArchive() {
		t.Errorf("seen = %v, want one archive candidate named Foo", seen)
	}
	if seen[0].MethodsRequired {
		t.Error("expected MethodsRequired=false to be propagated from Walk's argument")
	}
}

func TestIsSignatureEntry(t *testing.T) {
	cases := map[string]bool{
		"META-INF/CERT.RSA":     true,
		"META-INF/CERT.DSA":     true,
		"META-INF/MANIFEST.MF":  false,
		"com/example/Foo.class": false,
	}
	for name, want := range cases {
		if got := isSignatureEntry(name); got != want {
			t.Errorf("isSignatureEntry(%q) = %v, want %v", name, got, want)
		}
	}
}
