// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package index

import (
	"path/filepath"
	"testing"

	"github.com/ajheck/classindex"
)

func fooView() *classindex.ClassView {
	return &classindex.ClassView{
		MajorVersion: 52,
		AccessFlags:  classindex.AccPublic | classindex.AccSuper,
		ThisClass:    "com/example/Foo",
		SuperClass:   "java/lang/Object",
		Fields: []classindex.FieldRecord{
			{AccessFlags: classindex.AccPrivate, Name: "count", Descriptor: "I"},
		},
		Methods: []classindex.MethodRecord{
			{AccessFlags: classindex.AccPublic, Name: "<init>", Descriptor: "()V"},
		},
	}
}

func TestIndexClassAndFinish(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "idx.db")
	sess, err := OpenSession(dbPath, nil)
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}

	if err := sess.IndexClass(fooView()); err != nil {
		t.Fatalf("IndexClass: %v", err)
	}
	if _, err := sess.IndexFile("/src/Foo.class", "Foo.class"); err != nil {
		t.Fatalf("IndexFile: %v", err)
	}

	stats := sess.Stats()
	if stats.ClassesIndexed != 1 || stats.Collisions != 0 {
		t.Errorf("Stats() = %+v, want 1 class, 0 collisions", stats)
	}

	if err := sess.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
}

func TestIndexClassCollisionFirstWins(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "idx.db")
	sess, err := OpenSession(dbPath, nil)
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	defer sess.Abort()

	first := fooView()
	if err := sess.IndexClass(first); err != nil {
		t.Fatalf("IndexClass(first): %v", err)
	}

	second := fooView()
	second.Fields = nil // a differently-shaped duplicate
	if err := sess.IndexClass(second); err != nil {
		t.Fatalf("IndexClass(second): %v", err)
	}

	stats := sess.Stats()
	if stats.ClassesIndexed != 1 || stats.Collisions != 1 {
		t.Errorf("Stats() = %+v, want 1 class, 1 collision", stats)
	}
}
