// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package index

// arena interns namespace and importable names to integer ids in
// memory, the Go replacement for the original indexer's GStringChunk
// arena plus a GHashTable keyed by name: both exist purely to avoid a
// round trip to the database every time the same package or class name
// is seen again across many class files.
type arena struct {
	namespaces  map[string]int64
	importables map[string]int64
}

func newArena() *arena {
	return &arena{
		namespaces:  make(map[string]int64),
		importables: make(map[string]int64),
	}
}

func (a *arena) namespaceID(name string) (id int64, known bool) {
	id, known = a.namespaces[name]
	return id, known
}

func (a *arena) setNamespaceID(name string, id int64) {
	a.namespaces[name] = id
}

func (a *arena) importableID(name string) (id int64, known bool) {
	id, known = a.importables[name]
	return id, known
}

func (a *arena) setImportableID(name string, id int64) {
	a.importables[name] = id
}
