// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package index implements the relational sink a decoded class is fed
// into: a SQLite database recording namespaces, importable (class)
// types, their fields, methods, interfaces and checked exceptions, plus
// the file each type was found in. The schema is a direct port of the
// original indexer's DDL (src/indexproject.c), kept table-for-table so
// downstream queries written against that schema keep working.
package index

const schemaDDL = `
CREATE TABLE namespaces (
	id   INTEGER PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE importables (
	id   INTEGER PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE importables_namespaces (
	importable_id        INTEGER NOT NULL,
	namespace_id         INTEGER NOT NULL,
	parent_importable_id INTEGER,
	parent_namespace_id  INTEGER,
	done                 INTEGER NOT NULL DEFAULT 0,
	ispublic             INTEGER NOT NULL DEFAULT 0,
	isfinal              INTEGER NOT NULL DEFAULT 0,
	isinterface          INTEGER NOT NULL DEFAULT 0,
	isabstract           INTEGER NOT NULL DEFAULT 0,
	isannotation         INTEGER NOT NULL DEFAULT 0,
	isenum               INTEGER NOT NULL DEFAULT 0,
	signature            TEXT,
	PRIMARY KEY (importable_id, namespace_id)
);

CREATE TABLE fields (
	id            INTEGER PRIMARY KEY,
	name          TEXT NOT NULL,
	descriptor    TEXT NOT NULL,
	signature     TEXT,
	importable_id INTEGER NOT NULL,
	namespace_id  INTEGER NOT NULL,
	ispublic      INTEGER NOT NULL DEFAULT 0,
	isprotected   INTEGER NOT NULL DEFAULT 0,
	isprivate     INTEGER NOT NULL DEFAULT 0,
	isstatic      INTEGER NOT NULL DEFAULT 0,
	isfinal       INTEGER NOT NULL DEFAULT 0,
	isenum        INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE methods (
	id             INTEGER PRIMARY KEY,
	name           TEXT NOT NULL,
	descriptor     TEXT NOT NULL,
	signature      TEXT,
	importable_id  INTEGER NOT NULL,
	namespace_id   INTEGER NOT NULL,
	ispublic       INTEGER NOT NULL DEFAULT 0,
	isprotected    INTEGER NOT NULL DEFAULT 0,
	isprivate      INTEGER NOT NULL DEFAULT 0,
	isstatic       INTEGER NOT NULL DEFAULT 0,
	isfinal        INTEGER NOT NULL DEFAULT 0,
	issynchronized INTEGER NOT NULL DEFAULT 0,
	isabstract     INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE interfaces (
	importable_id           INTEGER NOT NULL,
	namespace_id            INTEGER NOT NULL,
	interface_importable_id INTEGER NOT NULL,
	interface_namespace_id  INTEGER NOT NULL,
	PRIMARY KEY (importable_id, namespace_id, interface_importable_id, interface_namespace_id)
);

CREATE TABLE exceptions (
	method_id     INTEGER NOT NULL,
	importable_id INTEGER NOT NULL,
	namespace_id  INTEGER NOT NULL
);

CREATE TABLE files (
	id       INTEGER PRIMARY KEY,
	path     TEXT NOT NULL,
	filename TEXT NOT NULL
);
`

// indexDDL is deferred until after bulk insert, same ordering
// indexproject.c's create_indexes() enforces: building a unique index
// before the inserts finish would pay the maintenance cost on every row
// instead of once at the end.
const indexDDL = `
CREATE UNIQUE INDEX IDX_UNIQUE_NAMESPACES ON namespaces (name);
CREATE UNIQUE INDEX IDX_IMPORTABLES ON importables (name);
CREATE UNIQUE INDEX IDX_UNIQUE_FIELDS ON fields (name, importable_id, namespace_id);
CREATE UNIQUE INDEX IDX_UNIQUE_METHODS ON methods (name, signature, importable_id, namespace_id);
`
