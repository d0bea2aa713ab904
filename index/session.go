// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package index

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/ajheck/classindex"
	"github.com/ajheck/classindex/internal/obslog"
)

// Session owns a single indexing run: one open database, one
// transaction spanning the whole run, and the in-memory arena that
// dedups namespace/importable names. The whole run commits (or fails)
// as one unit, same single-writer transaction shape
// indexproject.c wraps its entire index_classpath/index_dir/index_jar
// run in.
type Session struct {
	db    *sql.DB
	tx    *sql.Tx
	arena *arena
	log   *obslog.Helper

	classesIndexed int
	collisions     int
}

// OpenSession opens (creating if needed) dbPath, lays down the schema,
// and begins the run's transaction. An existing database is not
// truncated: if it already holds the schema's tables, laying down the
// schema fails and OpenSession returns that error.
func OpenSession(dbPath string, log *obslog.Helper) (*Session, error) {
	if log == nil {
		log = obslog.NewHelper(nil)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Single-writer, bulk-insert workload: durability per-statement buys
	// nothing since the whole run is one transaction anyway.
	if _, err := db.Exec(`PRAGMA synchronous = OFF`); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Session{db: db, tx: tx, arena: newArena(), log: log}, nil
}

// IndexFile records a filesystem source (a loose .class file or a
// member of a jar) in the files table and returns its row id.
func (s *Session) IndexFile(path, filename string) (int64, error) {
	res, err := s.tx.Exec(`INSERT INTO files(path, filename) VALUES (?, ?)`, path, filename)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// IndexClass folds one decoded class into the relational schema:
// its namespace/importable identity, access-flag-derived booleans,
// fields, methods, checked exceptions and implemented interfaces.
//
// If the class's (importable, namespace) pair was already marked done
// by an earlier call in this session, the new data is discarded and the
// first fully-indexed entry wins, per the collision policy the original
// indexer enforces through associate_class_and_namespace's handling of
// SQLITE_CONSTRAINT.
func (s *Session) IndexClass(view *classindex.ClassView) error {
	importableID, namespaceID, done, err := s.resolveClass(view.ThisClass)
	if err != nil {
		return err
	}
	if done {
		s.collisions++
		s.log.Warnf("%s: already indexed by an earlier entry, skipping", view.FQName())
		return nil
	}

	var parentImportableID, parentNamespaceID *int64
	if view.SuperClass != "" {
		pImportableID, pNamespaceID, _, err := s.resolveClass(view.SuperClass)
		if err != nil {
			return err
		}
		parentImportableID, parentNamespaceID = &pImportableID, &pNamespaceID
	}

	var signature sql.NullString
	if view.Signature != nil {
		signature = sql.NullString{String: *view.Signature, Valid: true}
	}

	_, err = s.tx.Exec(`
		UPDATE importables_namespaces SET
			parent_importable_id = ?, parent_namespace_id = ?,
			done = 1,
			ispublic = ?, isfinal = ?, isinterface = ?,
			isabstract = ?, isannotation = ?, isenum = ?,
			signature = ?
		WHERE importable_id = ? AND namespace_id = ?`,
		parentImportableID, parentNamespaceID,
		boolInt(view.AccessFlags.IsPublic()), boolInt(view.AccessFlags.IsFinal()),
		boolInt(view.AccessFlags.IsInterface()), boolInt(view.AccessFlags.IsAbstract()),
		boolInt(view.AccessFlags.IsAnnotation()), boolInt(view.AccessFlags.IsEnum()),
		signature,
		importableID, namespaceID)
	if err != nil {
		return fmt.Errorf("updating importables_namespaces: %w", err)
	}

	for _, fi := range view.Fields {
		if err := s.insertField(importableID, namespaceID, fi); err != nil {
			return err
		}
	}

	for _, mi := range view.Methods {
		if err := s.insertMethod(importableID, namespaceID, mi); err != nil {
			return err
		}
	}

	for _, ifaceName := range view.Interfaces {
		ifaceImportableID, ifaceNamespaceID, _, err := s.resolveClass(ifaceName)
		if err != nil {
			return err
		}
		_, err = s.tx.Exec(`
			INSERT OR IGNORE INTO interfaces(
				importable_id, namespace_id,
				interface_importable_id, interface_namespace_id)
			VALUES (?, ?, ?, ?)`,
			importableID, namespaceID, ifaceImportableID, ifaceNamespaceID)
		if err != nil {
			return fmt.Errorf("inserting interface: %w", err)
		}
	}

	s.classesIndexed++
	return nil
}

func (s *Session) insertField(importableID, namespaceID int64, fi classindex.FieldRecord) error {
	var signature sql.NullString
	if fi.Signature != nil {
		signature = sql.NullString{String: *fi.Signature, Valid: true}
	}
	_, err := s.tx.Exec(`
		INSERT INTO fields(
			name, descriptor, signature, importable_id, namespace_id,
			ispublic, isprotected, isprivate, isstatic, isfinal, isenum)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		fi.Name, fi.Descriptor, signature, importableID, namespaceID,
		boolInt(fi.AccessFlags.IsPublic()), boolInt(fi.AccessFlags.IsProtected()),
		boolInt(fi.AccessFlags.IsPrivate()), boolInt(fi.AccessFlags.IsStatic()),
		boolInt(fi.AccessFlags.IsFinal()), boolInt(fi.AccessFlags.IsEnum()))
	if err != nil {
		return fmt.Errorf("inserting field %s: %w", fi.Name, err)
	}
	return nil
}

func (s *Session) insertMethod(importableID, namespaceID int64, mi classindex.MethodRecord) error {
	var signature sql.NullString
	if mi.Signature != nil {
		signature = sql.NullString{String: *mi.Signature, Valid: true}
	}
	res, err := s.tx.Exec(`
		INSERT INTO methods(
			name, descriptor, signature, importable_id, namespace_id,
			ispublic, isprotected, isprivate, isstatic, isfinal,
			issynchronized, isabstract)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		mi.Name, mi.Descriptor, signature, importableID, namespaceID,
		boolInt(mi.AccessFlags.IsPublic()), boolInt(mi.AccessFlags.IsProtected()),
		boolInt(mi.AccessFlags.IsPrivate()), boolInt(mi.AccessFlags.IsStatic()),
		boolInt(mi.AccessFlags.IsFinal()), boolInt(mi.AccessFlags.IsSynchronized()),
		boolInt(mi.AccessFlags.IsAbstract()))
	if err != nil {
		return fmt.Errorf("inserting method %s: %w", mi.Name, err)
	}
	methodID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for _, excName := range mi.Exceptions {
		excImportableID, excNamespaceID, _, err := s.resolveClass(excName)
		if err != nil {
			return err
		}
		_, err = s.tx.Exec(`
			INSERT INTO exceptions(method_id, importable_id, namespace_id)
			VALUES (?, ?, ?)`,
			methodID, excImportableID, excNamespaceID)
		if err != nil {
			return fmt.Errorf("inserting exception for %s: %w", mi.Name, err)
		}
	}
	return nil
}

// resolveClass returns the (importable_id, namespace_id) pair for a
// binary class name, creating placeholder rows (done=0) when the class
// hasn't been visited yet. done reports whether an earlier call already
// completed indexing for this class.
func (s *Session) resolveClass(binaryName string) (importableID, namespaceID int64, done bool, err error) {
	namespaceID, err = s.getOrCreateNamespace(packageOf(binaryName))
	if err != nil {
		return 0, 0, false, err
	}
	importableID, err = s.getOrCreateImportable(simpleNameOf(binaryName))
	if err != nil {
		return 0, 0, false, err
	}

	row := s.tx.QueryRow(`
		SELECT done FROM importables_namespaces
		WHERE importable_id = ? AND namespace_id = ?`, importableID, namespaceID)
	var doneFlag int
	switch err := row.Scan(&doneFlag); err {
	case nil:
		return importableID, namespaceID, doneFlag != 0, nil
	case sql.ErrNoRows:
		_, err := s.tx.Exec(`
			INSERT INTO importables_namespaces(importable_id, namespace_id, done)
			VALUES (?, ?, 0)`, importableID, namespaceID)
		if err != nil {
			return 0, 0, false, err
		}
		return importableID, namespaceID, false, nil
	default:
		return 0, 0, false, err
	}
}

func (s *Session) getOrCreateNamespace(name string) (int64, error) {
	if id, ok := s.arena.namespaceID(name); ok {
		return id, nil
	}
	res, err := s.tx.Exec(`INSERT INTO namespaces(name) VALUES (?)`, name)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	s.arena.setNamespaceID(name, id)
	return id, nil
}

func (s *Session) getOrCreateImportable(name string) (int64, error) {
	if id, ok := s.arena.importableID(name); ok {
		return id, nil
	}
	res, err := s.tx.Exec(`INSERT INTO importables(name) VALUES (?)`, name)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	s.arena.setImportableID(name, id)
	return id, nil
}

// Stats summarizes the run so far.
type Stats struct {
	ClassesIndexed int
	Collisions     int
}

// Stats returns the current run counters.
func (s *Session) Stats() Stats {
	return Stats{ClassesIndexed: s.classesIndexed, Collisions: s.collisions}
}

// Finish builds the deferred indexes, commits the transaction, and
// closes the database. Building the unique indexes only now, after all
// inserts, is the same ordering create_indexes() relies on in the
// original indexer to avoid paying index-maintenance cost per row.
func (s *Session) Finish() error {
	if _, err := s.tx.Exec(indexDDL); err != nil {
		s.tx.Rollback()
		s.db.Close()
		return fmt.Errorf("creating indexes: %w", err)
	}
	if err := s.tx.Commit(); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}

// Abort rolls back the run's transaction and closes the database,
// discarding everything indexed so far.
func (s *Session) Abort() error {
	_ = s.tx.Rollback()
	return s.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
