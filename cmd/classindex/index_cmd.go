// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ajheck/classindex"
	"github.com/ajheck/classindex/index"
	"github.com/ajheck/classindex/walk"
)

func newIndexCmd() *cobra.Command {
	var dbPath string
	var showSignatures bool
	var headerOnly bool

	cmd := &cobra.Command{
		Use:   "index <root>...",
		Short: "Index .class files under one or more roots into a SQLite database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			sess, err := index.OpenSession(dbPath, log)
			if err != nil {
				return fmt.Errorf("opening index %s: %w", dbPath, err)
			}

			w := walk.NewWalker(log)

			for _, root := range args {
				err := w.Walk(root, !headerOnly, func(c walk.Candidate) error {
					data, err := w.Open(c)
					if err != nil {
						log.Warnf("%s: %v", c.SourcePath, err)
						return nil
					}
					if data == nil {
						return nil
					}

					view, err := classindex.Decode(data, c.MethodsRequired, &classindex.Options{Logger: log})
					if err != nil {
						log.Warnf("%s: %v", c.SourcePath, err)
						return nil
					}

					if err := sess.IndexClass(view); err != nil {
						return fmt.Errorf("indexing %s: %w", view.FQName(), err)
					}

					entryName := c.EntryName
					if entryName == "" {
						entryName = filepath.Base(c.SourcePath)
					}
					if _, err := sess.IndexFile(c.SourcePath, entryName); err != nil {
						return fmt.Errorf("recording file %s: %w", c.SourcePath, err)
					}

					if showSignatures && c.IsArchive() {
						sigs, err := w.SignatureBlocks(c.SourcePath)
						if err == nil {
							for _, sig := range sigs {
								log.Infof("%s is signed by %s", c.SourcePath, sig.SignerFile)
							}
						}
					}
					return nil
				})
				if err != nil {
					sess.Abort()
					return fmt.Errorf("walking %s: %w", root, err)
				}
			}

			if err := sess.Finish(); err != nil {
				return fmt.Errorf("finishing index: %w", err)
			}

			stats := sess.Stats()
			fmt.Printf("indexed %d classes (%d collisions) into %s\n",
				stats.ClassesIndexed, stats.Collisions, dbPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dbPath, "output", "o", "classindex.db", "path to the SQLite database to create")
	cmd.Flags().BoolVar(&showSignatures, "signatures", false, "report jar signature blocks encountered while indexing")
	cmd.Flags().BoolVar(&headerOnly, "header-only", false, "skip field and method records, indexing class headers only")
	return cmd
}
