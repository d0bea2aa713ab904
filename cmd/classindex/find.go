// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajheck/classindex/walk"
)

// matchesQuery reports whether a candidate's simple class name matches
// a search name given in either dotted or slashed qualified form, the
// same tolerant suffix match findjar.c's search_jar/search_classfile
// perform: only the simple name is available pre-decode, so a qualified
// query is reduced to its last segment before comparing.
func matchesQuery(binaryName, query string) bool {
	q := strings.ReplaceAll(query, ".", "/")
	if i := strings.LastIndexByte(q, '/'); i >= 0 {
		q = q[i+1:]
	}
	return binaryName == q
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <class-name> <root>...",
		Short: "Find a class by name across directories and jars",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, roots := args[0], args[1:]
			log := newLogger()
			w := walk.NewWalker(log)

			found := false
			for _, root := range roots {
				// find only needs BinaryName for matching, never decodes.
				err := w.Walk(root, false, func(c walk.Candidate) error {
					if !matchesQuery(c.BinaryName, query) {
						return nil
					}
					found = true
					if c.IsArchive() {
						fmt.Printf("%s!%s\n", c.SourcePath, c.EntryName)
					} else {
						fmt.Println(c.SourcePath)
					}
					return nil
				})
				if err != nil {
					return fmt.Errorf("walking %s: %w", root, err)
				}
			}
			if !found {
				return fmt.Errorf("class %q not found", query)
			}
			return nil
		},
	}
	return cmd
}
