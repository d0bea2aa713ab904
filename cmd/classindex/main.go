// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajheck/classindex/internal/obslog"
)

var verbose bool

func newLogger() *obslog.Helper {
	if !verbose {
		return obslog.NewHelper(nil)
	}
	log, err := obslog.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return obslog.NewHelper(nil)
	}
	return log
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "classindex",
		Short: "A Java .class file parser and relational indexer",
		Long:  "classindex decodes .class files and builds a searchable SQLite index of their types, fields and methods",
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic output")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newIndexCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the classindex version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("classindex 0.1.0")
		},
	}
}
