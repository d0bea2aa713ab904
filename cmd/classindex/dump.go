// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajheck/classindex"
)

func prettyPrint(v interface{}) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "\t"); err != nil {
		return string(raw)
	}
	return buf.String()
}

// dumpView is the field list dumpclass.c prints for one class: name,
// signature, package, fully-qualified name, parent, access flags, type
// label, version and its members.
type dumpView struct {
	Name         string   `json:"name"`
	Package      string   `json:"package"`
	FQName       string   `json:"fq_name"`
	Parent       string   `json:"parent,omitempty"`
	Signature    *string  `json:"signature,omitempty"`
	Public       bool     `json:"public"`
	Final        bool     `json:"final"`
	Type         string   `json:"type"`
	MinorVersion uint16   `json:"minor_version"`
	MajorVersion uint16   `json:"major_version"`
	VersionLabel string   `json:"version_label"`
	Interfaces   []string `json:"interfaces,omitempty"`
	Warnings     []string `json:"warnings,omitempty"`

	Fields  []classindex.FieldRecord  `json:"fields,omitempty"`
	Methods []classindex.MethodRecord `json:"methods,omitempty"`
}

func toDumpView(view *classindex.ClassView) dumpView {
	return dumpView{
		Name:         view.SimpleName(),
		Package:      view.Package(),
		FQName:       view.FQName(),
		Parent:       view.SuperClass,
		Signature:    view.Signature,
		Public:       view.AccessFlags.IsPublic(),
		Final:        view.AccessFlags.IsFinal(),
		Type:         view.TypeLabel(),
		MinorVersion: view.MinorVersion,
		MajorVersion: view.MajorVersion,
		VersionLabel: view.VersionLabel,
		Interfaces:   view.Interfaces,
		Warnings:     view.Warnings,
		Fields:       view.Fields,
		Methods:      view.Methods,
	}
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file.class>",
		Short: "Decode a .class file and print its structure as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			view, err := classindex.DecodeFile(args[0], true, &classindex.Options{Logger: log})
			if err != nil {
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}
			fmt.Println(prettyPrint(toDumpView(view)))
			return nil
		},
	}
	return cmd
}
