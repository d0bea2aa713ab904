// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package walk

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	mmap "github.com/edsrzf/mmap-go"
	kpflate "github.com/klauspost/compress/flate"

	"github.com/ajheck/classindex/internal/obslog"
)

func init() {
	// Register klauspost/compress's faster DEFLATE decompressor for all
	// archive/zip reads, since jars can carry thousands of entries.
	zip.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return kpflate.NewReader(r)
	})
}

// Candidate is one discovered .class file, either loose on disk or an
// entry inside a JAR/ZIP archive.
type Candidate struct {
	// SourcePath is the filesystem path: the .class file itself, or the
	// archive that contains it.
	SourcePath string

	// EntryName is non-empty when the candidate lives inside an
	// archive, giving its internal zip entry name.
	EntryName string

	// BinaryName is the best-effort class name derived from the
	// path/entry before the class is actually decoded, used to
	// pre-filter inner classes without opening the entry.
	BinaryName string

	// MethodsRequired is the value the caller passed to Walk, carried
	// on the candidate so it can be forwarded unchanged into Decode.
	MethodsRequired bool
}

// IsArchive reports whether the candidate was found inside a JAR/ZIP.
func (c Candidate) IsArchive() bool { return c.EntryName != "" }

// Walker discovers .class files under one or more roots.
type Walker struct {
	log *obslog.Helper
}

// NewWalker constructs a Walker. A nil logger discards diagnostics.
func NewWalker(log *obslog.Helper) *Walker {
	if log == nil {
		log = obslog.NewHelper(nil)
	}
	return &Walker{log: log}
}

// Walk visits every .class file reachable from root: loose files found
// by recursing the directory tree, and entries inside any .jar/.zip
// file encountered along the way. Inner classes (binary names containing
// '$') are skipped, mirroring findjar.c's search_jar behavior.
// methodsRequired is stamped onto every Candidate so callers can
// forward it straight into Decode without deciding per-entry.
func (w *Walker) Walk(root string, methodsRequired bool, visit func(Candidate) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		switch {
		case strings.HasSuffix(path, ".class"):
			name := strings.TrimSuffix(filepath.Base(path), ".class")
			if strings.ContainsRune(name, '$') {
				return nil
			}
			return visit(Candidate{SourcePath: path, BinaryName: name, MethodsRequired: methodsRequired})

		case strings.HasSuffix(path, ".jar") || strings.HasSuffix(path, ".zip"):
			return w.walkArchive(path, methodsRequired, visit)
		}
		return nil
	})
}

func (w *Walker) walkArchive(path string, methodsRequired bool, visit func(Candidate) error) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		w.log.Warnf("%s: failed to open as zip: %v", path, err)
		return nil
	}
	defer zr.Close()

	for _, f := range zr.File {
		if !strings.HasSuffix(f.Name, ".class") {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(f.Name), ".class")
		if strings.ContainsRune(name, '$') {
			continue
		}
		c := Candidate{SourcePath: path, EntryName: f.Name, BinaryName: name, MethodsRequired: methodsRequired}
		if err := visit(c); err != nil {
			return err
		}
	}
	return nil
}

// Open returns the raw bytes for a Candidate, mmap'ing loose files and
// reading archive entries through the zip reader.
func (w *Walker) Open(c Candidate) ([]byte, error) {
	if !c.IsArchive() {
		f, err := os.Open(c.SourcePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		if info.Size() == 0 {
			return nil, nil
		}
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			return nil, err
		}
		defer m.Unmap()
		data := make([]byte, len(m))
		copy(data, m)
		return data, nil
	}

	zr, err := zip.OpenReader(c.SourcePath)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != c.EntryName {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, os.ErrNotExist
}

// SignatureBlocks scans a jar/zip archive for META-INF/*.RSA, *.DSA or
// *.EC entries and parses each as a PKCS#7 signature block.
func (w *Walker) SignatureBlocks(path string) ([]SignatureInfo, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var infos []SignatureInfo
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, "META-INF/") || !isSignatureEntry(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			w.log.Warnf("%s: failed to open %s: %v", path, f.Name, err)
			continue
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			w.log.Warnf("%s: failed to read %s: %v", path, f.Name, err)
			continue
		}
		info, err := ParseSignatureBlock(f.Name, content)
		if err != nil {
			w.log.Debugf("%s: %s: %v", path, f.Name, err)
			continue
		}
		infos = append(infos, *info)
	}
	return infos, nil
}
