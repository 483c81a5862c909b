// Package source enumerates FHIR JSON documents from files, directories,
// NDJSON files and ZIP archives as (name, content) pairs.
package source

import (
	"archive/zip"
	"bufio"
	"bytes"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Stdin is the path that reads one document from standard input.
const Stdin = "-"

// maxLine bounds a single NDJSON line.
const maxLine = 64 << 20

// Reader yields the documents found under a list of paths. Directories are
// walked recursively and only .json, .ndjson and .zip files are read from
// them; files named explicitly are read whatever their extension.
type Reader struct {
	paths []string
	stdin io.Reader
	err   error
}

// New returns a reader over paths.
func New(paths ...string) *Reader {
	return &Reader{paths: paths, stdin: os.Stdin}
}

// Err returns the first error that stopped the iteration.
func (r *Reader) Err() error {
	return r.err
}

// All iterates over the documents in path order. Documents of NDJSON files
// are named "<path>:<line>", ZIP entries "<archive>!<entry>".
func (r *Reader) All() iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		r.err = nil
		for _, p := range r.paths {
			ok, err := r.path(p, yield)
			if err != nil {
				r.err = err
				return
			}
			if !ok {
				return
			}
		}
	}
}

func (r *Reader) path(p string, yield func(string, []byte) bool) (bool, error) {
	if p == Stdin {
		data, err := io.ReadAll(r.stdin)
		if err != nil {
			return false, errors.Wrap(err, "reading standard input")
		}
		return yield("stdin", data), nil
	}

	info, err := os.Stat(p)
	if err != nil {
		return false, errors.Wrapf(err, "opening %s", p)
	}
	if !info.IsDir() {
		return file(p, yield)
	}

	cont := true
	err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !supported(path) {
			return nil
		}
		cont, err = file(path, yield)
		if err != nil {
			return err
		}
		if !cont {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return false, errors.Wrapf(err, "walking %s", p)
	}
	return cont, nil
}

func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".ndjson", ".zip":
		return true
	}
	return false
}

func file(path string, yield func(string, []byte) bool) (bool, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return archive(path, yield)
	case ".ndjson":
		f, err := os.Open(path)
		if err != nil {
			return false, errors.Wrapf(err, "opening %s", path)
		}
		defer f.Close()
		return lines(path, f, yield)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", path)
	}
	return yield(path, data), nil
}

// lines yields every non-blank line of an NDJSON stream.
func lines(name string, rd io.Reader, yield func(string, []byte) bool) (bool, error) {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	n := 0
	for sc.Scan() {
		n++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if !yield(name+":"+strconv.Itoa(n), bytes.Clone(line)) {
			return false, nil
		}
	}
	if err := sc.Err(); err != nil {
		return false, errors.Wrapf(err, "reading %s line %d", name, n+1)
	}
	return true, nil
}

func archive(path string, yield func(string, []byte) bool) (bool, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return false, errors.Wrapf(err, "opening archive %s", path)
	}
	defer zr.Close()

	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() || !supported(entry.Name) || strings.EqualFold(filepath.Ext(entry.Name), ".zip") {
			continue
		}
		ok, err := zipEntry(path, entry, yield)
		if err != nil || !ok {
			return ok, err
		}
	}
	return true, nil
}

func zipEntry(path string, entry *zip.File, yield func(string, []byte) bool) (bool, error) {
	name := path + "!" + entry.Name

	rc, err := entry.Open()
	if err != nil {
		return false, errors.Wrapf(err, "opening %s", name)
	}
	defer rc.Close()

	if strings.EqualFold(filepath.Ext(entry.Name), ".ndjson") {
		return lines(name, rc, yield)
	}
	data, err := io.ReadAll(rc)
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", name)
	}
	return yield(name, data), nil
}
