package source

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func collect(t *testing.T, r *Reader) map[string]string {
	t.Helper()
	docs := map[string]string{}
	for name, data := range r.All() {
		docs[name] = string(data)
	}
	require.NoError(t, r.Err())
	return docs
}

func TestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.json"), `{"resourceType":"Basic"}`)
	writeFile(t, filepath.Join(dir, "nested", "b.JSON"), `{"resourceType":"Patient"}`)
	writeFile(t, filepath.Join(dir, "notes.txt"), `not a document`)
	writeFile(t, filepath.Join(dir, "lines.ndjson"), "{\"resourceType\":\"Basic\"}\n\n{\"resourceType\":\"Patient\"}\n")

	docs := collect(t, New(dir))

	assert.Equal(t, map[string]string{
		filepath.Join(dir, "a.json"):             `{"resourceType":"Basic"}`,
		filepath.Join(dir, "nested", "b.JSON"):   `{"resourceType":"Patient"}`,
		filepath.Join(dir, "lines.ndjson") + ":1": `{"resourceType":"Basic"}`,
		filepath.Join(dir, "lines.ndjson") + ":3": `{"resourceType":"Patient"}`,
	}, docs)
}

func TestExplicitFileIgnoresExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	writeFile(t, path, `{}`)

	assert.Equal(t, map[string]string{path: `{}`}, collect(t, New(path)))
}

func TestArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, content := range map[string]string{
		"one.json":       `{"resourceType":"Basic"}`,
		"sub/two.ndjson": "{\"id\":\"x\"}\n",
		"readme.md":      "# docs",
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	assert.Equal(t, map[string]string{
		path + "!one.json":         `{"resourceType":"Basic"}`,
		path + "!sub/two.ndjson:1": `{"id":"x"}`,
	}, collect(t, New(path)))
}

func TestStdin(t *testing.T) {
	r := New(Stdin)
	r.stdin = strings.NewReader(`{"resourceType":"Basic"}`)

	assert.Equal(t, map[string]string{"stdin": `{"resourceType":"Basic"}`}, collect(t, r))
}

func TestMissingPath(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "missing.json"))
	for range r.All() {
		t.Fatal("unexpected document")
	}
	assert.Error(t, r.Err())
}

func TestStopEarly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lines.ndjson"), "{}\n{}\n{}\n")

	n := 0
	r := New(dir)
	for range r.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
	assert.NoError(t, r.Err())
}
