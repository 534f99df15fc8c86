package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"docfs/internal/filesystem"
	"docfs/internal/storage"
)

func localFactory(string, io.Writer) (filesystem.FileSystem, error) {
	return filesystem.NewFileSystem(storage.NewLocal(0o644), nil), nil
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(localFactory)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestWriteAndCat(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "hi, this is some text for a file", "write", dir, "--name", "note.txt")
	require.NoError(t, err)

	out, _, err := run(t, "", "cat", filepath.Join(dir, "note.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hi, this is some text for a file", out)
}

func TestWrite_FromFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src.csv")
	require.NoError(t, os.WriteFile(src, []byte("a,b"), 0o644))
	dir := t.TempDir()

	_, _, err := run(t, "", "write", dir, "-n", "copy.csv", "-f", src)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "copy.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a,b", string(data))
}

func TestWrite_InvalidDirectory(t *testing.T) {
	_, stderr, err := run(t, "x", "write", "abc", "--name", "a.txt")

	assert.ErrorIs(t, err, errWriteFailed)
	assert.Equal(t, filesystem.MsgInvalidDirectory+"\n", stderr)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), nil, 0o644))

	out, _, err := run(t, "", "ls", dir)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)

	out, _, err = run(t, "", "ls", dir, "-o", "yaml")
	require.NoError(t, err)
	var parsed listing
	require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, []string{"a", "b"}, parsed.Entries)

	out, _, err = run(t, "", "ls", filepath.Join(dir, "a"), "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"entries": []`)

	_, _, err = run(t, "", "ls", dir, "-o", "xml")
	assert.Error(t, err)
}

func TestExistsAndRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	out, _, err := run(t, "", "exists", path)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	_, _, err = run(t, "", "rm", path)
	require.NoError(t, err)
	_, _, err = run(t, "", "rm", path)
	require.NoError(t, err)

	out, _, err = run(t, "", "exists", path)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	_, _, err = run(t, "", "exists", "-q", path)
	assert.Error(t, err)
}

func TestCat_Missing(t *testing.T) {
	_, _, err := run(t, "", "cat", filepath.Join(t.TempDir(), "nope"))
	assert.ErrorContains(t, err, "document not found")
}
