package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "2026-01-30.encoded.txt")
	dst := filepath.Join(dir, "latest.encoded.txt")
	require.NoError(t, os.WriteFile(src, []byte("ABI3"), 0o600))
	require.NoError(t, os.WriteFile(dst, []byte("stale payload"), 0o644))

	require.NoError(t, CopyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "ABI3", string(got))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temp file cleaned up")
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFile(filepath.Join(dir, "nope"), filepath.Join(dir, "out"))
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "out"))
}

func TestReadInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.txt")
	require.NoError(t, os.WriteFile(path, []byte("ABI3\n"), 0o644))
	got, err := ReadInput(path)
	require.NoError(t, err)
	assert.Equal(t, "ABI3\n", string(got))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "-", OrDash(""))
	assert.Equal(t, "x", OrDash("x"))
	assert.Equal(t, "None", JoinOrNone(nil))
	assert.Equal(t, "a, b", JoinOrNone([]string{"a", "b"}))

	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{31, "31 B"},
		{1536, "1.5 KB"},
		{5 << 20, "5.0 MB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.in))
	}
}

func TestWritePrettyJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePrettyJSON(&buf, map[string]any{"words": []string{"bag"}}))
	assert.Equal(t, "{\n  \"words\": [\n    \"bag\"\n  ]\n}\n", buf.String())
}
