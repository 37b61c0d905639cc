package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, source string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(source), 0o644))
}

func TestAnalyzeFileAcceptedFunction(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "scan.ml", "let scan (v : int list) : int @ O(v) measure v = v;")

	report := AnalyzeFile(filepath.Join(dir, "scan.ml"))
	require.Empty(t, report.Err)
	require.Len(t, report.Functions, 1)
	assert.True(t, report.Functions[0].Accepted)
	assert.Equal(t, "scan", report.Functions[0].Name)
}

func TestAnalyzeFileParseErrorIsReported(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.ml", "let f (v : int @@@ garbage")

	report := AnalyzeFile(filepath.Join(dir, "broken.ml"))
	assert.NotEmpty(t, report.Err)
}

func TestAnalyzeDirWalksEveryMLFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ml", "let f (v : int) : int @ O(1) measure v = 0;")
	writeFile(t, dir, "b.ml", "let g (v : int) : int @ O(1) measure v = 0;")
	writeFile(t, dir, "ignore.txt", "not a source file")

	reports, err := AnalyzeDir(dir)
	require.NoError(t, err)
	assert.Len(t, reports, 2)
}

func TestSummarizePathLengths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rec.ml", "let rec countdown (v : int) : int @ O(v) measure v = if v = 0 then 0 else countdown (v - 1);")

	report := AnalyzeFile(filepath.Join(dir, "rec.ml"))
	require.Empty(t, report.Err)
	require.Len(t, report.Functions, 1)
	fr := report.Functions[0]
	assert.Equal(t, 2, fr.NumPaths)
	assert.GreaterOrEqual(t, fr.MaxPathLength, fr.MinPathLength)
}
