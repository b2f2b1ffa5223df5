package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// writeSurveyCSV writes a small clean survey (no cycles, no forward refs)
// and returns its path.
func writeSurveyCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survey.csv")
	csvData := "type,name,label,calculation\n" +
		"integer,age,How old are you?,\n" +
		"calculate,adult,,${age} >= 18\n" +
		"note,summary,Adult: ${adult},\n"
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0o644))
	return path
}

// execute runs the root command with args and returns captured stdout.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	require.NoError(t, err)
	return buf.String()
}

func TestAnalyzeCommand_CleanForm(t *testing.T) {
	path := writeSurveyCSV(t)

	out := execute(t, "analyze", path)

	assert.Contains(t, out, "elements: 3")
	assert.Contains(t, out, "references: 2")
	assert.Contains(t, out, "no forward references")
	assert.Contains(t, out, "no dependency cycles")
	assert.Contains(t, out, "no isolated elements")
	assert.Contains(t, out, "terminal element(s): summary")
}

func TestShowCommand_ListsElements(t *testing.T) {
	path := writeSurveyCSV(t)

	out := execute(t, "show", path)

	assert.Contains(t, out, "age")
	assert.Contains(t, out, "adult")
	assert.Contains(t, out, "summary")
}

func TestShowCommand_SingleElement(t *testing.T) {
	path := writeSurveyCSV(t)

	out := execute(t, "show", path, "adult")

	assert.Contains(t, out, "position: 1")
	assert.Contains(t, out, "type: calculate")
	assert.Contains(t, out, "depends on: age")
	assert.Contains(t, out, "depended on by: summary")
}

func TestDepsCommand_Closure(t *testing.T) {
	path := writeSurveyCSV(t)

	out := execute(t, "deps", path, "summary")

	assert.Contains(t, out, "age")
	assert.Contains(t, out, "adult")
	assert.NotContains(t, out, "summary")
}

func TestExportCommand_DOT(t *testing.T) {
	path := writeSurveyCSV(t)

	out := execute(t, "export", path)

	assert.Contains(t, out, "digraph formgraph")
	assert.Contains(t, out, `"age" -> "adult";`)
	assert.Contains(t, out, `"adult" -> "summary";`)
}

func TestIsolatesCommand_None(t *testing.T) {
	path := writeSurveyCSV(t)

	out := execute(t, "isolates", path)
	assert.Contains(t, out, "no isolated elements")
}
