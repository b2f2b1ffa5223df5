package errors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCategoryString(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		category ErrorCategory
		want     string
	}{
		"argument":      {Argument, "Argument Error"},
		"configuration": {Configuration, "Configuration Error"},
		"input":         {Input, "Input Error"},
		"analysis":      {Analysis, "Analysis Error"},
		"unknown":       {ErrorCategory(99), "Error"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.category.String())
		})
	}
}

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	err := NewArgumentErrorWithUsage(
		"survey file is required",
		"formgraph analyze <form.xlsx>",
		"Pass the path to a survey file",
	)

	out := FormatErrorPlain(err)
	assert.Contains(t, out, "Error [Argument Error]: survey file is required")
	assert.Contains(t, out, "Usage: formgraph analyze <form.xlsx>")
	assert.Contains(t, out, "• Pass the path to a survey file")
}

func TestConstructorCategories(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  *CLIError
		want ErrorCategory
	}{
		"argument":      {NewArgumentError("bad flag"), Argument},
		"configuration": {NewConfigError("bad sheet name"), Configuration},
		"input":         {NewInputError("unreadable file"), Input},
		"analysis":      {NewAnalysisError("graph build failed"), Analysis},
		"missing form":  {MissingFormArgument("analyze"), Argument},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Category)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap(nil, Input))

	wrapped := WrapWithMessage(assert.AnError, Input, "loading form")
	assert.Equal(t, Input, wrapped.Category)
	assert.Contains(t, wrapped.Message, "loading form")
}

func TestFprintError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	FprintError(&buf, nil)
	assert.Empty(t, buf.String())

	FprintError(&buf, NewInputError("bad sheet"))
	assert.Contains(t, buf.String(), "bad sheet")
}
