package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveytools/formgraph/internal/graph"
	"github.com/surveytools/formgraph/internal/xlsform"
)

func buildTestGraph(t *testing.T) *graph.Graph {
	t.Helper()
	rows := []xlsform.Row{
		{Name: "age", Type: "integer", Fields: map[string]string{"type": "integer", "name": "age"}},
		{Name: "check", Type: "calculate", Fields: map[string]string{
			"type": "calculate", "name": "check", "calculation": "${age} >= 18",
		}},
	}
	g, err := graph.Build(rows, graph.Options{})
	require.NoError(t, err)
	return g
}

func TestRenderDOT(t *testing.T) {
	t.Parallel()

	dot := RenderDOT(buildTestGraph(t))

	assert.Contains(t, dot, "digraph formgraph {")
	assert.Contains(t, dot, `"age" [label="age"];`)
	assert.Contains(t, dot, `"check" [label="check"];`)
	assert.Contains(t, dot, `"age" -> "check";`)
	assert.Contains(t, dot, "}\n")
}

func TestQuoteDOT(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"age"`, quoteDOT("age"))
	assert.Equal(t, `"say \"hi\""`, quoteDOT(`say "hi"`))
}

func TestJoinNames(t *testing.T) {
	t.Parallel()

	g := buildTestGraph(t)
	assert.Equal(t, "age, check", joinNames(g.Elements()))
	assert.Equal(t, "(none)", joinOrNone(nil))
}
