package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveytools/formgraph/internal/xlsform"
)

// row builds a minimal survey row whose expression fields live in Fields.
func row(name, rowType string, fields map[string]string, ancestors ...string) xlsform.Row {
	if fields == nil {
		fields = map[string]string{}
	}
	fields["type"] = rowType
	fields["name"] = name
	return xlsform.Row{Name: name, Type: rowType, Fields: fields, Ancestors: ancestors}
}

func names(elements []*Element) []string {
	out := make([]string, len(elements))
	for i, el := range elements {
		out[i] = el.Name
	}
	return out
}

func TestBuild_PositionsMatchInputOrder(t *testing.T) {
	t.Parallel()

	rows := []xlsform.Row{
		row("consent", "select_one yes_no", nil),
		row("age", "integer", nil),
		row("eligible", "calculate", map[string]string{"calculation": "${consent} = 'yes' and ${age} >= 18"}),
	}

	g, err := Build(rows, Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, len(rows), g.NodeCount())
	for i, r := range rows {
		el, err := g.At(i)
		require.NoError(t, err)
		assert.Equal(t, r.Name, el.Name)
		assert.Equal(t, i, el.Position)
	}
}

func TestBuild_ThreeElementScenario(t *testing.T) {
	t.Parallel()

	// B's calculation references A; C's label references both A and B.
	rows := []xlsform.Row{
		row("a", "integer", nil),
		row("b", "calculate", map[string]string{"calculation": "${a} * 2"}),
		row("c", "note", map[string]string{"label": "A was ${a}, doubled is ${b}"}),
	}

	g, err := Build(rows, Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []Edge{
		{Source: "a", Target: "b"},
		{Source: "a", Target: "c"},
		{Source: "b", Target: "c"},
	}, g.Edges())
	assert.Empty(t, g.Isolates())
	assert.Equal(t, []string{"c"}, names(g.TerminalNodes()))
	assert.Empty(t, g.ForwardDependencies())
}

func TestBuild_DuplicateNameFails(t *testing.T) {
	t.Parallel()

	rows := []xlsform.Row{
		row("age", "integer", nil),
		row("name", "text", nil),
		row("age", "decimal", nil),
	}

	g, err := Build(rows, Options{})
	assert.Nil(t, g)

	var dupErr *DuplicateNameError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "age", dupErr.Name)
	assert.Equal(t, 0, dupErr.FirstPosition)
	assert.Equal(t, 2, dupErr.SecondPosition)
}

func TestBuild_DuplicateReferencesCollapse(t *testing.T) {
	t.Parallel()

	rows := []xlsform.Row{
		row("age", "integer", nil),
		row("check", "calculate", map[string]string{
			"calculation": "${age} + ${age}",
			"constraint":  ". > ${age}",
		}),
	}

	g, err := Build(rows, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuild_SelfReferenceKept(t *testing.T) {
	t.Parallel()

	rows := []xlsform.Row{
		row("counter", "calculate", map[string]string{"calculation": "coalesce(${counter}, 0) + 1"}),
	}

	g, err := Build(rows, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []Edge{{Source: "counter", Target: "counter"}}, g.Edges())
	assert.Empty(t, g.Isolates(), "a self-looped element has degree in both directions")
	assert.Empty(t, g.TerminalNodes())
}

func TestBuild_ExpressionColumnsRestrictScan(t *testing.T) {
	t.Parallel()

	rows := []xlsform.Row{
		row("age", "integer", nil),
		row("note1", "note", map[string]string{
			"label":      "You are ${age}",
			"media_note": "ignored ${age} mention",
		}),
	}

	all, err := Build(rows, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, all.EdgeCount(), "scan-everything mode still deduplicates")

	onlyCalc, err := Build(rows, Options{ExpressionColumns: []string{"calculation"}})
	require.NoError(t, err)
	assert.Equal(t, 0, onlyCalc.EdgeCount())

	onlyLabel, err := Build(rows, Options{ExpressionColumns: []string{"label"}})
	require.NoError(t, err)
	assert.Equal(t, 1, onlyLabel.EdgeCount())
}

func TestBuild_AncestorEdges(t *testing.T) {
	t.Parallel()

	rows := []xlsform.Row{
		row("household", "begin group", nil),
		row("hh_size", "integer", nil, "household"),
		row("member", "begin repeat", map[string]string{"repeat_count": "${hh_size}"}, "household"),
		row("member_age", "integer", nil, "household", "member"),
	}

	g, err := Build(rows, Options{AncestorEdges: true})
	require.NoError(t, err)

	// household -> hh_size, household -> member (ancestor + no expression),
	// hh_size -> member (repeat_count), member -> member_age (ancestor).
	assert.Equal(t, 4, g.EdgeCount())

	preds, err := g.Predecessors("member")
	require.NoError(t, err)
	assert.Equal(t, []string{"household", "hh_size"}, names(preds))

	// Without ancestor edges only the repeat_count reference remains.
	plain, err := Build(rows, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, plain.EdgeCount())
}

func TestBuild_RowsWithoutReferencesAreIsolates(t *testing.T) {
	t.Parallel()

	rows := []xlsform.Row{
		row("start", "start", nil),
		row("age", "integer", nil),
		row("check", "calculate", map[string]string{"calculation": "${age} >= 0"}),
	}

	g, err := Build(rows, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"start"}, names(g.Isolates()))
}
