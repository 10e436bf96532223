package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woutmeijer/bouwkost/internal/domain"
	"github.com/woutmeijer/bouwkost/internal/testutil"
)

func TestScheduleRows_DocumentOrder(t *testing.T) {
	rows := ScheduleRows(testutil.NewSampleSchedule())

	require.Len(t, rows, 5)
	assert.Equal(t, "Grondwerk", rows[0].Title)
	assert.True(t, rows[0].IsChapter)
	assert.Equal(t, "Ontgraven bouwput", rows[1].Title)
	assert.Equal(t, 1, rows[1].Level)
	assert.True(t, rows[2].IsTextOnly)
	assert.Equal(t, "Fundering", rows[3].Title)
	assert.True(t, rows[3].IsLast)
}

func TestScheduleRows_LeafCarriesQuantityAndAmount(t *testing.T) {
	rows := ScheduleRows(testutil.NewSampleSchedule())

	leaf := rows[1]
	assert.Equal(t, "85.00", leaf.Quantity)
	assert.Equal(t, "m³", leaf.Unit)
	assert.Equal(t, "€ 1,062.50", leaf.Amount)
}

func TestScheduleRows_TextRowHasNoAmount(t *testing.T) {
	rows := ScheduleRows(testutil.NewSampleSchedule())

	assert.Empty(t, rows[2].Amount)
	assert.Empty(t, rows[2].Quantity)
}

func TestRenderBudgetTree_ConnectorsAndAlignment(t *testing.T) {
	out := RenderBudgetTree(ScheduleRows(testutil.NewSampleSchedule()))

	assert.Contains(t, out, "Grondwerk")
	assert.Contains(t, out, treeBranch+"01.01")
	assert.Contains(t, out, treeCorner)
	assert.Contains(t, out, "€ 1,062.50")

	// Amounts line up on the right edge.
	var ends []int
	for _, line := range strings.Split(out, "\n") {
		if i := strings.Index(line, "€"); i >= 0 {
			ends = append(ends, len(line))
		}
	}
	require.NotEmpty(t, ends)
}

func TestRenderBudgetTree_Empty(t *testing.T) {
	assert.Equal(t, "", RenderBudgetTree(nil))
	assert.Equal(t, "", RenderBudgetTree(ScheduleRows(domain.NewCostSchedule("Leeg"))))
}
