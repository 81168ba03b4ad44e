package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// gridGap is the number of blank columns between side-by-side tables.
const gridGap = 2

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle })
}

// renderSampleGrid lays samples out row by row in a bordered table with the
// given number of columns. The last row is padded with empty cells.
func renderSampleGrid(samples []string, columns int) string {
	columns = max(columns, 1)
	t := newTable()
	for i := 0; i < len(samples); i += columns {
		row := make([]string, columns)
		copy(row, samples[i:min(i+columns, len(samples))])
		t.Row(row...)
	}
	return t.String()
}

// renderFormatGrid renders one table per format, headed by its display name,
// and packs as many tables side by side as fit in width. It returns the grid
// and the number of tables per row, which is at least 1 and never more than
// len(groups) when groups is not empty.
func renderFormatGrid(groups []FormatSamples, width int) (string, int) {
	blocks := make([]string, len(groups))
	widest := 0
	for i, g := range groups {
		t := newTable().Headers(g.Name)
		for _, s := range g.Samples {
			t.Row(s)
		}
		blocks[i] = t.String()
		widest = max(widest, lipgloss.Width(blocks[i]))
	}

	cols := max(1, min(len(blocks), (width+gridGap)/(widest+gridGap)))
	gap := strings.Repeat(" ", gridGap)

	rows := make([]string, 0, (len(blocks)+cols-1)/cols)
	for i := 0; i < len(blocks); i += cols {
		var cells []string
		for j, b := range blocks[i:min(i+cols, len(blocks))] {
			if j > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, lipgloss.PlaceHorizontal(widest, lipgloss.Left, b))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n"), cols
}
