package calibration

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format of Render.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal table
	Markdown             // GitHub-flavoured Markdown table
)

// Render formats the report as one row per candidate.
func (r Report) Render(m Mode) string {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}

	w.AppendHeader(table.Row{"Candidate", "Target", "Matched", "Failed cases"})
	for _, c := range r.Candidates {
		failed := strings.Join(c.Failed, ", ")
		if failed == "" {
			failed = "-"
		}
		w.AppendRow(table.Row{
			c.Name,
			string(c.Target),
			fmt.Sprintf("%d/%d", len(c.Matched), len(c.Outcomes)),
			failed,
		})
	}
	w.AppendFooter(table.Row{"", "", fmt.Sprintf("%d cases", len(r.Cases)), ""})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, WidthMax: 60},
	})

	if m == Markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}
