// Package table renders a check report as a human-readable table.
package table

import (
	"fmt"
	"io"
	"sort"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/EricDasha/mc-mod-compat-check/mccompat/evidence"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/presenter/models"
)

type Presenter struct {
	document  models.Document
	withColor bool
}

func NewPresenter(doc models.Document) *Presenter {
	return &Presenter{
		document:  doc,
		withColor: color.Enable,
	}
}

func (p *Presenter) Present(output io.Writer) error {
	if len(p.document.Results) == 0 {
		_, err := io.WriteString(output, "No mod files found\n")
		return err
	}

	rows := make([][]string, 0, len(p.document.Results))
	for _, r := range p.document.Results {
		rows = append(rows, []string{
			r.FileName,
			r.ModName,
			r.ModVersion,
			statusLabel(r.Status),
			string(r.Level),
			r.Reason,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i][0] < rows[j][0]
	})

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"File", "Mod", "Version", "Status", "Level", "Reason"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	if p.withColor {
		for _, row := range rows {
			table.Rich(row, []tablewriter.Colors{{}, {}, {}, statusColor(row[3]), {}, {}})
		}
	} else {
		table.AppendBulk(rows)
	}
	table.Render()

	_, err := fmt.Fprintf(output, "\n%d compatible, %d incompatible, %d undetermined\n",
		p.document.Compatible(), p.document.Incompatible(), p.document.Undetermined())
	return err
}

func statusLabel(s evidence.CheckStatus) string {
	switch s {
	case evidence.StatusOK:
		return "Compatible"
	case evidence.StatusWrongMC:
		return "Wrong game version"
	case evidence.StatusWrongLoader:
		return "Wrong loader"
	case evidence.StatusUnknownLoader:
		return "Unknown loader"
	case evidence.StatusNotFound:
		return "Not found"
	case evidence.StatusNetworkError:
		return "Network error"
	case evidence.StatusSkipped:
		return "Skipped"
	default:
		return "Unknown"
	}
}

func statusColor(label string) tablewriter.Colors {
	switch label {
	case "Compatible":
		return tablewriter.Colors{tablewriter.FgGreenColor}
	case "Wrong game version", "Wrong loader":
		return tablewriter.Colors{tablewriter.FgRedColor}
	case "Network error":
		return tablewriter.Colors{tablewriter.FgMagentaColor}
	default:
		return tablewriter.Colors{tablewriter.FgYellowColor}
	}
}
