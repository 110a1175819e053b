package helper

import (
	"strings"

	"github.com/olekukonko/tablewriter"
)

// FormatList formats a list, using a specific blank value replacement
func FormatList(in []string) string {
	return formatRows(in, false)
}

// FormatKV formats key value pairs:
//
// Key = Value
//
// Key = <none>
func FormatKV(in []string) string {
	return formatRows(in, true)
}

func formatRows(in []string, kv bool) string {
	var sb strings.Builder

	table := tablewriter.NewWriter(&sb)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetRowLine(false)
	table.SetHeaderLine(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	if kv {
		table.SetColumnSeparator("=")
	} else {
		table.SetColumnSeparator("|")
	}

	for _, row := range in {
		cols := strings.Split(row, "|")

		for i, col := range cols {
			cols[i] = strings.TrimSpace(col)
			if cols[i] == "" {
				cols[i] = "<none>"
			}
		}

		table.Append(cols)
	}

	table.Render()

	return strings.TrimRight(sb.String(), "\n")
}
