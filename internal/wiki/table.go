// Package wiki renders land registry tables and wiki markup blocks.
package wiki

import (
	"math"
	"strconv"
	"strings"

	"github.com/Metriximor/Lusitania/internal/registry"
)

// Format selects the table output markup.
type Format string

// Supported table markups.
const (
	Markdown  Format = "markdown"
	MediaWiki Format = "wiki"
)

// Ext returns the table file extension for the format.
func (f Format) Ext() string {
	if f == MediaWiki {
		return ".wiki"
	}
	return ".md"
}

var plotHeaders = []string{"Name", "Owner", "Address", "Type", "Area (m²)", "Date", "Details"}

// PlotTable renders one table row per plot, preserving input order. Absent
// optional fields render as empty cells.
func PlotTable(plots []registry.Plot, f Format) string {
	rows := make([][]string, 0, len(plots))
	for _, p := range plots {
		rows = append(rows, plotRow(p))
	}
	return renderTable(plotHeaders, rows, f)
}

func plotRow(p registry.Plot) []string {
	return []string{
		p.Name,
		p.Owner,
		p.Address,
		string(p.Type),
		formatArea(p.Shape.Area()),
		p.Date.Format("2006-01-02"),
		p.Details,
	}
}

var ownershipHeaders = []string{"Owner", "Amount of Buildings Owned", "Total Land Owned (m²)"}

// OwnershipTable renders the per-owner holdings summary.
func OwnershipTable(stats []registry.OwnerStat, f Format) string {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		owner := s.Owner
		if f == MediaWiki {
			owner = "[[" + owner + "]]"
		}
		rows = append(rows, []string{owner, strconv.Itoa(s.Buildings), formatArea(s.Area)})
	}
	return renderTable(ownershipHeaders, rows, f)
}

func renderTable(headers []string, rows [][]string, f Format) string {
	if f == MediaWiki {
		return renderMediaWiki(headers, rows)
	}
	return renderMarkdown(headers, rows)
}

func renderMarkdown(headers []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.ReplaceAll(cell, "|", `\|`)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	return b.String()
}

func renderMediaWiki(headers []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString("{| class=\"wikitable sortable\"\n")
	b.WriteString("|-\n")
	b.WriteString("! " + strings.Join(headers, " !! ") + "\n")

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = escapeWikiCell(cell)
		}
		b.WriteString("|-\n")
		b.WriteString("| " + strings.Join(cells, " || ") + "\n")
	}
	b.WriteString("|}\n")

	return b.String()
}

// escapeWikiCell keeps pipes in cell text from being read as column
// separators. Owner links emitted by OwnershipTable are [[...]] only and
// never contain pipes, so they pass through untouched.
func escapeWikiCell(cell string) string {
	return strings.ReplaceAll(cell, "|", "{{!}}")
}

// formatArea prints an area rounded to two decimals without trailing zeros.
func formatArea(area float64) string {
	return strconv.FormatFloat(math.Round(area*100)/100, 'f', -1, 64)
}
