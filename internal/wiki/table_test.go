package wiki

import (
	"strings"
	"testing"
	"time"

	"github.com/Metriximor/Lusitania/internal/geo"
	"github.com/Metriximor/Lusitania/internal/registry"
)

func examplePlots() []registry.Plot {
	return []registry.Plot{
		{
			Shape:   geo.Rect{P1: geo.Point{X: 8097, Z: 3854}, P2: geo.Point{X: 8108, Z: 3842}},
			Owner:   "Passencore",
			Date:    time.Date(2022, 2, 22, 0, 0, 0, 0, time.UTC),
			Type:    registry.ZoneCommercial,
			Name:    "Mercado",
			Address: "1 Rua do Ouro",
		},
		{
			Shape: geo.Circle{Center: geo.Point{X: 8120, Z: 3870}, Radius: 5},
			Owner: "Portucale",
			Date:  time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
			Type:  registry.ZonePublic,
		},
	}
}

func TestPlotTableMarkdown(t *testing.T) {
	out := PlotTable(examplePlots(), Markdown)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("want header, separator and 2 rows, got %d lines:\n%s", len(lines), out)
	}

	if !strings.HasPrefix(lines[0], "| Name | Owner |") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[2], "Passencore") || !strings.Contains(lines[2], "132") {
		t.Errorf("unexpected first row: %q", lines[2])
	}
	if !strings.Contains(lines[3], "Portucale") || !strings.Contains(lines[3], "78.54") {
		t.Errorf("unexpected second row: %q", lines[3])
	}
	// absent optional fields are empty cells
	if !strings.HasPrefix(lines[3], "|  | Portucale |  | Public |") {
		t.Errorf("optional cells not empty: %q", lines[3])
	}
}

func TestPlotTableRowPerRecord(t *testing.T) {
	plots := examplePlots()
	out := PlotTable(plots, Markdown)
	rows := strings.Count(out, "\n") - 2 // minus header and separator
	if rows != len(plots) {
		t.Errorf("want %d rows, got %d", len(plots), rows)
	}

	// input order is preserved
	if strings.Index(out, "Passencore") > strings.Index(out, "Portucale") {
		t.Error("rows out of input order")
	}
}

func TestPlotTableMediaWiki(t *testing.T) {
	out := PlotTable(examplePlots(), MediaWiki)

	if !strings.HasPrefix(out, "{| class=\"wikitable sortable\"\n") {
		t.Errorf("missing wikitable header:\n%s", out)
	}
	if !strings.HasSuffix(out, "|}\n") {
		t.Errorf("missing table close:\n%s", out)
	}
	if !strings.Contains(out, "! Name !! Owner !!") {
		t.Errorf("missing header row:\n%s", out)
	}
	if !strings.Contains(out, "| Mercado || Passencore ||") {
		t.Errorf("missing first row:\n%s", out)
	}
}

func TestPlotTableMediaWikiEscapesPipes(t *testing.T) {
	plots := examplePlots()
	plots[0].Details = "shared wall || see [[Mercado|the market]]"

	out := PlotTable(plots, MediaWiki)

	if !strings.Contains(out, "shared wall {{!}}{{!}} see [[Mercado{{!}}the market]]") {
		t.Errorf("pipes in cell text not escaped:\n%s", out)
	}
	// every data row still has exactly 7 columns
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "| ") {
			continue
		}
		if cols := strings.Count(line, "||") + 1; cols != 7 {
			t.Errorf("row has %d columns, want 7: %q", cols, line)
		}
	}
}

func TestOwnershipTable(t *testing.T) {
	stats := []registry.OwnerStat{
		{Owner: "Alice", Buildings: 2, Area: 100},
		{Owner: "Bob", Buildings: 1, Area: 50.5},
	}

	md := OwnershipTable(stats, Markdown)
	if !strings.Contains(md, "| Alice | 2 | 100 |") {
		t.Errorf("unexpected markdown table:\n%s", md)
	}

	mw := OwnershipTable(stats, MediaWiki)
	if !strings.Contains(mw, "| [[Alice]] || 2 || 100") {
		t.Errorf("owners not linked in wiki mode:\n%s", mw)
	}
	if !strings.Contains(mw, "| [[Bob]] || 1 || 50.5") {
		t.Errorf("unexpected wiki row:\n%s", mw)
	}
}

func TestFormatExt(t *testing.T) {
	if Markdown.Ext() != ".md" || MediaWiki.Ext() != ".wiki" {
		t.Errorf("unexpected extensions: %q %q", Markdown.Ext(), MediaWiki.Ext())
	}
}

func TestImagemap(t *testing.T) {
	out := Imagemap("lusitania", examplePlots(), geo.Origin{X: 8090, Z: 3840})

	if !strings.HasPrefix(out, "{{#tag:imagemap|\n") || !strings.HasSuffix(out, "\n}}") {
		t.Errorf("missing imagemap wrapper:\n%s", out)
	}
	if !strings.Contains(out, "Image:lusitania civmc.png {{!}}{{{1|640px}}}") {
		t.Errorf("missing image line:\n%s", out)
	}
	if !strings.Contains(out, "rect 7 14 18 2 [[{{PAGENAME}}#Mercado|Mercado]]") {
		t.Errorf("missing named rect entry:\n%s", out)
	}
	// nameless plots link to the owner page instead
	if !strings.Contains(out, "circle 30 30 5 [[Portucale|]]") {
		t.Errorf("missing owner-linked circle entry:\n%s", out)
	}
}

func TestHTMLPreview(t *testing.T) {
	out, err := HTMLPreview("lusitania", "lusitania_preview.png", examplePlots())
	if err != nil {
		t.Fatalf("HTMLPreview: %v", err)
	}

	if !strings.HasPrefix(out, "<!doctype html>") {
		t.Errorf("output not minified: %q", out[:40])
	}
	if !strings.Contains(out, `src=lusitania_preview.png`) && !strings.Contains(out, `src="lusitania_preview.png"`) {
		t.Errorf("missing image reference:\n%s", out)
	}
	if !strings.Contains(out, "Passencore") || !strings.Contains(out, "Portucale") {
		t.Errorf("missing table rows:\n%s", out)
	}
}
