package wiki

import (
	"fmt"
	"strings"

	"github.com/Metriximor/Lusitania/internal/geo"
	"github.com/Metriximor/Lusitania/internal/registry"
)

// Imagemap renders the interactive-map block for a wiki page: an imagemap
// tag wrapping one clickable geometry line per plot.
func Imagemap(page string, plots []registry.Plot, origin geo.Origin) string {
	lines := make([]string, 0, len(plots))
	for _, p := range plots {
		lines = append(lines, p.Shape.ImagemapString(origin)+" "+plotLink(p))
	}

	return "{{#tag:imagemap|\n" +
		fmt.Sprintf("Image:%s {{!}}{{{1|640px}}}\n", ImageMapName(page)) +
		strings.Join(lines, "\n") +
		"\n}}"
}

// plotLink targets the plot's section when it has a name, the owner's page
// otherwise.
func plotLink(p registry.Plot) string {
	if p.Name != "" {
		return fmt.Sprintf("[[{{PAGENAME}}#%s|%s]]", p.Name, p.Name)
	}
	return fmt.Sprintf("[[%s|]]", p.Owner)
}

// ImageMapName mirrors the wiki file naming convention for uploaded map
// images.
func ImageMapName(page string) string {
	return strings.ReplaceAll(strings.ToLower(page+"_civmc.png"), "_", " ")
}
