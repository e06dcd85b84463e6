package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Metriximor/Lusitania/internal/geo"

	"github.com/rs/zerolog/log"
)

// Page couples a registry folder with its data file and map image.
type Page struct {
	Name      string
	Dir       string
	DataFile  string
	ImageFile string
	Origin    geo.Origin
}

// FindPages scans the registry root for page folders, each holding one JSON
// data file and one map export named with the origin suffix. Generated
// outputs from earlier runs are ignored because their names never carry the
// origin pattern.
func FindPages(root string) ([]Page, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var pages []Page
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		page, err := readPageDir(entry.Name(), dir)
		if err != nil {
			return nil, err
		}

		log.Debug().
			Str("page", page.Name).
			Str("data", page.DataFile).
			Str("image", page.ImageFile).
			Int("origin_x", page.Origin.X).
			Int("origin_z", page.Origin.Z).
			Msg("Found registry page")

		pages = append(pages, page)
	}

	return pages, nil
}

func readPageDir(name, dir string) (Page, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return Page{}, err
	}

	var jsonFiles, pngFiles []string
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(f.Name())) {
		case ".json":
			jsonFiles = append(jsonFiles, f.Name())
		case ".png":
			pngFiles = append(pngFiles, f.Name())
		}
	}

	if len(jsonFiles) != 1 {
		return Page{}, fmt.Errorf("page %q: want exactly one JSON data file, found %d", name, len(jsonFiles))
	}
	if len(pngFiles) == 0 {
		return Page{}, fmt.Errorf("page %q: no map image found", name)
	}

	image, origin, err := findMapImage(pngFiles)
	if err != nil {
		return Page{}, fmt.Errorf("page %q: %w", name, err)
	}

	return Page{
		Name:      name,
		Dir:       dir,
		DataFile:  filepath.Join(dir, jsonFiles[0]),
		ImageFile: filepath.Join(dir, image),
		Origin:    origin,
	}, nil
}

// findMapImage picks the one PNG whose name encodes the world origin.
func findMapImage(pngFiles []string) (string, geo.Origin, error) {
	var found string
	var origin geo.Origin

	for _, name := range pngFiles {
		o, err := geo.ParseOrigin(name)
		if err != nil {
			continue
		}
		if found != "" {
			return "", geo.Origin{}, fmt.Errorf("ambiguous map images %q and %q", found, name)
		}
		found, origin = name, o
	}

	if found == "" {
		// surface the naming error for the file that was meant to be the map
		return "", geo.Origin{}, &geo.ImageNamingError{Filename: pngFiles[0]}
	}

	return found, origin, nil
}
