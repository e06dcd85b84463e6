package main

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/Metriximor/Lusitania/internal/config"
	"github.com/Metriximor/Lusitania/internal/geo"
	"github.com/Metriximor/Lusitania/internal/logger"
	"github.com/Metriximor/Lusitania/internal/registry"
	"github.com/Metriximor/Lusitania/internal/render"
	"github.com/Metriximor/Lusitania/internal/wiki"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile  string   `short:"c" long:"config"       env:"CONFIG_FILE"   description:"Path to configuration file"`
	Root        string   `short:"r" long:"root"         env:"REGISTRY_ROOT" description:"Land registry root directory" default:"land_registry"`
	Limit       []string `short:"l" long:"limit"        env:"LIMIT_NAMES"   description:"Limit processing to specific page names"`
	Format      string   `short:"f" long:"image-format" description:"Annotated image format" choice:"png" choice:"webp"`
	TableFormat string   `short:"t" long:"table-format" description:"Table markup" choice:"markdown" choice:"wiki"`
	Scale       float64  `short:"s" long:"scale"        description:"Pixels per block override"`
	Imagemap    bool     `short:"m" long:"imagemap"     description:"Write the wiki imagemap block"`
	Pie         bool     `short:"p" long:"pie"          description:"Write the zoning distribution pie chart"`
	Preview     bool     `short:"w" long:"preview"      description:"Write a minified HTML preview page"`
	Force       bool     `short:"F" long:"force"        description:"Force overwrite of existing output files"`
}

// output is a rendered file waiting to be written.
type output struct {
	Name string
	Data []byte
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}

	// flags override the config file
	if opts.Format != "" {
		cfg.ImageFormat = opts.Format
	}
	if opts.TableFormat != "" {
		cfg.TableFormat = opts.TableFormat
	}
	if opts.Scale > 0 {
		cfg.Scale = opts.Scale
	}

	colors, err := buildColorTable(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid color configuration")
	}

	pages, err := registry.FindPages(opts.Root)
	if err != nil {
		log.Fatal().Err(err).Str("root", opts.Root).Msg("Failed to scan registry root")
	}

	pages = filterPages(pages, opts.Limit)

	log.Info().
		Int("pages", len(pages)).
		Str("root", opts.Root).
		Str("image_format", cfg.ImageFormat).
		Str("table_format", cfg.TableFormat).
		Msg("Starting land registry processing")

	for _, page := range pages {
		if err := processPage(page, cfg, colors, opts); err != nil {
			log.Fatal().Err(err).Str("page", page.Name).Msg("Failed to process page")
		}
	}

	log.Info().Msg("Land registry processing finished")
}

// processPage renders every output for the page fully in memory before the
// first write, so a failure never leaves a partial set behind.
func processPage(page registry.Page, cfg *config.Config, colors registry.ColorTable, opts Options) error {
	plots, err := registry.LoadPlots(page.DataFile)
	if err != nil {
		return err
	}

	base, err := render.LoadImage(page.ImageFile)
	if err != nil {
		return err
	}

	mapper := geo.Mapper{Origin: page.Origin, Scale: cfg.Scale, Height: base.Bounds().Dy()}
	encOpts := render.Options{Format: cfg.ImageFormat, Quality: cfg.WebpQuality}
	tableFormat := wiki.Format(cfg.TableFormat)

	annotated := render.Overlay(base, plots, mapper, colors)

	var outputs []output

	var buf bytes.Buffer
	if err := render.Encode(&buf, annotated, encOpts); err != nil {
		return err
	}
	outputs = append(outputs, output{Name: page.Name + "_annotated" + encOpts.Ext(), Data: buf.Bytes()})

	table := wiki.PlotTable(plots, tableFormat) + "\n" +
		wiki.OwnershipTable(registry.OwnershipSummary(plots), tableFormat)
	outputs = append(outputs, output{Name: page.Name + "_table" + tableFormat.Ext(), Data: []byte(table)})

	if opts.Imagemap {
		imagemap := wiki.Imagemap(page.Name, plots, page.Origin)
		outputs = append(outputs, output{Name: page.Name + "_imagemap.wiki", Data: []byte(imagemap + "\n")})
	}

	if opts.Pie {
		pie := render.PieChart(registry.ZoningDistribution(plots), 400, colors)
		var pieBuf bytes.Buffer
		if err := render.Encode(&pieBuf, pie, render.Options{Format: "png"}); err != nil {
			return err
		}
		outputs = append(outputs, output{Name: page.Name + "_zoning.png", Data: pieBuf.Bytes()})
	}

	if opts.Preview {
		previewName := page.Name + "_preview" + encOpts.Ext()
		var prevBuf bytes.Buffer
		if err := render.Encode(&prevBuf, render.Preview(annotated, cfg.PreviewWidth), encOpts); err != nil {
			return err
		}
		outputs = append(outputs, output{Name: previewName, Data: prevBuf.Bytes()})

		html, err := wiki.HTMLPreview(page.Name, previewName, plots)
		if err != nil {
			return err
		}
		outputs = append(outputs, output{Name: page.Name + "_preview.html", Data: []byte(html)})
	}

	for _, out := range outputs {
		path := filepath.Join(page.Dir, out.Name)

		if !opts.Force {
			if info, err := os.Stat(path); err == nil && info.Size() > 0 {
				log.Debug().Str("file", path).Msg("Output exists, skipping (use --force to overwrite)")
				continue
			}
		}

		if err := os.WriteFile(path, out.Data, 0644); err != nil {
			return err
		}
	}

	log.Info().
		Str("page", page.Name).
		Int("plots", len(plots)).
		Int("files", len(outputs)).
		Msg("Page processed")

	return nil
}

func buildColorTable(cfg *config.Config) (registry.ColorTable, error) {
	colors := registry.DefaultColors()
	for name, hex := range cfg.Colors {
		zone, err := registry.ParseZoneType(name)
		if err != nil {
			return nil, err
		}
		c, err := registry.ParseHexColor(hex)
		if err != nil {
			return nil, err
		}
		colors[zone] = c
	}
	return colors, nil
}

func filterPages(pages []registry.Page, limit []string) []registry.Page {
	if len(limit) == 0 {
		return pages
	}

	available := make(map[string]registry.Page)
	for _, p := range pages {
		available[p.Name] = p
	}

	seen := make(map[string]bool)
	filtered := make([]registry.Page, 0, len(limit))

	for _, name := range limit {
		if seen[name] {
			continue
		}
		seen[name] = true

		if p, ok := available[name]; ok {
			filtered = append(filtered, p)
		} else {
			log.Error().
				Str("name", name).
				Msg("Page specified in --limit not found in registry")
		}
	}

	return filtered
}
