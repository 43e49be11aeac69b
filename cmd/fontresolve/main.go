// Command fontresolve registers the fonts of an asset directory and
// resolves a font request against them.
//
// Usage:
//
//	fontresolve -assets ./assets -family Sans -weight 700 -italic
//	fontresolve -assets ./assets -list
//	fontresolve -inspect ./assets/fonts/Sans-Bold.ttf
//
// Defaults come from FONTREG_ASSETS, FONTREG_MANIFEST, FONTREG_PARSER,
// FONTREG_DISCRETE and FONTREG_DEBUG.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/fontreg"
	"github.com/gogpu/fontreg/text"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("fontresolve: %v", err)
	}

	var (
		assets   = flag.String("assets", cfg.Assets, "asset directory holding the manifest and fonts")
		manifest = flag.String("manifest", cfg.Manifest, "manifest path inside the asset directory")
		parser   = flag.String("parser", cfg.Parser, "font parser backend")
		discrete = flag.Bool("discrete", cfg.Discrete, "snap weights to normal/bold")
		debug    = flag.Bool("debug", cfg.Debug, "log registration and resolution")
		family   = flag.String("family", "", "font family to resolve")
		weight   = flag.Int("weight", int(fontreg.WeightNormal), "font weight (100-900)")
		italic   = flag.Bool("italic", false, "resolve an italic font")
		size     = flag.Float64("size", fontreg.DefaultSize, "point size")
		list     = flag.Bool("list", false, "list registered fonts and exit")
		fontFile = flag.String("inspect", "", "print what the parser reads from a font file and exit")
	)
	flag.Parse()

	if *debug {
		fontreg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *fontFile != "" {
		if err := inspect(os.Stdout, *fontFile, *parser); err != nil {
			log.Fatalf("fontresolve: %v", err)
		}
		return
	}

	var opts []fontreg.Option
	if *discrete {
		opts = append(opts, fontreg.WithStyleApplier(fontreg.DiscreteStyle{}))
	}
	r := fontreg.New(opts...)

	assetFS := os.DirFS(*assets)
	plugin := fontreg.NewPlugin(r)
	plugin.OnAttach(fontreg.Binding{
		Assets:   assetFS,
		Manifest: *manifest,
		Loader: fontreg.FSLoader{
			FS:      assetFS,
			Options: []text.SourceOption{text.WithParser(*parser)},
		},
	})
	defer plugin.OnDetach(fontreg.Binding{})

	if *list {
		printFonts(os.Stdout, r.RegisteredFonts())
		return
	}

	f := r.ResolveRequest(fontreg.Request{
		Family: *family,
		Weight: fontreg.Weight(*weight),
		Italic: *italic,
		Size:   *size,
		Debug:  *debug,
	})
	printFont(os.Stdout, f)

	st := r.CacheStats()
	fontreg.Logger().Debug("fontresolve: resolution cache",
		"entries", st.Len, "hits", st.Hits, "misses", st.Misses)
}

func printFonts(w io.Writer, fonts []fontreg.RegisteredFont) {
	if len(fonts) == 0 {
		fmt.Fprintln(w, "no fonts registered")
		return
	}
	for _, f := range fonts {
		fmt.Fprintf(w, "%-20s %4d %-7s %-24s %s\n",
			f.Family, f.Weight, slant(f.Italic), f.PostScriptName, f.Asset)
	}
}

// labeled returns a printer of aligned "label: value" lines.
func labeled(w io.Writer) func(label, format string, args ...any) {
	return func(label, format string, args ...any) {
		fmt.Fprintf(w, "%-12s"+format+"\n", append([]any{label + ":"}, args...)...)
	}
}

// inspect prints the names and style metadata parser reads from the font
// file at path.
func inspect(w io.Writer, path, parser string) error {
	src, err := text.NewFontSourceFromFile(path, text.WithParser(parser))
	if err != nil {
		return err
	}
	defer src.Close()

	line := labeled(w)
	line("family", "%s", src.Name())
	if full := src.FullName(); full != "" {
		line("full name", "%s", full)
	}
	if ps := src.PostScriptName(); ps != "" {
		line("postscript", "%s", ps)
	}
	line("parser", "%s", src.Parser())
	if md, ok := src.Metadata(); ok {
		line("style", "weight %d, %s", md.Weight, slant(md.Italic))
	} else {
		line("style", "not declared")
	}
	return nil
}

func printFont(w io.Writer, f *fontreg.Font) {
	line := labeled(w)
	line("font", "%s", f.Source().Name())
	if ps := f.Source().PostScriptName(); ps != "" {
		line("postscript", "%s", ps)
	}
	line("match", "%s", f.Tier())
	line("style", "%s (weight %d, %s)", f.Style(), f.Weight(), slant(f.Italic()))
	line("size", "%g", f.Size())
	if f.SyntheticBold() || f.SyntheticItalic() {
		line("synthetic", "bold=%t italic=%t", f.SyntheticBold(), f.SyntheticItalic())
	}
}

func slant(italic bool) string {
	if italic {
		return "italic"
	}
	return "upright"
}
