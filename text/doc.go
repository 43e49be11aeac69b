// Package text holds parsed font sources for fontreg.
//
// A FontSource is the heavyweight, shareable handle that fontreg hands back
// from a resolution. It keeps a private copy of the font bytes together with
// a parsed view used to read names and style metadata:
//
//   - FontSource: parsed font file (TTF or OTF), shared across the application
//   - FontParser: pluggable parsing backend
//   - Metadata: weight and italic flag embedded in the font file
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Roboto-Bold.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	if md, ok := source.Metadata(); ok {
//	    fmt.Println(source.Name(), md.Weight, md.Italic)
//	}
//
// # Pluggable Parser Backend
//
// Three parsers are registered by default:
//
//   - "gotext": github.com/go-text/typesetting (default, reads weight and style)
//   - "sfnt": seehuhn.de/go/sfnt (reads OS/2 weight class and italic bits)
//   - "ximage": golang.org/x/image/font/sfnt (names only, no style metadata)
//
// Custom parsers can be registered for alternative implementations:
//
//	text.RegisterParser("myparser", myCustomParser)
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
package text
