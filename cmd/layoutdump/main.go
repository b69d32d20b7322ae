// Command layoutdump arranges a layout file headlessly and prints the
// resulting group and element rectangles.
//
// Usage:
//
//	go run ./cmd/layoutdump -width 1920 -height 1080 example/mainmenu.toml
//
// Configuration problems are logged to stderr and make the command exit 2
// after printing; unreadable files exit 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/go-theft-auto/menulayout"
	"github.com/go-theft-auto/menulayout/backend/xfont"
)

// errLayoutProblems marks a layout that arranged with degraded groups.
var errLayoutProblems = errors.New("layout has configuration problems")

func main() {
	width := flag.Int("width", 0, "screen width in pixels (default: from the layout file)")
	height := flag.Int("height", 0, "screen height in pixels (default: from the layout file)")
	measure := flag.Bool("measure", true, "size text elements with the Go Regular font")
	verbose := flag.Bool("v", false, "log every resolved group")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: layoutdump [flags] <layout.toml>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	menulayout.SetVerbose(*verbose)

	err := run(os.Stdout, flag.Arg(0), *width, *height, *measure)
	switch {
	case errors.Is(err, errLayoutProblems):
		os.Exit(2)
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out io.Writer, path string, width, height int, measure bool) error {
	cfg, err := menulayout.LoadConfigFile(path)
	if err != nil {
		return err
	}

	var opts []menulayout.EngineOption
	size := cfg.ScreenSize()
	if width > 0 {
		size.X = float32(width)
	}
	if height > 0 {
		size.Y = float32(height)
	}
	opts = append(opts, menulayout.WithScreenSize(size.X, size.Y))

	var measurer *xfont.Measurer
	if measure {
		measurer, err = xfont.Default()
		if err != nil {
			return err
		}
		defer measurer.Close()
		opts = append(opts, menulayout.WithTextMeasurer(measurer))
	}

	engine, err := menulayout.NewFromConfig(cfg, opts...)
	if err != nil {
		return fmt.Errorf("build layout: %w", err)
	}

	arrangeErr := engine.Arrange()
	if measurer != nil && arrangeErr == nil {
		arrangeErr = measurer.Err()
	}

	if err := dump(out, engine); err != nil {
		return err
	}
	if arrangeErr != nil {
		return errLayoutProblems
	}
	return nil
}

func dump(out io.Writer, engine *menulayout.Engine) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	screen := engine.ScreenSize()
	fmt.Fprintf(tw, "screen\t%gx%g\n\n", screen.X, screen.Y)

	fmt.Fprintln(tw, "GROUP\tALIGNMENT\tTYPE\tPARENT\tX\tY\tW\tH")
	for _, g := range engine.Store().Groups() {
		b, _ := engine.GroupBounds(g.ID)
		parent := g.Layout.ParentID
		if parent == "" {
			parent = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%g\t%g\t%g\t%g\n",
			g.ID, g.Layout.Alignment, g.Layout.Type, parent, b.X, b.Y, b.W, b.H)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "ELEMENT\tGROUP\tX\tY\tW\tH")
	for _, el := range engine.Registry().Elements() {
		group, ok := engine.Store().GroupOf(el.ID)
		if !ok {
			group = "-"
		}
		r := el.Rect
		fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%g\t%g\n", el.ID, group, r.X, r.Y, r.W, r.H)
	}

	return tw.Flush()
}
