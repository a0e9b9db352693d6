// foliate-dump prints the derived trees of a document file: the model
// tree, the measured render boxes, and the flowed pages. Useful when a
// layout looks wrong and you want to see which stage disagrees.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/pstuifzand/foliate/internal/layout"
	"github.com/pstuifzand/foliate/internal/model"
	"github.com/pstuifzand/foliate/internal/render"
	"github.com/pstuifzand/foliate/internal/storage"
)

func main() {
	width := flag.Int("width", 66, "Page width in cells")
	height := flag.Int("height", 24, "Page height in cells")
	stage := flag.String("stage", "layout", "Tree to dump: model, render, or layout")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: foliate-dump [flags] <document.json>\n")
		os.Exit(1)
	}

	store := storage.NewJSONStore(flag.Arg(0))
	doc, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := dump(doc, *stage, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func dump(doc *model.Doc, stage string, width, height int) error {
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}

	switch stage {
	case "model":
		dumpModel(doc, 0)
		return nil
	case "render":
		derived, err := render.Default().BuildDoc(doc)
		if err != nil {
			return err
		}
		dumpRender(derived, 0)
		return nil
	case "layout":
		derived, err := render.Default().BuildDoc(doc)
		if err != nil {
			return err
		}
		geo := layout.Geometry{
			PageWidth: width, PageHeight: height,
			PaddingTop: 1, PaddingBottom: 1, PaddingLeft: 2, PaddingRight: 2,
		}
		flowed := layout.Flow(derived, geo)
		fmt.Printf("geometry: %s\n", cfg.Sdump(geo))
		for i, page := range flowed.Pages() {
			fmt.Printf("page %d (start %d, size %d)\n", i, page.Start(), page.Size())
			for _, line := range page.Lines() {
				fmt.Printf("  line start=%d size=%d width=%d\n", line.Start(), line.Size(), line.Width())
				for _, box := range line.Boxes() {
					if box.EndOfBlock {
						fmt.Printf("    [end-of-block]\n")
						continue
					}
					fmt.Printf("    %q width=%d style=%q\n", box.Text, box.Width, box.Style)
				}
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown stage %q", stage)
	}
}

func dumpModel(n model.Node, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch v := n.(type) {
	case *model.Text:
		fmt.Printf("%s%s %q (size %d)\n", indent, v.Kind(), v.Content(), v.ModelSize())
	case *model.Span:
		fmt.Printf("%s%s style=%q (size %d)\n", indent, v.Kind(), v.Style, v.ModelSize())
	default:
		fmt.Printf("%s%s (size %d)\n", indent, n.Kind(), n.ModelSize())
	}
	for _, child := range n.Children() {
		dumpModel(child, depth+1)
	}
}

func dumpRender(b render.Box, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch v := b.(type) {
	case *render.AtomicBox:
		if v.EndOfBlock {
			fmt.Printf("%s[end-of-block]\n", indent)
			return
		}
		fmt.Printf("%s%q width=%d selectable=%d model=%d\n", indent, v.Text, v.Width, v.SelectableSize(), v.ModelSize())
	case *render.InlineBox:
		fmt.Printf("%sinline style=%q span=%v selectable=%d model=%d\n", indent, v.Style, v.IsSpan, v.SelectableSize(), v.ModelSize())
	default:
		fmt.Printf("%s%s selectable=%d model=%d\n", indent, b.Kind(), b.SelectableSize(), b.ModelSize())
	}
	for _, child := range b.Children() {
		dumpRender(child, depth+1)
	}
}
