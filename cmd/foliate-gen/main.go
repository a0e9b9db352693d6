// foliate-gen writes a generated document file, sized for exercising
// line breaking and pagination on documents larger than anything you
// would type by hand.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/pstuifzand/foliate/internal/model"
	"github.com/pstuifzand/foliate/internal/storage"
)

var words = []string{
	"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
	"paper", "margin", "line", "page", "word", "letter", "ink",
	"reading", "writing", "chapter", "sentence", "paragraph",
}

func main() {
	numBlocks := flag.Int("blocks", 200, "Number of paragraphs to generate")
	output := flag.String("output", "generated.json", "Output file path")
	maxWords := flag.Int("words", 40, "Maximum words per paragraph")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	if *numBlocks < 1 {
		fmt.Fprintf(os.Stderr, "blocks must be at least 1\n")
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	doc := model.NewDoc()

	for i := 0; i < *numBlocks; i++ {
		p := model.NewParagraph()
		p.AppendChild(model.NewText(sentence(rng, *maxWords)))

		// Every fifth paragraph gets a styled span in the middle.
		if i%5 == 4 {
			span := model.NewSpan("emphasis")
			span.AppendChild(model.NewText(sentence(rng, 4)))
			p.AppendChild(span)
			p.AppendChild(model.NewText(" " + sentence(rng, 6)))
		}

		doc.AppendChild(p)
	}

	store := storage.NewJSONStore(*output)
	if err := store.Save(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d paragraphs to %s\n", *numBlocks, *output)
}

func sentence(rng *rand.Rand, maxWords int) string {
	n := 1 + rng.Intn(maxWords)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = words[rng.Intn(len(words))]
	}
	return strings.Join(parts, " ")
}
