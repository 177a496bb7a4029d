package problem

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Title returns the problem statement title (e.g. "A. Theatre Square").
// Best effort: returns "" when the page has no recognizable title.
func Title(page string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("div.problem-statement div.title").First().Text())
}
