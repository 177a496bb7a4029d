// Package contest resolves contest identifiers and scrapes the contest
// listing page for the problems it links to.
package contest

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lovrop/codeforces-scraper/internal/markup"
)

// problemLinkPattern matches a problem link anywhere inside an href value
// and captures the problem identifier.
var problemLinkPattern = regexp.MustCompile(`contest/\d+/problem/(\w+)`)

// ResolveURI turns the contest argument into a contest page URI. A bare
// positive integer becomes <base>/contest/<id>; anything else is used
// verbatim as a URI, without validation.
func ResolveURI(arg, baseURL string) string {
	if id, err := strconv.Atoi(strings.TrimSpace(arg)); err == nil && id > 0 {
		return fmt.Sprintf("%s/contest/%d", strings.TrimSuffix(baseURL, "/"), id)
	}
	return arg
}

// ProblemIDs extracts the distinct problem identifiers linked from a
// contest page, sorted ascending. Anchors without an href and hrefs that do
// not match the problem link shape are skipped silently.
func ProblemIDs(page string) ([]string, error) {
	seen := make(map[string]bool)
	z := markup.NewTokenizer(page)
	for {
		tok, err := z.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if tok.Type != markup.StartTagToken || tok.Name != "a" {
			continue
		}
		href, ok := tok.Attr("href")
		if !ok || href == "" {
			continue
		}
		m := problemLinkPattern.FindStringSubmatch(href)
		if m == nil {
			continue
		}
		seen[m[1]] = true
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Title returns the contest title from the page <title> element, with the
// site name suffix trimmed. Best effort: returns "" when unavailable.
func Title(page string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return ""
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	title = strings.TrimSuffix(title, " - Codeforces")
	return title
}
