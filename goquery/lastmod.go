// Package goquery inspects provider profile HTML for page metadata
// that the HTTP layer could not supply.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// metaSelectors are checked in order; the first non-empty content
// attribute wins.
var metaSelectors = []string{
	`meta[name="last-modified"]`,
	`meta[http-equiv="last-modified"]`,
	`meta[property="article:modified_time"]`,
	`meta[property="og:updated_time"]`,
	`meta[name="revised"]`,
}

// LastModified returns a last-modified signal found in the page
// markup: meta tags first, then <time datetime> elements in the page
// footer (where provider profiles typically stamp their revision
// date). Returns the empty string when the page carries no signal.
func LastModified(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	for _, sel := range metaSelectors {
		if v, ok := doc.Find(sel).First().Attr("content"); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}

	var found string
	doc.Find("footer time[datetime]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v, ok := s.Attr("datetime"); ok {
			if v = strings.TrimSpace(v); v != "" {
				found = v
				return false
			}
		}
		return true
	})

	return found
}
