package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HeadingPredicate decides whether a heading marks the current-results
// section of a page.
type HeadingPredicate func(heading string) bool

// DefaultHeading matches headings like "Latest Winning Numbers" or
// "Latest Results".
func DefaultHeading(heading string) bool {
	h := strings.ToLower(heading)
	if !strings.Contains(h, "latest") {
		return false
	}
	return strings.Contains(h, "number") || strings.Contains(h, "result") || strings.Contains(h, "winning")
}

// FindScope narrows a document to the smallest section-like container whose
// heading satisfies pred. Falls back to the whole document when no heading
// matches, so callers always get a usable scope. Narrowing first keeps label
// matching away from navigation, ads, and historical archives.
func FindScope(doc *goquery.Document, pred HeadingPredicate) *goquery.Selection {
	if pred == nil {
		pred = DefaultHeading
	}

	var best *goquery.Selection
	bestLen := -1

	doc.Find("section, article, main, div").Each(func(_ int, sel *goquery.Selection) {
		matched := false
		sel.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, h *goquery.Selection) bool {
			if pred(normalize(h.Text())) {
				matched = true
				return false
			}
			return true
		})
		if !matched {
			return
		}
		if n := len(normalize(sel.Text())); bestLen == -1 || n < bestLen {
			best = sel
			bestLen = n
		}
	})

	if best != nil {
		return best
	}
	return doc.Selection
}

// ScopeChain returns the ordered widening sequence used when extraction at
// one level misses: the anchor itself, its nearest block container, the
// enclosing section, and finally the whole scope. Callers evaluate the chain
// lazily and stop at the first level that yields a result.
func ScopeChain(anchor, scope *goquery.Selection) []*goquery.Selection {
	var chain []*goquery.Selection

	if anchor != nil && anchor.Length() > 0 {
		chain = append(chain, anchor)
		if p := anchor.ParentsFiltered("p, li, tr, ul, ol, table, div").First(); p.Length() > 0 {
			chain = append(chain, p)
		}
		if s := anchor.ParentsFiltered("section, article, main").First(); s.Length() > 0 {
			chain = append(chain, s)
		}
	}
	if scope != nil && scope.Length() > 0 {
		chain = append(chain, scope)
	}
	return chain
}
