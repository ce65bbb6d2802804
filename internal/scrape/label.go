package scrape

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// LocateLabel finds the smallest element inside scope whose normalized text
// contains one of the aliases as a whole word, case-insensitively. Among all
// matches the shortest total text wins: the most specific element, so a wide
// ancestor that also contains the other slot's content is never picked. A nil
// return means the slot is not on this page, which is a miss, not an error.
//
// Alias lists for slots that can co-occur on one page must be mutually
// exclusive; a bare "Night" label must never satisfy a midday request.
func LocateLabel(scope *goquery.Selection, aliases []string) *goquery.Selection {
	if scope == nil || scope.Length() == 0 || len(aliases) == 0 {
		return nil
	}

	patterns := make([]*regexp.Regexp, 0, len(aliases))
	for _, alias := range aliases {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(alias)+`\b`))
	}

	var best *goquery.Selection
	bestLen := -1

	scope.Find("*").Each(func(_ int, sel *goquery.Selection) {
		text := normalize(sel.Text())
		if text == "" {
			return
		}
		matched := false
		for _, p := range patterns {
			if p.MatchString(text) {
				matched = true
				break
			}
		}
		if !matched {
			return
		}
		if bestLen == -1 || len(text) < bestLen {
			best = sel
			bestLen = len(text)
		}
	})

	return best
}
