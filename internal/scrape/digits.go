package scrape

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractDigits recovers exactly n decimal digits from the given element,
// trying the structural strategy first and falling back to the textual one.
// Returns false when neither strategy finds digits; the caller widens scope
// and retries.
func ExtractDigits(sel *goquery.Selection, n int) (string, bool) {
	if sel == nil || sel.Length() == 0 {
		return "", false
	}
	if digits, ok := structuralDigits(sel, n); ok {
		return digits, true
	}
	return textualDigits(sel.Text(), n)
}

// ExtractNear runs digit extraction over the widening chain around anchor,
// stopping at the first scope level that yields digits.
func ExtractNear(anchor, scope *goquery.Selection, n int) (string, bool) {
	for _, level := range ScopeChain(anchor, scope) {
		if digits, ok := ExtractDigits(level, n); ok {
			return digits, true
		}
	}
	return "", false
}

// structuralDigits scans leaf elements in document order for the first run of
// exactly n consecutive elements whose entire text is one decimal digit.
// Markup that renders one digit per element carries essentially zero
// false-positive risk, which is why this strategy runs first. Runs longer
// than n are rejected as ambiguous rather than truncated.
func structuralDigits(root *goquery.Selection, n int) (string, bool) {
	var run []string
	result := ""

	flush := func() {
		if result == "" && len(run) == n {
			result = strings.Join(run, "")
		}
		run = run[:0]
	}

	root.Find("*").Each(func(_ int, sel *goquery.Selection) {
		if sel.Children().Length() > 0 {
			return
		}
		text := normalize(sel.Text())
		if text == "" {
			// Presentational leaves like <br> and <img> do not break a run.
			return
		}
		if len(text) == 1 && text[0] >= '0' && text[0] <= '9' {
			run = append(run, text)
			return
		}
		flush()
	})
	flush()

	return result, result != ""
}

// textualDigits searches flattened text for n digits after stripping known
// false-positive patterns. It first wants a token of exactly n digits with no
// adjacent digits on either side; failing that, it accepts n digits with
// non-digit filler between them and collapses the match to its first n
// digits.
func textualDigits(text string, n int) (string, bool) {
	cleaned := stripFalsePositives(text)
	if cleaned == "" {
		return "", false
	}

	exact := regexp.MustCompile(fmt.Sprintf(`(?:^|\D)(\d{%d})(?:\D|$)`, n))
	if m := exact.FindStringSubmatch(cleaned); m != nil {
		return m[1], true
	}

	loose := regexp.MustCompile(fmt.Sprintf(`\d(?:\D*\d){%d}`, n-1))
	if m := loose.FindString(cleaned); m != "" {
		var b strings.Builder
		for _, r := range m {
			if r >= '0' && r <= '9' {
				b.WriteRune(r)
				if b.Len() == n {
					return b.String(), true
				}
			}
		}
	}

	return "", false
}
