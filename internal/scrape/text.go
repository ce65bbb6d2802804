package scrape

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// normalize collapses runs of whitespace to single spaces and trims the ends.
func normalize(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Known false-positive patterns stripped before the textual digit search.
// These are the numeric shapes that show up near draw results on real pages:
// prize amounts, odds, payout phrasing, draw times, and spelled-out dates.
var falsePositiveRes = []*regexp.Regexp{
	// Currency amounts: "$500", "$5,000.00"
	regexp.MustCompile(`\$\s*[\d,]+(?:\.\d+)?`),
	// Odds phrasing: "1 in 1,000"
	regexp.MustCompile(`(?i)\b\d[\d,]*\s+in\s+[\d,]+\b`),
	// Prize/payout phrasing with a trailing amount: "top prize 5000"
	regexp.MustCompile(`(?i)\b(?:top\s+)?(?:prizes?|payouts?|jackpots?)\b[:\s]*(?:of\s+)?[\d,]+(?:\.\d+)?`),
	// Amounts qualified by what they count: "5000 dollars", "12 winners"
	regexp.MustCompile(`(?i)[\d,]+(?:\.\d+)?\s*(?:winners?|dollars?)\b`),
	// Clock times: "12:29", "10:30 PM", "7:57:00 p.m."
	regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}(?::\d{2})?\s*(?:[ap]\.?m\.?)?`),
	// Month-name date phrases: "September 10, 2025", "Sep 10"
	regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:\s*,?\s*\d{2,4})?`),
}

// stripFalsePositives removes numeric text that is known not to be draw
// digits. The replacement is a space so adjacent tokens do not fuse into a
// longer digit run.
func stripFalsePositives(s string) string {
	for _, re := range falsePositiveRes {
		s = re.ReplaceAllString(s, " ")
	}
	return normalize(s)
}
