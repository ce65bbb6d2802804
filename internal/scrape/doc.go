// Package scrape implements the extraction engine for daily numbers pages.
//
// Source markup is inconsistent and noisy: draw digits sit next to prices,
// prize amounts, clock times, and unrelated dates, and page structure changes
// without notice. The engine therefore layers strategies instead of trusting
// selectors: it narrows the document to the most relevant section, finds the
// smallest element naming the requested draw slot, and recovers digits first
// from one-digit-per-element markup and only then from cleaned free text,
// widening the search scope outward until something matches. Every miss is a
// soft miss; nothing in this package returns an error for bad markup.
package scrape
