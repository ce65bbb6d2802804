// Package resolver drives the extraction pipeline: it walks the fallback URL
// chain for each (game, slot) attempt, fans the attempts out per state, and
// aggregates the results into a daily report. Every failure below this layer
// is absorbed as a soft miss; the only error the package surfaces is an
// unknown state code.
package resolver

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"drawfetch/internal/config"
	"drawfetch/internal/draw"
	"drawfetch/internal/fetch"
	"drawfetch/internal/scrape"
)

// Request identifies one extraction attempt: a single (state, game, slot)
// against an ordered list of candidate URLs.
type Request struct {
	State   string
	Game    draw.Game
	Slot    draw.Slot
	Aliases []string
	URLs    []string
}

// Resolver resolves state results through a Fetcher and the state table.
type Resolver struct {
	fetcher fetch.Fetcher
	cfg     config.Config
	log     zerolog.Logger
}

// New creates a Resolver.
func New(fetcher fetch.Fetcher, cfg config.Config, log zerolog.Logger) *Resolver {
	return &Resolver{fetcher: fetcher, cfg: cfg, log: log}
}

// Resolve produces the daily report for one state. Slot and game attempts run
// concurrently and independently; each writes its own slot of the results
// array, so there is no shared mutable state to lock. Returns an error only
// when the state code is not configured.
func (r *Resolver) Resolve(ctx context.Context, state string, now time.Time) (*draw.Report, error) {
	sc, err := r.cfg.State(state)
	if err != nil {
		return nil, err
	}
	code := strings.ToLower(strings.TrimSpace(state))

	reqs := make([]Request, 0, len(sc.Slots)*2)
	for _, slot := range sc.Slots {
		for _, game := range []draw.Game{draw.GamePick3, draw.GamePick4} {
			reqs = append(reqs, Request{
				State:   code,
				Game:    game,
				Slot:    slot.Slot,
				Aliases: slot.Aliases,
				URLs:    slot.URLs(game),
			})
		}
	}

	results := make([]draw.Result, len(reqs))
	var wg sync.WaitGroup
	for i := range reqs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.Extract(ctx, reqs[i], now)
		}(i)
	}
	wg.Wait()

	pairs := make([]draw.Pair, 0, len(sc.Slots))
	for i := 0; i < len(reqs); i += 2 {
		pairs = append(pairs, draw.NewPair(code, reqs[i].Slot, results[i], results[i+1]))
	}

	return draw.BuildReport(code, pairs, now), nil
}

// Extract runs the cross-URL fallback chain for one attempt. URLs are tried
// strictly in order: this is a deliberate retry sequence against a flaky
// third party, not a burst of speculative parallel requests. Fetch failures
// and extraction misses are logged under a correlation tag and skipped; an
// all-miss chain yields an absent result, never an error.
func (r *Resolver) Extract(ctx context.Context, req Request, now time.Time) draw.Result {
	log := r.log.With().
		Str("tag", uuid.NewString()[:8]).
		Str("state", req.State).
		Str("game", string(req.Game)).
		Str("slot", string(req.Slot)).
		Logger()

	for _, url := range req.URLs {
		doc, err := r.fetcher.Fetch(ctx, url)
		if err != nil {
			log.Warn().Err(err).Str("url", url).Msg("fetch failed, advancing to next source")
			continue
		}

		res := extractFrom(doc, req, now)
		if res.Present() {
			log.Debug().Str("url", url).Str("digits", res.Digits).Msg("extracted digits")
			return res
		}
		log.Warn().Str("url", url).Msg("extraction missed, advancing to next source")
	}

	log.Warn().Msg("all sources missed")
	return draw.Result{}
}

// extractFrom runs Scope -> Label -> Digits (+ Date) against one fetched
// document.
func extractFrom(doc *fetch.Document, req Request, now time.Time) draw.Result {
	scope := scrape.FindScope(doc.Doc, nil)

	anchor := scrape.LocateLabel(scope, req.Aliases)
	if anchor == nil {
		return draw.Result{}
	}

	digits, ok := scrape.ExtractNear(anchor, scope, req.Game.Digits())
	if !ok {
		return draw.Result{}
	}

	res := draw.Result{Digits: digits, SourceURL: doc.URL}
	if date, ok := scrape.ResolveDate(scrape.DateCandidates(anchor, scope), now); ok {
		res.Date = date
	}
	return res
}
