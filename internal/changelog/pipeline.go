package changelog

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParseAll parses and classifies every raw block concurrently, then drops
// Unknown-classified entries. Results keep the input block order: each
// goroutine writes into its own slot and the filter runs over the slots
// in sequence, so downstream grouping sees commits exactly as the source
// emitted them.
//
// The only error condition is context cancellation; parsing itself is
// total.
func (p *Parser) ParseAll(ctx context.Context, blocks []string) ([]Entry, error) {
	parsed := make([]Entry, len(blocks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, block := range blocks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parsed[i] = p.Parse(block)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(parsed))
	for _, e := range parsed {
		if e.Section == SectionUnknown {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ParseLog is a convenience that splits raw commit-log text on the
// sentinel delimiter and parses the resulting blocks.
func (p *Parser) ParseLog(ctx context.Context, raw string) ([]Entry, error) {
	return p.ParseAll(ctx, SplitBlocks(raw))
}
