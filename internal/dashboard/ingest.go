package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/devtools"
	"github.com/kpumuk/lazyplot/internal/ingest"
)

// Ingest records the outcome of reading one file. Parsed files with an
// (x,y) candidate replace the scatter cluster data; files without one are
// listed but change nothing.
func (c *Controller) Ingest(ctx context.Context, name string, r ingest.Result, err error) {
	entry := ingest.EntryFor(r, err)
	if entry.Name == "" {
		entry.Name = name
	}
	defer func() { c.preview.Add(entry) }()

	if err != nil {
		if errors.Is(err, ingest.ErrUnsupported) {
			err = fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
		c.tracker.Record(ctx, devtools.Entry{Kind: devtools.EntryError, Subject: name, Detail: err.Error()})
		c.notify(LevelError, "%s: %v", name, err)
		return
	}
	c.tracker.Record(ctx, devtools.Entry{Kind: devtools.EntryIngest, Subject: name, Detail: entry.Summary()})

	points, err := ingest.Candidate(r)
	if err != nil {
		return
	}
	prev, had := c.custom[chart.ScatterCluster]
	c.custom[chart.ScatterCluster] = points
	if err := c.render(ctx, chart.ScatterCluster); err != nil && !errors.Is(err, ErrMissingTarget) {
		if had {
			c.custom[chart.ScatterCluster] = prev
		} else {
			delete(c.custom, chart.ScatterCluster)
		}
		return
	}
	entry.Plotted = true
	c.notify(LevelSuccess, "Plotted %d points from %s", len(points.X), name)
}

// ResetPreview clears the ingest preview list.
func (c *Controller) ResetPreview() {
	c.preview.Reset()
}
