package dashboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/devtools"
)

// HTMLFile is the name of the interactive export page.
const HTMLFile = "dashboard.html"

// Report describes the outcome of an export.
type Report struct {
	Dir     string
	Written []string
	Skipped []chart.Kind
	HTML    string
}

// Export writes <slot>.png for every rendered slot plus the HTML page.
// Absent handles are skipped; per-file failures do not stop the batch.
func (c *Controller) Export(ctx context.Context, dir string) (Report, error) {
	report := Report{Dir: dir}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.notify(LevelError, "Export failed: %v", err)
		return report, fmt.Errorf("export: %w", err)
	}

	var errs []error
	for _, e := range c.registry.Entries() {
		if !e.Mounted || e.Handle == nil {
			report.Skipped = append(report.Skipped, e.Kind)
			c.tracker.Record(ctx, devtools.Entry{Kind: devtools.EntrySkip, Subject: e.Kind.Slot(), Detail: "export: " + ErrMissingTarget.Error()})
			continue
		}
		start := time.Now()
		path := filepath.Join(dir, e.Kind.Slot()+".png")
		data, err := c.adapter.ExportPNG(e.Handle)
		if err == nil {
			err = os.WriteFile(path, data, 0o644)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("export %s: %w", e.Kind.Slot(), err))
			c.tracker.Record(ctx, devtools.Entry{Kind: devtools.EntryError, Subject: e.Kind.Slot(), Detail: err.Error()})
			continue
		}
		report.Written = append(report.Written, path)
		c.tracker.Record(ctx, devtools.Entry{Kind: devtools.EntryExport, Subject: path, Duration: time.Since(start)})
	}

	if err := c.exportHTML(ctx, filepath.Join(dir, HTMLFile)); err != nil {
		errs = append(errs, err)
	} else {
		report.HTML = filepath.Join(dir, HTMLFile)
	}

	err := errors.Join(errs...)
	switch {
	case err != nil:
		c.notify(LevelError, "Exported %d charts with errors: %v", len(report.Written), err)
	default:
		c.notify(LevelSuccess, "Exported %d charts to %s", len(report.Written), dir)
	}
	return report, err
}

func (c *Controller) exportHTML(ctx context.Context, path string) (err error) {
	handles := c.registry.Handles()
	if len(handles) == 0 {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export html: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export html: %w", cerr)
		}
	}()
	if err := c.adapter.ExportHTML(f, handles); err != nil {
		return fmt.Errorf("export html: %w", err)
	}
	c.tracker.Record(ctx, devtools.Entry{Kind: devtools.EntryExport, Subject: path})
	return nil
}
