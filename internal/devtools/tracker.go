// Package devtools records dashboard events for the in-app dev console:
// chart renders, skipped slots, exports, file ingest and preset store
// commands.
package devtools

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultLogLimit = 500

type originKey struct{}

// EntryKind describes the type of a tracked entry.
type EntryKind int

const (
	// EntryRender is a chart build and render.
	EntryRender EntryKind = iota
	// EntrySkip is a render step skipped because its slot is not mounted.
	EntrySkip
	// EntryExport is an image or page export.
	EntryExport
	// EntryIngest is an imported file.
	EntryIngest
	// EntryCommand is a preset store command.
	EntryCommand
	// EntryError is a failure surfaced to the user.
	EntryError
)

// String returns a short label for the kind.
func (k EntryKind) String() string {
	switch k {
	case EntryRender:
		return "render"
	case EntrySkip:
		return "skip"
	case EntryExport:
		return "export"
	case EntryIngest:
		return "ingest"
	case EntryCommand:
		return "redis"
	case EntryError:
		return "error"
	default:
		return "unknown"
	}
}

// Entry captures a single tracked event.
type Entry struct {
	Kind EntryKind
	// Subject is the slot, file or command the event concerns.
	Subject  string
	Detail   string
	Duration time.Duration
}

// LogEntry captures a single tracked log line.
type LogEntry struct {
	Seq    uint64
	Time   time.Time
	Origin string
	Entry  Entry
}

// Tracker is a bounded, concurrency-safe event log.
type Tracker struct {
	logLimit int
	logMu    sync.RWMutex
	log      []LogEntry
	logHead  int
	logFull  bool
	logSeq   uint64
	now      func() time.Time
}

// NewTracker creates a new development tracker.
func NewTracker() *Tracker {
	return &Tracker{
		logLimit: defaultLogLimit,
		now:      time.Now,
	}
}

// WithOrigin returns a context carrying the origin label.
func WithOrigin(ctx context.Context, origin string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if origin == "" {
		return ctx
	}
	return context.WithValue(ctx, originKey{}, origin)
}

// OriginFromContext extracts the origin label from context.
func OriginFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if origin, ok := ctx.Value(originKey{}).(string); ok {
		return origin
	}
	return ""
}

// Record appends entry with the origin carried by ctx.
func (t *Tracker) Record(ctx context.Context, entry Entry) {
	if t == nil {
		return
	}
	origin := OriginFromContext(ctx)
	if origin == "" {
		origin = "dashboard"
	}
	t.AppendLog(LogEntry{
		Time:   t.now(),
		Origin: origin,
		Entry:  entry,
	})
}

// LogEntries returns the most recent entries in chronological order.
func (t *Tracker) LogEntries() []LogEntry {
	if t == nil {
		return nil
	}
	t.logMu.RLock()
	defer t.logMu.RUnlock()
	if len(t.log) == 0 {
		return nil
	}
	if !t.logFull {
		return append([]LogEntry(nil), t.log...)
	}
	result := make([]LogEntry, 0, len(t.log))
	result = append(result, t.log[t.logHead:]...)
	result = append(result, t.log[:t.logHead]...)
	return result
}

// Count returns the number of entries of kind k currently retained.
func (t *Tracker) Count(k EntryKind) int {
	n := 0
	for _, e := range t.LogEntries() {
		if e.Entry.Kind == k {
			n++
		}
	}
	return n
}

// AppendLog appends a log entry to the ring buffer.
func (t *Tracker) AppendLog(entry LogEntry) {
	if t == nil || t.logLimit == 0 {
		return
	}

	t.logMu.Lock()
	defer t.logMu.Unlock()
	entry.Seq = t.logSeq
	t.logSeq++
	if len(t.log) < t.logLimit {
		t.log = append(t.log, entry)
		if len(t.log) == t.logLimit {
			t.logHead = 0
			t.logFull = true
		}
		return
	}
	t.log[t.logHead] = entry
	t.logHead = (t.logHead + 1) % t.logLimit
}

// Hook returns a Redis hook for tracking preset store commands.
func (t *Tracker) Hook() redis.Hook {
	return hook{tracker: t}
}

// FormatDuration renders a compact duration string.
func FormatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < 10*time.Second {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}

type hook struct {
	tracker *Tracker
}

func (h hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (h hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.record(ctx, cmd, time.Since(start))
		return err
	}
}

func (h hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		for _, cmd := range cmds {
			h.record(ctx, cmd, time.Since(start))
		}
		return err
	}
}

func (h hook) record(ctx context.Context, cmd redis.Cmder, duration time.Duration) {
	detail := ""
	if err := cmd.Err(); err != nil && err != redis.Nil {
		detail = err.Error()
	}
	h.tracker.Record(ctx, Entry{
		Kind:     EntryCommand,
		Subject:  formatCommand(cmd),
		Detail:   detail,
		Duration: duration,
	})
}

func formatCommand(cmd redis.Cmder) string {
	args := cmd.Args()
	if len(args) == 0 {
		return cmd.Name()
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		s := fmt.Sprint(arg)
		if len(s) > 64 {
			s = s[:61] + "..."
		}
		parts[i] = s
	}
	return strings.Join(parts, " ")
}
