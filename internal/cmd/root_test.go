package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/spf13/pflag"

	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/dashboard"
	"github.com/kpumuk/lazyplot/internal/devtools"
	"github.com/kpumuk/lazyplot/internal/preset"
)

func stateFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addStateFlags(flags)
	if err := flags.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error = %v", args, err)
	}
	return flags
}

func TestStateFromFlags(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args      []string
		wantScale float64
		wantTheme string
		wantErr   bool
	}{
		"defaults":       {wantScale: dashboard.DefaultFactor, wantTheme: chart.DefaultTheme},
		"custom":         {args: []string{"--scale", "42.5", "--theme", "pastel"}, wantScale: 42.5, wantTheme: "pastel"},
		"negative scale": {args: []string{"--scale", "-1"}, wantErr: true},
		"unknown theme":  {args: []string{"--theme", "neon"}, wantErr: true},
		"infinite scale": {args: []string{"--scale", "+Inf"}, wantErr: true},
		"nan scale":      {args: []string{"--scale", "NaN"}, wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			st, err := stateFromFlags(stateFlags(t, tc.args...))
			if (err != nil) != tc.wantErr {
				t.Fatalf("stateFromFlags() error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			if st.Factor != tc.wantScale || st.Theme != tc.wantTheme {
				t.Fatalf("state = %v/%q, want %v/%q", st.Factor, st.Theme, tc.wantScale, tc.wantTheme)
			}
			if st.Filter != dashboard.FilterAll {
				t.Fatalf("Filter = %q, want %q", st.Filter, dashboard.FilterAll)
			}
		})
	}
}

func TestNormalizeFlags(t *testing.T) {
	t.Parallel()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("redis", defaultRedisURL, "")
	flags.SetNormalizeFunc(normalizeFlags)
	if err := flags.Parse([]string{"--redis-url", "redis://example:6379/2"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got, _ := flags.GetString("redis"); got != "redis://example:6379/2" {
		t.Fatalf("redis = %q, want the --redis-url value", got)
	}
}

func TestOpenStore(t *testing.T) {
	t.Parallel()

	store, closeStore, err := openStore("", devtools.NewTracker())
	if err != nil {
		t.Fatalf("openStore(\"\") error = %v", err)
	}
	closeStore()
	if _, ok := store.(*preset.MemoryStore); !ok {
		t.Fatalf("store = %T, want *preset.MemoryStore", store)
	}

	if _, _, err := openStore("://bad", devtools.NewTracker()); err == nil {
		t.Fatal("openStore should reject a malformed URL")
	}
}

func TestOpenStoreRecordsCommands(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	tracker := devtools.NewTracker()
	store, closeStore, err := openStore("redis://"+mr.Addr()+"/0", tracker)
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	defer closeStore()

	if err := store.Save(t.Context(), preset.Default()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got := tracker.Count(devtools.EntryCommand); got == 0 {
		t.Fatal("store commands should be recorded by the tracker")
	}
}

func TestExportCommand(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	cmd := newExportCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dir", dir, "--scale", "50", "--theme", "vibrant"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, k := range chart.Kinds() {
		path := filepath.Join(dir, k.Slot()+".png")
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if !strings.Contains(out.String(), path) {
			t.Fatalf("output missing %s:\n%s", path, out.String())
		}
	}
	if _, err := os.Stat(filepath.Join(dir, dashboard.HTMLFile)); err != nil {
		t.Fatalf("%s: %v", dashboard.HTMLFile, err)
	}
}
