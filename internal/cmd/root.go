// Package cmd provides the entrypoint and CLI command configuration for the
// lazyplot application.
package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"runtime"
	"runtime/debug"
	"runtime/pprof"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/dashboard"
	"github.com/kpumuk/lazyplot/internal/devtools"
	"github.com/kpumuk/lazyplot/internal/preset"
	"github.com/kpumuk/lazyplot/internal/ui"
)

const defaultRedisURL = "redis://localhost:6379/0"

func buildVersion(version, commit, date, builtBy string) string {
	result := version
	if commit != "" {
		result = fmt.Sprintf("%s\ncommit: %s", result, commit)
	}
	if date != "" {
		result = fmt.Sprintf("%s\nbuilt at: %s", result, date)
	}
	if builtBy != "" {
		result = fmt.Sprintf("%s\nbuilt by: %s", result, builtBy)
	}
	result = fmt.Sprintf("%s\ngoos: %s\ngoarch: %s", result, runtime.GOOS, runtime.GOARCH)
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
		result = fmt.Sprintf("%s\nmodule version: %s, checksum: %s", result, info.Main.Version, info.Main.Sum)
	}

	return result
}

// normalizeFlags maps flag aliases to their canonical names.
func normalizeFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "redis-url":
		name = "redis"
	}
	return pflag.NormalizedName(name)
}

// addStateFlags registers the flags that seed the dashboard state.
func addStateFlags(flags *pflag.FlagSet) {
	flags.Float64(
		"scale",
		dashboard.DefaultFactor,
		"initial scale factor in percent",
	)
	flags.String(
		"theme",
		chart.DefaultTheme,
		"colour theme ("+strings.Join(chart.Themes, ", ")+")",
	)
}

// stateFromFlags validates the state flags and returns the startup state.
func stateFromFlags(flags *pflag.FlagSet) (dashboard.State, error) {
	st := dashboard.DefaultState()

	scale, err := flags.GetFloat64("scale")
	if err != nil {
		return st, fmt.Errorf("parse scale flag: %w", err)
	}
	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return st, fmt.Errorf("scale must be a finite non-negative number, got %v", scale)
	}
	st.Factor = scale

	theme, err := flags.GetString("theme")
	if err != nil {
		return st, fmt.Errorf("parse theme flag: %w", err)
	}
	if !slices.Contains(chart.Themes, theme) {
		return st, fmt.Errorf("unknown theme %q", theme)
	}
	st.Theme = theme
	return st, nil
}

// openStore returns the preset store for redisURL; an empty URL selects the
// in-memory store. The returned close function is never nil.
func openStore(redisURL string, tracker *devtools.Tracker) (preset.Store, func(), error) {
	if redisURL == "" {
		return preset.NewMemoryStore(), func() {}, nil
	}
	store, err := preset.NewRedisStore(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("create redis client: %w", err)
	}
	store.AddHook(tracker.Hook())
	return store, func() { _ = store.Close() }, nil
}

func newExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Render every chart and write the images and the HTML page.",
		Args:  cobra.NoArgs,
	}
	exportCmd.Flags().String(
		"dir",
		".",
		"directory to write exports to",
	)
	addStateFlags(exportCmd.Flags())

	exportCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		st, err := stateFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		dir, err := cmd.Flags().GetString("dir")
		if err != nil {
			return fmt.Errorf("parse dir flag: %w", err)
		}

		ctx := devtools.WithOrigin(cmd.Context(), "export")
		ctrl := dashboard.New(dashboard.WithState(st))
		if err := ctrl.Startup(ctx, nil); err != nil {
			return fmt.Errorf("render charts: %w", err)
		}
		report, err := ctrl.Export(ctx, dir)
		out := cmd.OutOrStdout()
		for _, path := range report.Written {
			_, _ = fmt.Fprintln(out, path)
		}
		if report.HTML != "" {
			_, _ = fmt.Fprintln(out, report.HTML)
		}
		for _, k := range report.Skipped {
			_, _ = fmt.Fprintf(out, "skipped %s\n", k.Slot())
		}
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		return nil
	}
	return exportCmd
}

// Execute initializes and runs the lazyplot terminal application.
func Execute(version, commit, date, builtBy string) error {
	rootCmd := &cobra.Command{
		Use:   "lazyplot",
		Short: "A terminal dashboard of preset charts.",
		Long:  "A terminal dashboard of ten preset charts with shared scale, theme and filter controls, custom data, file import and image export.",
		Args:  cobra.NoArgs,
	}

	rootCmd.Version = buildVersion(version, commit, date, builtBy)
	rootCmd.SetVersionTemplate(`lazyplot {{printf "version %s\n" .Version}}`)

	rootCmd.Flags().String(
		"cpuprofile",
		"",
		"write cpu profile to file",
	)

	rootCmd.Flags().BoolP(
		"help",
		"h",
		false,
		"help for lazyplot",
	)

	rootCmd.Flags().String(
		"redis",
		defaultRedisURL,
		`redis URL for style presets ("" keeps them in memory)`,
	)
	rootCmd.Flags().String(
		"export-dir",
		".",
		"directory the export key writes to",
	)
	rootCmd.Flags().StringSlice(
		"import",
		nil,
		"CSV or JSON files to import on start",
	)
	addStateFlags(rootCmd.Flags())
	rootCmd.Flags().SetNormalizeFunc(normalizeFlags)

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cpuprofile, err := cmd.Flags().GetString("cpuprofile")
		if err != nil {
			return fmt.Errorf("parse cpuprofile flag: %w", err)
		}

		redisURL, err := cmd.Flags().GetString("redis")
		if err != nil {
			return fmt.Errorf("parse redis flag: %w", err)
		}
		exportDir, err := cmd.Flags().GetString("export-dir")
		if err != nil {
			return fmt.Errorf("parse export-dir flag: %w", err)
		}
		imports, err := cmd.Flags().GetStringSlice("import")
		if err != nil {
			return fmt.Errorf("parse import flag: %w", err)
		}
		st, err := stateFromFlags(cmd.Flags())
		if err != nil {
			return err
		}

		tracker := devtools.NewTracker()
		store, closeStore, err := openStore(redisURL, tracker)
		if err != nil {
			return err
		}
		defer closeStore()

		var profileFile *os.File
		if cpuprofile != "" {
			file, err := os.Create(cpuprofile)
			if err != nil {
				return fmt.Errorf("create cpuprofile file: %w", err)
			}
			profileFile = file
			if err := pprof.StartCPUProfile(profileFile); err != nil {
				_ = profileFile.Close()
				return fmt.Errorf("start cpu profile: %w", err)
			}
			defer func() {
				pprof.StopCPUProfile()
				_ = profileFile.Close()
			}()
		}

		ctrl := dashboard.New(
			dashboard.WithState(st),
			dashboard.WithStore(store),
			dashboard.WithTracker(tracker),
		)
		app := ui.New(ctrl,
			ui.WithExportDir(exportDir),
			ui.WithImports(imports),
		)
		p := tea.NewProgram(app)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run lazyplot: %w", err)
		}

		return nil
	}

	rootCmd.AddCommand(newExportCmd())

	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(rootCmd.Version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	)
}
