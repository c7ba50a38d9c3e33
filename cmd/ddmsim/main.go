package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/ddmsim/internal/config"
	"github.com/san-kum/ddmsim/internal/ddm"
	"github.com/san-kum/ddmsim/internal/export"
	"github.com/san-kum/ddmsim/internal/report"
	"github.com/san-kum/ddmsim/internal/session"
	"github.com/san-kum/ddmsim/internal/stats"
	"github.com/san-kum/ddmsim/internal/sweep"
	"github.com/san-kum/ddmsim/internal/viz"
)

var (
	boundary   float64
	drift      float64
	bias       float64
	noise      float64
	dt         float64
	bins       int
	seed       int64
	runTrialsN    int
	exportTrialsN int
	sweepTrialsN  int
	configFile string
	preset     string
	logLevel   string
	logFile    string
	theme      string
	svgOut     string
	// export
	format  string
	outPath string
	// sweep
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
)

// main is the entry point for the ddmsim CLI. With no subcommand it opens the
// interactive session; it exits with status 1 if the command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ddmsim",
		Short: "drift-diffusion decision model simulator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %s", logLevel)
			}
			logrus.SetLevel(level)
			return nil
		},
		RunE: runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&boundary, "a", config.DefaultA, "boundary separation")
	pf.Float64Var(&drift, "v", config.DefaultV, "drift rate")
	pf.Float64Var(&bias, "z", config.DefaultZ, "starting bias in [0,1]")
	pf.Float64Var(&noise, "s", config.DefaultS, "noise scale")
	pf.Float64Var(&dt, "dt", config.DefaultDt, "time step")
	pf.IntVar(&bins, "bins", ddm.DefaultBins, "histogram bins")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset parameters")
	pf.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to file while the TUI is open")
	rootCmd.Flags().StringVar(&theme, "theme", "", "color theme ("+fmt.Sprint(viz.ThemeNames())+")")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run trials and print the distribution",
		Args:  cobra.NoArgs,
		RunE:  runTrials,
	}
	runCmd.Flags().IntVar(&runTrialsN, "trials", config.DefaultTrials, "number of trials")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "also write the last trial path as svg")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "run trials and export summary and histogram",
		Args:  cobra.NoArgs,
		RunE:  exportReport,
	}
	exportCmd.Flags().IntVar(&exportTrialsN, "trials", config.DefaultTrials, "number of trials")
	exportCmd.Flags().StringVar(&format, "format", "json", "output format (json, csv, svg)")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	sweepCmd := &cobra.Command{
		Use:   "sweep [param]",
		Short: "sweep one parameter and report choice probability",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&sweepMin, "min", -2.0, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 2.0, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 9, "number of values")
	sweepCmd.Flags().IntVar(&sweepTrialsN, "trials", 200, "trials per value")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list parameter presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tA\tV\tZ\tS\tDT")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.3f\n", name, p.A, p.V, p.Z, p.S, p.Dt)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, exportCmd, sweepCmd, presetsCmd)
	return rootCmd
}

// resolveConfig layers preset, config file and explicitly set flags, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.SetDDMParams(p)
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("a") {
		cfg.Params.A = boundary
	}
	if flags.Changed("v") {
		cfg.Params.V = drift
	}
	if flags.Changed("z") {
		cfg.Params.Z = bias
	}
	if flags.Changed("s") {
		cfg.Params.S = noise
	}
	if flags.Changed("dt") {
		cfg.Params.Dt = dt
	}
	if flags.Changed("bins") {
		cfg.Bins = bins
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	// Each subcommand owns its --trials default.
	if f := flags.Lookup("trials"); f != nil && (f.Changed || configFile == "") {
		n, err := flags.GetInt("trials")
		if err != nil {
			return nil, err
		}
		cfg.Trials = n
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Theme = theme
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logrus.Debugf("config: params=%+v bins=%d trials=%d seed=%d", cfg.DDMParams(), cfg.Bins, cfg.Trials, cfg.Seed)
	return cfg, nil
}

func newSession(cfg *config.Config) (*session.Session, error) {
	return session.New(cfg.DDMParams(), cfg.Bins, ddm.NewSource(cfg.Seed))
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := newSession(cfg)
	if err != nil {
		return err
	}

	// The alt screen owns stdout and stderr while the TUI runs.
	logrus.SetOutput(io.Discard)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		logrus.SetOutput(f)
	}
	defer logrus.SetOutput(os.Stderr)

	return viz.Run(sess, cfg.Theme)
}

func runTrials(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := newSession(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := cfg.DDMParams()
	fmt.Fprintf(out, "running %d trials (a=%.2f v=%.2f z=%.2f s=%.2f dt=%.3f seed=%d)\n",
		cfg.Trials, p.A, p.V, p.Z, p.S, p.Dt, cfg.Seed)

	start := time.Now()
	if _, err := sess.RunN(cmd.Context(), cfg.Trials); err != nil {
		return err
	}
	logrus.Infof("simulated %d trials in %v", sess.Len(), time.Since(start))

	printSummary(out, stats.Summarize(sess.Trials()))

	if last, err := sess.LastTrial(); err == nil && len(last.Path) > 1 {
		fmt.Fprintln(out, asciigraph.Plot(last.Path,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(p.A),
			asciigraph.Caption(fmt.Sprintf("last trial: %s after %d steps", last.Outcome, last.Steps)),
		))
		fmt.Fprintln(out)

		if svgOut != "" {
			svg := export.PathSVG(last.Path, p.A, viz.MinPathSpan, 800, 300, export.TrialColor(last))
			if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
				return err
			}
			logrus.Infof("wrote last path to %s", svgOut)
		}
	}

	d := sess.Distribution()
	if d.Total() > 0 {
		mirrored := make([]float64, d.Bins())
		for i, c := range d.Lower {
			mirrored[i] = -float64(c)
		}
		upper := make([]float64, d.Bins())
		for i, c := range d.Upper {
			upper[i] = float64(c)
		}
		fmt.Fprintln(out, asciigraph.PlotMany([][]float64{upper, mirrored},
			asciigraph.Height(12),
			asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
			asciigraph.Caption(fmt.Sprintf("decision time 0..%.2fs (upper above, lower below)", d.MaxRT)),
		))
	}
	return nil
}

func printSummary(w io.Writer, s stats.Summary) {
	fmt.Fprintf(w, "\ntrials: %d  p(upper): %.3f  mean rt: %.3fs", s.N, s.PUpper, s.MeanRT)
	if s.Truncated > 0 {
		fmt.Fprintf(w, "  step cap: %d", s.Truncated)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CLASS\tN\tMEAN\tSD\tQ10\tQ50\tQ90")
	for _, o := range []ddm.Outcome{ddm.Upper, ddm.Lower} {
		c := s.Class(o)
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n",
			o, c.Count, c.MeanRT, c.StdRT, c.Quantiles[0], c.Quantiles[1], c.Quantiles[2])
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func exportReport(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := newSession(cfg)
	if err != nil {
		return err
	}
	if _, err := sess.RunN(cmd.Context(), cfg.Trials); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := report.Write(w, report.Build(sess, cfg.Seed), format); err != nil {
		return err
	}
	if outPath != "" {
		logrus.Infof("wrote %s report to %s", format, outPath)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sw := sweep.Sweep{Param: args[0], Min: sweepMin, Max: sweepMax, Steps: sweepSteps, Trials: cfg.Trials}
	points, err := sw.Run(cmd.Context(), cfg.DDMParams(), ddm.NewSource(cfg.Seed))
	if err != nil {
		if sweep.IsParamError(err) {
			return fmt.Errorf("%w (choose from %v)", err, ddm.ParamNames())
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sweeping %s over [%.3f, %.3f], %d trials per value\n\n", sw.Param, sw.Min, sw.Max, sw.Trials)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tP(UPPER)\tMEAN RT\tUPPER RT\tLOWER RT\tCAPPED\n", sw.Param)
	pUpper := make([]float64, len(points))
	for i, pt := range points {
		s := pt.Summary
		pUpper[i] = s.PUpper
		fmt.Fprintf(tw, "%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%d\n", pt.Value, s.PUpper, s.MeanRT, s.Upper.MeanRT, s.Lower.MeanRT, s.Truncated)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(pUpper) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(pUpper,
			asciigraph.Height(10),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(1),
			asciigraph.Caption("p(upper) vs "+sw.Param),
		))
	}
	return nil
}
