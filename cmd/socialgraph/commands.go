package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sanonone/socialgraph/internal/config"
	"github.com/sanonone/socialgraph/internal/report"
	"github.com/sanonone/socialgraph/pkg/dataset"
	"github.com/sanonone/socialgraph/pkg/engine"
	"github.com/sanonone/socialgraph/pkg/metrics"
)

// app carries the state shared by every subcommand.
type app struct {
	cfgFile string
	dataset string
	seed    uint64
	topK    int

	cfg   config.Config
	runID string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "socialgraph",
		Short: "Social network analysis over a follow graph",
		Long: `socialgraph loads a user dataset, builds a random follow graph over it
and answers analytic queries: degrees of separation, friend suggestions,
connectivity and influence rankings, and strongly connected components.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "path to YAML config")
	root.PersistentFlags().StringVar(&a.dataset, "data", "", "user dataset CSV (overrides config)")
	root.PersistentFlags().Uint64Var(&a.seed, "seed", 0, "edge generation seed (overrides config)")
	root.PersistentFlags().IntVarP(&a.topK, "top", "k", 0, "size of every ranking (overrides config)")

	root.AddCommand(
		a.reportCmd(),
		a.pathCmd(),
		a.suggestCmd(),
		a.componentsCmd(),
	)
	return root
}

// setup loads the config, applies flag overrides and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("data") {
		cfg.DatasetPath = a.dataset
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = a.seed
	}
	if cmd.Flags().Changed("top") {
		cfg.TopK = a.topK
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	a.runID = uuid.NewString()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger.With("run_id", a.runID))

	a.cfg = cfg
	return nil
}

// buildEngine loads the dataset and the generated follow graph.
func (a *app) buildEngine() (*engine.Engine, []string, error) {
	records, err := dataset.LoadUsers(a.cfg.DatasetPath)
	if err != nil {
		return nil, nil, err
	}
	users := dataset.Usernames(records)
	edges := dataset.GenerateEdges(users, a.cfg.EdgeFactor, a.cfg.Seed)

	eng := engine.New()
	if _, err := eng.Load(records, edges); err != nil {
		return nil, nil, err
	}
	return eng, users, nil
}

// finish exports metrics when a textfile path is configured.
func (a *app) finish() error {
	if a.cfg.MetricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	slog.Debug("metrics written", "path", a.cfg.MetricsFile)
	return nil
}

func (a *app) reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the full network analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, users, err := a.buildEngine()
			if err != nil {
				return err
			}
			opts := report.Options{
				RunID:             a.runID,
				TopK:              a.cfg.TopK,
				SuggestFor:        a.cfg.SuggestFor,
				SeparationPairs:   dataset.SamplePairs(users, a.cfg.SeparationSamples, a.cfg.Seed+1),
				ListUsers:         a.cfg.ListUsers,
				PageRankDamping:   a.cfg.PageRankDamping,
				PageRankTolerance: a.cfg.PageRankTolerance,
			}
			if err := report.Write(cmd.OutOrStdout(), eng, opts); err != nil {
				return err
			}
			return a.finish()
		},
	}
}

func (a *app) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Print the degree of separation and a shortest follow chain",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := a.buildEngine()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			res, ok := eng.ShortestPath(args[0], args[1])
			if !ok {
				fmt.Fprintf(out, "%s -> %s: %s\n", args[0], args[1], report.FormatDegree(-1))
				return a.finish()
			}
			fmt.Fprintf(out, "%s -> %s: %d\n%s\n", res.Source, res.Target, res.Degree, strings.Join(res.Path, " -> "))
			return a.finish()
		},
	}
}

func (a *app) suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <user>",
		Short: "Print friend suggestions based on mutual connections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := a.buildEngine()
			if err != nil {
				return err
			}
			if _, ok := eng.Profile(args[0]); !ok {
				return fmt.Errorf("unknown user %q", args[0])
			}
			out := cmd.OutOrStdout()
			for i, r := range eng.Suggest(args[0], a.cfg.TopK) {
				fmt.Fprintf(out, "%2d. %-24s mutual=%d\n", i+1, r.Username, r.Score)
			}
			return a.finish()
		},
	}
}

func (a *app) componentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "Print the largest strongly connected components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := a.buildEngine()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, comp := range eng.Components(a.cfg.TopK) {
				fmt.Fprintf(out, "%2d. size %d: %s\n", i+1, len(comp), strings.Join(comp, " "))
			}
			return a.finish()
		},
	}
}
