package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/athena-tools/mobgen/internal/config"
	"github.com/athena-tools/mobgen/internal/divinepride"
	"github.com/athena-tools/mobgen/internal/export"
	"github.com/athena-tools/mobgen/internal/observability"
	"github.com/athena-tools/mobgen/internal/pipeline"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		reset   bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "mobgen <id,id,id,...>",
		Short: "Convert Divine-Pride monsters into rAthena database files",
		Long: `mobgen fetches monster records from the Divine-Pride API and converts
them into rAthena artifacts: upserted mob_db.yml entries, mob_skill_db
lines, and spawn lines. Unknown vendor codes fall back to documented
defaults with a warning; a run only aborts on configuration errors.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args[0])
			if err != nil {
				return err
			}
			return run(cmd, cfgPath, reset, verbose, ids)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "config.yaml", "path to the configuration file")
	cmd.Flags().BoolVar(&reset, "reset", false, "truncate all output artifacts before the run")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// parseIDs splits a comma-separated monster id list. Empty fields are
// ignored; any other unparsable token fails the whole invocation before
// configuration is even loaded.
func parseIDs(arg string) ([]int, error) {
	var ids []int
	for _, tok := range strings.Split(arg, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		id, err := strconv.Atoi(tok)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid monster id %q (expected e.g. 22399,22400,22401)", tok)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no valid monster ids provided")
	}
	return ids, nil
}

func run(cmd *cobra.Command, cfgPath string, reset, verbose bool, ids []int) error {
	start := time.Now()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if reset {
		if err := export.ResetMobDB(cfg.Output.MobDB); err != nil {
			return err
		}
		for _, path := range []string{cfg.Output.Spawn, cfg.Output.Skill} {
			if err := export.ResetFile(path); err != nil {
				return err
			}
		}
		logger.Info("output artifacts reset")
	}

	runner := pipeline.New(cfg, logger, divinepride.NewClient(cfg.DivinePride))

	bar := progressbar.Default(int64(len(ids)), "fetching")
	runner.OnFetched = func(int) { _ = bar.Add(1) }

	summary, err := runner.Run(cmd.Context(), ids)
	if err != nil {
		return err
	}
	_ = bar.Finish()

	fmt.Printf("\nDone in %s.\n   %d of %d created.\n",
		time.Since(start).Round(time.Millisecond), summary.Created, summary.Requested)
	if len(summary.NotFound) > 0 {
		fmt.Printf("   not found: %v\n", summary.NotFound)
	}
	if len(summary.Warnings) > 0 {
		fmt.Printf("   %d warning(s) need manual review:\n", len(summary.Warnings))
		for _, w := range summary.Warnings {
			fmt.Printf("     - %s\n", w)
		}
	}

	return nil
}
