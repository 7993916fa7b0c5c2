package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"montyhall/internal/cliparse"
	"montyhall/internal/config"
	"montyhall/internal/game"
	"montyhall/internal/util"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "montysim [trials]",
		Short: "Monty Hall problem simulator",
		Long: `montysim plays the three-door Monty Hall game many times and tallies
how often staying with the first pick beats switching.

The naive host variant lets the host open the prize door by accident,
which is exactly the mistake that destroys the switching advantage.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSim,
	}
	cmd.Flags().String("config", "", "simulation config file (YAML)")
	cmd.Flags().Int64("seed", 0, "random seed (0 = time-based)")
	cmd.Flags().String("host", "", "host policy: correct or naive")
	cmd.Flags().Bool("trace", true, "print per-trial door lines")
	cmd.Flags().Bool("json", false, "print the summary as JSON")
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "montysim version %s\n", version)
		},
	}
}

// runSim always returns nil: malformed input degrades (bad config falls
// back to defaults, a bad trial count means zero trials) instead of
// producing an error exit.
func runSim(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("config load failed, using defaults", "error", err)
		cfg = config.Default()
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if cmd.Flags().Changed("host") {
		cfg.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("trace") {
		cfg.Trace, _ = cmd.Flags().GetBool("trace")
	}
	jsonOut, _ := cmd.Flags().GetBool("json")

	trials := cfg.Trials
	if len(args) == 1 {
		var ok bool
		trials, ok = cliparse.Trials(args[0])
		if !ok {
			slog.Warn("trial count not a non-negative integer, running 0 trials", "arg", args[0])
		}
	}

	host := hostPolicy(cfg.Host)
	if host == nil {
		slog.Error("unknown host policy, using correct host", "host", cfg.Host)
		host = game.CorrectHost{}
	}

	out := cmd.OutOrStdout()
	env := &game.Env{Rng: util.New(cfg.Seed)}
	emit := func(t game.Trial) {
		if cfg.Trace {
			fmt.Fprintf(out, "contestant picks door %d\n", t.Choice)
			fmt.Fprintf(out, "host opens door %d\n", t.HostOpens)
			fmt.Fprintf(out, "prize is behind door %d\n", t.Winning)
		}
		fmt.Fprintln(out, t.Outcome)
	}
	tally := game.RunBatch(env, host, trials, emit)

	if jsonOut {
		summary := map[string]any{
			"host":   host.Name(),
			"trials": trials,
			"tally":  tally.Counts(),
		}
		fmt.Fprintf(out, "%s\n", game.MarshalPretty(summary))
		return nil
	}
	fmt.Fprintln(out, tally)
	return nil
}

func hostPolicy(name string) game.HostPolicy {
	switch name {
	case "", "correct":
		return game.CorrectHost{}
	case "naive":
		return game.NaiveHost{}
	}
	return nil
}
