package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/IlikeChooros/go-aima/internal/config"
	"github.com/IlikeChooros/go-aima/internal/demo"
	"github.com/IlikeChooros/go-aima/internal/logging"
	"github.com/IlikeChooros/go-aima/internal/render"
)

// Command line state shared by the subcommands
type app struct {
	// Global flags
	configPath string
	verbose    bool
	noColor    bool

	// Puzzle flags
	parallel   bool
	depthLimit int
	nodeLimit  uint32

	// Tic-tac-toe flags
	games   uint
	workers uint

	logger *zap.Logger
	config *config.Config
	runID  string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "aima",
		Short: "Classical AI algorithms, narrated step by step",
		Long: `aima runs small demonstrations of classical Artificial Intelligence
algorithms: a reflex vacuum agent, Tic-Tac-Toe, graph traversal, n-puzzle
search, alpha-beta pruning, hill climbing and two knowledge-based agents.

Every demonstration prints its intermediate steps. The scenario data can be
replaced with a YAML file passed with --config.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.runID = uuid.NewString()

			var err error
			a.logger, err = logging.New(logging.Options{
				Verbose: a.verbose,
				Fields:  []zap.Field{zap.String("run_id", a.runID)},
			})
			if err != nil {
				return err
			}

			a.config, err = config.Load(a.configPath)
			if err != nil {
				return err
			}
			return a.applyFlags(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Scenario file (default: built-in scenario)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	for _, d := range demo.All() {
		cmd := &cobra.Command{
			Use:   d.Name,
			Short: d.Short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, d.Name, d.Run)
			},
		}
		switch d.Name {
		case "puzzle":
			cmd.Flags().BoolVar(&a.parallel, "parallel", false, "Run the algorithms of a problem concurrently")
			cmd.Flags().IntVar(&a.depthLimit, "depth-limit", 0, "Depth at which DFS gives up")
			cmd.Flags().Uint32Var(&a.nodeLimit, "nodes", 0, "Maximum number of explored states per search")
		case "tictactoe":
			cmd.Flags().UintVar(&a.games, "games", 0, "Number of alpha-beta versus random games")
			cmd.Flags().UintVar(&a.workers, "workers", 0, "Number of goroutines playing the games")
		}
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run every demonstration in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "all", demo.RunAll)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the effective scenario as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), a.config)
			return nil
		},
	})

	return rootCmd
}

// Command line flags take precedence over the scenario file
func (a *app) applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("parallel") {
		a.config.Puzzle.Parallel = a.parallel
	}
	if flags.Changed("depth-limit") {
		a.config.Puzzle.DepthLimit = a.depthLimit
	}
	if flags.Changed("nodes") {
		a.config.Puzzle.NodeLimit = a.nodeLimit
	}
	if flags.Changed("games") {
		a.config.TicTacToe.Arena.Games = a.games
	}
	if flags.Changed("workers") {
		a.config.TicTacToe.Arena.Workers = a.workers
	}
	return a.config.Validate()
}

func (a *app) run(cmd *cobra.Command, name string, f demo.Func) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := a.logger.With(zap.String("demo", name))
	env := demo.Env{
		Config: a.config,
		Out:    render.New(cmd.OutOrStdout(), a.noColor),
		Logger: logger,
	}

	logger.Debug("demonstration started")
	start := time.Now()
	if err := f(ctx, env); err != nil {
		logger.Error("demonstration failed", zap.Error(err))
		return err
	}
	logger.Debug("demonstration finished", zap.Duration("elapsed", time.Since(start)))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
