package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/encodeous/dvsim/core"
	"github.com/encodeous/dvsim/state"
	"github.com/encodeous/tint"
	"github.com/google/uuid"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [scenario]",
	Short: "Run a simulation",
	Long: `Runs a scenario to convergence and prints the per-round distance tables
and final routing tables. The scenario is read from the given file, or from
stdin when no argument is supplied.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := &state.SimCfg{}
		if simConfigPath != "" {
			loaded, err := state.LoadSimCfg(simConfigPath)
			if err != nil {
				panic(err)
			}
			cfg = loaded
		}
		if cmd.Flags().Changed("max-rounds") {
			cfg.MaxRounds, _ = cmd.Flags().GetInt("max-rounds")
		}
		if cmd.Flags().Changed("parallel") {
			cfg.Parallel, _ = cmd.Flags().GetBool("parallel")
		}
		if ok, _ := cmd.Flags().GetBool("verbose"); ok {
			cfg.LogLevel = "debug"
		}
		err := state.SimConfigValidator(cfg)
		if err != nil {
			panic(err)
		}

		lines, err := readScenario(args)
		if err != nil {
			fmt.Println("Error:", err.Error())
			os.Exit(1)
		}
		sc, err := state.ParseScenario(lines)
		if err != nil {
			fmt.Println("Error:", err.Error())
			os.Exit(1)
		}

		logger, err := buildLogger(cfg)
		if err != nil {
			panic(err)
		}

		err = core.Simulate(sc, cfg, logger, &core.TextReporter{W: os.Stdout})
		if err != nil {
			fmt.Println("Error:", err.Error())
			os.Exit(1)
		}
	},
}

func readScenario(args []string) ([]string, error) {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}
	return strings.Split(string(data), "\n"), nil
}

func buildLogger(cfg *state.SimCfg) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	runId := uuid.NewString()[:8]

	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:        level,
			AddSource:    false,
			CustomPrefix: runId,
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	if cfg.LogPath != "" {
		err := os.MkdirAll(path.Dir(cfg.LogPath), 0700)
		if err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0700)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	runCmd.Flags().Int("max-rounds", 0, "Abort if not converged after this many rounds (0 = unbounded)")
	runCmd.Flags().Bool("parallel", false, "Relax nodes concurrently within each round")
}
