package cmd

import (
	"fmt"
	"os"

	"github.com/encodeous/dvsim/state"
	"github.com/spf13/cobra"
)

// checkCmd validates a scenario without running the simulation.
var checkCmd = &cobra.Command{
	Use:     "check [scenario]",
	Aliases: []string{"validate"},
	Short:   "Parse and validate a scenario",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
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
		net, err := state.Build(sc.Nodes, sc.Edges)
		if err != nil {
			fmt.Println("Error:", err.Error())
			os.Exit(1)
		}
		net.InitTables()
		err = net.Validate()
		if err != nil {
			fmt.Println("Error:", err.Error())
			os.Exit(1)
		}

		links := 0
		isolated := 0
		for _, n := range net.Nodes {
			links += len(n.Neighbours)
			if len(n.Neighbours) == 0 {
				isolated++
			}
		}
		fmt.Printf("OK: %d nodes, %d links, %d isolated, %d updates\n",
			len(net.Nodes), links/2, isolated, len(sc.Updates))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
