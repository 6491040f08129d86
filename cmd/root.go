package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dvsim",
	Short: "Distance-Vector Routing Simulator",
	Long: `dvsim simulates a distance-vector routing protocol over a static or
changing topology. Each router learns shortest paths purely from the cost
vectors its neighbours advertise, with no global view, converging by
synchronous Bellman-Ford rounds.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var simConfigPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&simConfigPath, "config", "c", "", "optional simulator config (yaml)")
}
