package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cardcodes",
	Short: "Creates and evaluates card edge codes",
	Long: `cardcodes creates the binary code sets printed on the edges of playing cards
and provides tools to analyze them and simulate noisy reads.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
