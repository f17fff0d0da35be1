package cmd

import (
	"github.com/nathanhack/cardcodes/cmd/internal/create/matrix"
	"github.com/nathanhack/cardcodes/cmd/internal/create/palindrome"
	"github.com/nathanhack/cardcodes/cmd/internal/create/reversible"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "used to create a new code set",
	Long:    `create provides the ability to make a new code set from the built-in generators and save it so it can be used later by the tools.`,
}

// createMatrixCmd represents the matrix command
var createMatrixCmd = &cobra.Command{
	Use:     "matrix OUTPUT_CODES_JSON",
	Aliases: []string{"m", "mds"},
	Short:   "Creates a code set from the best generator polynomial",
	Long:    `Creates a code set by searching every proper generator polynomial for the matrix with the largest minimum Hamming distance.`,
	Args:    cobra.ExactArgs(1),
	Run:     matrix.MatrixRun,
}

// createReversibleCmd represents the reversible command
var createReversibleCmd = &cobra.Command{
	Use:     "reversible OUTPUT_CODES_JSON",
	Aliases: []string{"r", "rev"},
	Short:   "Creates a reversible code set",
	Long:    `Creates a code set where a code read backwards is never another code, so a decoder can tell which way a card was read.`,
	Args:    cobra.ExactArgs(1),
	Run:     reversible.ReversibleRun,
}

// createPalindromeCmd represents the palindrome command
var createPalindromeCmd = &cobra.Command{
	Use:     "palindrome OUTPUT_CODES_JSON",
	Aliases: []string{"p", "pal"},
	Short:   "Creates a palindrome code set",
	Long:    `Creates a code set where every code reads the same in both directions.`,
	Args:    cobra.ExactArgs(1),
	Run:     palindrome.PalindromeRun,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.AddCommand(createMatrixCmd)
	createMatrixCmd.Flags().UintVarP(&matrix.CodeBits, "code", "c", 10, "the number of bits in each code")
	createMatrixCmd.Flags().UintVarP(&matrix.DataBits, "data", "d", 6, "the number of data bits (data < code), the set has 2^data codes")
	createMatrixCmd.Flags().BoolVarP(&matrix.BinaryOptimization, "binary", "b", false, "balance the ones and zeros across the codes")
	createMatrixCmd.Flags().BoolVarP(&matrix.Shuffle, "shuffle", "s", false, "deterministically shuffle the codes")
	createMatrixCmd.Flags().UintVarP(&matrix.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")
	createMatrixCmd.Flags().BoolVarP(&matrix.Verbose, "verbose", "v", false, "enable verbose info")

	createCmd.AddCommand(createReversibleCmd)
	createReversibleCmd.Flags().UintVarP(&reversible.DataBits, "data", "d", 6, "the number of data bits (>=5), codes have 2*data+1 bits")
	createReversibleCmd.Flags().BoolVarP(&reversible.Shuffle, "shuffle", "s", false, "deterministically shuffle the codes")
	createReversibleCmd.Flags().BoolVarP(&reversible.Verbose, "verbose", "v", false, "enable verbose info")

	createCmd.AddCommand(createPalindromeCmd)
	createPalindromeCmd.Flags().UintVarP(&palindrome.DataBits, "data", "d", 6, "the number of data bits, codes have 2*data+1 bits")
	createPalindromeCmd.Flags().BoolVarP(&palindrome.Shuffle, "shuffle", "s", false, "deterministically shuffle the codes")
	createPalindromeCmd.Flags().BoolVarP(&palindrome.Verbose, "verbose", "v", false, "enable verbose info")
}
