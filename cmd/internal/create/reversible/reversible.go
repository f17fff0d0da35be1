package reversible

import (
	"fmt"
	"os"

	"github.com/nathanhack/cardcodes/cmd/internal/tools"
	"github.com/nathanhack/cardcodes/codes/reversible"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	DataBits uint
	Shuffle  bool
	Verbose  bool
)

var ReversibleRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	def, err := reversible.New(int(DataBits), Shuffle)
	if err != nil {
		fmt.Println("Unable to create reversible codes: ", err)
		return
	}

	tools.Report(os.Stdout, def, Verbose)

	if err = tools.SaveCodeDefinition(args[0], def); err != nil {
		fmt.Println(err)
		return
	}
	logrus.Info("Done")
}
