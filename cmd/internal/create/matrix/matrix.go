package matrix

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nathanhack/cardcodes/cmd/internal/tools"
	"github.com/nathanhack/cardcodes/codes/matrix"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	CodeBits           uint
	DataBits           uint
	BinaryOptimization bool
	Shuffle            bool
	Threads            uint
	Verbose            bool
)

var MatrixRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if DataBits >= CodeBits {
		fmt.Println("required: data < code")
		return
	}

	logrus.Infof("Matrix(%v,%v) searching %v polynomials", CodeBits, DataBits, uint64(1)<<(CodeBits-DataBits-1))
	def, err := matrix.New(ctx, int(CodeBits), int(DataBits), BinaryOptimization, Shuffle, int(Threads))
	if err != nil {
		fmt.Println("Unable to create matrix codes: ", err)
		return
	}

	if err = def.Validate(); err != nil {
		fmt.Println("Matrix codes failed validation: ", err)
		return
	}

	tools.Report(os.Stdout, def, Verbose)

	if err = tools.SaveCodeDefinition(args[0], def); err != nil {
		fmt.Println(err)
		return
	}
	logrus.Info("Done")
}
