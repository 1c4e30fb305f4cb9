package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// InputError marks input the codec rejected
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %v", e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ExitCode distinguishes rejected input from other failures
func (e *InputError) ExitCode() int {
	return 2
}

// readInput reads all of the file named by the first argument, or standard
// input when there is none or it is "-"
func readInput(cmd *cobra.Command, args []string) (data []byte, err error) {
	if len(args) == 0 || args[0] == "-" {
		Logger.Debug("Reading standard input")
		return io.ReadAll(cmd.InOrStdin())
	}

	Logger.Debug("Reading input file", zap.String("path", args[0]))
	file, err := os.Open(args[0])
	if err != nil {
		return
	}

	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	return io.ReadAll(file)
}
