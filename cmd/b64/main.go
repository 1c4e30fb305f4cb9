package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger global
	Logger = zap.NewNop()

	// Level of the global logger, raised by --verbose
	Level = zap.NewAtomicLevel()
)

// Command options
var (
	Verbose bool
	Lenient bool
)

// NewCommand builds the CLI root with all of its sub-commands
func NewCommand() *cobra.Command {
	cli := &cobra.Command{
		Use:               "b64",
		Short:             "Encode and decode standard, padded base64",
		PersistentPreRunE: PreRun,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	cli.AddCommand(&cobra.Command{
		Use:   "encode [FILE]",
		Short: "Encode FILE, or standard input, to base64 text",
		RunE:  Encode,
		Args:  cobra.MaximumNArgs(1),
	})

	decode := &cobra.Command{
		Use:   "decode [FILE]",
		Short: "Decode base64 text from FILE, or standard input",
		RunE:  Decode,
		Args:  cobra.MaximumNArgs(1),
	}
	decode.Flags().BoolVar(&Lenient, "lenient", false, "Skip alphabet and padding checks, only verify the length of the input")
	cli.AddCommand(decode)

	length := &cobra.Command{
		Use:   "length",
		Short: "Calculate buffer sizes for encoding and decoding",
	}
	length.AddCommand(&cobra.Command{
		Use:   "encoded N",
		Short: "Print the buffer size, terminator included, needed to encode N bytes",
		RunE:  EncodedLength,
		Args:  cobra.ExactArgs(1),
	})
	length.AddCommand(&cobra.Command{
		Use:   "decoded TEXT",
		Short: "Print the number of bytes TEXT decodes to, or 0 if TEXT is invalid",
		RunE:  DecodedLength,
		Args:  cobra.ExactArgs(1),
	})
	cli.AddCommand(length)

	cli.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "Enable debug logging")

	return cli
}

func main() {
	var exit ExitError

	switch err := Main(); {
	case errors.As(err, &exit):
		// Exit with error's code
		os.Exit(exit.ExitCode())
	case err != nil:
		// Exit with a non-zero code
		os.Exit(1)
	}
}

// ExitError provides an ExitCode
type ExitError interface {
	ExitCode() int
}

// Main wrapper ensures that deferred functions are run before exiting
func Main() error {
	cli := NewCommand()

	Logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(cli.ErrOrStderr()),
		Level,
	))
	defer Logger.Sync()

	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer done()

	err := cli.ExecuteContext(ctx)
	if err != nil {
		Logger.Error("Command failed", zap.Error(err))
	}

	return err
}

// PreRun hook
func PreRun(cmd *cobra.Command, _ []string) error {
	if Verbose {
		Level.SetLevel(zap.DebugLevel)
	}

	Logger.Debug("Running command", zap.String("command", cmd.CommandPath()))
	return nil
}
