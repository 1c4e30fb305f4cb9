package main

import (
	"github.com/DavesCodeMusings/b64/pkg/base64"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Encode input to base64 text on standard output
func Encode(cmd *cobra.Command, args []string) (err error) {
	src, err := readInput(cmd, args)
	if err != nil {
		return
	}

	dst := make([]byte, base64.EncodedLength(len(src)))
	n := base64.Encode(dst, src)
	Logger.Debug("Encoded input", zap.Int("bytes", len(src)), zap.Int("characters", n))

	// The terminator's slot holds the trailing newline
	dst[n] = '\n'

	_, err = cmd.OutOrStdout().Write(dst[:n+1])
	return
}
