package main

import (
	"bytes"

	"github.com/DavesCodeMusings/b64/pkg/base64"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Decode base64 text to raw bytes on standard output
func Decode(cmd *cobra.Command, args []string) (err error) {
	data, err := readInput(cmd, args)
	if err != nil {
		return
	}

	// Zero value of the extra byte is the terminator
	text := bytes.TrimSpace(data)
	enc := make([]byte, len(text)+1)
	copy(enc, text)

	size := base64.DecodedLength(enc)
	dst := make([]byte, size)

	var n int
	if Lenient {
		if size == 0 && len(text) > 0 {
			return &InputError{Err: base64.Validate(enc)}
		}

		n = base64.Decode(dst, enc)
	} else {
		n, err = base64.DecodeStrict(dst, enc)
		if err != nil {
			return &InputError{Err: err}
		}
	}

	Logger.Debug("Decoded input", zap.Int("characters", len(text)), zap.Int("bytes", n), zap.Bool("lenient", Lenient))

	_, err = cmd.OutOrStdout().Write(dst[:n])
	return
}
