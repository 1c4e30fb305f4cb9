package main

import (
	"fmt"
	"strconv"

	"github.com/DavesCodeMusings/b64/pkg/base64"
	"github.com/spf13/cobra"
)

// EncodedLength prints the buffer size needed to encode N bytes
func EncodedLength(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return &InputError{Err: fmt.Errorf("expected a non-negative byte count, got %q", args[0])}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), base64.EncodedLength(n))
	return err
}

// DecodedLength prints the number of bytes TEXT decodes to
func DecodedLength(cmd *cobra.Command, args []string) error {
	enc := append([]byte(args[0]), base64.Terminator)

	_, err := fmt.Fprintln(cmd.OutOrStdout(), base64.DecodedLength(enc))
	return err
}
