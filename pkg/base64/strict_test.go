package base64

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		Name  string
		Input []byte
		Err   error
	}{
		{Name: "terminator only", Input: terminated(""), Err: nil},
		{Name: "single group", Input: terminated("Zm9v"), Err: nil},
		{Name: "one padding", Input: terminated("Zm8="), Err: nil},
		{Name: "two padding", Input: terminated("Zg=="), Err: nil},
		{Name: "nil", Input: nil, Err: ErrMissingTerminator},
		{Name: "no terminator", Input: []byte("Zm9v"), Err: ErrMissingTerminator},
		{Name: "too short", Input: terminated("Zg"), Err: ErrTooShort},
		{Name: "bad length", Input: terminated("Zm9vY"), Err: ErrInvalidLength},
		{Name: "padding in first group", Input: terminated("Zg==Zm9v"), Err: ErrInvalidPadding},
		{Name: "padding before data", Input: terminated("Zm=v"), Err: ErrInvalidPadding},
		{Name: "all padding", Input: terminated("===="), Err: ErrInvalidPadding},
		{Name: "url alphabet", Input: terminated("-_8="), Err: ErrInvalidCharacter},
		{Name: "embedded terminator", Input: append([]byte("Zm\x00v"), Terminator), Err: ErrInvalidCharacter},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			err := Validate(test.Input)
			if test.Err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, test.Err)
		})
	}
}

func TestCorruptInputError(t *testing.T) {
	err := Validate(terminated("Zm9vYm$y"))

	var corrupt *CorruptInputError
	require.True(t, errors.As(err, &corrupt))
	require.Equal(t, 6, corrupt.Offset)
	require.Equal(t, byte('$'), corrupt.Char)
	require.Contains(t, err.Error(), "offset 6")
}

func TestDecodeStrict(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		enc := terminated("Zm9vYmE=")
		dst := make([]byte, DecodedLength(enc))

		n, err := DecodeStrict(dst, enc)
		require.NoError(t, err)
		require.Equal(t, "fooba", string(dst[:n]))
	})

	t.Run("empty payload", func(t *testing.T) {
		n, err := DecodeStrict(nil, terminated(""))
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("short buffer", func(t *testing.T) {
		dst := make([]byte, 2)

		n, err := DecodeStrict(dst, terminated("Zm9v"))
		require.ErrorIs(t, err, ErrShortBuffer)
		require.Zero(t, n)
		require.Equal(t, []byte{0, 0}, dst)
	})
}

func TestEncodeToStringDecodeString(t *testing.T) {
	tests := []struct {
		Name  string
		Input []byte
	}{
		{
			Name:  "empty",
			Input: []byte{},
		},
		{
			Name:  "plaintext",
			Input: []byte("hello world"),
		},
		{
			Name:  "binary",
			Input: []byte{0x00, 0xFF, 0x10, 0x80, 0x7F},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			encoded := EncodeToString(test.Input)

			decoded, err := DecodeString(encoded)
			require.NoError(t, err)
			require.Equal(t, test.Input, decoded)
		})
	}

	_, err := DecodeString("Zm9v!")
	require.ErrorIs(t, err, ErrInvalidLength)
	require.EqualError(t, err, `decode "Zm9v!": base64: length is not a multiple of four`)
}

func TestValidateErrorMessages(t *testing.T) {
	require.EqualError(t, Validate([]byte("Zm9v")), "base64: missing terminator")
	require.EqualError(t, Validate(terminated("Zm9vY")), "base64: length is not a multiple of four")
	require.EqualError(t, Validate(terminated("Zm=v")), "base64: misplaced padding at offset 2")
	require.EqualError(t, Validate(terminated("Zm*v")), "base64: character outside the base64 alphabet: '*' at offset 2")
}
