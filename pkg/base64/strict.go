package base64

import (
	"errors"
	"fmt"
)

var (
	ErrMissingTerminator = errors.New("base64: missing terminator")
	ErrTooShort          = errors.New("base64: shorter than a single encoded group")
	ErrInvalidLength     = errors.New("base64: length is not a multiple of four")
	ErrInvalidPadding    = errors.New("base64: misplaced padding")
	ErrInvalidCharacter  = errors.New("base64: character outside the base64 alphabet")
	ErrShortBuffer       = errors.New("base64: destination buffer too small")
)

// CorruptInputError reports the offset of the first byte in the encoded text
// that is not part of the alphabet.
type CorruptInputError struct {
	Offset int
	Char   byte
}

func (e *CorruptInputError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", ErrInvalidCharacter, e.Char, e.Offset)
}

func (e *CorruptInputError) Unwrap() error {
	return ErrInvalidCharacter
}

// Validate reports whether enc is well formed encoded text followed by the
// Terminator. Unlike DecodedLength it accepts a lone terminator, which is the
// encoding of an empty input.
func Validate(enc []byte) error {
	m := len(enc)

	if m == 0 || enc[m-1] != Terminator {
		return ErrMissingTerminator
	}

	if m == 1 {
		return nil
	}

	if m < 4 {
		return ErrTooShort
	}

	if (m-1)%4 != 0 {
		return ErrInvalidLength
	}

	text := enc[:m-1]
	last := len(text) - 1

	for i, c := range text {
		if c == Padding {
			// Only "x=" or "==" may end the text.
			if i == last || (i == last-1 && text[last] == Padding) {
				continue
			}
			return fmt.Errorf("%w at offset %d", ErrInvalidPadding, i)
		}

		if decodeMap[c] == invalid {
			return &CorruptInputError{Offset: i, Char: c}
		}
	}

	return nil
}

// DecodeStrict is like Decode, but first checks enc with Validate and that dst
// is large enough. On error nothing is written to dst.
func DecodeStrict(dst, enc []byte) (int, error) {
	if err := Validate(enc); err != nil {
		return 0, err
	}

	if n := DecodedLength(enc); len(dst) < n {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, n, len(dst))
	}

	return Decode(dst, enc), nil
}

// EncodeToString returns the encoding of src without the terminator.
//
// It allocates, unlike Encode.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLength(len(src)))
	n := Encode(dst, src)
	return string(dst[:n])
}

// DecodeString returns the bytes represented by the base64 text s, which must
// not carry a terminator of its own.
//
// It allocates, unlike Decode.
func DecodeString(s string) ([]byte, error) {
	enc := make([]byte, len(s)+1)
	copy(enc, s)
	enc[len(s)] = Terminator

	dst := make([]byte, DecodedLength(enc))

	n, err := DecodeStrict(dst, enc)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", s, err)
	}
	return dst[:n], nil
}
