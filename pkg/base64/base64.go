package base64

// Alphabet maps a 6-bit value to its character.
//
// https://datatracker.ietf.org/doc/html/rfc4648#section-4
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const (
	// Padding fills the final group when the input is not a multiple of
	// three bytes long.
	Padding byte = '='

	// Terminator marks the end of encoded text.
	Terminator byte = 0
)

// invalid marks bytes outside the alphabet in decodeMap.
const invalid = 0xFF

// decodeMap is the inverse of Alphabet.
var decodeMap = func() (m [256]byte) {
	for i := range m {
		m[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		m[Alphabet[i]] = byte(i)
	}
	return m
}()

// EncodedLength returns the number of bytes needed to hold the encoding of n
// input bytes, terminator included. The result is suitable for sizing the
// destination given to Encode:
//
//	dst := make([]byte, EncodedLength(len(src)))
func EncodedLength(n int) int {
	if n < 0 {
		n = 0
	}

	// Adding 2 before dividing rounds up to a whole group, which is where
	// the padding goes.
	return (n+2)/3*4 + 1
}

// Encode writes the base64 encoding of src into dst followed by the
// Terminator, and returns the number of characters written, not counting the
// terminator.
//
// dst must be at least EncodedLength(len(src)) bytes long. Encode panics
// otherwise.
func Encode(dst, src []byte) int {
	rem := len(src) % 3

	i, j := 0, 0
	for ; i < len(src)-rem; i += 3 {
		// ABCDEFGH IJKLMNOP QRSTUVWX => 00ABCDEF 00GHIJKL 00MNOPQR 00STUVWX
		v := uint(src[i])<<16 | uint(src[i+1])<<8 | uint(src[i+2])

		dst[j+0] = Alphabet[v>>18&0x3F]
		dst[j+1] = Alphabet[v>>12&0x3F]
		dst[j+2] = Alphabet[v>>6&0x3F]
		dst[j+3] = Alphabet[v&0x3F]
		j += 4
	}

	switch rem {
	case 2:
		v := uint(src[i])<<16 | uint(src[i+1])<<8

		dst[j+0] = Alphabet[v>>18&0x3F]
		dst[j+1] = Alphabet[v>>12&0x3F]
		dst[j+2] = Alphabet[v>>6&0x3F]
		dst[j+3] = Padding
		j += 4
	case 1:
		v := uint(src[i]) << 16

		dst[j+0] = Alphabet[v>>18&0x3F]
		dst[j+1] = Alphabet[v>>12&0x3F]
		dst[j+2] = Padding
		dst[j+3] = Padding
		j += 4
	}

	dst[j] = Terminator

	return j
}

// DecodedLength returns the number of bytes enc decodes to, where enc is
// encoded text followed by the Terminator.
//
// It returns 0 if enc is not terminated, is shorter than the encoding of a
// single byte, or its text is not a multiple of four characters long. A 0 is
// therefore ambiguous for the terminator-only encoding of an empty input; use
// Validate to tell the two apart.
func DecodedLength(enc []byte) int {
	m := len(enc)

	if m == 0 || enc[m-1] != Terminator {
		return 0
	}

	if m < 4 {
		return 0
	}

	if (m-1)%4 != 0 {
		return 0
	}

	n := (m - 1) / 4 * 3

	if enc[m-2] == Padding {
		n--
	}
	if enc[m-3] == Padding {
		n--
	}

	return n
}

// Decode writes the bytes represented by enc into dst and returns the number
// of bytes written. enc is encoded text followed by the Terminator.
//
// If the text is not a multiple of four characters long nothing is written
// and 0 is returned. No other validation is done: bytes outside the alphabet
// produce unspecified output. See DecodeStrict.
//
// dst must be at least DecodedLength(enc) bytes long. Decode panics
// otherwise.
func Decode(dst, enc []byte) int {
	if len(enc) == 0 || (len(enc)-1)%4 != 0 {
		return 0
	}

	text := enc[:len(enc)-1]
	if len(text) == 0 {
		return 0
	}

	padded := 0
	if text[len(text)-1] == Padding {
		padded++
	}
	if text[len(text)-2] == Padding {
		padded++
	}

	// Full groups; a padded final group is handled on its own.
	full := len(text)
	if padded > 0 {
		full -= 4
	}

	i, j := 0, 0
	for ; i < full; i += 4 {
		// 00ABCDEF 00GHIJKL 00MNOPQR 00STUVWX => ABCDEFGH IJKLMNOP QRSTUVWX
		v := sextet(text[i])<<18 | sextet(text[i+1])<<12 | sextet(text[i+2])<<6 | sextet(text[i+3])

		dst[j+0] = byte(v >> 16)
		dst[j+1] = byte(v >> 8)
		dst[j+2] = byte(v)
		j += 3
	}

	switch padded {
	case 1:
		v := sextet(text[i])<<18 | sextet(text[i+1])<<12 | sextet(text[i+2])<<6

		dst[j+0] = byte(v >> 16)
		dst[j+1] = byte(v >> 8)
		j += 2
	case 2:
		v := sextet(text[i])<<18 | sextet(text[i+1])<<12

		dst[j] = byte(v >> 16)
		j++
	}

	return j
}

// sextet looks up the 6-bit value of c. Bytes outside the alphabet are not
// reported and yield 63.
func sextet(c byte) uint {
	return uint(decodeMap[c] & 0x3F)
}
