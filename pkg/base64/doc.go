// Package base64 implements standard, padded base64 encoding as defined in
// RFC 4648 Section 4, for callers that size their own buffers.
//
// Nothing in the core allocates. A caller computes the destination size
// first and hands the codec a buffer of at least that length:
//
//	dst := make([]byte, base64.EncodedLength(len(src)))
//	n := base64.Encode(dst, src)
//
// Encoded text always carries a trailing Terminator byte (NUL), so an
// encoded buffer can be handed as-is to code expecting C-style strings.
// The returned counts never include it.
//
// Decode only checks the structure of its input (length and padding). Bytes
// outside the alphabet decode to unspecified values. Use Validate or
// DecodeStrict when the input is not trusted.
//
// http://www.rfc-editor.org/rfc/rfc4648#section-4
package base64
