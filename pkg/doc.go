// Package b64 implements a small base64 codec for callers that manage their
// own memory, such as firmware-style code with fixed buffers.
//
// The codec lives in the base64 sub-package. It writes standard, padded
// base64 (RFC 4648 Section 4) followed by a NUL terminator, and exposes the
// length calculations a caller needs to size buffers ahead of time.
//
// Related RFCs:
//  - RFC4648 https://datatracker.ietf.org/doc/html/rfc4648 The Base16, Base32, and Base64 Data Encodings
package b64
