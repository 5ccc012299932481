package lexer

import (
	"bytes"

	"golang.org/x/text/unicode/norm"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Normalize performs input normalization at the lexer boundary:
//  1. Strips a leading UTF-8 byte order mark, if present.
//  2. Applies Unicode NFC normalization.
//
// This ensures source text that is lexically identical but differently
// encoded (e.g. "∞" composed vs. decomposed) produces the same token
// stream. Performed once at input rather than per-rune.
func Normalize(src []byte) []byte {
	src = bytes.TrimPrefix(src, bomUTF8)
	if !norm.NFC.IsNormal(src) {
		src = norm.NFC.Bytes(src)
	}
	return src
}
