package binary

import (
	"strings"
	"unicode/utf8"

	"github.com/jvmkit/classreader/errors"
)

// Surrogate range used by the modified UTF-8 encoding of supplementary
// code points (pairs of 3-byte sequences).
const (
	surrHighStart = 0xD800
	surrHighEnd   = 0xDBFF
	surrLowStart  = 0xDC00
	surrLowEnd    = 0xDFFF
)

// DecodeModifiedUTF8 decodes the JVM's modified UTF-8 encoding.
//
// It differs from strict UTF-8 in two ways: U+0000 is encoded as the
// two-byte sequence 0xC0 0x80 (a raw NUL byte never appears), and code
// points above U+FFFF are encoded as a surrogate pair of two 3-byte
// sequences rather than a single 4-byte sequence. An unpaired surrogate
// decodes to U+FFFD.
func DecodeModifiedUTF8(data []byte) (string, error) {
	var b strings.Builder
	b.Grow(len(data))

	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case c == 0x00:
			// NUL must be encoded as 0xC0 0x80
			return "", errors.InvalidUTF8(i, data[i:])

		case c < 0x80:
			b.WriteByte(c)
			i++

		case c&0xE0 == 0xC0:
			if i+2 > len(data) || data[i+1]&0xC0 != 0x80 {
				return "", errors.InvalidUTF8(i, data[i:])
			}
			b.WriteRune(rune(c&0x1F)<<6 | rune(data[i+1]&0x3F))
			i += 2

		case c&0xF0 == 0xE0:
			r, err := decodeTriple(data, i)
			if err != nil {
				return "", err
			}
			i += 3
			switch {
			case r >= surrHighStart && r <= surrHighEnd:
				// High surrogate: combine with a following low surrogate
				if i+3 <= len(data) && data[i]&0xF0 == 0xE0 {
					lo, err := decodeTriple(data, i)
					if err != nil {
						return "", err
					}
					if lo >= surrLowStart && lo <= surrLowEnd {
						b.WriteRune(0x10000 + (r-surrHighStart)<<10 + (lo - surrLowStart))
						i += 3
						continue
					}
				}
				b.WriteRune(utf8.RuneError)
			case r >= surrLowStart && r <= surrLowEnd:
				// Low surrogate with no preceding high surrogate
				b.WriteRune(utf8.RuneError)
			default:
				b.WriteRune(r)
			}

		default:
			// 4-byte UTF-8 sequences do not occur in modified UTF-8
			return "", errors.InvalidUTF8(i, data[i:])
		}
	}

	return b.String(), nil
}

func decodeTriple(data []byte, i int) (rune, error) {
	if i+3 > len(data) || data[i+1]&0xC0 != 0x80 || data[i+2]&0xC0 != 0x80 {
		return 0, errors.InvalidUTF8(i, data[i:])
	}
	return rune(data[i]&0x0F)<<12 | rune(data[i+1]&0x3F)<<6 | rune(data[i+2]&0x3F), nil
}
