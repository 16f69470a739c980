package base32lsb

import (
	"errors"
	"math"
	"slices"
	"unsafe"
)

// ErrInvalidOutputLength is returned when a symbol would be written past the
// end of the destination slice.
var ErrInvalidOutputLength = errors.New("invalid output length")

// maxSrcLen is the longest source whose encoded length still fits in an int.
const maxSrcLen = math.MaxInt/8*5 + 4

// tailSymbols[r] is the number of symbols a trailing group of r bytes needs.
var tailSymbols = [5]int{0, 2, 4, 5, 7}

// EncodedLength returns ceil(8n/5), the number of symbols Encode writes for
// n source bytes. It returns -1 when n is negative or the result would
// overflow an int.
func EncodedLength(n int) int {
	if n < 0 || n > maxSrcLen {
		return -1
	}

	return n/5*8 + tailSymbols[n%5]
}

// growEncoded extends dst by the encoded length of n bytes and returns the
// extended slice along with the newly added region.
func growEncoded(dst []byte, n int) ([]byte, []byte) {
	m := EncodedLength(n)
	if m < 0 {
		panic("base32lsb: invalid encode source length")
	}

	orig := len(dst)
	dst = slices.Grow(dst, m)[:orig+m]

	return dst, dst[orig:]
}

func putSymbol(dst []byte, w int, v byte) (int, error) {
	if w >= len(dst) {
		return w, ErrInvalidOutputLength
	}

	dst[w] = encodeTab[v]

	return w + 1, nil
}

// Encode writes the encoded form of src into dst and returns the number of
// symbols written. No padding is emitted, so a successful call always writes
// exactly EncodedLength(len(src)) symbols.
//
// dst is not pre-validated. Symbols are written left to right and the first
// write that would land past the end of dst fails with ErrInvalidOutputLength.
// The symbols written before the failure are left in dst and the returned
// count says how many there are.
//
// Encode does not allocate and is safe for concurrent use as long as callers
// do not share dst.
func Encode(dst, src []byte) (int, error) {
	var (
		w   int
		err error

		// remain is the number of bits the next byte has to supply to
		// complete the pending symbol; current holds the pending low bits.
		remain  uint = symbolBits
		current byte
	)

	for _, d := range src {
		w, err = putSymbol(dst, w, ((d&maskTab[remain])<<(symbolBits-remain))|current)
		if err != nil {
			return w, err
		}

		inner := 8 - remain
		current = (d >> remain) & maskTab[inner]

		if inner >= symbolBits {
			w, err = putSymbol(dst, w, current&maskTab[symbolBits])
			if err != nil {
				return w, err
			}

			current >>= symbolBits
			inner -= symbolBits
		}

		remain = symbolBits - inner
	}

	// flush the partial symbol, high bits are zero
	if remain < symbolBits {
		w, err = putSymbol(dst, w, current&maskTab[symbolBits])
	}

	return w, err
}

// EncodeToString returns "" if src is empty, otherwise it returns the
// encoded form of src.
func EncodeToString(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	_, out := growEncoded(nil, len(src))
	encodeUnrolled(unsafe.Pointer(&out[0]), unsafe.Pointer(&src[0]), len(src))

	return unsafe.String(&out[0], len(out))
}

// AppendEncode appends the encoded form of src to dst and returns the
// extended slice. An empty src returns dst unchanged, nil included.
func AppendEncode(dst, src []byte) []byte {
	if len(src) == 0 {
		return dst
	}

	dst, out := growEncoded(dst, len(src))
	encodeUnrolled(unsafe.Pointer(&out[0]), unsafe.Pointer(&src[0]), len(src))

	return dst
}

// AppendEncodeString is AppendEncode for a string source.
func AppendEncodeString(dst []byte, src string) []byte {
	if len(src) == 0 {
		return dst
	}

	dst, out := growEncoded(dst, len(src))
	encodeUnrolled(unsafe.Pointer(&out[0]), unsafe.Pointer(unsafe.StringData(src)), len(src))

	return dst
}
