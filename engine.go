package base32lsb

import "unsafe"

// Engine encodes src into dst and reports how many symbols were written.
//
// All engines produce identical output. They differ in how they treat an
// undersized dst, see the individual implementations.
type Engine interface {
	Encode(dst, src []byte) (int, error)
}

var (
	_ Engine = NaiveEngine{}
	_ Engine = UnrolledEngine{}
)

// NaiveEngine walks src one byte at a time with a small bit carry and checks
// bounds on every write. It is the package level Encode.
type NaiveEngine struct{}

// Encode is the package level Encode, failing on the first out of bounds write.
func (NaiveEngine) Encode(dst, src []byte) (int, error) {
	return Encode(dst, src)
}

// UnrolledEngine converts src five bytes at a time into eight symbols.
//
// Unlike NaiveEngine it validates the capacity of dst before writing
// anything: when dst is too short it returns 0 and ErrInvalidOutputLength and
// dst is left untouched.
type UnrolledEngine struct{}

// Encode writes all of src or, when dst is too short, nothing at all.
func (UnrolledEngine) Encode(dst, src []byte) (int, error) {
	n := len(src)
	if n == 0 {
		return 0, nil
	}

	m := EncodedLength(n)
	if m < 0 || len(dst) < m {
		return 0, ErrInvalidOutputLength
	}

	encodeUnrolled(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), n)

	return m, nil
}

// encodeUnrolled treats each 5 byte group as a little endian 40 bit value and
// emits it as eight 5 bit symbols, lowest bits first.
//
// invariants:
//
// - n > 0
//
// - dstPtr has room for EncodedLength(n) bytes
func encodeUnrolled(dstPtr, srcPtr unsafe.Pointer, n int) {

	for range n / 5 {
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))
		b2 := *(*byte)(unsafe.Add(srcPtr, 2))
		b3 := *(*byte)(unsafe.Add(srcPtr, 3))
		b4 := *(*byte)(unsafe.Add(srcPtr, 4))

		*(*byte)(dstPtr) = encodeTab[b0&31]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0>>5)|(b1<<3))&31]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1>>2)&31]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[((b1>>7)|(b2<<1))&31]
		*(*byte)(unsafe.Add(dstPtr, 4)) = encodeTab[((b2>>4)|(b3<<4))&31]
		*(*byte)(unsafe.Add(dstPtr, 5)) = encodeTab[(b3>>1)&31]
		*(*byte)(unsafe.Add(dstPtr, 6)) = encodeTab[((b3>>6)|(b4<<2))&31]
		*(*byte)(unsafe.Add(dstPtr, 7)) = encodeTab[b4>>3]

		srcPtr = unsafe.Add(srcPtr, 5)
		dstPtr = unsafe.Add(dstPtr, 8)
	}

	// Tail (no padding).
	switch n % 5 {
	case 1:
		b0 := *(*byte)(srcPtr)

		*(*byte)(dstPtr) = encodeTab[b0&31]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[b0>>5]
	case 2:
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))

		*(*byte)(dstPtr) = encodeTab[b0&31]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0>>5)|(b1<<3))&31]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1>>2)&31]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[b1>>7]
	case 3:
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))
		b2 := *(*byte)(unsafe.Add(srcPtr, 2))

		*(*byte)(dstPtr) = encodeTab[b0&31]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0>>5)|(b1<<3))&31]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1>>2)&31]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[((b1>>7)|(b2<<1))&31]
		*(*byte)(unsafe.Add(dstPtr, 4)) = encodeTab[b2>>4]
	case 4:
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))
		b2 := *(*byte)(unsafe.Add(srcPtr, 2))
		b3 := *(*byte)(unsafe.Add(srcPtr, 3))

		*(*byte)(dstPtr) = encodeTab[b0&31]
		*(*byte)(unsafe.Add(dstPtr, 1)) = encodeTab[((b0>>5)|(b1<<3))&31]
		*(*byte)(unsafe.Add(dstPtr, 2)) = encodeTab[(b1>>2)&31]
		*(*byte)(unsafe.Add(dstPtr, 3)) = encodeTab[((b1>>7)|(b2<<1))&31]
		*(*byte)(unsafe.Add(dstPtr, 4)) = encodeTab[((b2>>4)|(b3<<4))&31]
		*(*byte)(unsafe.Add(dstPtr, 5)) = encodeTab[(b3>>1)&31]
		*(*byte)(unsafe.Add(dstPtr, 6)) = encodeTab[b3>>6]
	}
}
