// An unpadded base32 implementation that packs bits least-significant first.

package base32lsb

const (
	// symbolBits is the number of input bits carried by one output symbol.
	symbolBits = 5

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
)

// encodeTab maps a 5-bit value to its output symbol.
var encodeTab = func() [32]byte {
	var enc [32]byte

	for i := range alphabet {
		enc[i] = alphabet[i]
	}

	return enc
}()

// maskTab[k] has the low k bits set.
var maskTab = [9]byte{0x00, 0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F, 0xFF}
