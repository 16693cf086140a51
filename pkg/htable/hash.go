package htable

// wordToInt turns a key into the unsigned value used for indexing. It uses
// result = c + 31*result over the bytes of the key with 32-bit wraparound.
// Bytes are widened as signed chars, so keys containing bytes >= 0x80 hash
// to the same values a signed-char C implementation would produce.
func wordToInt(word string) uint32 {
	var result uint32
	for i := 0; i < len(word); i++ {
		result = uint32(int8(word[i])) + 31*result
	}
	return result
}
