package conv

const hexLower = "0123456789abcdef"

// Hex writes n in lowercase hex without 0x and without leading zeros.
// buf should be length >= 16.
func Hex(buf []byte, n uint64) []byte {
	i := len(buf)
	if i == 0 {
		return buf[:0]
	}
	if n == 0 {
		i--
		buf[i] = '0'
		return buf[i:]
	}
	for n > 0 && i > 0 {
		i--
		buf[i] = hexLower[n&0xF]
		n >>= 4
	}
	return buf[i:]
}

// Byte2Hex writes b as exactly two lowercase hex digits.
func Byte2Hex(buf []byte, b byte) []byte {
	if len(buf) < 2 {
		return buf[:0]
	}
	i := len(buf) - 2
	buf[i] = hexLower[b>>4]
	buf[i+1] = hexLower[b&0xF]
	return buf[i:]
}
