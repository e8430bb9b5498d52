package conv

// Bin writes v in base 2 into buf, zero-padded to at least width digits.
// Returns the used tail of buf; buf should be length >= 64.
func Bin(buf []byte, v uint64, width int) []byte {
	i := len(buf)
	for (v != 0 || width > 0 || i == len(buf)) && i > 0 {
		i--
		buf[i] = '0' + byte(v&1)
		v >>= 1
		width--
	}
	return buf[i:]
}
