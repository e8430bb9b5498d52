// Package conv formats integers into caller-provided buffers without
// allocating or pulling in fmt/strconv.
package conv

// Utoa writes n in base 10 at the end of buf and returns the used tail.
// buf should be length >= 20.
func Utoa(buf []byte, n uint64) []byte {
	i := len(buf)
	for i > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return buf[i:]
}

// Itoa is Utoa with a leading '-' for negative n. buf should be length >= 20.
func Itoa(buf []byte, n int64) []byte {
	if n >= 0 {
		return Utoa(buf, uint64(n))
	}
	if len(buf) == 0 {
		return buf
	}
	s := Utoa(buf[1:], uint64(-(n + 1))+1)
	i := len(buf) - len(s) - 1
	buf[i] = '-'
	return buf[i:]
}
