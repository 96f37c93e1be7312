// Package conv formats integers into caller-owned byte slices without fmt or
// strconv, so rendering a reading never allocates.
package conv

const hexd = "0123456789ABCDEF"

// AppendUint appends the base-10 form of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	var tmp [20]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return append(dst, tmp[i:]...)
}

// AppendInt appends the base-10 form of n, with a leading '-' if negative.
func AppendInt(dst []byte, n int64) []byte {
	if n < 0 {
		// -n overflows for MinInt64; the uint64 conversion still yields its magnitude.
		return AppendUint(append(dst, '-'), uint64(-n))
	}
	return AppendUint(dst, uint64(n))
}

// AppendPadded appends n zero-padded to at least width digits.
func AppendPadded(dst []byte, n uint64, width int) []byte {
	var tmp [20]byte
	d := AppendUint(tmp[:0], n)
	for i := len(d); i < width; i++ {
		dst = append(dst, '0')
	}
	return append(dst, d...)
}

// AppendHex8 appends "0x" and two uppercase hex digits.
func AppendHex8(dst []byte, b byte) []byte {
	return append(dst, '0', 'x', hexd[b>>4], hexd[b&0xF])
}
