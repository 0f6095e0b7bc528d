package xmlevents

import "github.com/klauspost/cpuid/v2"

// hasWideTextScan mirrors gosaxml's canUseSSE gate: that decoder used it to
// pick between an SSE4.2-accelerated decodeTextSSE and a byte-at-a-time
// decodeTextGeneric. This port has no assembly kernel for this layout in
// the retrieved reference material, so decodeText's wide path is the
// portable SWAR ("SIMD within a register") equivalent gated on the same
// capability check gosaxml already proved out, rather than an unconditional
// byte loop dressed up with an unused probe.
var hasWideTextScan = cpuid.CPU.Has(cpuid.SSE42) && cpuid.CPU.Has(cpuid.BMI1)

const (
	swarLSB = 0x0101010101010101
	swarMSB = 0x8080808080808080
	wideLt  = 0x3C3C3C3C3C3C3C3C // eight copies of '<'
)

// loadWord reads 8 bytes from s starting at i as a little-endian uint64
// without converting the substring to a []byte first, so it never
// allocates.
func loadWord(s string, i int) uint64 {
	return uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 | uint64(s[i+3])<<24 |
		uint64(s[i+4])<<32 | uint64(s[i+5])<<40 | uint64(s[i+6])<<48 | uint64(s[i+7])<<56
}

// scanTextWide advances past pos eight bytes at a time looking for '<',
// using the classic SWAR haszero trick to test a whole word at once. It
// falls back to a byte-at-a-time scan for the final partial word.
func scanTextWide(s string, pos int) int {
	n := len(s)
	i := pos
	for i+8 <= n {
		x := loadWord(s, i) ^ wideLt
		if (x-swarLSB)&^x&swarMSB != 0 {
			break
		}
		i += 8
	}
	for i < n && s[i] != '<' {
		i++
	}
	return i
}
