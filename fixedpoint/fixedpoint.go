// Package fixedpoint implements signed fixed-point encoding of real values
// into fixed-width binary strings, together with the unsigned helpers used
// to pack oracle indices. Values are scaled by 2^fracBits, rounded to the
// nearest integer and stored in two's complement, most significant bit first.
package fixedpoint

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Error types for the fixedpoint package.
var (
	// ErrOverflow is returned when a value cannot be represented in the
	// requested width. Values outside range always fail, never clamp.
	ErrOverflow = errors.New("value outside representable fixed-point range")

	// ErrWidth is returned when a bit-width parameter is invalid.
	ErrWidth = errors.New("invalid bit width")
)

// MaxTotalBits is the widest supported encoding. Keeping the scaled integer
// within int64 bounds the widths well past anything the synthesis layer can
// enumerate anyway.
const MaxTotalBits = 63

// Bits returns the number of bits needed to index a domain of size n,
// i.e. max(1, ceil(log2(n))). Every index 0 <= i < n fits in Bits(n) bits.
func Bits(n int) int {
	bits := 1
	for (1 << bits) < n {
		bits++
	}
	return bits
}

func checkWidths(totalBits, fracBits int) error {
	if totalBits < 1 || totalBits > MaxTotalBits {
		return fmt.Errorf("%w: totalBits=%d, want 1..%d", ErrWidth, totalBits, MaxTotalBits)
	}
	if fracBits < 0 || fracBits > totalBits {
		return fmt.Errorf("%w: fracBits=%d, want 0..%d", ErrWidth, fracBits, totalBits)
	}
	return nil
}

// Encode converts value into a signed fixed-point bit string of length
// totalBits with fracBits fractional bits. The scaled integer must fit the
// signed two's-complement range [-2^(totalBits-1), 2^(totalBits-1)-1].
func Encode(value float64, totalBits, fracBits int) (string, error) {
	if err := checkWidths(totalBits, fracBits); err != nil {
		return "", err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("%w: value %v is not finite", ErrOverflow, value)
	}
	scale := float64(uint64(1) << uint(fracBits))
	scaledF := math.Round(value * scale)
	minInt := -(int64(1) << uint(totalBits-1))
	maxInt := (int64(1) << uint(totalBits-1)) - 1
	if scaledF < float64(minInt) || scaledF > float64(maxInt) {
		return "", fmt.Errorf("%w: %v overflows [%v, %v] for totalBits=%d fracBits=%d",
			ErrOverflow, value, float64(minInt)/scale, float64(maxInt)/scale, totalBits, fracBits)
	}
	scaled := int64(scaledF)
	// Two's complement representation, masked down to totalBits.
	mask := uint64(1)<<uint(totalBits) - 1
	raw := uint64(scaled) & mask

	return fmt.Sprintf("%0*b", totalBits, raw), nil
}

// Decode is the exact inverse of Encode: it interprets bits as a
// two's-complement integer and divides by 2^fracBits. Round trip holds to
// within half an LSB: |Decode(Encode(v)) - v| <= 1/2^(fracBits+1).
func Decode(bits string, fracBits int) (float64, error) {
	totalBits := len(bits)
	if err := checkWidths(totalBits, fracBits); err != nil {
		return 0, err
	}
	raw, err := strconv.ParseUint(bits, 2, 64)
	if err != nil {
		return 0, fmt.Errorf("parse fixed-point bits: %w", err)
	}
	mask := uint64(1)<<uint(totalBits) - 1
	if bits[0] == '1' {
		// Sign-extend before reinterpreting as int64.
		raw |= ^mask
	}
	scale := float64(uint64(1) << uint(fracBits))

	return float64(int64(raw)) / scale, nil
}

// EncodeUint converts an unsigned index into an MSB-first bit string of
// exactly nBits. Used to build packed truth-table keys.
func EncodeUint(value, nBits int) (string, error) {
	if nBits < 1 || nBits > MaxTotalBits {
		return "", fmt.Errorf("%w: nBits=%d, want 1..%d", ErrWidth, nBits, MaxTotalBits)
	}
	if value < 0 || value >= 1<<uint(nBits) {
		return "", fmt.Errorf("%w: value %d cannot fit in %d bits", ErrOverflow, value, nBits)
	}

	return fmt.Sprintf("%0*b", nBits, value), nil
}

// DecodeUint parses an unsigned MSB-first bit string.
func DecodeUint(bits string) (int, error) {
	v, err := strconv.ParseUint(bits, 2, 63)
	if err != nil {
		return 0, fmt.Errorf("parse unsigned bits: %w", err)
	}

	return int(v), nil
}
