package gomorekit

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Integer is satisfied by every signed and unsigned integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// FindMissingNumber returns the value of [0, n] that is absent from seq,
// where n is len(seq). An empty seq yields 0.
//
// The result is the difference between 0+1+...+n and the sum of seq. The
// input is not validated: if seq holds duplicates, out-of-range values or
// more than one gap, the difference is returned all the same and means
// nothing. Use FindMissingNumberStrict to reject such input.
//
// Sums wrap on overflow, so the answer is still exact whenever the missing
// value itself fits in E.
func FindMissingNumber[S ~[]E, E Integer](seq S) E {
	if len(seq) == 0 {
		return 0
	}

	var actual E
	for _, v := range seq {
		actual += v
	}
	return closedFormSum[E](len(seq)) - actual
}

// closedFormSum returns n*(n+1)/2 in E's wrapping arithmetic. The even factor
// is halved before the multiplication so the product never needs an extra bit.
func closedFormSum[E Integer](n int) E {
	if n%2 == 0 {
		return E(n/2) * E(n+1)
	}
	return E(n) * E((n+1)/2)
}

// FindMissingNumberStrict is FindMissingNumber for untrusted input. It fails
// with ErrOutOfRange if a value lies outside [0, n] and with ErrDuplicate if
// a value repeats. It also fails with ErrOutOfRange when the missing value
// is too large for E. When it succeeds the result equals FindMissingNumber(seq).
func FindMissingNumberStrict[S ~[]E, E Integer](seq S) (E, error) {
	n := len(seq)
	if n == 0 {
		return 0, nil
	}

	seen := bitset.New(uint(n + 1))
	for i, v := range seq {
		if v < 0 || uint64(v) > uint64(n) {
			return 0, fmt.Errorf("index %d: %w: %d not in [0, %d]", i, ErrOutOfRange, v, n)
		}
		if seen.Test(uint(v)) {
			return 0, fmt.Errorf("index %d: %w: %d", i, ErrDuplicate, v)
		}
		seen.Set(uint(v))
	}

	// n distinct values in n+1 slots leave exactly one bit clear.
	missing, _ := seen.NextClear(0)
	if uint64(E(missing)) != uint64(missing) {
		return 0, fmt.Errorf("%w: missing value %d does not fit in %T", ErrOutOfRange, missing, E(0))
	}
	return E(missing), nil
}
