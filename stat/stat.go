package stat

import (
	"errors"
	"slices"
)

var ErrEmptyInput = errors.New("sample is empty")

// Mean returns sum/count using truncating integer division.
// The sum is accumulated in uint64, callers must keep it within that range.
func Mean(sample []uint64) (uint64, error) {
	if len(sample) == 0 {
		return 0, ErrEmptyInput
	}

	return Sum(sample) / uint64(len(sample)), nil
}

func Sum(sample []uint64) uint64 {
	var sum uint64

	for _, n := range sample {
		sum += n
	}

	return sum
}

// Median is MedianWith using MedianLower for even-length samples.
func Median(sample []uint64) (uint64, error) {
	return MedianWith(sample, MedianLower)
}

// MedianWith sorts a copy of sample and returns its middle element.
// Odd-length samples always yield the element at index len/2, policy only
// decides between the two middle elements of an even-length sample.
func MedianWith(sample []uint64, policy MedianPolicy) (uint64, error) {
	if len(sample) == 0 {
		return 0, ErrEmptyInput
	}

	return medianOfSorted(Sorted(sample), policy), nil
}

func medianOfSorted(sorted []uint64, policy MedianPolicy) uint64 {
	l := len(sorted)

	if l%2 == 1 {
		return sorted[l/2]
	}

	lower, upper := sorted[l/2-1], sorted[l/2]

	switch policy {
	case MedianUpper:
		return upper
	case MedianAverage:
		return lower + (upper-lower)/2
	default:
		return lower
	}
}

// Mode returns the most frequent value. When several values share the highest
// count the smallest of them is returned.
func Mode(sample []uint64) (uint64, error) {
	value, _, err := modeWithCount(sample)
	return value, err
}

func modeWithCount(sample []uint64) (uint64, int, error) {
	if len(sample) == 0 {
		return 0, 0, ErrEmptyInput
	}

	var (
		mode     uint64
		maxCount int
	)

	for value, count := range Frequencies(sample) {
		if count > maxCount || (count == maxCount && value < mode) {
			mode = value
			maxCount = count
		}
	}

	return mode, maxCount, nil
}

// Frequencies counts occurrences of every distinct value in sample.
func Frequencies(sample []uint64) map[uint64]int {
	counts := make(map[uint64]int, len(sample))

	for _, n := range sample {
		counts[n]++
	}

	return counts
}

func Maximum(sample []uint64) (uint64, error) {
	if len(sample) == 0 {
		return 0, ErrEmptyInput
	}

	return slices.Max(sample), nil
}

func Minimum(sample []uint64) (uint64, error) {
	if len(sample) == 0 {
		return 0, ErrEmptyInput
	}

	return slices.Min(sample), nil
}

// Sorted returns an ascending copy of sample, leaving sample untouched.
func Sorted(sample []uint64) []uint64 {
	sorted := slices.Clone(sample)
	slices.Sort(sorted)

	return sorted
}
