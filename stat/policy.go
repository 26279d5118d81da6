package stat

import (
	"fmt"
	"strings"
)

// MedianPolicy picks the median of an even-length sample.
type MedianPolicy string

const (
	MedianLower   MedianPolicy = "lower"
	MedianUpper   MedianPolicy = "upper"
	MedianAverage MedianPolicy = "average"
)

func ParseMedianPolicy(s string) (MedianPolicy, error) {
	switch p := MedianPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return MedianLower, nil
	case MedianLower, MedianUpper, MedianAverage:
		return p, nil
	default:
		return "", fmt.Errorf("unknown median policy: %q", s)
	}
}

func (p MedianPolicy) String() string {
	if p == "" {
		return string(MedianLower)
	}

	return string(p)
}
