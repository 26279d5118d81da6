package helper

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

func Last(input []uint64, count int) []uint64 {
	return input[Max(0, len(input)-count):]
}

func Uint64SliceToString(input []uint64) string {
	b := strings.Builder{}

	for _, v := range input {
		if b.Len() > 0 {
			b.WriteString(", ")
		}

		b.WriteString(strconv.FormatUint(v, 10))
	}

	return b.String()
}

// ParseUints reads non-negative integers separated by whitespace or commas.
func ParseUints(raw string) ([]uint64, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	result := make([]uint64, 0, len(fields))

	for _, f := range fields {
		n, err := ParseUint(f)
		if err != nil {
			return nil, err
		}

		result = append(result, n)
	}

	return result, nil
}

func ParseUint(raw string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("value is not a non-negative integer: %q", raw)
	}

	return n, nil
}
