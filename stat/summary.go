package stat

type Summary struct {
	Count     int
	Sum       uint64
	Mean      uint64
	Median    uint64
	Mode      uint64
	ModeCount int

	Policy MedianPolicy
	Sorted []uint64
}

// Summarize computes every statistic of sample in one call, sorting it once.
func Summarize(sample []uint64, policy MedianPolicy) (Summary, error) {
	if len(sample) == 0 {
		return Summary{}, ErrEmptyInput
	}

	sorted := Sorted(sample)

	mean, err := Mean(sorted)
	if err != nil {
		return Summary{}, err
	}

	mode, modeCount, err := modeWithCount(sorted)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Count:     len(sorted),
		Sum:       Sum(sorted),
		Mean:      mean,
		Median:    medianOfSorted(sorted, policy),
		Mode:      mode,
		ModeCount: modeCount,
		Policy:    policy,
		Sorted:    sorted,
	}, nil
}
