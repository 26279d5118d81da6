package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/ryanuber/columnize"

	"github.com/AirHelp/samplestats/helper"
	"github.com/AirHelp/samplestats/stat"
)

// Available text styles
var (
	Bold    = color.New(color.Bold).SprintFunc()
	Green   = color.New(color.FgGreen).SprintFunc()
	Yellow  = color.New(color.FgYellow).SprintFunc()
	Magenta = color.New(color.FgMagenta).SprintFunc()
)

type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Print writes the sorted sample followed by mean, median and mode.
func (p *Printer) Print(s stat.Summary) error {
	if _, err := fmt.Fprintln(p.out, Bold("Sorted sample: ", "["+helper.Uint64SliceToString(s.Sorted)+"]")); err != nil {
		return err
	}

	lines := []string{
		Bold("Mean") + " | " + Green(strconv.FormatUint(s.Mean, 10)),
		Bold("Median") + " | " + Yellow(strconv.FormatUint(s.Median, 10)),
		Bold("Mode") + " | " + Magenta(strconv.FormatUint(s.Mode, 10)),
	}

	_, err := fmt.Fprintln(p.out, columnize.SimpleFormat(lines))

	return err
}
