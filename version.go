package main

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed version.txt
var version string

func versionString() string {
	return fmt.Sprintf("Samplestats version: %v", strings.TrimSpace(version))
}
