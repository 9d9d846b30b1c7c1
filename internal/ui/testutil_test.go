package ui

import (
	"regexp"
	"strings"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// plainLines strips ANSI codes and splits into lines.
func plainLines(s string) []string {
	return strings.Split(stripANSI(s), "\n")
}
