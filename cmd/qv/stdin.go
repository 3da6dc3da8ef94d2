package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

func stdinIsPiped() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// readStdinTags reads whitespace-separated tags from stdin, any number
// per line. Returns nil when stdin is a terminal.
func readStdinTags() ([]string, error) {
	if !stdinIsPiped() {
		return nil, nil
	}
	var tags []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		tags = append(tags, strings.Fields(sc.Text())...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}
