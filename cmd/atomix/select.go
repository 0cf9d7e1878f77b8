package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/slideworks/atomix/level"
)

var errBadSelection = errors.New("not a valid level selection")

// loadPuzzle loads args[0] and builds the level named by args[1], or asks the
// user to pick one when no name was given.
func loadPuzzle(cmd *cobra.Command, args []string) (*level.Puzzle, error) {
	f, err := level.LoadFile(args[0])
	if err != nil {
		return nil, err
	}
	var l *level.Level
	if len(args) > 1 {
		l, err = f.Find(args[1])
	} else {
		l, err = selectLevel(cmd.InOrStdin(), cmd.OutOrStdout(), f)
	}
	if err != nil {
		return nil, err
	}
	return l.Build()
}

// selectLevel prints a numbered menu and reads the user's choice.
func selectLevel(in io.Reader, out io.Writer, f *level.File) (*level.Level, error) {
	fmt.Fprintln(out, "\nLevel selection")
	fmt.Fprintln(out)
	for i, name := range f.Names() {
		fmt.Fprintf(out, "   %d. %s\n", i+1, name)
	}
	fmt.Fprint(out, color.Green.Sprint("\n>> "))

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(f.Levels) {
		return nil, fmt.Errorf("%w: %q", errBadSelection, strings.TrimSpace(line))
	}
	return &f.Levels[n-1], nil
}
