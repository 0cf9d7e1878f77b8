// Package level loads puzzle definitions from TOML level files.
//
// A level file holds any number of [[level]] tables. Each level names its
// pieces with one symbol per atom (index = piece identity, the first atom is
// the reference piece) and supplies the board either as ASCII diagrams or as
// PNG images:
//
//	[[level]]
//	name = "Water"
//	atoms = ["O", "H", "h"]
//	diagram = """
//	#######
//	#O...H#
//	#..#..#
//	#h....#
//	#######
//	"""
//	solution = """
//	.......
//	..HOh..
//	"""
//
// In ASCII diagrams '#' marks a wall and every other character is floor.
// Image levels use diagram_path, solution_path and one [r, g, b] colour per
// atom; black pixels are walls.
package level

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"

	"github.com/slideworks/atomix/grid"
)

var (
	ErrNoLevels        = errors.New("level: no levels were found")
	ErrUnknownLevel    = errors.New("level: unknown level")
	ErrNoAtoms         = errors.New("level: level declares no atoms")
	ErrBadAtom         = errors.New("level: atom symbol must be a single character")
	ErrDuplicateAtom   = errors.New("level: atom appears more than once")
	ErrMissingAtom     = errors.New("level: atom is missing from diagram")
	ErrNoDiagram       = errors.New("level: level has no diagram")
	ErrRaggedDiagram   = errors.New("level: diagram rows have different lengths")
	ErrDiagramMismatch = errors.New("level: solution size differs from diagram")
)

// Expectation values for Level.Expect.
const (
	ExpectSolved     = "solved"
	ExpectUnsolvable = "unsolvable"
)

// File is a parsed level file.
type File struct {
	Levels []Level `toml:"level"`

	dir string
}

// Level is one puzzle definition as written in the file.
type Level struct {
	Name  string   `toml:"name"`
	Atoms []string `toml:"atoms"`

	Diagram  string `toml:"diagram,omitempty"`
	Solution string `toml:"solution,omitempty"`

	DiagramPath  string     `toml:"diagram_path,omitempty"`
	SolutionPath string     `toml:"solution_path,omitempty"`
	Colors       [][3]uint8 `toml:"colors,omitempty"`

	// Expect is optional metadata ("solved" or "unsolvable") used by tests.
	Expect string `toml:"expect,omitempty"`

	dir string
}

// Puzzle is a level ready to be searched.
type Puzzle struct {
	Name   string
	Grid   *grid.Grid
	Start  grid.Configuration
	Target grid.Configuration
}

func parseFile(r io.Reader) (*File, error) {
	var out File
	_, err := toml.NewDecoder(r).Decode(&out)
	return &out, err
}

// LoadFile reads a level file. Image paths inside it are resolved relative to
// the file's directory.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lf, err := parseFile(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(lf.Levels) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, path)
	}
	lf.dir = filepath.Dir(path)
	for i := range lf.Levels {
		lf.Levels[i].dir = lf.dir
	}
	return lf, nil
}

// Names returns level names in file order.
func (f *File) Names() []string {
	return lo.Map(f.Levels, func(l Level, _ int) string { return l.Name })
}

func (f *File) Find(name string) (*Level, error) {
	for i := range f.Levels {
		if f.Levels[i].Name == name {
			return &f.Levels[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// Build converts the level into a grid and its start and target
// configurations.
func (l *Level) Build() (*Puzzle, error) {
	if err := l.checkAtoms(); err != nil {
		return nil, err
	}

	var (
		g      *grid.Grid
		start  grid.Configuration
		target grid.Configuration
		err    error
	)
	switch {
	case l.Diagram != "":
		g, start, target, err = l.buildASCII()
	case l.DiagramPath != "":
		g, start, target, err = l.buildImage()
	default:
		err = ErrNoDiagram
	}
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", l.Name, err)
	}
	return &Puzzle{
		Name:   l.Name,
		Grid:   g,
		Start:  start,
		Target: target,
	}, nil
}

func (l *Level) checkAtoms() error {
	if len(l.Atoms) == 0 {
		return fmt.Errorf("level %q: %w", l.Name, ErrNoAtoms)
	}
	for _, a := range l.Atoms {
		if len([]rune(a)) != 1 || a == "#" {
			return fmt.Errorf("level %q: %w: %q", l.Name, ErrBadAtom, a)
		}
	}
	if dups := lo.FindDuplicates(l.Atoms); len(dups) > 0 {
		return fmt.Errorf("level %q: %w: %v", l.Name, ErrDuplicateAtom, dups)
	}
	return nil
}

func (l *Level) resolve(p string) string {
	if filepath.IsAbs(p) || l.dir == "" {
		return p
	}
	return filepath.Join(l.dir, p)
}
