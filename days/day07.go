// SPDX-License-Identifier: MIT
package days

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/QDoussot/advent-of-code-2022/parse"
	"github.com/QDoussot/advent-of-code-2022/problem"
)

const (
	diskSpace     = 70000000
	requiredSpace = 30000000
	smallDirLimit = 100000

	rootDir   = "/"
	parentDir = ".."
)

type (
	// command is a shell command: "ls" or "cd <dir>".
	command struct {
		cd  bool
		dir string
	}

	dirMarker struct{}

	// entry is a line of ls output: a directory when its size is absent.
	entry = parse.Pair[parse.Choice[dirMarker, uint64], string]

	// session is a command with its output.
	session = parse.Pair[command, []entry]

	directory struct {
		dirs  map[string]*directory
		files map[string]uint64
	}

	fileSystem struct {
		root *directory
	}
)

var errUnknownCommand = errors.New("unknown command")

var (
	entryGrammar = parse.Couple(
		parse.Either(parse.Enum(map[string]dirMarker{"dir": {}}), parse.Uint[uint64]()),
		parse.Space,
		parse.String(),
		parse.SplitFirst,
	)

	terminalGrammar = parse.Seq(
		parse.Couple(parse.Text[command](), parse.Line, parse.Seq(entryGrammar, parse.Line, parse.SkipFinalEmpty), parse.SplitFirst),
		parse.Separator("$ "),
		parse.SkipEmpty,
	)
)

// UnmarshalText parses a command line without its prompt.
func (c *command) UnmarshalText(text []byte) error {
	name, arg, found := strings.Cut(string(text), " ")
	switch {
	case name == "ls" && !found:
		*c = command{}
	case name == "cd" && found && arg != "":
		*c = command{cd: true, dir: arg}
	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, text)
	}

	return nil
}

func newDirectory() *directory {
	return &directory{dirs: make(map[string]*directory), files: make(map[string]uint64)}
}

func parseFileSystem(lines []string) (problem.Problem, error) {
	// The final command needs its line separator.
	sessions, err := parse.Parse(terminalGrammar, append(problem.Join(lines), '\n'))
	if err != nil {
		return nil, err
	}

	return explore(sessions)
}

// explore rebuilds the file system browsed by the sessions.
func explore(sessions []session) (problem.Problem, error) {
	root := newDirectory()
	path := []*directory{root}

	for index, s := range sessions {
		cwd := path[len(path)-1]

		if !s.Left.cd {
			for _, e := range s.Right {
				if size, ok := e.Left.Right(); ok {
					cwd.files[e.Right] = size
					continue
				}
				if _, ok := cwd.dirs[e.Right]; !ok {
					cwd.dirs[e.Right] = newDirectory()
				}
			}
			continue
		}

		if len(s.Right) > 0 {
			return nil, problem.Unverified("command %d: cd has an output", index+1)
		}

		switch s.Left.dir {
		case rootDir:
			path = path[:1]
		case parentDir:
			if len(path) == 1 {
				return nil, problem.Unverified("command %d: root has no parent", index+1)
			}
			path = path[:len(path)-1]
		default:
			dir, ok := cwd.dirs[s.Left.dir]
			if !ok {
				dir = newDirectory()
				cwd.dirs[s.Left.dir] = dir
			}
			path = append(path, dir)
		}
	}

	return &fileSystem{root: root}, nil
}

// sizes obtains the total size of d, appending the size of d & its descendants to all.
func (d *directory) sizes(all *[]uint64) (total uint64) {
	for _, size := range d.files {
		total += size
	}
	for _, dir := range d.dirs {
		total += dir.sizes(all)
	}
	*all = append(*all, total)

	return
}

func (fs *fileSystem) PartOne() (string, error) {
	var all []uint64
	fs.root.sizes(&all)

	var sum uint64
	for _, size := range all {
		if size < smallDirLimit {
			sum += size
		}
	}

	return strconv.FormatUint(sum, 10), nil
}

func (fs *fileSystem) PartTwo() (string, error) {
	var all []uint64
	used := fs.root.sizes(&all)
	if used > diskSpace {
		return "", problem.Unfulfilled("%d used out of a %d disk", used, diskSpace)
	}

	free := diskSpace - used
	if free >= requiredSpace {
		return "0", nil
	}

	missing := requiredSpace - free
	smallest := used
	for _, size := range all {
		if size > missing && size < smallest {
			smallest = size
		}
	}
	if smallest <= missing {
		return "", problem.Unfulfilled("no directory frees %d", missing)
	}

	return strconv.FormatUint(smallest, 10), nil
}
