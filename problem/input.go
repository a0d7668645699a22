// SPDX-License-Identifier: MIT
package problem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	// DefaultInputsDir is the directory holding the puzzle inputs.
	DefaultInputsDir = "inputs"

	exampleExt = ".example"
	maxLineLen = 1 << 20
)

// Input errors.
var (
	ErrCantOpenInput = errors.New("failed opening input file")
)

// InputPath obtains the path of a day's input, or of the day's example input.
func InputPath(dir string, day int, example bool) string {
	name := strconv.Itoa(day)
	if example {
		name += exampleExt
	}

	return filepath.Join(dir, name)
}

// ReadLines reads the lines of an input file.
func ReadLines(path string) (lines []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("%w %q: %w", ErrCantOpenInput, path, err)
		return
	}
	defer f.Close()

	return ScanLines(f)
}

// ScanLines reads lines from r, without their line endings.
//
// A leading byte order mark is discarded & UTF-16 input is transcoded to UTF-8.
func ScanLines(r io.Reader) (lines []string, err error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLen)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()

	return
}

// Join the lines of an input with newline bytes.
func Join(lines []string) []byte { return []byte(strings.Join(lines, "\n")) }
