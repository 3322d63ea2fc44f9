package templog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ExpectedFormat is the line layout writers of the log must follow.
const ExpectedFormat = "date;location;temperature"

const fieldCount = 3

// Reading is one parsed temperature observation. Timestamp and Location are
// kept as written in the log; Temperature is the parsed value in Celsius.
type Reading struct {
	Timestamp   string
	Location    string
	Temperature float64
}

// Display formats the reading for the temperature display.
func (r Reading) Display() string {
	return fmt.Sprintf("%s: %.1f °C (as of %s)", r.Location, r.Temperature, r.Timestamp)
}

// ErrEmptyLog reports a log file with no readings in it.
var ErrEmptyLog = errors.New("log file contains no readings")

// MalformedLineError reports a line that does not split into the expected
// three fields.
type MalformedLineError struct {
	Line   string
	Fields int
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed log line %q: want %s, got %d fields", e.Line, ExpectedFormat, e.Fields)
}

// InvalidTemperatureError reports a temperature field that is not numeric.
type InvalidTemperatureError struct {
	Value string
}

func (e *InvalidTemperatureError) Error() string {
	return fmt.Sprintf("invalid temperature value %q", e.Value)
}

// FileAccessError reports a log file that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("read log %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// Latest reads the last non-blank line of the file at path and parses it
// into a Reading. The file is never modified.
func Latest(path string) (Reading, error) {
	line, err := lastLine(path)
	if err != nil {
		return Reading{}, err
	}
	return Parse(line)
}

// Parse splits a log line into a Reading. The field-count check runs before
// the numeric check, so a line like ";;" passes the shape test and fails on
// its empty temperature field.
func Parse(line string) (Reading, error) {
	parts := strings.Split(line, ";")
	if len(parts) != fieldCount {
		return Reading{}, &MalformedLineError{Line: line, Fields: len(parts)}
	}
	temp, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return Reading{}, &InvalidTemperatureError{Value: parts[2]}
	}
	return Reading{Timestamp: parts[0], Location: parts[1], Temperature: temp}, nil
}

// lastLine scans the whole file and keeps the final line that is non-empty
// after trimming. Log files here are small, so a single forward pass beats
// reverse seeking.
func lastLine(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}
	defer file.Close()

	var last string
	found := false
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(line) != "" {
			last = line
			found = true
		}
	}
	if err := scanner.Err(); err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}
	if !found {
		return "", ErrEmptyLog
	}
	return last, nil
}
