package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type opKind uint8

const (
	opInsert opKind = iota + 1
	opRemove
	opGet
	opDump
)

func (k opKind) String() string {
	switch k {
	case opInsert:
		return "insert"
	case opRemove:
		return "remove"
	case opGet:
		return "get"
	case opDump:
		return "dump"
	default:
		return "unknown"
	}
}

// op is a single line of a replay script.
type op struct {
	line  int
	kind  opKind
	key   int
	value string
}

var errBadScript = errors.New("bad script")

// readScript loads and parses the script at filename.
func readScript(fs FileSystem, filename string) ([]op, error) {
	fd, err := fs.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open script failed")
	}
	defer fd.Close()

	return parseScript(fd)
}

// parseScript reads one operation per line:
//
//	insert <key> <value...>
//	remove <key>
//	get <key>
//	dump
//
// Blank lines and lines starting with '#' are skipped.
func parseScript(r io.Reader) ([]op, error) {
	ops := make([]op, 0, 64)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		o, err := parseLine(lineNo, line)
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read script failed")
	}

	return ops, nil
}

func parseLine(lineNo int, line string) (op, error) {
	fields := strings.Fields(line)
	o := op{line: lineNo}

	switch strings.ToLower(fields[0]) {
	case "insert":
		o.kind = opInsert
		if len(fields) < 3 {
			return o, errors.Wrapf(errBadScript, "line %d: insert needs a key and a value", lineNo)
		}
		o.value = strings.Join(fields[2:], " ")
	case "remove":
		o.kind = opRemove
	case "get":
		o.kind = opGet
	case "dump":
		o.kind = opDump
		return o, nil
	default:
		return o, errors.Wrapf(errBadScript, "line %d: unknown operation %q", lineNo, fields[0])
	}

	if len(fields) < 2 {
		return o, errors.Wrapf(errBadScript, "line %d: %s needs a key", lineNo, o.kind)
	}
	key, err := strconv.Atoi(fields[1])
	if err != nil {
		return o, errors.Wrapf(errBadScript, "line %d: key %q is not an integer", lineNo, fields[1])
	}
	o.key = key

	return o, nil
}

// scriptExists is used by the replay command to fail early with a clear
// message instead of an open error.
func scriptExists(fs FileSystem, filename string) (bool, error) {
	return afero.Exists(fs, filename)
}
