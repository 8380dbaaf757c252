package lang

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/roman-mazur/interactive-canvas/painter"
)

// Parse parses a single command line into a painter.Operation.
// Command names are case-insensitive.
func Parse(commandLine string) (painter.Operation, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil, errors.New("empty command")
	}

	command := strings.ToLower(fields[0])
	args := fields[1:]
	if len(args) != 0 {
		return nil, errors.Errorf("%s command takes no arguments", command)
	}

	switch command {
	case "red", "green", "blue":
		c, err := painter.ParseColor(command)
		if err != nil {
			return nil, err
		}
		return painter.SetColor{Color: c}, nil
	case "press":
		return painter.Press{}, nil
	case "update":
		return painter.UpdateOp{}, nil
	default:
		return nil, errors.Errorf("unknown command: %s", command)
	}
}

// SyntaxError lists the lines ParseCommands could not parse.
type SyntaxError struct {
	Problems []string
}

func (e *SyntaxError) Error() string {
	return "errors parsing commands:\n" + strings.Join(e.Problems, "\n")
}

// ParseCommands parses one command per line. Blank lines are skipped.
// Every bad line is reported in a *SyntaxError; the valid operations are
// returned as well.
func ParseCommands(r io.Reader) ([]painter.Operation, error) {
	scanner := bufio.NewScanner(r)
	var ops []painter.Operation
	var problems []string

	for scanner.Scan() {
		commandLine := scanner.Text()
		if strings.TrimSpace(commandLine) == "" {
			continue
		}
		op, err := Parse(commandLine)
		if err != nil {
			problems = append(problems, "line \""+commandLine+"\": "+err.Error())
			continue
		}
		ops = append(ops, op)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading commands")
	}
	if len(problems) > 0 {
		return ops, &SyntaxError{Problems: problems}
	}
	return ops, nil
}
