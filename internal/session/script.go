package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danieljhkim/paintbox/internal/layer"
)

// Script command errors.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownLayer   = errors.New("unknown layer")
	ErrBadArgs        = errors.New("bad arguments")
)

// RunScript executes a newline-separated command script against the
// session. Blank lines and lines starting with '#' are skipped.
//
// Commands:
//
//	draw X Y LAYER    paint LAYER around (X, Y) with the current brush
//	erase X Y LAYER   erase LAYER around (X, Y) with the current brush
//	special           trigger every cell's special effect
//	undo              reverse the last action
//	redo              re-apply the last undone action
//	brush + | -       grow or shrink the brush
//	replay            start playback and run it to completion
func (s *Session) RunScript(r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if err := s.runCommand(sc.Text()); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return sc.Err()
}

func (s *Session) runCommand(text string) error {
	fields := strings.Fields(text)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	switch fields[0] {
	case "draw", "erase":
		x, y, l, err := s.parseCellArgs(fields)
		if err != nil {
			return err
		}
		if fields[0] == "draw" {
			s.Draw(x, y, l)
		} else {
			s.Erase(x, y, l)
		}
		return nil
	case "special":
		s.Special()
		return nil
	case "undo":
		s.Undo()
		return nil
	case "redo":
		s.Redo()
		return nil
	case "brush":
		if len(fields) != 2 {
			return fmt.Errorf("%w: brush wants + or -", ErrBadArgs)
		}
		switch fields[1] {
		case "+":
			s.BrushBigger()
		case "-":
			s.BrushSmaller()
		default:
			return fmt.Errorf("%w: brush wants + or -, got %q", ErrBadArgs, fields[1])
		}
		return nil
	case "replay":
		s.StartReplay()
		for !s.StepReplay() {
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
}

func (s *Session) parseCellArgs(fields []string) (x, y int, l layer.Layer, err error) {
	if len(fields) != 4 {
		return 0, 0, nil, fmt.Errorf("%w: %s wants X Y LAYER", ErrBadArgs, fields[0])
	}
	x, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: x %q", ErrBadArgs, fields[1])
	}
	y, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: y %q", ErrBadArgs, fields[2])
	}
	if !s.grid.InBounds(x, y) {
		return 0, 0, nil, fmt.Errorf("%w: (%d, %d) outside %dx%d grid",
			ErrBadArgs, x, y, s.grid.Width(), s.grid.Height())
	}
	l = s.registry.ByName(fields[3])
	if l == nil {
		return 0, 0, nil, fmt.Errorf("%w: %q", ErrUnknownLayer, fields[3])
	}
	return x, y, l, nil
}
