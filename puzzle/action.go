package puzzle

import (
	"fmt"
	"strings"
)

// Action moves the blank one cell in a direction.
type Action uint8

const (
	Up Action = iota
	Down
	Left
	Right
)

// allActions fixes the order in which moves are generated.
var allActions = [...]Action{Up, Down, Left, Right}

var actionDelta = [...]struct{ row, col int }{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

func (a Action) String() string {
	switch a {
	case Up:
		return "u"
	case Down:
		return "d"
	case Left:
		return "l"
	case Right:
		return "r"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// MarshalText encodes the action as its one-letter label.
func (a Action) MarshalText() ([]byte, error) {
	if a > Right {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAction, uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText accepts any label ParseAction accepts.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAction accepts u/d/l/r or up/down/left/right in any case.
func ParseAction(label string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "u", "up":
		return Up, nil
	case "d", "down":
		return Down, nil
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, label)
	}
}

// ParseActions splits a comma or space separated list of action labels.
func ParseActions(list string) ([]Action, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' || r == '\n' })
	actions := make([]Action, 0, len(fields))
	for _, field := range fields {
		action, err := ParseAction(field)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}
