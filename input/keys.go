package input

import (
	"errors"
	"fmt"
)

// ErrUnknownKeyCode is returned when a key code outside the six bindable
// actions is passed to Keys.Get or Keys.Set.
var ErrUnknownKeyCode = errors.New("unknown key code")

// Key is a backend keyboard key identifier. The ebiten backend uses
// ebiten.Key values.
type Key int

// KeyCode names one of the six bindable actions.
type KeyCode int

const (
	KeyCodeLeft KeyCode = iota
	KeyCodeRight
	KeyCodeUp
	KeyCodeDown
	KeyCodeButton1
	KeyCodeButton2
)

// KeyCodes lists every bindable action in settings order.
var KeyCodes = []KeyCode{
	KeyCodeLeft,
	KeyCodeRight,
	KeyCodeUp,
	KeyCodeDown,
	KeyCodeButton1,
	KeyCodeButton2,
}

func (c KeyCode) String() string {
	switch c {
	case KeyCodeLeft:
		return "Left"
	case KeyCodeRight:
		return "Right"
	case KeyCodeUp:
		return "Up"
	case KeyCodeDown:
		return "Down"
	case KeyCodeButton1:
		return "Button 1"
	case KeyCodeButton2:
		return "Button 2"
	default:
		return fmt.Sprintf("KeyCode(%d)", int(c))
	}
}

// Keys is a player's keyboard binding record.
type Keys struct {
	Left    Key
	Right   Key
	Up      Key
	Down    Key
	Button1 Key
	Button2 Key
}

// Get returns the key bound to code. An unknown code returns 0 and an error
// wrapping ErrUnknownKeyCode.
func (k *Keys) Get(code KeyCode) (Key, error) {
	switch code {
	case KeyCodeLeft:
		return k.Left, nil
	case KeyCodeRight:
		return k.Right, nil
	case KeyCodeUp:
		return k.Up, nil
	case KeyCodeDown:
		return k.Down, nil
	case KeyCodeButton1:
		return k.Button1, nil
	case KeyCodeButton2:
		return k.Button2, nil
	default:
		return 0, fmt.Errorf("input: get key code %d: %w", int(code), ErrUnknownKeyCode)
	}
}

// Set binds key to code. An unknown code leaves k unchanged.
func (k *Keys) Set(key Key, code KeyCode) error {
	switch code {
	case KeyCodeLeft:
		k.Left = key
	case KeyCodeRight:
		k.Right = key
	case KeyCodeUp:
		k.Up = key
	case KeyCodeDown:
		k.Down = key
	case KeyCodeButton1:
		k.Button1 = key
	case KeyCodeButton2:
		k.Button2 = key
	default:
		return fmt.Errorf("input: set key code %d: %w", int(code), ErrUnknownKeyCode)
	}
	return nil
}
