package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/padcmd/input"
)

var keyNameMap = map[string]ebiten.Key{
	"A":            ebiten.KeyA,
	"B":            ebiten.KeyB,
	"C":            ebiten.KeyC,
	"D":            ebiten.KeyD,
	"E":            ebiten.KeyE,
	"F":            ebiten.KeyF,
	"G":            ebiten.KeyG,
	"H":            ebiten.KeyH,
	"I":            ebiten.KeyI,
	"J":            ebiten.KeyJ,
	"K":            ebiten.KeyK,
	"L":            ebiten.KeyL,
	"M":            ebiten.KeyM,
	"N":            ebiten.KeyN,
	"O":            ebiten.KeyO,
	"P":            ebiten.KeyP,
	"Q":            ebiten.KeyQ,
	"R":            ebiten.KeyR,
	"S":            ebiten.KeyS,
	"T":            ebiten.KeyT,
	"U":            ebiten.KeyU,
	"V":            ebiten.KeyV,
	"W":            ebiten.KeyW,
	"X":            ebiten.KeyX,
	"Y":            ebiten.KeyY,
	"Z":            ebiten.KeyZ,
	"0":            ebiten.KeyDigit0,
	"1":            ebiten.KeyDigit1,
	"2":            ebiten.KeyDigit2,
	"3":            ebiten.KeyDigit3,
	"4":            ebiten.KeyDigit4,
	"5":            ebiten.KeyDigit5,
	"6":            ebiten.KeyDigit6,
	"7":            ebiten.KeyDigit7,
	"8":            ebiten.KeyDigit8,
	"9":            ebiten.KeyDigit9,
	"Numpad0":      ebiten.KeyNumpad0,
	"Numpad1":      ebiten.KeyNumpad1,
	"Numpad2":      ebiten.KeyNumpad2,
	"Numpad3":      ebiten.KeyNumpad3,
	"Numpad4":      ebiten.KeyNumpad4,
	"Numpad5":      ebiten.KeyNumpad5,
	"Numpad6":      ebiten.KeyNumpad6,
	"Numpad7":      ebiten.KeyNumpad7,
	"Numpad8":      ebiten.KeyNumpad8,
	"Numpad9":      ebiten.KeyNumpad9,
	"NumpadEnter":  ebiten.KeyNumpadEnter,
	"Enter":        ebiten.KeyEnter,
	"Backspace":    ebiten.KeyBackspace,
	"Space":        ebiten.KeySpace,
	"Tab":          ebiten.KeyTab,
	"Escape":       ebiten.KeyEscape,
	"Insert":       ebiten.KeyInsert,
	"Delete":       ebiten.KeyDelete,
	"Home":         ebiten.KeyHome,
	"End":          ebiten.KeyEnd,
	"PageUp":       ebiten.KeyPageUp,
	"PageDown":     ebiten.KeyPageDown,
	"ShiftLeft":    ebiten.KeyShiftLeft,
	"ShiftRight":   ebiten.KeyShiftRight,
	"ControlLeft":  ebiten.KeyControlLeft,
	"ControlRight": ebiten.KeyControlRight,
	"AltLeft":      ebiten.KeyAltLeft,
	"AltRight":     ebiten.KeyAltRight,
	"ArrowUp":      ebiten.KeyArrowUp,
	"ArrowDown":    ebiten.KeyArrowDown,
	"ArrowLeft":    ebiten.KeyArrowLeft,
	"ArrowRight":   ebiten.KeyArrowRight,
	"Semicolon":    ebiten.KeySemicolon,
	"Comma":        ebiten.KeyComma,
	"Period":       ebiten.KeyPeriod,
	"Slash":        ebiten.KeySlash,
	"[":            ebiten.KeyLeftBracket,
	"]":            ebiten.KeyRightBracket,
	"-":            ebiten.KeyMinus,
	"=":            ebiten.KeyEqual,
	"'":            ebiten.KeyApostrophe,
	"F1":           ebiten.KeyF1,
	"F2":           ebiten.KeyF2,
	"F3":           ebiten.KeyF3,
	"F4":           ebiten.KeyF4,
	"F5":           ebiten.KeyF5,
	"F6":           ebiten.KeyF6,
	"F7":           ebiten.KeyF7,
	"F8":           ebiten.KeyF8,
	"F9":           ebiten.KeyF9,
	"F10":          ebiten.KeyF10,
	"F11":          ebiten.KeyF11,
	"F12":          ebiten.KeyF12,
}

var padNameMap = map[string]ebiten.StandardGamepadButton{
	"A":      ebiten.StandardGamepadButtonRightBottom,
	"B":      ebiten.StandardGamepadButtonRightRight,
	"X":      ebiten.StandardGamepadButtonRightLeft,
	"Y":      ebiten.StandardGamepadButtonRightTop,
	"L1":     ebiten.StandardGamepadButtonFrontTopLeft,
	"R1":     ebiten.StandardGamepadButtonFrontTopRight,
	"L2":     ebiten.StandardGamepadButtonFrontBottomLeft,
	"R2":     ebiten.StandardGamepadButtonFrontBottomRight,
	"Start":  ebiten.StandardGamepadButtonCenterRight,
	"Select": ebiten.StandardGamepadButtonCenterLeft,
	"L3":     ebiten.StandardGamepadButtonLeftStick,
	"R3":     ebiten.StandardGamepadButtonRightStick,
}

var deviceNames = []struct {
	name   string
	device input.Device
}{
	{"keyboard", input.DeviceKeyboard},
	{"joystick1", input.DeviceJoystick1},
	{"joystick2", input.DeviceJoystick2},
}

// Keys without a friendly name are written as "Key<n>".
const rawKeyPrefix = "Key"

var (
	keyToName map[ebiten.Key]string
	padToName map[ebiten.StandardGamepadButton]string
)

func init() {
	keyToName = make(map[ebiten.Key]string, len(keyNameMap))
	for name, key := range keyNameMap {
		keyToName[key] = name
	}
	padToName = make(map[ebiten.StandardGamepadButton]string, len(padNameMap))
	for name, btn := range padNameMap {
		padToName[btn] = name
	}
}

// ParseKey converts a key name from the bindings file to a key.
func ParseKey(name string) (input.Key, bool) {
	if k, ok := keyNameMap[name]; ok {
		return input.Key(k), true
	}
	if raw, ok := strings.CutPrefix(name, rawKeyPrefix); ok && raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 && n <= int(ebiten.KeyMax) {
			return input.Key(n), true
		}
	}
	return 0, false
}

// KeyName returns the name ParseKey accepts for k.
func KeyName(k input.Key) string {
	if name, ok := keyToName[ebiten.Key(k)]; ok {
		return name
	}
	return fmt.Sprintf("%s%d", rawKeyPrefix, int(k))
}

func ParsePad(name string) (ebiten.StandardGamepadButton, bool) {
	b, ok := padNameMap[name]
	return b, ok
}

func PadName(b ebiten.StandardGamepadButton) string {
	return padToName[b]
}

// ParseDevice accepts "keyboard", "joystick1" and "joystick2".
func ParseDevice(name string) (input.Device, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range deviceNames {
		if d.name == name {
			return d.device, true
		}
	}
	return 0, false
}

func DeviceName(d input.Device) string {
	for _, n := range deviceNames {
		if n.device == d {
			return n.name
		}
	}
	return ""
}
