package ebitenpoll

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/padcmd/input"
)

const DefaultDeadzone = 0.5

// ButtonMap picks the gamepad buttons used for BUTTON1 and BUTTON2.
type ButtonMap struct {
	Button1 ebiten.StandardGamepadButton
	Button2 ebiten.StandardGamepadButton
}

var DefaultButtons = ButtonMap{
	Button1: ebiten.StandardGamepadButtonRightBottom,
	Button2: ebiten.StandardGamepadButtonRightRight,
}

var dpad = map[input.Cmd]ebiten.StandardGamepadButton{
	input.CmdLeft:  ebiten.StandardGamepadButtonLeftLeft,
	input.CmdRight: ebiten.StandardGamepadButtonLeftRight,
	input.CmdUp:    ebiten.StandardGamepadButtonLeftTop,
	input.CmdDown:  ebiten.StandardGamepadButtonLeftBottom,
}

// gamepads is the slice of the ebiten gamepad API the joysticks need.
type gamepads interface {
	AppendIDs(ids []ebiten.GamepadID) []ebiten.GamepadID
	Held(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool
	JustPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool
	Axis(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64
	Name(id ebiten.GamepadID) string
}

type ebitenGamepads struct{}

func (ebitenGamepads) AppendIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(ids)
}

func (ebitenGamepads) Held(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, b)
}

func (ebitenGamepads) JustPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return inpututil.IsStandardGamepadButtonJustPressed(id, b)
}

func (ebitenGamepads) Axis(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, a)
}

func (ebitenGamepads) Name(id ebiten.GamepadID) string {
	return ebiten.GamepadName(id)
}

// Joysticks maps connected gamepads onto joystick slots: slot 1 is the
// lowest connected gamepad ID, slot 2 the next one. Directions come from the
// D-pad or the left stick. Update must be called once per frame before any
// query.
type Joysticks struct {
	Buttons  [input.NumJoysticks]ButtonMap
	Deadzone float64

	pads      gamepads
	ids       []ebiten.GamepadID
	stick     [input.NumJoysticks]input.Cmd
	prevStick [input.NumJoysticks]input.Cmd
}

func NewJoysticks() *Joysticks {
	return newJoysticks(ebitenGamepads{})
}

func newJoysticks(pads gamepads) *Joysticks {
	j := &Joysticks{Deadzone: DefaultDeadzone, pads: pads}
	for i := range j.Buttons {
		j.Buttons[i] = DefaultButtons
	}
	return j
}

// Update refreshes slot assignment and left stick edge state.
func (j *Joysticks) Update() {
	j.ids = j.pads.AppendIDs(j.ids[:0])
	slices.Sort(j.ids)

	for slot := range j.stick {
		j.prevStick[slot] = j.stick[slot]
		j.stick[slot] = 0
		id, ok := j.id(input.Joystick(slot))
		if !ok {
			continue
		}
		j.stick[slot] = j.stickCmd(id)
	}
}

func (j *Joysticks) stickCmd(id ebiten.GamepadID) input.Cmd {
	var cmd input.Cmd
	x := j.pads.Axis(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := j.pads.Axis(id, ebiten.StandardGamepadAxisLeftStickVertical)
	if x < -j.Deadzone {
		cmd |= input.CmdLeft
	} else if x > j.Deadzone {
		cmd |= input.CmdRight
	}
	if y < -j.Deadzone {
		cmd |= input.CmdUp
	} else if y > j.Deadzone {
		cmd |= input.CmdDown
	}
	return cmd
}

func (j *Joysticks) id(slot input.Joystick) (ebiten.GamepadID, bool) {
	if slot < 0 || int(slot) >= len(j.ids) || int(slot) >= input.NumJoysticks {
		return 0, false
	}
	return j.ids[slot], true
}

// Connected reports whether a gamepad occupies slot.
func (j *Joysticks) Connected(slot input.Joystick) bool {
	_, ok := j.id(slot)
	return ok
}

// Name returns the gamepad name in slot, or "" when the slot is empty.
func (j *Joysticks) Name(slot input.Joystick) string {
	id, ok := j.id(slot)
	if !ok {
		return ""
	}
	return j.pads.Name(id)
}

func (j *Joysticks) button(slot input.Joystick, c input.Cmd) (ebiten.StandardGamepadButton, bool) {
	if b, ok := dpad[c]; ok {
		return b, true
	}
	switch c {
	case input.CmdButton1:
		return j.Buttons[slot].Button1, true
	case input.CmdButton2:
		return j.Buttons[slot].Button2, true
	}
	return 0, false
}

func (j *Joysticks) JoyHeld(slot input.Joystick, c input.Cmd) bool {
	id, ok := j.id(slot)
	if !ok {
		return false
	}
	if j.stick[slot]&c != 0 {
		return true
	}
	b, ok := j.button(slot, c)
	return ok && j.pads.Held(id, b)
}

func (j *Joysticks) JoyPressed(slot input.Joystick, c input.Cmd) bool {
	id, ok := j.id(slot)
	if !ok {
		return false
	}
	if j.stick[slot]&c != 0 && j.prevStick[slot]&c == 0 {
		return true
	}
	b, ok := j.button(slot, c)
	return ok && j.pads.JustPressed(id, b)
}
