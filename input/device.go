package input

// Device selects where a player's commands come from.
type Device int

const (
	DeviceKeyboard Device = iota
	DeviceJoystick1
	DeviceJoystick2
)

// String returns the label shown in the settings screen, or "" for an
// unknown device.
func (d Device) String() string {
	switch d {
	case DeviceKeyboard:
		return "Keyboard"
	case DeviceJoystick1:
		return "Joystick 1"
	case DeviceJoystick2:
		return "Joystick 2"
	default:
		return ""
	}
}

// Joystick returns the joystick slot for a joystick device.
func (d Device) Joystick() (Joystick, bool) {
	switch d {
	case DeviceJoystick1:
		return Joystick1, true
	case DeviceJoystick2:
		return Joystick2, true
	default:
		return 0, false
	}
}

// Joystick is a joystick slot index.
type Joystick int

const (
	Joystick1 Joystick = iota
	Joystick2
)

// NumJoysticks is the number of joystick slots players can be assigned to.
const NumJoysticks = 2
