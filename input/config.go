package input

// Player is one player's input configuration.
type Player struct {
	Device Device
	Keys   Keys
}

// Options holds per-joystick flags.
type Options struct {
	// SwapButtons exchanges BUTTON1 and BUTTON2 for the joystick slot.
	SwapButtons [NumJoysticks]bool
}

// MenuKeys are the fixed keys read by Reader.MenuCmd.
type MenuKeys struct {
	Escape Key
	// ResetDevices forces both players back to the keyboard.
	ResetDevices Key
	Left         Key
	Right        Key
	Up           Key
	Down         Key
	Confirm      Key
	Back         Key
}

// Config is the input state owned by the game session. It is read every
// poll and written by the settings screen and the reset hotkey.
type Config struct {
	Players [2]Player
	Options Options
	Menu    MenuKeys
}

// ResetDevices puts every player back on the keyboard.
func (c *Config) ResetDevices() {
	for i := range c.Players {
		c.Players[i].Device = DeviceKeyboard
	}
}
