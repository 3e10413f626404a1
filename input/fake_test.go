package input

type fakeKeyboard struct {
	pressed map[Key]bool
	held    map[Key]bool
	queried []Key
}

func newFakeKeyboard() *fakeKeyboard {
	return &fakeKeyboard{pressed: map[Key]bool{}, held: map[Key]bool{}}
}

func (f *fakeKeyboard) press(keys ...Key) {
	for _, k := range keys {
		f.pressed[k] = true
		f.held[k] = true
	}
}

func (f *fakeKeyboard) KeyPressed(k Key) bool {
	f.queried = append(f.queried, k)
	return f.pressed[k]
}

func (f *fakeKeyboard) KeyHeld(k Key) bool {
	f.queried = append(f.queried, k)
	return f.held[k]
}

type fakeJoysticks struct {
	pressed [NumJoysticks]Cmd
	held    [NumJoysticks]Cmd
}

func (f *fakeJoysticks) JoyPressed(j Joystick, c Cmd) bool {
	return f.pressed[j]&c != 0
}

func (f *fakeJoysticks) JoyHeld(j Joystick, c Cmd) bool {
	return f.held[j]&c != 0
}

const (
	keyA Key = iota + 10
	keyD
	keyW
	keyS
	keyJ
	keyK

	keyLeft
	keyRight
	keyUp
	keyDown
	keyEnter
	keyBackspace
	keyEscape
	keyF9

	keyI
	keyL
	keyO
	keyP
	keyN
	keyM
)

func testConfig() *Config {
	return &Config{
		Players: [2]Player{
			{Device: DeviceKeyboard, Keys: Keys{Left: keyA, Right: keyD, Up: keyW, Down: keyS, Button1: keyJ, Button2: keyK}},
			{Device: DeviceKeyboard, Keys: Keys{Left: keyI, Right: keyL, Up: keyO, Down: keyP, Button1: keyN, Button2: keyM}},
		},
		Menu: MenuKeys{
			Escape:       keyEscape,
			ResetDevices: keyF9,
			Left:         keyLeft,
			Right:        keyRight,
			Up:           keyUp,
			Down:         keyDown,
			Confirm:      keyEnter,
			Back:         keyBackspace,
		},
	}
}
