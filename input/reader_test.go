package input

import "testing"

var directionAndButtons = []Cmd{CmdLeft, CmdRight, CmdUp, CmdDown, CmdButton1, CmdButton2}

func TestOnePlayerCmdDirectionsExclusive(t *testing.T) {
	cfg := testConfig()
	keys := []Key{keyA, keyD, keyW, keyS, keyJ, keyK}

	for mask := 0; mask < 1<<len(keys); mask++ {
		kb := newFakeKeyboard()
		joys := &fakeJoysticks{}
		var active Cmd
		for i, k := range keys {
			if mask&(1<<i) != 0 {
				kb.press(k)
				active |= directionAndButtons[i]
			}
		}
		joys.held[Joystick1] = active

		for _, dev := range []Device{DeviceKeyboard, DeviceJoystick1} {
			p := cfg.Players[0]
			p.Device = dev
			got := OnePlayerCmd(&p, cfg.Options, kb.KeyHeld, joys.JoyHeld)
			if got.Has(CmdLeft | CmdRight) {
				t.Fatalf("%s mask %06b: LEFT and RIGHT both set (%s)", dev, mask, got)
			}
			if got.Has(CmdUp | CmdDown) {
				t.Fatalf("%s mask %06b: UP and DOWN both set (%s)", dev, mask, got)
			}
			if active.Has(CmdLeft) && !got.Has(CmdLeft) {
				t.Fatalf("%s mask %06b: left should win, got %s", dev, mask, got)
			}
			if active.Has(CmdUp) && !got.Has(CmdUp) {
				t.Fatalf("%s mask %06b: up should win, got %s", dev, mask, got)
			}
			if got&(CmdButton1|CmdButton2) != active&(CmdButton1|CmdButton2) {
				t.Fatalf("%s mask %06b: buttons = %s, want %s", dev, mask, got, active&(CmdButton1|CmdButton2))
			}
		}
	}
}

func TestOnePlayerCmdJoystickSwap(t *testing.T) {
	cases := []struct {
		name   string
		device Device
		swap   [NumJoysticks]bool
		held   [NumJoysticks]Cmd
		want   Cmd
	}{
		{"joy1_no_swap", DeviceJoystick1, [2]bool{}, [2]Cmd{CmdButton1 | CmdLeft, 0}, CmdButton1 | CmdLeft},
		{"joy1_swap", DeviceJoystick1, [2]bool{true, false}, [2]Cmd{CmdButton1 | CmdLeft, 0}, CmdButton2 | CmdLeft},
		{"joy1_other_slot_swap", DeviceJoystick1, [2]bool{false, true}, [2]Cmd{CmdButton1, 0}, CmdButton1},
		{"joy2_swap", DeviceJoystick2, [2]bool{false, true}, [2]Cmd{CmdButton1, CmdButton2 | CmdDown}, CmdButton1 | CmdDown},
		{"joy2_reads_second_slot", DeviceJoystick2, [2]bool{}, [2]Cmd{CmdLeft, CmdRight}, CmdRight},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Player{Device: c.device}
			joys := &fakeJoysticks{held: c.held}
			kb := newFakeKeyboard()
			got := OnePlayerCmd(&p, Options{SwapButtons: c.swap}, kb.KeyHeld, joys.JoyHeld)
			if got != c.want {
				t.Fatalf("OnePlayerCmd = %s, want %s", got, c.want)
			}
			if len(kb.queried) != 0 {
				t.Fatalf("joystick player queried keyboard keys %v", kb.queried)
			}
		})
	}
}

func TestOnePlayerCmdUnknownDeviceReadsKeyboard(t *testing.T) {
	cfg := testConfig()
	kb := newFakeKeyboard()
	kb.press(keyD, keyJ)
	joys := &fakeJoysticks{}
	joys.held[Joystick1] = CmdLeft

	p := cfg.Players[0]
	p.Device = Device(7)
	if got := OnePlayerCmd(&p, cfg.Options, kb.KeyHeld, joys.JoyHeld); got != CmdRight|CmdButton1 {
		t.Fatalf("OnePlayerCmd = %s, want RIGHT|BUTTON1", got)
	}
}

func TestPlayerCmdModes(t *testing.T) {
	cfg := testConfig()
	kb := newFakeKeyboard()
	kb.held[keyA] = true
	kb.press(keyL)
	r := NewReader(cfg, kb, &fakeJoysticks{})

	var p1, p2 Cmd
	r.PlayerCmd(&p1, &p2, Held)
	if p1 != CmdLeft || p2 != CmdRight {
		t.Fatalf("held: p1=%s p2=%s, want LEFT RIGHT", p1, p2)
	}

	r.PlayerCmd(&p1, &p2, Pressed)
	if p1 != 0 || p2 != CmdRight {
		t.Fatalf("pressed: p1=%s p2=%s, want NONE RIGHT", p1, p2)
	}
}

func TestPlayerCmdNilTargets(t *testing.T) {
	cfg := testConfig()
	kb := newFakeKeyboard()
	kb.press(keyA, keyI)
	r := NewReader(cfg, kb, &fakeJoysticks{})

	var p2 Cmd
	r.PlayerCmd(nil, &p2, Pressed)
	if p2 != CmdLeft {
		t.Fatalf("p2 = %s, want LEFT", p2)
	}
	for _, k := range kb.queried {
		if k == keyA {
			t.Fatalf("player 1 was polled with nil target")
		}
	}

	kb.queried = nil
	r.PlayerCmd(nil, nil, Held)
	if len(kb.queried) != 0 {
		t.Fatalf("no players requested but keys %v were queried", kb.queried)
	}
}

func TestMenuCmdEscape(t *testing.T) {
	cfg := testConfig()
	cfg.Players[0].Device = DeviceJoystick1
	kb := newFakeKeyboard()
	kb.press(keyEscape, keyF9, keyLeft, keyEnter, keyA)
	r := NewReader(cfg, kb, &fakeJoysticks{pressed: [2]Cmd{CmdButton1, 0}})

	if got := r.MenuCmd(); got != CmdEsc {
		t.Fatalf("MenuCmd = %s, want ESC", got)
	}
	if len(kb.queried) != 1 || kb.queried[0] != keyEscape {
		t.Fatalf("escape should short-circuit, queried %v", kb.queried)
	}
	if cfg.Players[0].Device != DeviceJoystick1 {
		t.Fatalf("reset hotkey applied after escape")
	}
}

func TestMenuCmdResetDevices(t *testing.T) {
	cfg := testConfig()
	cfg.Players[0].Device = DeviceJoystick2
	cfg.Players[1].Device = DeviceJoystick1
	kb := newFakeKeyboard()
	kb.press(keyF9)
	r := NewReader(cfg, kb, &fakeJoysticks{})

	r.MenuCmd()
	for i, p := range cfg.Players {
		if p.Device != DeviceKeyboard {
			t.Fatalf("player %d device = %s, want Keyboard", i+1, p.Device)
		}
	}
}

func TestMenuCmdResetDevicesThenReadsKeyboard(t *testing.T) {
	cfg := testConfig()
	cfg.Players[0].Device = DeviceJoystick1
	kb := newFakeKeyboard()
	kb.press(keyF9, keyW)
	r := NewReader(cfg, kb, &fakeJoysticks{pressed: [2]Cmd{CmdButton2, 0}})

	if got := r.MenuCmd(); got != CmdUp {
		t.Fatalf("MenuCmd = %s, want UP", got)
	}
}

func TestMenuCmdFallback(t *testing.T) {
	cases := []struct {
		name    string
		device  Device
		pressed []Key
		joy     Cmd
		want    Cmd
	}{
		{"nothing", DeviceKeyboard, nil, 0, 0},
		{"arrow_left", DeviceKeyboard, []Key{keyLeft}, 0, CmdLeft},
		{"arrow_left_right", DeviceKeyboard, []Key{keyLeft, keyRight}, 0, CmdLeft},
		{"arrow_right_down", DeviceKeyboard, []Key{keyRight, keyDown}, 0, CmdRight | CmdDown},
		{"arrow_up_down", DeviceKeyboard, []Key{keyUp, keyDown}, 0, CmdUp},
		{"enter", DeviceKeyboard, []Key{keyEnter}, 0, CmdButton1},
		{"backspace", DeviceKeyboard, []Key{keyBackspace}, 0, CmdButton2},
		{"enter_backspace", DeviceKeyboard, []Key{keyEnter, keyBackspace}, 0, CmdButton1 | CmdButton2},
		{"primary_wins", DeviceKeyboard, []Key{keyJ, keyLeft, keyEnter}, 0, CmdButton1},
		{"joystick_player_arrows", DeviceJoystick1, []Key{keyA, keyDown}, 0, CmdDown},
		{"joystick_player_wins", DeviceJoystick1, []Key{keyDown}, CmdRight, CmdRight},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Players[0].Device = c.device
			kb := newFakeKeyboard()
			kb.press(c.pressed...)
			r := NewReader(cfg, kb, &fakeJoysticks{pressed: [2]Cmd{c.joy, 0}})
			if got := r.MenuCmd(); got != c.want {
				t.Fatalf("MenuCmd = %s, want %s", got, c.want)
			}
		})
	}
}

func TestMenuCmdUsesPressedSemantics(t *testing.T) {
	cfg := testConfig()
	kb := newFakeKeyboard()
	kb.held[keyA] = true
	kb.held[keyLeft] = true
	r := NewReader(cfg, kb, &fakeJoysticks{})

	if got := r.MenuCmd(); got != 0 {
		t.Fatalf("held keys produced menu command %s", got)
	}
}
