package input

// Keyboard answers keyboard queries for the current frame.
type Keyboard interface {
	// KeyPressed is true only on the frame k goes down.
	KeyPressed(k Key) bool
	// KeyHeld is true for every frame k is down.
	KeyHeld(k Key) bool
}

// Joysticks answers queries for a logical direction or button (one of
// CmdLeft, CmdRight, CmdUp, CmdDown, CmdButton1, CmdButton2) on a slot.
type Joysticks interface {
	JoyPressed(j Joystick, c Cmd) bool
	JoyHeld(j Joystick, c Cmd) bool
}

// KeyFunc and JoyFunc are the per-call query strategies used by the
// composer.
type (
	KeyFunc func(k Key) bool
	JoyFunc func(j Joystick, c Cmd) bool
)

// Mode selects edge or level triggered queries.
type Mode int

const (
	Pressed Mode = iota
	Held
)

func (m Mode) String() string {
	if m == Held {
		return "held"
	}
	return "pressed"
}

// OnePlayerCmd composes the commands for p. Left wins over right and up over
// down; buttons are independent. A device value that is neither keyboard nor
// a joystick slot is read from the keyboard.
func OnePlayerCmd(p *Player, opts Options, key KeyFunc, joy JoyFunc) Cmd {
	slot, ok := p.Device.Joystick()
	if !ok {
		return compose(func(c Cmd) bool {
			return key(bindingFor(&p.Keys, c))
		})
	}

	cmd := compose(func(c Cmd) bool {
		return joy(slot, c)
	})
	if opts.SwapButtons[slot] {
		cmd = SwapButtons(cmd)
	}
	return cmd
}

// compose runs the fixed query sequence shared by every source.
func compose(active func(c Cmd) bool) Cmd {
	var cmd Cmd
	if active(CmdLeft) {
		cmd |= CmdLeft
	} else if active(CmdRight) {
		cmd |= CmdRight
	}

	if active(CmdUp) {
		cmd |= CmdUp
	} else if active(CmdDown) {
		cmd |= CmdDown
	}

	if active(CmdButton1) {
		cmd |= CmdButton1
	}
	if active(CmdButton2) {
		cmd |= CmdButton2
	}
	return cmd
}

func bindingFor(k *Keys, c Cmd) Key {
	switch c {
	case CmdLeft:
		return k.Left
	case CmdRight:
		return k.Right
	case CmdUp:
		return k.Up
	case CmdDown:
		return k.Down
	case CmdButton1:
		return k.Button1
	default:
		return k.Button2
	}
}

// Reader turns polled device state into player and menu commands.
type Reader struct {
	Config    *Config
	Keyboard  Keyboard
	Joysticks Joysticks
}

func NewReader(cfg *Config, kb Keyboard, joys Joysticks) *Reader {
	return &Reader{Config: cfg, Keyboard: kb, Joysticks: joys}
}

func (r *Reader) queries(mode Mode) (KeyFunc, JoyFunc) {
	if mode == Held {
		return r.Keyboard.KeyHeld, r.Joysticks.JoyHeld
	}
	return r.Keyboard.KeyPressed, r.Joysticks.JoyPressed
}

// PlayerCmd fills cmd1 and cmd2 with the commands for player 1 and 2.
// Either pointer may be nil, in which case that player is not polled.
func (r *Reader) PlayerCmd(cmd1, cmd2 *Cmd, mode Mode) {
	key, joy := r.queries(mode)
	if cmd1 != nil {
		*cmd1 = OnePlayerCmd(&r.Config.Players[0], r.Config.Options, key, joy)
	}
	if cmd2 != nil {
		*cmd2 = OnePlayerCmd(&r.Config.Players[1], r.Config.Options, key, joy)
	}
}

// MenuCmd reads one menu navigation command. Escape short-circuits every
// other key. The reset hotkey moves both players to the keyboard before
// player 1 is read. When player 1 produces nothing the menu keys (arrows,
// confirm, back) are used instead.
func (r *Reader) MenuCmd() Cmd {
	kb := r.Keyboard
	m := &r.Config.Menu
	if kb.KeyPressed(m.Escape) {
		return CmdEsc
	}
	if kb.KeyPressed(m.ResetDevices) {
		r.Config.ResetDevices()
	}

	var cmd Cmd
	r.PlayerCmd(&cmd, nil, Pressed)
	if cmd != 0 {
		return cmd
	}

	return compose(func(c Cmd) bool {
		return kb.KeyPressed(menuKeyFor(m, c))
	})
}

func menuKeyFor(m *MenuKeys, c Cmd) Key {
	switch c {
	case CmdLeft:
		return m.Left
	case CmdRight:
		return m.Right
	case CmdUp:
		return m.Up
	case CmdDown:
		return m.Down
	case CmdButton1:
		return m.Confirm
	default:
		return m.Back
	}
}
