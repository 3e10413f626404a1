// Package replay drives the input layer from a tengo script instead of real
// devices. The script runs once per frame with the global `frame` set and
// assigns the inputs held on that frame:
//
//	keys = frame < 30 ? ["ArrowLeft"] : []
//	joy1 = frame == 40 ? ["button1"] : []
//	done = frame >= 60
//
// Globals must be assigned with `=`. `keys`, `joy1` and `joy2` are reset to
// empty and `done` to false before each frame.
package replay

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/padcmd/input"
)

// Resolver maps a key name used by a script to a key.
type Resolver func(name string) (input.Key, bool)

var joyGlobals = [input.NumJoysticks]string{"joy1", "joy2"}

// Device implements input.Keyboard and input.Joysticks from a script.
type Device struct {
	compiled *tengo.Compiled
	resolve  Resolver

	frame    int
	done     bool
	keys     map[input.Key]bool
	prevKeys map[input.Key]bool
	joys     [input.NumJoysticks]input.Cmd
	prevJoys [input.NumJoysticks]input.Cmd
}

func Compile(src []byte, resolve Resolver) (*Device, error) {
	script := tengo.NewScript(src)
	_ = script.Add("frame", 0)
	_ = script.Add("done", false)
	_ = script.Add("keys", []any{})
	for _, name := range joyGlobals {
		_ = script.Add(name, []any{})
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("replay: compile: %w", err)
	}
	return &Device{
		compiled: compiled,
		resolve:  resolve,
		frame:    -1,
		keys:     map[input.Key]bool{},
		prevKeys: map[input.Key]bool{},
	}, nil
}

// Advance runs the script for frame and makes its inputs current. A failing
// frame leaves the previous inputs in place.
func (d *Device) Advance(frame int) error {
	for _, name := range []string{"keys", joyGlobals[0], joyGlobals[1]} {
		if err := d.compiled.Set(name, []any{}); err != nil {
			return fmt.Errorf("replay: frame %d: reset %s: %w", frame, name, err)
		}
	}
	if err := d.compiled.Set("done", false); err != nil {
		return fmt.Errorf("replay: frame %d: reset done: %w", frame, err)
	}
	if err := d.compiled.Set("frame", frame); err != nil {
		return fmt.Errorf("replay: frame %d: %w", frame, err)
	}
	if err := d.run(); err != nil {
		return fmt.Errorf("replay: frame %d: run: %w", frame, err)
	}

	keys := make(map[input.Key]bool, len(d.keys))
	for _, v := range d.compiled.Get("keys").Array() {
		name := strings.TrimSpace(fmt.Sprint(v))
		k, ok := d.resolve(name)
		if !ok {
			return fmt.Errorf("replay: frame %d: unknown key %q", frame, name)
		}
		keys[k] = true
	}

	var joys [input.NumJoysticks]input.Cmd
	for slot, global := range joyGlobals {
		for _, v := range d.compiled.Get(global).Array() {
			name := fmt.Sprint(v)
			c, ok := input.ParseCmd(name)
			if !ok || c == input.CmdEsc {
				return fmt.Errorf("replay: frame %d: %s: unknown joystick input %q", frame, global, name)
			}
			joys[slot] |= c
		}
	}

	d.prevKeys, d.keys = d.keys, keys
	d.prevJoys, d.joys = d.joys, joys
	d.frame = frame
	d.done = d.compiled.Get("done").Bool()
	return nil
}

// run executes the script once. The VM lets Go runtime panics such as an
// integer divide by zero escape, so they are turned into errors here.
func (d *Device) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return d.compiled.Run()
}

// Frame returns the last frame passed to Advance, or -1.
func (d *Device) Frame() int {
	return d.frame
}

// Done reports whether the script set `done` on the last frame.
func (d *Device) Done() bool {
	return d.done
}

func (d *Device) KeyPressed(k input.Key) bool {
	return d.keys[k] && !d.prevKeys[k]
}

func (d *Device) KeyHeld(k input.Key) bool {
	return d.keys[k]
}

func (d *Device) JoyPressed(j input.Joystick, c input.Cmd) bool {
	if j < 0 || int(j) >= input.NumJoysticks {
		return false
	}
	return d.joys[j]&c != 0 && d.prevJoys[j]&c == 0
}

func (d *Device) JoyHeld(j input.Joystick, c input.Cmd) bool {
	if j < 0 || int(j) >= input.NumJoysticks {
		return false
	}
	return d.joys[j]&c != 0
}
