package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/padcmd/config"
	"github.com/milk9111/padcmd/input"
	"github.com/milk9111/padcmd/input/ebitenpoll"
)

type heldKeys map[input.Key]bool

func (k heldKeys) KeyPressed(key input.Key) bool { return k[key] }
func (k heldKeys) KeyHeld(key input.Key) bool    { return k[key] }

type noJoysticks struct{}

func (noJoysticks) JoyPressed(input.Joystick, input.Cmd) bool { return false }
func (noJoysticks) JoyHeld(input.Joystick, input.Cmd) bool    { return false }

// newReloadGame builds a Game around a bindings file without opening a
// window or a watcher.
func newReloadGame(t *testing.T) (*Game, heldKeys) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	f, err := config.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if err := config.Save(path, f); err != nil {
		t.Fatalf("Save: %v", err)
	}
	cfg, err := f.Input()
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	keys := heldKeys{}
	g := &Game{
		bindingsPath: path,
		cfg:          cfg,
		joys:         ebitenpoll.NewJoysticks(),
		reader:       input.NewReader(cfg, keys, noJoysticks{}),
	}
	return g, keys
}

func writeBindings(t *testing.T, path string, edit func(f *config.File)) {
	t.Helper()
	f, err := config.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	edit(f)
	if err := config.Save(path, f); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestReloadReplacesConfigInPlace(t *testing.T) {
	g, keys := newReloadGame(t)
	cfg := g.cfg

	writeBindings(t, g.bindingsPath, func(f *config.File) {
		f.Players[0].Keys.Left = "J"
		f.Players[1].Device = "joystick2"
		f.Joysticks[0].SwapButtons = true
		f.Joysticks[1].Button1 = "X"
		f.Joysticks[1].Button2 = "Y"
	})
	g.reload()

	if g.cfg != cfg {
		t.Fatalf("reload replaced the config pointer")
	}
	if g.reader.Config != cfg {
		t.Fatalf("reader lost the config pointer")
	}
	if g.cfg.Players[1].Device != input.DeviceJoystick2 {
		t.Fatalf("player 2 device = %s, want Joystick 2", g.cfg.Players[1].Device)
	}
	if !g.cfg.Options.SwapButtons[0] {
		t.Fatalf("joystick 1 swap flag not reloaded")
	}

	j, _ := config.ParseKey("J")
	keys[j] = true
	var cmd input.Cmd
	g.reader.PlayerCmd(&cmd, nil, input.Held)
	if cmd != input.CmdLeft {
		t.Fatalf("player 1 with J held = %s, want LEFT", cmd)
	}

	want := ebitenpoll.ButtonMap{
		Button1: ebiten.StandardGamepadButtonRightLeft,
		Button2: ebiten.StandardGamepadButtonRightTop,
	}
	if g.joys.Buttons[1] != want {
		t.Fatalf("joystick 2 buttons = %+v, want %+v", g.joys.Buttons[1], want)
	}
	if g.joys.Buttons[0] != ebitenpoll.DefaultButtons {
		t.Fatalf("joystick 1 buttons = %+v, want defaults", g.joys.Buttons[0])
	}
}

func TestReloadKeepsConfigOnBadFile(t *testing.T) {
	cases := []struct {
		name  string
		write func(t *testing.T, path string)
	}{
		{"unknown_key", func(t *testing.T, path string) {
			writeBindings(t, path, func(f *config.File) { f.Players[0].Keys.Left = "NoSuchKey" })
		}},
		{"duplicate_key", func(t *testing.T, path string) {
			writeBindings(t, path, func(f *config.File) { f.Players[0].Keys.Right = f.Players[0].Keys.Left })
		}},
		{"reserved_key", func(t *testing.T, path string) {
			writeBindings(t, path, func(f *config.File) { f.Players[1].Keys.Button1 = "F9" })
		}},
		{"unknown_button", func(t *testing.T, path string) {
			writeBindings(t, path, func(f *config.File) {
				f.Players[0].Keys.Left = "J"
				f.Joysticks[0].Button1 = "Turbo"
			})
		}},
		{"bad_yaml", func(t *testing.T, path string) {
			if err := os.WriteFile(path, []byte("players: [\n"), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
		}},
		{"empty", func(t *testing.T, path string) {
			if err := os.WriteFile(path, nil, 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, _ := newReloadGame(t)
			g.cfg.Players[0].Device = input.DeviceJoystick1
			g.joys.Buttons[0] = ebitenpoll.ButtonMap{
				Button1: ebiten.StandardGamepadButtonRightTop,
				Button2: ebiten.StandardGamepadButtonRightLeft,
			}
			before := *g.cfg
			buttons := g.joys.Buttons

			c.write(t, g.bindingsPath)
			g.reload()

			if *g.cfg != before {
				t.Fatalf("config changed by a bad file")
			}
			if g.joys.Buttons != buttons {
				t.Fatalf("buttons changed by a bad file")
			}
		})
	}
}

func TestPollWatcherReloads(t *testing.T) {
	g, _ := newReloadGame(t)
	w, err := config.NewWatcher(g.bindingsPath)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	g.watcher = w
	defer g.Close()

	writeBindings(t, g.bindingsPath, func(f *config.File) { f.Players[0].Device = "joystick1" })

	deadline := time.Now().Add(2 * time.Second)
	for g.cfg.Players[0].Device != input.DeviceJoystick1 {
		if time.Now().After(deadline) {
			t.Fatalf("bindings not reloaded from watcher")
		}
		time.Sleep(10 * time.Millisecond)
		g.pollWatcher()
	}
}

func TestCopyBindingsWithoutClipboard(t *testing.T) {
	g, _ := newReloadGame(t)
	if err := g.copyBindings(); err == nil {
		t.Fatalf("copyBindings succeeded without a clipboard")
	}
}

func TestSaveBindingsRoundTrip(t *testing.T) {
	g, _ := newReloadGame(t)
	g.cfg.Players[1].Device = input.DeviceJoystick1
	g.cfg.Options.SwapButtons[1] = true
	if err := g.saveBindings(); err != nil {
		t.Fatalf("saveBindings: %v", err)
	}

	f, err := config.Load(g.bindingsPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg, err := f.Input()
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if *cfg != *g.cfg {
		t.Fatalf("saved config = %+v, want %+v", *cfg, *g.cfg)
	}
}
