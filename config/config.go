package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/milk9111/padcmd/input"
	"github.com/milk9111/padcmd/input/ebitenpoll"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKey    = errors.New("unknown key name")
	ErrUnknownDevice = errors.New("unknown device")
	ErrUnknownButton = errors.New("unknown gamepad button")
	ErrDuplicateKey  = errors.New("key bound twice")
	ErrReservedKey   = errors.New("key reserved for the menu")
	ErrTooMany       = errors.New("too many entries")
)

// File is the on-disk form of the input bindings.
type File struct {
	Players   []PlayerSpec   `yaml:"players"`
	Joysticks []JoystickSpec `yaml:"joysticks"`
	Menu      MenuSpec       `yaml:"menu"`
}

type PlayerSpec struct {
	Device string   `yaml:"device"`
	Keys   KeysSpec `yaml:"keys"`
}

type KeysSpec struct {
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Up      string `yaml:"up"`
	Down    string `yaml:"down"`
	Button1 string `yaml:"button1"`
	Button2 string `yaml:"button2"`
}

type JoystickSpec struct {
	SwapButtons bool   `yaml:"swap_buttons"`
	Button1     string `yaml:"button1"`
	Button2     string `yaml:"button2"`
}

type MenuSpec struct {
	Escape       string `yaml:"escape"`
	ResetDevices string `yaml:"reset_devices"`
	Left         string `yaml:"left"`
	Right        string `yaml:"right"`
	Up           string `yaml:"up"`
	Down         string `yaml:"down"`
	Confirm      string `yaml:"confirm"`
	Back         string `yaml:"back"`
}

// Parse decodes a bindings file. Missing players, joysticks or fields are
// taken from the embedded defaults.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if len(f.Players) > 2 {
		return nil, fmt.Errorf("config: %d players: %w", len(f.Players), ErrTooMany)
	}
	if len(f.Joysticks) > input.NumJoysticks {
		return nil, fmt.Errorf("config: %d joysticks: %w", len(f.Joysticks), ErrTooMany)
	}
	def, err := defaultFile()
	if err != nil {
		return nil, err
	}
	f.fill(def)
	return &f, nil
}

// Load reads the bindings at path. A missing file yields the embedded
// defaults.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return f, nil
}

func Marshal(f *File) ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Save writes f to path.
func Save(path string, f *File) error {
	data, err := Marshal(f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: save %s: %w", path, err)
	}
	return nil
}

func (f *File) fill(def *File) {
	for i := range def.Players {
		if i >= len(f.Players) {
			f.Players = append(f.Players, def.Players[i])
			continue
		}
		p := &f.Players[i]
		fillString(&p.Device, def.Players[i].Device)
		fillKeys(&p.Keys, def.Players[i].Keys)
	}
	for i := range def.Joysticks {
		if i >= len(f.Joysticks) {
			f.Joysticks = append(f.Joysticks, def.Joysticks[i])
			continue
		}
		fillString(&f.Joysticks[i].Button1, def.Joysticks[i].Button1)
		fillString(&f.Joysticks[i].Button2, def.Joysticks[i].Button2)
	}
	m, dm := &f.Menu, def.Menu
	fillString(&m.Escape, dm.Escape)
	fillString(&m.ResetDevices, dm.ResetDevices)
	fillString(&m.Left, dm.Left)
	fillString(&m.Right, dm.Right)
	fillString(&m.Up, dm.Up)
	fillString(&m.Down, dm.Down)
	fillString(&m.Confirm, dm.Confirm)
	fillString(&m.Back, dm.Back)
}

func fillKeys(k *KeysSpec, def KeysSpec) {
	fillString(&k.Left, def.Left)
	fillString(&k.Right, def.Right)
	fillString(&k.Up, def.Up)
	fillString(&k.Down, def.Down)
	fillString(&k.Button1, def.Button1)
	fillString(&k.Button2, def.Button2)
}

func fillString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

// Input resolves every name in f and validates the result.
func (f *File) Input() (*input.Config, error) {
	cfg := &input.Config{}
	for i, ps := range f.Players {
		if i >= len(cfg.Players) {
			return nil, fmt.Errorf("config: player %d: %w", i+1, ErrTooMany)
		}
		dev, ok := ParseDevice(ps.Device)
		if !ok {
			return nil, fmt.Errorf("config: player %d device %q: %w", i+1, ps.Device, ErrUnknownDevice)
		}
		keys, err := ps.Keys.resolve()
		if err != nil {
			return nil, fmt.Errorf("config: player %d: %w", i+1, err)
		}
		cfg.Players[i] = input.Player{Device: dev, Keys: keys}
	}
	for i, js := range f.Joysticks {
		if i >= input.NumJoysticks {
			return nil, fmt.Errorf("config: joystick %d: %w", i+1, ErrTooMany)
		}
		cfg.Options.SwapButtons[i] = js.SwapButtons
	}

	menu, err := f.Menu.resolve()
	if err != nil {
		return nil, err
	}
	cfg.Menu = menu

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ButtonMaps resolves the per-joystick gamepad button names.
func (f *File) ButtonMaps() ([input.NumJoysticks]ebitenpoll.ButtonMap, error) {
	var maps [input.NumJoysticks]ebitenpoll.ButtonMap
	for i := range maps {
		maps[i] = ebitenpoll.DefaultButtons
	}
	for i, js := range f.Joysticks {
		if i >= input.NumJoysticks {
			break
		}
		b1, ok := ParsePad(js.Button1)
		if !ok {
			return maps, fmt.Errorf("config: joystick %d button1 %q: %w", i+1, js.Button1, ErrUnknownButton)
		}
		b2, ok := ParsePad(js.Button2)
		if !ok {
			return maps, fmt.Errorf("config: joystick %d button2 %q: %w", i+1, js.Button2, ErrUnknownButton)
		}
		maps[i] = ebitenpoll.ButtonMap{Button1: b1, Button2: b2}
	}
	return maps, nil
}

func (k KeysSpec) resolve() (input.Keys, error) {
	var keys input.Keys
	names := [...]string{k.Left, k.Right, k.Up, k.Down, k.Button1, k.Button2}
	for i, code := range input.KeyCodes {
		key, ok := ParseKey(names[i])
		if !ok {
			return keys, fmt.Errorf("%s key %q: %w", code, names[i], ErrUnknownKey)
		}
		if err := keys.Set(key, code); err != nil {
			return keys, err
		}
	}
	return keys, nil
}

func (m MenuSpec) resolve() (input.MenuKeys, error) {
	var menu input.MenuKeys
	fields := []struct {
		name string
		dst  *input.Key
		val  string
	}{
		{"escape", &menu.Escape, m.Escape},
		{"reset_devices", &menu.ResetDevices, m.ResetDevices},
		{"left", &menu.Left, m.Left},
		{"right", &menu.Right, m.Right},
		{"up", &menu.Up, m.Up},
		{"down", &menu.Down, m.Down},
		{"confirm", &menu.Confirm, m.Confirm},
		{"back", &menu.Back, m.Back},
	}
	for _, fd := range fields {
		key, ok := ParseKey(fd.val)
		if !ok {
			return menu, fmt.Errorf("config: menu %s key %q: %w", fd.name, fd.val, ErrUnknownKey)
		}
		*fd.dst = key
	}
	return menu, nil
}

// Validate rejects player bindings that reuse a key within one player or
// that use the menu escape or reset keys.
func Validate(cfg *input.Config) error {
	for i := range cfg.Players {
		seen := make(map[input.Key]input.KeyCode, len(input.KeyCodes))
		for _, code := range input.KeyCodes {
			key, err := cfg.Players[i].Keys.Get(code)
			if err != nil {
				return err
			}
			if key == cfg.Menu.Escape || key == cfg.Menu.ResetDevices {
				return fmt.Errorf("config: player %d %s uses %s: %w", i+1, code, KeyName(key), ErrReservedKey)
			}
			if prev, ok := seen[key]; ok {
				return fmt.Errorf("config: player %d %s and %s both use %s: %w", i+1, prev, code, KeyName(key), ErrDuplicateKey)
			}
			seen[key] = code
		}
	}
	return nil
}

// FromInput builds the on-disk form of cfg and the joystick button maps.
func FromInput(cfg *input.Config, buttons [input.NumJoysticks]ebitenpoll.ButtonMap) *File {
	f := &File{}
	for _, p := range cfg.Players {
		f.Players = append(f.Players, PlayerSpec{
			Device: DeviceName(p.Device),
			Keys: KeysSpec{
				Left:    KeyName(p.Keys.Left),
				Right:   KeyName(p.Keys.Right),
				Up:      KeyName(p.Keys.Up),
				Down:    KeyName(p.Keys.Down),
				Button1: KeyName(p.Keys.Button1),
				Button2: KeyName(p.Keys.Button2),
			},
		})
	}
	for i, b := range buttons {
		f.Joysticks = append(f.Joysticks, JoystickSpec{
			SwapButtons: cfg.Options.SwapButtons[i],
			Button1:     PadName(b.Button1),
			Button2:     PadName(b.Button2),
		})
	}
	m := cfg.Menu
	f.Menu = MenuSpec{
		Escape:       KeyName(m.Escape),
		ResetDevices: KeyName(m.ResetDevices),
		Left:         KeyName(m.Left),
		Right:        KeyName(m.Right),
		Up:           KeyName(m.Up),
		Down:         KeyName(m.Down),
		Confirm:      KeyName(m.Confirm),
		Back:         KeyName(m.Back),
	}
	return f
}
