package main

import (
	"fmt"

	"github.com/milk9111/padcmd/config"
	"github.com/milk9111/padcmd/input"
)

type rowKind int

const (
	rowDevice rowKind = iota
	rowBinding
	rowSwap
	rowArena
	rowCopy
	rowSave
	rowQuit
)

type settingsRow struct {
	kind   rowKind
	player int
	code   input.KeyCode
	joy    input.Joystick
}

// settingsActions are the side effects the settings rows can trigger.
type settingsActions struct {
	arena func()
	copy  func() error
	save  func() error
	quit  func()
}

// settingsModel is the menu state behind the settings screen. It edits cfg
// in place.
type settingsModel struct {
	cfg       *input.Config
	actions   settingsActions
	rows      []settingsRow
	cursor    int
	capturing bool
	status    string
}

func newSettingsModel(cfg *input.Config, actions settingsActions) *settingsModel {
	m := &settingsModel{cfg: cfg, actions: actions}
	for p := range cfg.Players {
		m.rows = append(m.rows, settingsRow{kind: rowDevice, player: p})
		for _, code := range input.KeyCodes {
			m.rows = append(m.rows, settingsRow{kind: rowBinding, player: p, code: code})
		}
	}
	for j := input.Joystick1; j <= input.Joystick2; j++ {
		m.rows = append(m.rows, settingsRow{kind: rowSwap, joy: j})
	}
	m.rows = append(m.rows,
		settingsRow{kind: rowArena},
		settingsRow{kind: rowCopy},
		settingsRow{kind: rowSave},
		settingsRow{kind: rowQuit},
	)
	return m
}

func cycleDevice(d input.Device, step int) input.Device {
	const n = 3
	return input.Device(((int(d)+step)%n + n) % n)
}

// apply handles one menu command.
func (m *settingsModel) apply(cmd input.Cmd) {
	if cmd == 0 || m.capturing {
		return
	}
	if cmd.Has(input.CmdEsc) {
		m.actions.quit()
		return
	}

	switch {
	case cmd.Has(input.CmdUp):
		m.cursor = (m.cursor - 1 + len(m.rows)) % len(m.rows)
	case cmd.Has(input.CmdDown):
		m.cursor = (m.cursor + 1) % len(m.rows)
	}

	row := m.rows[m.cursor]
	switch {
	case cmd.Has(input.CmdLeft):
		m.adjust(row, -1)
	case cmd.Has(input.CmdRight):
		m.adjust(row, 1)
	}

	if cmd.Has(input.CmdButton1) {
		m.activate(row)
	}
	if cmd.Has(input.CmdButton2) {
		m.status = ""
	}
}

func (m *settingsModel) adjust(row settingsRow, step int) {
	switch row.kind {
	case rowDevice:
		p := &m.cfg.Players[row.player]
		p.Device = cycleDevice(p.Device, step)
	case rowSwap:
		m.cfg.Options.SwapButtons[row.joy] = !m.cfg.Options.SwapButtons[row.joy]
	}
}

func (m *settingsModel) activate(row settingsRow) {
	switch row.kind {
	case rowDevice, rowSwap:
		m.adjust(row, 1)
	case rowBinding:
		m.capturing = true
		m.status = fmt.Sprintf("press a key for player %d %s (%s cancels)", row.player+1, row.code, config.KeyName(m.cfg.Menu.Escape))
	case rowArena:
		m.actions.arena()
	case rowCopy:
		m.report(m.actions.copy(), "bindings copied to clipboard")
	case rowSave:
		m.report(m.actions.save(), "bindings saved")
	case rowQuit:
		m.actions.quit()
	}
}

func (m *settingsModel) report(err error, ok string) {
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = ok
}

// capture binds k to the row under the cursor. The escape key cancels, and
// a binding that fails validation is rolled back.
func (m *settingsModel) capture(k input.Key) {
	if !m.capturing {
		return
	}
	m.capturing = false
	if k == m.cfg.Menu.Escape {
		m.status = "rebind cancelled"
		return
	}

	row := m.rows[m.cursor]
	keys := &m.cfg.Players[row.player].Keys
	old, err := keys.Get(row.code)
	if err != nil {
		m.status = err.Error()
		return
	}
	if err := keys.Set(k, row.code); err != nil {
		m.status = err.Error()
		return
	}
	if err := config.Validate(m.cfg); err != nil {
		_ = keys.Set(old, row.code)
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("player %d %s bound to %s", row.player+1, row.code, config.KeyName(k))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (m *settingsModel) label(i int) string {
	row := m.rows[i]
	var s string
	switch row.kind {
	case rowDevice:
		s = fmt.Sprintf("Player %d device: %s", row.player+1, m.cfg.Players[row.player].Device)
	case rowBinding:
		key, _ := m.cfg.Players[row.player].Keys.Get(row.code)
		name := config.KeyName(key)
		if m.capturing && i == m.cursor {
			name = "..."
		}
		s = fmt.Sprintf("Player %d %s: %s", row.player+1, row.code, name)
	case rowSwap:
		s = fmt.Sprintf("Joystick %d swap buttons: %s", int(row.joy)+1, onOff(m.cfg.Options.SwapButtons[row.joy]))
	case rowArena:
		s = "Test arena"
	case rowCopy:
		s = "Copy bindings to clipboard"
	case rowSave:
		s = "Save"
	case rowQuit:
		s = "Quit"
	}
	if i == m.cursor {
		return "> " + s
	}
	return "  " + s
}

func (m *settingsModel) labels() []string {
	out := make([]string, len(m.rows))
	for i := range m.rows {
		out[i] = m.label(i)
	}
	return out
}
