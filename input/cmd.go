package input

import "strings"

// Cmd is a set of abstract commands produced by one player or the menu in one poll.
type Cmd int

const (
	CmdLeft Cmd = 1 << iota
	CmdRight
	CmdUp
	CmdDown
	CmdButton1
	CmdButton2
	CmdEsc
)

var cmdNames = []struct {
	cmd  Cmd
	name string
}{
	{CmdLeft, "LEFT"},
	{CmdRight, "RIGHT"},
	{CmdUp, "UP"},
	{CmdDown, "DOWN"},
	{CmdButton1, "BUTTON1"},
	{CmdButton2, "BUTTON2"},
	{CmdEsc, "ESC"},
}

// Has reports whether every flag in f is set.
func (c Cmd) Has(f Cmd) bool {
	return c&f == f
}

func (c Cmd) String() string {
	if c == 0 {
		return "NONE"
	}
	parts := make([]string, 0, len(cmdNames))
	for _, n := range cmdNames {
		if c&n.cmd != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseCmd resolves a single flag name, case-insensitively.
func ParseCmd(name string) (Cmd, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, n := range cmdNames {
		if n.name == name {
			return n.cmd, true
		}
	}
	return 0, false
}

// SwapButtons exchanges the BUTTON1 and BUTTON2 bits of c.
func SwapButtons(c Cmd) Cmd {
	out := c &^ (CmdButton1 | CmdButton2)
	if c&CmdButton1 != 0 {
		out |= CmdButton2
	}
	if c&CmdButton2 != 0 {
		out |= CmdButton1
	}
	return out
}
