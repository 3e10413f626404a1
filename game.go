package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/padcmd/common"
	"github.com/milk9111/padcmd/config"
	"github.com/milk9111/padcmd/input"
	"github.com/milk9111/padcmd/input/ebitenpoll"
	"golang.design/x/clipboard"
)

type screenID int

const (
	screenSettings screenID = iota
	screenArena
)

type Game struct {
	frames int
	debug  bool

	bindingsPath string
	cfg          *input.Config
	joys         *ebitenpoll.Joysticks
	reader       *input.Reader
	watcher      *config.Watcher
	clipboardOK  bool

	screen   screenID
	settings *SettingsScreen
	arena    *Arena
	quit     bool

	held    [2]input.Cmd
	pressed [2]input.Cmd
}

func NewGame(bindingsPath string, debug bool) (*Game, error) {
	f, err := config.Load(bindingsPath)
	if err != nil {
		return nil, err
	}
	cfg, err := f.Input()
	if err != nil {
		return nil, err
	}
	buttons, err := f.ButtonMaps()
	if err != nil {
		return nil, err
	}

	joys := ebitenpoll.NewJoysticks()
	joys.Buttons = buttons

	g := &Game{
		debug:        debug,
		bindingsPath: bindingsPath,
		cfg:          cfg,
		joys:         joys,
		reader:       input.NewReader(cfg, ebitenpoll.Keyboard{}, joys),
		arena:        NewArena(),
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	model := newSettingsModel(cfg, settingsActions{
		arena: func() { g.screen = screenArena },
		copy:  g.copyBindings,
		save:  g.saveBindings,
		quit:  func() { g.quit = true },
	})
	g.settings = NewSettingsScreen(model, joys)

	if w, err := config.NewWatcher(bindingsPath); err != nil {
		log.Printf("config: not watching %s: %v", bindingsPath, err)
	} else {
		g.watcher = w
	}
	return g, nil
}

func (g *Game) file() *config.File {
	return config.FromInput(g.cfg, g.joys.Buttons)
}

func (g *Game) saveBindings() error {
	return config.Save(g.bindingsPath, g.file())
}

func (g *Game) copyBindings() error {
	if !g.clipboardOK {
		return errors.New("clipboard unavailable")
	}
	data, err := config.Marshal(g.file())
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

// reload replaces the bindings in place so the reader keeps its pointer. A
// broken or empty file is logged and ignored; an empty file is usually a save
// caught halfway.
func (g *Game) reload() {
	if fi, err := os.Stat(g.bindingsPath); err == nil && fi.Size() == 0 {
		log.Printf("config: reload %s: empty file, keeping current bindings", g.bindingsPath)
		return
	}
	f, err := config.Load(g.bindingsPath)
	if err != nil {
		log.Printf("config: reload %s: %v", g.bindingsPath, err)
		return
	}
	cfg, err := f.Input()
	if err != nil {
		log.Printf("config: reload %s: %v", g.bindingsPath, err)
		return
	}
	buttons, err := f.ButtonMaps()
	if err != nil {
		log.Printf("config: reload %s: %v", g.bindingsPath, err)
		return
	}
	*g.cfg = *cfg
	g.joys.Buttons = buttons
	if g.debug {
		log.Printf("config: reloaded %s", g.bindingsPath)
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("config: watch %s: %v", g.bindingsPath, err)
		default:
			return
		}
	}
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.frames++

	g.pollWatcher()
	g.joys.Update()

	switch g.screen {
	case screenSettings:
		g.settings.Update(g.reader)
	case screenArena:
		if g.reader.Keyboard.KeyPressed(g.cfg.Menu.Escape) {
			g.screen = screenSettings
			break
		}
		g.reader.PlayerCmd(&g.held[0], &g.held[1], input.Held)
		g.reader.PlayerCmd(&g.pressed[0], &g.pressed[1], input.Pressed)
		g.arena.Update(g.held, g.pressed)
	}

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.screen {
	case screenSettings:
		g.settings.Draw(screen)
	case screenArena:
		g.arena.Draw(screen)
		for i, p := range g.cfg.Players {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("P%d [%s] %s", i+1, p.Device, g.held[i]), 10, common.BaseHeight-40+i*16)
		}
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
