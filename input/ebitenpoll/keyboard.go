package ebitenpoll

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/padcmd/input"
)

// Keyboard reads the ebiten keyboard. input.Key values are ebiten.Key values.
type Keyboard struct{}

func (Keyboard) KeyPressed(k input.Key) bool {
	return inpututil.IsKeyJustPressed(ebiten.Key(k))
}

func (Keyboard) KeyHeld(k input.Key) bool {
	return ebiten.IsKeyPressed(ebiten.Key(k))
}

// FirstPressedKey returns a key that went down this frame, for rebinding.
func FirstPressedKey() (input.Key, bool) {
	keys := inpututil.AppendJustPressedKeys(nil)
	if len(keys) == 0 {
		return 0, false
	}
	return input.Key(keys[0]), true
}
