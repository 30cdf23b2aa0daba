package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Key repeat for direction keys, in ticks. The delay matches the tanks
// controller hold so a held key moves without a stutter.
const (
	repeatDelay    = 8
	repeatInterval = 2
)

// keyboard reports key state. ebitenKeyboard reads the live window; tests
// substitute a fake.
type keyboard interface {
	// Duration returns how many ticks k has been held, 0 when released.
	Duration(k ebiten.Key) int
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) Duration(k ebiten.Key) int {
	return inpututil.KeyPressDuration(k)
}

// trigger decides on which ticks a held key emits its action.
type trigger int

const (
	triggerPress  trigger = iota // first tick only
	triggerRepeat                // first tick, then repeating after a delay
	triggerHold                  // every tick while held
)

func (t trigger) fires(d int) bool {
	switch {
	case d <= 0:
		return false
	case t == triggerHold:
		return true
	case t == triggerRepeat:
		return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0)
	default:
		return d == 1
	}
}

type binding struct {
	action core.Action
	keys   []ebiten.Key
	when   trigger
}

var bindings = []binding{
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, triggerRepeat},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, triggerRepeat},
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, triggerRepeat},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, triggerRepeat},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}, triggerHold},
	{core.ActionCycle, []ebiten.Key{ebiten.KeyC, ebiten.KeyTab}, triggerPress},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter}, triggerPress},
	{core.ActionBack, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyB}, triggerPress},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}, triggerPress},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}, triggerPress},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}, triggerPress},
}

// readInput builds the input frame for one tick.
func readInput(kb keyboard) core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if b.when.fires(kb.Duration(k)) {
				in.Set(b.action)
				break
			}
		}
	}
	return in
}
