package gamebox

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxFPS caps the tick rate. Teaching games that ask for more are clamped,
// with a warning, rather than rejected.
const maxFPS = 60

var (
	loopFrozen  bool
	loopStopped bool
)

// FreezeLoop stops the per-tick callback from running. The window stays
// open and responsive: Escape or closing the window still ends the loop.
func FreezeLoop() { loopFrozen = true }

// StopLoop ends the running loop after the current tick.
func StopLoop() { loopStopped = true }

// loopGame adapts the fixed-timestep tick loop to Ebitengine's game
// interface. Key state is tracked edge-wise into the camera's key set, so
// the set holds exactly the keys currently down.
type loopGame struct {
	tick   func()
	fps    int
	limit  int // 0 means no limit
	frames int
	// reached records that the loop ended because it hit its frame limit
	// rather than because the player quit.
	reached bool

	justPressed  []Key
	justReleased []Key
}

func (g *loopGame) Update() error {
	g.justPressed = inpututil.AppendJustPressedKeys(g.justPressed[:0])
	for _, k := range g.justPressed {
		current.keys[k] = true
	}
	g.justReleased = inpututil.AppendJustReleasedKeys(g.justReleased[:0])
	for _, k := range g.justReleased {
		delete(current.keys, k)
	}

	if loopStopped || current.keys.Pressed(KeyEscape) {
		return ebiten.Termination
	}
	if loopFrozen {
		return nil
	}

	current.update(1 / float32(g.fps))
	g.tick()
	g.frames++
	if loopStopped {
		return ebiten.Termination
	}
	if g.limit > 0 && g.frames >= g.limit {
		g.reached = true
		return ebiten.Termination
	}
	return nil
}

func (g *loopGame) Draw(screen *ebiten.Image) {
	screen.DrawImage(current.front, nil)
}

func (g *loopGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return current.w, current.h
}

// TimerLoop runs tick at a fixed rate of fps times per second until the
// player presses Escape, closes the window, or the game calls StopLoop.
// Each tick the game draws into the Camera and calls Display; the loop
// presents the displayed frame. A Camera must exist first.
func TimerLoop(fps int, tick func()) error {
	_, err := TimerLoopLimit(fps, tick, 0)
	return err
}

// TimerLoopLimit is TimerLoop with an upper bound on the number of ticks.
// It reports whether the loop ended by reaching the limit (true) or by the
// player quitting (false).
func TimerLoopLimit(fps int, tick func(), limit int) (bool, error) {
	if current == nil {
		return false, &InvalidArgumentError{Reason: "a Camera is required before starting the loop"}
	}
	if fps < 1 {
		fps = 1
	}
	if fps > maxFPS {
		logger.Warn().Int("fps", fps).Int("max", maxFPS).Msg("frame rate capped")
		fps = maxFPS
	}
	loopFrozen = false
	loopStopped = false

	ebiten.SetTPS(fps)
	g := &loopGame{tick: tick, fps: fps, limit: limit}
	logger.Debug().Int("fps", fps).Int("limit", limit).Msg("loop starting")
	if err := ebiten.RunGame(g); err != nil {
		return g.reached, err
	}
	logger.Debug().Int("frames", g.frames).Bool("reached", g.reached).Msg("loop finished")
	return g.reached, nil
}
