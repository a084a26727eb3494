package animate

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 256

// Scene owns a view tree, the tween executor that animates it, and the
// Animator that creates tokens for it. It plugs into an Ebitengine game loop
// through Update and Draw, or through RunGame.
type Scene struct {
	root     *View
	exec     *TweenExecutor
	animator *Animator
	debug    bool

	// ClearColor fills the screen before views are drawn. The zero value
	// leaves the screen untouched.
	ClearColor Color

	updateFunc func() error
	commands   []drawCommand
}

// NewScene creates a scene with a root view at the world origin, animated by
// a TweenExecutor with the default easing.
func NewScene() *Scene {
	exec := NewTweenExecutor(nil)
	return &Scene{
		root:     NewView("root"),
		exec:     exec,
		animator: NewAnimator(exec),
		commands: make([]drawCommand, 0, defaultCommandCap),
	}
}

// Root returns the scene's root view.
func (s *Scene) Root() *View {
	return s.root
}

// Animator returns the scene's animator. Tokens it creates are animated by
// the scene's executor and advance with Update.
func (s *Scene) Animator() *Animator {
	return s.animator
}

// Executor returns the scene's tween executor.
func (s *Scene) Executor() *TweenExecutor {
	return s.exec
}

// SetUpdateFunc sets a function called at the start of every Update. A
// non-nil error from it is returned by Update (ebiten.Termination ends RunGame).
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances the scene by one tick of 1/TPS seconds.
func (s *Scene) Update() error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.Step(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

// Step advances the scene by dt seconds: dropped tokens are started, in-flight
// transitions advance and deliver their completions, and world state is
// refreshed.
func (s *Scene) Step(dt float32) {
	s.animator.Update()
	s.exec.Update(dt)
	updateWorld(s.root, 0, 0, 1, false)
}

// Draw fills the screen with ClearColor and draws every visible view as a
// tinted rectangle, parents before children.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor != (Color{}) {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.commands = s.commands[:0]
	s.commands = collectCommands(s.root, s.commands)
	submitCommands(screen, s.commands)

	if s.debug {
		s.debugLog(debugStats{
			inFlight:  s.exec.Active(),
			pending:   s.animator.Pending(),
			drawCount: len(s.commands),
		})
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-view
// access panics, token lifecycle is logged, and per-frame stats are written
// to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.animator.SetDebugMode(enabled)
	globalDebug = enabled
}

// RunConfig configures the window opened by RunGame.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	Debug  bool
}

type game struct {
	scene         *Scene
	width, height int
}

func (g *game) Update() error              { return g.scene.Update() }
func (g *game) Draw(screen *ebiten.Image)  { g.scene.Draw(screen) }
func (g *game) Layout(_, _ int) (int, int) { return g.width, g.height }

// RunGame opens a window and drives scene until the window closes or the
// scene's update function returns an error. ebiten.Termination is not
// reported as an error.
func RunGame(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{scene: scene, width: cfg.Width, height: cfg.Height})
}
