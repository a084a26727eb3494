// Package animate composes view animations into sequential and parallel
// batches and chains those batches end to end, on top of an [Ebitengine]
// game loop.
//
// # Quick start
//
//	scene := animate.NewScene()
//	box := animate.NewView("box")
//	box.SetCenter(320, 240)
//	box.SetSize(animate.Size{Width: 40, Height: 40})
//	box.Alpha = 0
//	scene.Root().AddChild(box)
//
//	a := scene.Animator()
//	animate.Run(
//		a.AnimateInParallel(box,
//			animate.FadeIn(animate.DefaultDuration),
//			animate.Move(100, 0, 1),
//		),
//		a.Animate(box,
//			animate.Resize(animate.Size{Width: 80, Height: 80}, 0.5),
//			animate.FadeOut(animate.DefaultDuration),
//		),
//	)
//
//	animate.RunGame(scene, animate.RunConfig{Title: "demo", Width: 640, Height: 480})
//
// # Animations
//
// An [Animation] is a duration plus a mutation of a [View]. The mutation only
// writes the end state; the [Executor] decides how to get there. Factories
// cover common effects ([FadeIn], [FadeOut], [Resize], [Move], [MoveTo],
// [Tint]); [New] wraps any mutation. Any type implementing Animation works.
//
// # Tokens
//
// [Animator.Animate] and [Animator.AnimateInParallel] return a [Token]
// without starting anything. [Token.Execute] starts it once; calling it again
// is a no-op that does not call the completion handler. [Run] executes tokens
// one after another, never overlapping two tokens.
//
// A token dropped without being executed still runs, on the next
// [Animator.Update] after the garbage collector notices it. Use
// [Animator.Scope] or [Token.Release] to run such tokens at a known point.
//
// # Executors
//
// [TweenExecutor] interpolates every changed field with [gween] and delivers
// completions from its Update method. [InstantExecutor] applies end states
// immediately. Neither supports cancellation: once submitted, a transition
// runs to its end (or until its view is disposed).
//
// # Scripts
//
// [LoadScript] reads a YAML or JSON chain of steps, and [Script.Tokens]
// turns it into tokens for a view tree.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package animate
