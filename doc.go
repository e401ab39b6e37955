// Package gamebox is a small 2D game library for teaching, built on
// [Ebitengine].
//
// Everything on screen is a [SpriteBox]: an image, rendered text, or a
// solid-colored rectangle, addressed by the box that contains it. A single
// [Camera] is the window into the world, and [TimerLoop] runs the game at a
// fixed tick rate.
//
// # Quick start
//
//	cam, _ := gamebox.NewCamera(800, 600)
//	ball := gamebox.FromCircle(400, 100, gamebox.NamedColor("red"), 20)
//	ball.SpeedY = 3
//
//	gamebox.TimerLoop(30, func() {
//		ball.MoveSpeed()
//		if ball.Bottom() > cam.Bottom() {
//			ball.SetBottom(cam.Bottom())
//			ball.SpeedY = -ball.SpeedY
//		}
//		cam.Clear(gamebox.NamedColor("black"))
//		cam.Draw(ball)
//		cam.Display()
//	})
//
// # Images
//
// Boxes load images by file path or URL ([FromImage]); URLs are downloaded
// next to the program and reused on later runs. Every flip, scale, and
// rotation of an image is computed once and cached for the life of the
// process, so moving a box or re-applying the same transform is free.
//
// # Collision
//
// Boxes collide as axis-aligned rectangles. [SpriteBox.Touches] answers
// yes/no, [SpriteBox.Overlap] returns the smallest push that separates two
// boxes, and [SpriteBox.MoveToStopOverlapping] applies it while stopping
// motion into the obstacle, which is enough for platformer floors and walls.
//
// [Ebitengine]: https://ebitengine.org
package gamebox
