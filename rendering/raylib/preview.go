// Package raylib is the preview renderer: the same height grid and physics
// loop as the OpenGL path, drawn through raylib's built-in heightmap mesh.
// Useful for eyeballing generated terrain without the strip-mesh pipeline.
package raylib

import (
	"image"
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"terrainwalker/terrain"
)

// Preview owns the raylib window, the heightmap model and mouse-look state.
type Preview struct {
	model          rl.Model
	camera         rl.Camera3D
	elevationRange float64

	yaw, pitch  float32 // degrees
	sensitivity float32
}

// NewPreview opens the window and builds a heightmap model from the grid.
// Raylib quantizes heights to 8 bits on the way through the image, so the
// preview surface is approximate; physics still queries the exact grid.
func NewPreview(width, height int, title string, grid *terrain.HeightGrid, elevationRange float64, mouseSensitivity float32) *Preview {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(60)
	rl.DisableCursor()

	img := heightImage(grid, elevationRange)
	rlImg := rl.NewImageFromImage(img)
	size := rl.NewVector3(
		float32(float64(grid.Width-1)*grid.Spacing),
		float32(elevationRange),
		float32(float64(grid.Height-1)*grid.Spacing))
	mesh := rl.GenMeshHeightmap(*rlImg, size)
	rl.UnloadImage(rlImg)

	return &Preview{
		model:          rl.LoadModelFromMesh(mesh),
		elevationRange: elevationRange,
		camera: rl.Camera3D{
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       45,
			Projection: rl.CameraPerspective,
		},
		yaw:         -90,
		sensitivity: mouseSensitivity,
	}
}

// heightImage encodes elevations in [-range/2, +range/2] as 8-bit gray.
func heightImage(grid *terrain.HeightGrid, elevationRange float64) image.Image {
	img := image.NewGray(image.Rect(0, 0, grid.Width, grid.Height))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			t := grid.At(x, y)/elevationRange + 0.5
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			img.SetGray(x, y, color.Gray{Y: uint8(t * 255)})
		}
	}
	return img
}

func (p *Preview) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// FrameTime returns the last frame's duration in seconds.
func (p *Preview) FrameTime() float64 {
	return float64(rl.GetFrameTime())
}

// MoveDirection consumes the mouse delta to update the look direction, then
// resolves WASD into a normalized ground-plane movement intent.
func (p *Preview) MoveDirection() (dx, dz float64) {
	delta := rl.GetMouseDelta()
	p.yaw += delta.X * p.sensitivity
	p.pitch -= delta.Y * p.sensitivity
	if p.pitch > 89 {
		p.pitch = 89
	}
	if p.pitch < -89 {
		p.pitch = -89
	}

	yawRad := float64(p.yaw) * math.Pi / 180
	fx, fz := math.Cos(yawRad), math.Sin(yawRad)
	rx, rz := -fz, fx // right = forward rotated 90 degrees

	if rl.IsKeyDown(rl.KeyW) {
		dx += fx
		dz += fz
	}
	if rl.IsKeyDown(rl.KeyS) {
		dx -= fx
		dz -= fz
	}
	if rl.IsKeyDown(rl.KeyA) {
		dx -= rx
		dz -= rz
	}
	if rl.IsKeyDown(rl.KeyD) {
		dx += rx
		dz += rz
	}

	if l := math.Hypot(dx, dz); l > 0 {
		dx /= l
		dz /= l
	}
	return dx, dz
}

// Render draws the terrain model from the given eye position, looking along
// the current mouse-look direction.
func (p *Preview) Render(eyeX, eyeY, eyeZ float64) {
	yawRad := float64(p.yaw) * math.Pi / 180
	pitchRad := float64(p.pitch) * math.Pi / 180
	view := rl.NewVector3(
		float32(math.Cos(yawRad)*math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad)*math.Cos(pitchRad)))

	p.camera.Position = rl.NewVector3(float32(eyeX), float32(eyeY), float32(eyeZ))
	p.camera.Target = rl.Vector3Add(p.camera.Position, view)

	rl.BeginDrawing()
	rl.ClearBackground(rl.SkyBlue)

	rl.BeginMode3D(p.camera)
	// The heightmap mesh's Y range is [0, elevationRange]; shift it down so
	// mesh heights line up with the grid's zero-centered elevations.
	rl.DrawModel(p.model, rl.NewVector3(0, float32(-p.elevationRange/2), 0), 1.0, rl.Lime)
	rl.EndMode3D()

	rl.DrawFPS(10, 10)
	rl.EndDrawing()
}

// Close releases the model and window.
func (p *Preview) Close() {
	rl.UnloadModel(p.model)
	rl.CloseWindow()
}
