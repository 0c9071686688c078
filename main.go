package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"terrainwalker/config"
	"terrainwalker/physics"
	"terrainwalker/rendering"
	"terrainwalker/rendering/opengl"
	rlpreview "terrainwalker/rendering/raylib"
	"terrainwalker/terrain"
)

func main() {
	runtime.LockOSThread()

	var (
		rendererName = flag.String("renderer", "gl", "Renderer backend (gl, raylib)")
		serve        = flag.Bool("serve", false, "Stream mesh and player telemetry over websocket")
		width        = flag.Int("width", 0, "Window width (overrides settings)")
		height       = flag.Int("height", 0, "Window height (overrides settings)")
	)
	flag.Parse()

	settings, err := config.Load("settings.json")
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *width > 0 {
		settings.Window.Width = *width
	}
	if *height > 0 {
		settings.Window.Height = *height
	}

	fmt.Println("=== Terrain Walker ===")
	fmt.Printf("Grid: %dx%d, spacing %.1f\n",
		settings.Terrain.GridWidth, settings.Terrain.GridHeight, settings.Terrain.Spacing)
	fmt.Printf("Noise: %s (octaves %d, persistence %.2f)\n",
		settings.Terrain.Noise, settings.Terrain.Octaves, settings.Terrain.Persistence)
	fmt.Printf("Renderer: %s\n", *rendererName)

	field, err := newField(settings.Terrain)
	if err != nil {
		log.Fatalf("Failed to create noise field: %v", err)
	}

	// The grid is built once here and shared read-only with everything
	// below: sampler, spawn scan, mesh builders, telemetry.
	grid := terrain.Generate(field,
		settings.Terrain.GridWidth, settings.Terrain.GridHeight,
		settings.Terrain.Scale, settings.Terrain.ElevationRange, settings.Terrain.Spacing)
	sampler := terrain.NewSampler(grid)

	sx, sy, sz := terrain.FindSpawn(grid,
		settings.Player.CapsuleHeight, settings.Player.CapsuleRadius,
		settings.Player.FlatnessThreshold)
	fmt.Printf("Spawn: (%.1f, %.1f, %.1f)\n", sx, sy, sz)

	capsule := physics.NewCapsuleCollider(sx, sy, sz,
		settings.Player.CapsuleHeight, settings.Player.CapsuleRadius)
	capsule.Gravity = settings.Player.Gravity

	verts := terrain.BuildVertices(grid)
	indices, stripOffsets := terrain.BuildStripIndices(grid.Width, grid.Height)

	var telemetry *TelemetryServer
	if *serve {
		telemetry = NewTelemetryServer(grid, verts, indices,
			settings.Server.Port, settings.Server.UpdateIntervalMs)
		telemetry.Start()
	}

	limiter := physics.NewStepLimiter(settings.Player.MaxStep)

	switch *rendererName {
	case "gl":
		runOpenGL(settings, grid, sampler, capsule, limiter, telemetry, verts, indices, stripOffsets)
	case "raylib":
		runPreview(settings, grid, sampler, capsule, limiter, telemetry)
	default:
		log.Fatalf("Unknown renderer: %s", *rendererName)
	}
}

// newField builds the noise field named by the settings. The trig fractal
// is the reference construction; perlin and simplex trade determinism of
// shape for better-looking terrain.
func newField(ts config.TerrainSettings) (terrain.Field, error) {
	switch ts.Noise {
	case "trig":
		return terrain.FractalNoise{
			Octaves:       ts.Octaves,
			Persistence:   ts.Persistence,
			BaseFrequency: ts.BaseFrequency,
			BaseAmplitude: ts.BaseAmplitude,
		}, nil
	case "perlin":
		return terrain.NewPerlinField(ts.Seed), nil
	case "simplex":
		return terrain.NewSimplexField(ts.Seed), nil
	default:
		return nil, fmt.Errorf("unknown noise field %q", ts.Noise)
	}
}

func runOpenGL(settings config.Settings, grid *terrain.HeightGrid, sampler terrain.Sampler,
	capsule *physics.CapsuleCollider, limiter physics.StepLimiter, telemetry *TelemetryServer,
	verts []float32, indices []uint32, stripOffsets []int32) {

	renderer, err := opengl.NewTerrainRenderer(
		settings.Window.Width, settings.Window.Height, settings.Window.Title,
		float32(settings.Player.MouseSensitivity))
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Terminate()

	renderer.UploadMesh(verts, indices, stripOffsets, int32(2*grid.Width))

	camera := rendering.NewCamera(mgl32.Vec3{
		float32(capsule.X),
		float32(capsule.Y+capsule.Radius) + float32(settings.Player.EyeOffset),
		float32(capsule.Z),
	})

	// Face a point a little ahead on the terrain surface; the bilinear
	// query keeps the initial look target on the visible mesh.
	lookX := capsule.X + 10
	lookY := sampler.InterpolatedHeightAt(lookX, capsule.Z)
	front := mgl32.Vec3{
		float32(lookX) - camera.Position.X(),
		float32(lookY) - camera.Position.Y(),
		float32(capsule.Z) - camera.Position.Z(),
	}.Normalize()
	renderer.SetFront(front)

	lastTime := time.Now()
	frameCount := 0
	lastFPSTime := time.Now()

	for !renderer.ShouldClose() {
		renderer.PollEvents()

		now := time.Now()
		dt := limiter.Clamp(now.Sub(lastTime).Seconds())
		lastTime = now

		dir := renderer.MoveDirection()
		speed := settings.Player.MoveSpeed
		capsule.MoveHorizontal(float64(dir.X())*speed*dt, float64(dir.Z())*speed*dt)
		capsule.Update(dt, sampler.HeightAt)

		camera.ViewDir = renderer.Front()
		camera.FollowCapsule(capsule, float32(settings.Player.EyeOffset))
		renderer.Render(camera.ViewMatrix())

		if telemetry != nil {
			telemetry.UpdatePlayer(capsule)
		}

		frameCount++
		if now.Sub(lastFPSTime).Seconds() >= 1.0 {
			fps := float64(frameCount) / now.Sub(lastFPSTime).Seconds()
			fmt.Printf("\rFPS: %.1f | Pos: (%.1f, %.1f, %.1f)", fps, capsule.X, capsule.Y, capsule.Z)
			frameCount = 0
			lastFPSTime = now
		}
	}
	fmt.Println()
}

func runPreview(settings config.Settings, grid *terrain.HeightGrid, sampler terrain.Sampler,
	capsule *physics.CapsuleCollider, limiter physics.StepLimiter, telemetry *TelemetryServer) {

	preview := rlpreview.NewPreview(
		settings.Window.Width, settings.Window.Height, settings.Window.Title,
		grid, settings.Terrain.ElevationRange,
		float32(settings.Player.MouseSensitivity))
	defer preview.Close()

	for !preview.ShouldClose() {
		dt := limiter.Clamp(preview.FrameTime())

		dx, dz := preview.MoveDirection()
		speed := settings.Player.MoveSpeed
		capsule.MoveHorizontal(dx*speed*dt, dz*speed*dt)
		capsule.Update(dt, sampler.HeightAt)

		eyeY := capsule.Y + capsule.Radius + settings.Player.EyeOffset
		preview.Render(capsule.X, eyeY, capsule.Z)

		if telemetry != nil {
			telemetry.UpdatePlayer(capsule)
		}
	}
}
