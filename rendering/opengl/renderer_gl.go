package opengl

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"terrainwalker/rendering/opengl/shaders"
)

// TerrainRenderer owns the GLFW window and the uploaded terrain strip mesh,
// and tracks mouse-look state for the first-person view.
type TerrainRenderer struct {
	window *glfw.Window

	program uint32
	mvpLoc  int32

	vao, vbo, ebo uint32
	stripOffsets  []int32
	stripLen      int32

	projMatrix    mgl32.Mat4
	width, height int

	// Mouse look
	yaw, pitch   float32
	lastX, lastY float64
	firstMouse   bool
	front        mgl32.Vec3
	sensitivity  float32
}

// NewTerrainRenderer creates the window, GL context and shader program.
// The caller must have locked the OS thread.
func NewTerrainRenderer(width, height int, title string, mouseSensitivity float32) (*TerrainRenderer, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %v", err)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}
	fmt.Println("OpenGL version:", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	program, err := shaders.CompileTerrainProgram()
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to compile terrain shaders: %v", err)
	}

	r := &TerrainRenderer{
		window:      window,
		program:     program,
		mvpLoc:      gl.GetUniformLocation(program, gl.Str("mvp\x00")),
		projMatrix:  mgl32.Perspective(mgl32.DegToRad(45), float32(width)/float32(height), 0.1, 1000),
		width:       width,
		height:      height,
		yaw:         -90,
		firstMouse:  true,
		front:       mgl32.Vec3{0, 0, -1},
		sensitivity: mouseSensitivity,
	}

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		r.onMouseMove(xpos, ypos)
	})

	return r, nil
}

// UploadMesh creates the vertex/index buffers for the terrain strips. Done
// once; the grid never changes after generation.
func (r *TerrainRenderer) UploadMesh(verts []float32, indices []uint32, stripOffsets []int32, stripLen int32) {
	r.stripOffsets = stripOffsets
	r.stripLen = stripLen

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
}

func (r *TerrainRenderer) onMouseMove(xpos, ypos float64) {
	if r.firstMouse {
		r.lastX, r.lastY = xpos, ypos
		r.firstMouse = false
	}

	xoffset := float32(xpos-r.lastX) * r.sensitivity
	yoffset := float32(r.lastY-ypos) * r.sensitivity // reversed: window y grows downward
	r.lastX, r.lastY = xpos, ypos

	r.yaw += xoffset
	r.pitch += yoffset
	if r.pitch > 89 {
		r.pitch = 89
	}
	if r.pitch < -89 {
		r.pitch = -89
	}

	yawRad := float64(mgl32.DegToRad(r.yaw))
	pitchRad := float64(mgl32.DegToRad(r.pitch))
	r.front = mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}.Normalize()
}

// Front returns the current look direction.
func (r *TerrainRenderer) Front() mgl32.Vec3 {
	return r.front
}

// SetFront overrides the look direction, used once at startup to face the
// initial look-at target. Yaw and pitch are re-derived so the next mouse
// move continues from the same direction.
func (r *TerrainRenderer) SetFront(front mgl32.Vec3) {
	r.front = front.Normalize()
	r.pitch = mgl32.RadToDeg(float32(math.Asin(float64(r.front.Y()))))
	r.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(r.front.Z()), float64(r.front.X()))))
}

// MoveDirection resolves WASD input against the horizontal look direction
// and returns a normalized movement intent on the ground plane (zero when
// no key is held). Escape closes the window.
func (r *TerrainRenderer) MoveDirection() mgl32.Vec3 {
	if r.window.GetKey(glfw.KeyEscape) == glfw.Press {
		r.window.SetShouldClose(true)
	}

	forward := mgl32.Vec3{r.front.X(), 0, r.front.Z()}
	right := r.front.Cross(mgl32.Vec3{0, 1, 0})

	var dir mgl32.Vec3
	if r.window.GetKey(glfw.KeyW) == glfw.Press {
		dir = dir.Add(forward)
	}
	if r.window.GetKey(glfw.KeyS) == glfw.Press {
		dir = dir.Sub(forward)
	}
	if r.window.GetKey(glfw.KeyA) == glfw.Press {
		dir = dir.Sub(right)
	}
	if r.window.GetKey(glfw.KeyD) == glfw.Press {
		dir = dir.Add(right)
	}

	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return dir
}

// Render draws every terrain strip with the given view matrix and swaps
// buffers.
func (r *TerrainRenderer) Render(view mgl32.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	mvp := r.projMatrix.Mul4(view)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, &mvp[0])

	gl.BindVertexArray(r.vao)
	for _, offset := range r.stripOffsets {
		gl.DrawElements(gl.TRIANGLE_STRIP, r.stripLen, gl.UNSIGNED_INT, unsafe.Pointer(uintptr(offset)*4))
	}
	gl.BindVertexArray(0)

	r.window.SwapBuffers()
}

func (r *TerrainRenderer) ShouldClose() bool {
	return r.window.ShouldClose()
}

func (r *TerrainRenderer) PollEvents() {
	glfw.PollEvents()
}

// Terminate destroys the window and GL context.
func (r *TerrainRenderer) Terminate() {
	r.window.Destroy()
	glfw.Terminate()
}
