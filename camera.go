package yuletide

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
)

// CameraConfig describes the perspective camera and its orbit behavior.
type CameraConfig struct {
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
	FOV      float64 `yaml:"fov"` // vertical field of view, degrees
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`

	// Polar is the pinned polar angle (radians from +Y). π/2 keeps the
	// camera on the horizontal plane through Target.
	Polar           float64 `yaml:"polar"`
	RotateSpeed     float64 `yaml:"rotateSpeed"`
	AutoRotateSpeed float64 `yaml:"autoRotateSpeed"`
	// DampingFrequency and DampingRatio tune the spring that eases the
	// azimuth toward its goal.
	DampingFrequency float64 `yaml:"dampingFrequency"`
	DampingRatio     float64 `yaml:"dampingRatio"`
}

// DefaultCameraConfig returns the stock framing of the tree.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position:         Vec3{X: 0, Y: 4, Z: 20},
		FOV:              40,
		Near:             0.1,
		Far:              1000,
		Polar:            math.Pi / 2,
		RotateSpeed:      1,
		AutoRotateSpeed:  0.8,
		DampingFrequency: 8,
		DampingRatio:     1,
	}
}

// Camera is a perspective camera looking at a target point.
type Camera struct {
	Position Vec3
	Target   Vec3
	FOV      float64
	Near     float64
	Far      float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	viewProj mgl64.Mat4
	view     mgl64.Mat4
	dirty    bool
}

// NewCamera creates a camera from cfg rendering into viewport.
func NewCamera(cfg CameraConfig, viewport Rect) *Camera {
	return &Camera{
		Position: cfg.Position,
		Target:   cfg.Target,
		FOV:      cfg.FOV,
		Near:     cfg.Near,
		Far:      cfg.Far,
		Viewport: viewport,
		dirty:    true,
	}
}

// SetViewport changes the output rectangle (e.g. on window resize).
func (c *Camera) SetViewport(vp Rect) {
	if vp != c.Viewport {
		c.Viewport = vp
		c.dirty = true
	}
}

// MarkDirty forces a recomputation of the view-projection matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

func (c *Camera) computeMatrices() {
	if !c.dirty {
		return
	}
	c.dirty = false

	aspect := 1.0
	if c.Viewport.Height > 0 {
		aspect = c.Viewport.Width / c.Viewport.Height
	}
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
	c.view = mgl64.LookAtV(
		mgl64.Vec3{c.Position.X, c.Position.Y, c.Position.Z},
		mgl64.Vec3{c.Target.X, c.Target.Y, c.Target.Z},
		mgl64.Vec3{0, 1, 0},
	)
	c.viewProj = proj.Mul4(c.view)
}

// Project converts a world-space point to screen coordinates. depth is the
// distance along the view axis (positive in front of the camera) and is
// what point sizes are attenuated by. ok is false for points at or behind
// the near plane.
func (c *Camera) Project(p Vec3) (screen Vec2, depth float64, ok bool) {
	c.computeMatrices()
	clip := c.viewProj.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	w := clip.W()
	if w <= c.Near {
		return Vec2{}, w, false
	}
	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	screen = Vec2{
		X: c.Viewport.X + (ndcX+1)/2*c.Viewport.Width,
		Y: c.Viewport.Y + (1-ndcY)/2*c.Viewport.Height,
	}
	return screen, w, true
}

// PixelsPerUnit returns how many screen pixels one world unit spans at the
// given view depth.
func (c *Camera) PixelsPerUnit(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	focal := c.Viewport.Height / (2 * math.Tan(c.FOV*math.Pi/360))
	return focal / depth
}

// Right returns the camera's world-space right vector, used to billboard
// flat geometry toward the viewer.
func (c *Camera) Right() Vec3 {
	c.computeMatrices()
	return Vec3{X: c.view.At(0, 0), Y: c.view.At(0, 1), Z: c.view.At(0, 2)}
}

// Up returns the camera's world-space up vector.
func (c *Camera) Up() Vec3 {
	c.computeMatrices()
	return Vec3{X: c.view.At(1, 0), Y: c.view.At(1, 1), Z: c.view.At(1, 2)}
}

// OrbitControl rotates a camera around its target on a fixed polar angle.
// Zoom and pan are not supported. Drag input moves a goal azimuth; a
// critically damped spring carries the actual azimuth toward it.
type OrbitControl struct {
	// Enabled gates drag rotation.
	Enabled bool
	// AutoRotate spins the goal azimuth at AutoRotateSpeed.
	AutoRotate bool

	cfg     CameraConfig
	cam     *Camera
	radius  float64
	azimuth float64
	goal    float64
	vel     float64

	spring   harmonica.Spring
	springDt float64
}

// NewOrbitControl attaches an orbit control to cam. The camera is snapped
// onto the pinned polar angle immediately, keeping its distance and
// azimuth around the target.
func NewOrbitControl(cam *Camera, cfg CameraConfig) *OrbitControl {
	off := cam.Position.Sub(cam.Target)
	az := math.Atan2(off.X, off.Z)
	o := &OrbitControl{
		cfg:     cfg,
		cam:     cam,
		radius:  off.Len(),
		azimuth: az,
		goal:    az,
	}
	o.apply()
	return o
}

// Azimuth returns the current azimuth in radians.
func (o *OrbitControl) Azimuth() float64 { return o.azimuth }

// Goal returns the azimuth the control is easing toward.
func (o *OrbitControl) Goal() float64 { return o.goal }

// Radius returns the fixed orbit distance.
func (o *OrbitControl) Radius() float64 { return o.radius }

// Rotate applies a horizontal drag of dx pixels. A drag across the full
// viewport height turns the camera one full revolution. No-op when disabled.
func (o *OrbitControl) Rotate(dx float64) {
	if !o.Enabled {
		return
	}
	h := o.cam.Viewport.Height
	if h <= 0 {
		return
	}
	o.goal -= 2 * math.Pi * dx / h * o.cfg.RotateSpeed
}

// Update advances auto-rotation and damping by dt seconds.
func (o *OrbitControl) Update(dt float64) {
	if dt <= 0 {
		return
	}
	if o.AutoRotate {
		o.goal -= 2 * math.Pi / 60 * o.cfg.AutoRotateSpeed * dt
	}
	if o.springDt != dt {
		o.spring = harmonica.NewSpring(dt, o.cfg.DampingFrequency, o.cfg.DampingRatio)
		o.springDt = dt
	}
	o.azimuth, o.vel = o.spring.Update(o.azimuth, o.vel, o.goal)
	o.apply()
}

// apply writes the spherical orbit position back to the camera.
func (o *OrbitControl) apply() {
	sinP := math.Sin(o.cfg.Polar)
	o.cam.Position = Vec3{
		X: o.cam.Target.X + o.radius*sinP*math.Sin(o.azimuth),
		Y: o.cam.Target.Y + o.radius*math.Cos(o.cfg.Polar),
		Z: o.cam.Target.Z + o.radius*sinP*math.Cos(o.azimuth),
	}
	o.cam.MarkDirty()
}
