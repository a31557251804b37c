// xformtool is a CLI utility for inspecting transforms, quaternions and scenes.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Faultbox/gltypes/internal/engine/scene"
	"github.com/Faultbox/gltypes/pkg/math"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "compose", "trs":
		cmdCompose(args)
	case "invert", "inv":
		cmdInvert(args)
	case "quat", "q":
		cmdQuat(args)
	case "frame":
		cmdFrame(args)
	case "pick":
		cmdPick(args)
	case "verify":
		cmdVerify(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`xformtool - transform and quaternion utility

Usage:
  xformtool <command> [options]

Commands:
  compose [-pos x,y,z] [-scale x,y,z] [-axis x,y,z] [-angle rad]
                                 Build a TRS matrix and check its closed-form inverse
  invert <m00> ... <m33>         Invert a 4x4 matrix given in row-major order
  quat [-axis x,y,z] [-angle rad]
                                 Show a rotation as quaternion, matrix and axis/angle
  frame [-t seconds] [-width w] [-height h] [camera options] [scene]
                                 Print per-node uniforms (built-in teapot if no scene)
  pick -x px -y py [-t seconds] [-radius r] [camera options] [scene]
                                 Report the node under a pixel
  verify [-n count] [-seed s]    Check algebra identities on random transforms

Camera options (orbit and follow cameras):
  -yaw px, -pitch px             Drag the camera by pixels
  -pan f,r,u                     Move an orbit camera's center
  -zoom steps                    Scroll towards (+) or away from (-) the center
  -fit                           Frame the node origins before steering

Examples:
  xformtool compose -pos 0,50,0 -scale 0.1,0.1,0.1 -axis 0,1,0 -angle 1.57
  xformtool invert 2 0 0 1  0 2 0 2  0 0 2 3  0 0 0 1
  xformtool quat -axis 1,1,0 -angle 0.5
  xformtool frame -t 2.5 scenes/teapot.yaml
  xformtool pick -x 640 -y 300 -t 1.5
  xformtool frame -fit -yaw 120 -zoom 2 scenes/orbit.toml
  xformtool verify -n 10000 -seed 42`)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdCompose(args []string) {
	fs := flag.NewFlagSet("compose", flag.ExitOnError)
	pos := fs.String("pos", "0,0,0", "Translation")
	scale := fs.String("scale", "1,1,1", "Scale")
	axis := fs.String("axis", "0,1,0", "Rotation axis")
	angle := fs.Float64("angle", 0, "Rotation angle in radians")
	fs.Parse(args)

	p, err := parseVec3(*pos)
	if err != nil {
		fail(fmt.Errorf("-pos: %w", err))
	}
	s, err := parseVec3(*scale)
	if err != nil {
		fail(fmt.Errorf("-scale: %w", err))
	}
	a, err := parseVec3(*axis)
	if err != nil {
		fail(fmt.Errorf("-axis: %w", err))
	}

	q := math.QuatFromAxisAngle(a.Normalize(), *angle)
	m := math.Mat4FromTransform(p, s, q)
	inv := math.Mat4FromInverseTransform(p, s, q)

	fmt.Println("Transform:")
	printMat4(m)
	fmt.Println("Inverse (closed form):")
	printMat4(inv)
	fmt.Printf("Residual |M*M^-1 - I|: %.3g\n", residual(m.Mul(inv)))
}

func cmdInvert(args []string) {
	if len(args) != 16 {
		fmt.Fprintln(os.Stderr, "Usage: xformtool invert <m00> <m01> ... <m33> (16 values, row-major)")
		os.Exit(1)
	}

	var v [16]float64
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fail(fmt.Errorf("value %d: %w", i, err))
		}
		v[i] = f
	}

	m := math.Mat4FromRowMajor([4][4]float64{
		{v[0], v[1], v[2], v[3]},
		{v[4], v[5], v[6], v[7]},
		{v[8], v[9], v[10], v[11]},
		{v[12], v[13], v[14], v[15]},
	})
	inv, err := m.TryInverse()
	if err != nil {
		fail(err)
	}

	fmt.Printf("Determinant: %g\n", m.Determinant())
	fmt.Println("Inverse:")
	printMat4(inv)
}

func cmdQuat(args []string) {
	fs := flag.NewFlagSet("quat", flag.ExitOnError)
	axis := fs.String("axis", "0,1,0", "Rotation axis")
	angle := fs.Float64("angle", 0, "Rotation angle in radians")
	fs.Parse(args)

	a, err := parseVec3(*axis)
	if err != nil {
		fail(fmt.Errorf("-axis: %w", err))
	}
	if a.LengthSquared() == 0 {
		fail(fmt.Errorf("-axis: zero-length axis"))
	}

	q := math.QuatFromAxisAngle(a.Normalize(), *angle)
	gotAxis, gotAngle := math.QuatFromMat3(q.Mat3()).AxisAngle()

	fmt.Printf("Quaternion: r=%.6f i=%.6f j=%.6f k=%.6f\n", q.R, q.I, q.J, q.K)
	fmt.Println("Matrix:")
	printMat3(q.Mat3())
	fmt.Printf("Axis:  %.6f, %.6f, %.6f\n", gotAxis.X, gotAxis.Y, gotAxis.Z)
	fmt.Printf("Angle: %.6f rad (%.2f deg)\n", gotAngle, math.Degrees(gotAngle))
}

func cmdFrame(args []string) {
	fs := flag.NewFlagSet("frame", flag.ExitOnError)
	t := fs.Float64("t", 0, "Time in seconds")
	width := fs.Uint("width", 1280, "Viewport width")
	height := fs.Uint("height", 720, "Viewport height")
	steer := steerFlags(fs)
	fs.Parse(args)

	s := loadScene(fs)
	steer.apply(s, float32(*t))

	proj := math.ViewMatrix3D[float32](uint32(*width), uint32(*height), 1, 1024, 0.1)
	for _, u := range s.Evaluate(float32(*t), proj) {
		fmt.Printf("Node %q origin (%.4f, %.4f, %.4f)\n", u.Name, u.Origin.X, u.Origin.Y, u.Origin.Z)
		fmt.Println("  model:")
		printMat4(math.Mat4(u.Model))
	}

	b := s.Bounds(float32(*t))
	if !b.Empty() {
		fmt.Printf("Origins span (%.4f, %.4f, %.4f) to (%.4f, %.4f, %.4f)\n",
			b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	}
}

func cmdPick(args []string) {
	fs := flag.NewFlagSet("pick", flag.ExitOnError)
	x := fs.Float64("x", 0, "Pixel column")
	y := fs.Float64("y", 0, "Pixel row")
	t := fs.Float64("t", 0, "Time in seconds")
	radius := fs.Float64("radius", 0.5, "Pick radius in world units")
	width := fs.Uint("width", 1280, "Viewport width")
	height := fs.Uint("height", 720, "Viewport height")
	steer := steerFlags(fs)
	fs.Parse(args)

	s := loadScene(fs)
	steer.apply(s, float32(*t))

	proj := math.ViewMatrix3D[float32](uint32(*width), uint32(*height), 1, 1024, 0.1)
	viewport := math.Vec2{X: float32(*width), Y: float32(*height)}
	name, ok, err := s.Pick(float32(*t), proj, math.Vec2{X: float32(*x), Y: float32(*y)}, viewport, float32(*radius))
	if err != nil {
		fail(err)
	}
	if !ok {
		fmt.Println("No node under pixel")
		return
	}
	fmt.Printf("Picked node %q\n", name)
}

// steering holds the camera control flags shared by frame and pick.
type steering struct {
	yaw, pitch, zoom *float64
	pan              *string
	fit              *bool
}

func steerFlags(fs *flag.FlagSet) steering {
	return steering{
		yaw:   fs.Float64("yaw", 0, "Horizontal camera drag in pixels"),
		pitch: fs.Float64("pitch", 0, "Vertical camera drag in pixels"),
		zoom:  fs.Float64("zoom", 0, "Zoom in scroll steps"),
		pan:   fs.String("pan", "0,0,0", "Orbit center movement as forward,right,up"),
		fit:   fs.Bool("fit", false, "Frame node origins first"),
	}
}

func (st steering) apply(s *scene.Scene, t float32) {
	pan, err := parseVec3(*st.pan)
	if err != nil {
		fail(fmt.Errorf("-pan: %w", err))
	}
	s.Steer(scene.Input{
		Drag: math.Vec2{X: float32(*st.yaw), Y: float32(*st.pitch)},
		Pan:  math.ConvertVec3[float32](pan),
		Zoom: float32(*st.zoom),
		Fit:  *st.fit,
	}, t)
}

func loadScene(fs *flag.FlagSet) *scene.Scene {
	if fs.NArg() == 0 {
		return scene.Teapot()
	}
	s, err := scene.Load(fs.Arg(0))
	if err != nil {
		fail(err)
	}
	return s
}

func cmdVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	n := fs.Int("n", 1000, "Number of random transforms")
	seed := fs.Uint64("seed", 1, "Random seed")
	fs.Parse(args)

	failures := verify(*n, *seed)
	for _, f := range failures {
		fmt.Println(f)
	}
	if len(failures) > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d of %d checks failed\n", len(failures), *n)
		os.Exit(1)
	}
	fmt.Printf("All identities hold for %d random transforms (seed %d)\n", *n, *seed)
}

func printMat4[T math.Float](m math.Matrix4[T]) {
	for r := 0; r < 4; r++ {
		row := m.Row(r)
		fmt.Printf("  %12.6f %12.6f %12.6f %12.6f\n", row[0], row[1], row[2], row[3])
	}
}

func printMat3[T math.Float](m math.Matrix3[T]) {
	for r := 0; r < 3; r++ {
		row := m.Row(r)
		fmt.Printf("  %12.6f %12.6f %12.6f\n", row[0], row[1], row[2])
	}
}
