package scene

// TeapotFile describes the spinning teapot demo: a pivot scaled to a tenth
// and spun around all three axes, with the teapot hung 50 units above it.
func TeapotFile() *File {
	tenth := [3]float32{0.1, 0.1, 0.1}
	return &File{
		Camera: CameraDef{
			Kind:     CameraTransform,
			Position: [3]float32{0, 0, -20},
		},
		Light: [3]float32{1, 1, -1},
		Nodes: []NodeDef{
			{
				Name:  "spin",
				Scale: &tenth,
				Spin:  [3]float32{0.5, 1, 0.25},
			},
			{
				Name:     "teapot",
				Parent:   "spin",
				Position: [3]float32{0, 50, 0},
			},
		},
	}
}

// Teapot returns the built-in demo scene.
func Teapot() *Scene {
	s, err := Build(TeapotFile())
	if err != nil {
		panic(err)
	}
	return s
}
