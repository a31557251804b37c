package logger

import (
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/gltypes/pkg/math"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Log
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })
	return logs
}

func TestVectorFields(t *testing.T) {
	logs := observe(t)

	Debug("vectors",
		Vector2("v2", math.Vec2{X: 1, Y: 2}),
		Vector3("v3", math.DVec3{X: 1, Y: 2, Z: 3}),
		Vector4("v4", math.Vec4{X: 1, Y: 2, Z: 3, W: 4}),
	)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()

	tests := []struct {
		key  string
		want []interface{}
	}{
		{"v2", []interface{}{1.0, 2.0}},
		{"v3", []interface{}{1.0, 2.0, 3.0}},
		{"v4", []interface{}{1.0, 2.0, 3.0, 4.0}},
	}
	for _, tt := range tests {
		if !reflect.DeepEqual(ctx[tt.key], tt.want) {
			t.Errorf("%s: got %#v, want %#v", tt.key, ctx[tt.key], tt.want)
		}
	}
}

func TestMatrixFieldIsRowMajor(t *testing.T) {
	logs := observe(t)

	m := math.Mat4FromPosition(math.Vec3{X: 5, Y: 6, Z: 7})
	Info("model", Matrix4("m", m))

	got := logs.All()[0].ContextMap()["m"]
	want := []interface{}{
		[]interface{}{1.0, 0.0, 0.0, 5.0},
		[]interface{}{0.0, 1.0, 0.0, 6.0},
		[]interface{}{0.0, 0.0, 1.0, 7.0},
		[]interface{}{0.0, 0.0, 0.0, 1.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}

	m3 := math.Mat3FromValues[float32](1, 2, 3, 4, 5, 6, 7, 8, 9)
	Info("normal", Matrix3("n", m3))
	got = logs.All()[1].ContextMap()["n"]
	want = []interface{}{
		[]interface{}{1.0, 2.0, 3.0},
		[]interface{}{4.0, 5.0, 6.0},
		[]interface{}{7.0, 8.0, 9.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestQuaternionField(t *testing.T) {
	logs := observe(t)

	Warn("rotation", Quaternion("q", math.QuatIdentity))

	got := logs.All()[0].ContextMap()["q"]
	want := map[string]interface{}{"r": 1.0, "i": 0.0, "j": 0.0, "k": 0.0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}
