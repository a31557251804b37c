package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/gltypes/pkg/math"
)

// floats marshals a fixed list of components as a JSON-style array.
type floats []float64

func (f floats) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, v := range f {
		enc.AppendFloat64(v)
	}
	return nil
}

// rows marshals a matrix as an array of row arrays so it reads the way it
// is written on paper.
type rows [][]float64

func (r rows) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, row := range r {
		if err := enc.AppendArray(floats(row)); err != nil {
			return err
		}
	}
	return nil
}

type quaternion struct {
	r, i, j, k float64
}

func (q quaternion) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("r", q.r)
	enc.AddFloat64("i", q.i)
	enc.AddFloat64("j", q.j)
	enc.AddFloat64("k", q.k)
	return nil
}

// Vector2 logs a vector as [x, y].
func Vector2[T math.Float](key string, v math.Vector2[T]) zap.Field {
	return zap.Array(key, floats{float64(v.X), float64(v.Y)})
}

// Vector3 logs a vector as [x, y, z].
func Vector3[T math.Float](key string, v math.Vector3[T]) zap.Field {
	return zap.Array(key, floats{float64(v.X), float64(v.Y), float64(v.Z)})
}

// Vector4 logs a vector as [x, y, z, w].
func Vector4[T math.Float](key string, v math.Vector4[T]) zap.Field {
	return zap.Array(key, floats{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)})
}

// Matrix3 logs a matrix row by row.
func Matrix3[T math.Float](key string, m math.Matrix3[T]) zap.Field {
	out := make(rows, 3)
	for r := range out {
		row := m.Row(r)
		out[r] = []float64{float64(row[0]), float64(row[1]), float64(row[2])}
	}
	return zap.Array(key, out)
}

// Matrix4 logs a matrix row by row.
func Matrix4[T math.Float](key string, m math.Matrix4[T]) zap.Field {
	out := make(rows, 4)
	for r := range out {
		row := m.Row(r)
		out[r] = []float64{float64(row[0]), float64(row[1]), float64(row[2]), float64(row[3])}
	}
	return zap.Array(key, out)
}

// Quaternion logs a quaternion as {r, i, j, k}.
func Quaternion[T math.Float](key string, q math.Quaternion[T]) zap.Field {
	return zap.Object(key, quaternion{float64(q.R), float64(q.I), float64(q.J), float64(q.K)})
}
