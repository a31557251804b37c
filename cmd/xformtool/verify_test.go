package main

import (
	"testing"

	"github.com/Faultbox/gltypes/pkg/math"
)

func TestVerifyPasses(t *testing.T) {
	for _, seed := range []uint64{1, 42, 2024} {
		if failures := verify(200, seed); len(failures) != 0 {
			t.Errorf("seed %d: %d failures, first: %v", seed, len(failures), failures[0])
		}
	}
}

func TestCheckTransformIdentity(t *testing.T) {
	results := checkTransform(math.DVec3{X: 1, Y: 2, Z: 3}, math.DVec3One, math.DQuatIdentity)
	for _, r := range results {
		if r.err > 1e-12 {
			t.Errorf("%s: error %g", r.name, r.err)
		}
	}
}

func TestResidual(t *testing.T) {
	if got := residual(math.DMat4Identity); got != 0 {
		t.Errorf("residual(I) = %v, want 0", got)
	}
	m := math.DMat4Identity
	m[3][0] = 0.5
	if got := residual(m); got != 0.5 {
		t.Errorf("residual = %v, want 0.5", got)
	}
}

func TestParseVec3(t *testing.T) {
	tests := []struct {
		in      string
		want    math.DVec3
		wantErr bool
	}{
		{"1,2,3", math.DVec3{X: 1, Y: 2, Z: 3}, false},
		{" 0.5, -1 ,1e2", math.DVec3{X: 0.5, Y: -1, Z: 100}, false},
		{"1,2", math.DVec3{}, true},
		{"1,2,3,4", math.DVec3{}, true},
		{"1,x,3", math.DVec3{}, true},
	}
	for _, tt := range tests {
		got, err := parseVec3(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseVec3(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseVec3(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
