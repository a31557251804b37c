package math

import "testing"

func TestBVecLogic(t *testing.T) {
	a := BVec3{true, true, false}
	b := BVec3{true, false, false}

	if got := a.And(b); got != (BVec3{true, false, false}) {
		t.Errorf("And: got %v", got)
	}
	if got := a.Or(b); got != (BVec3{true, true, false}) {
		t.Errorf("Or: got %v", got)
	}
	if got := a.Xor(b); got != (BVec3{false, true, false}) {
		t.Errorf("Xor: got %v", got)
	}
	if got := a.Not(); got != (BVec3{false, false, true}) {
		t.Errorf("Not: got %v", got)
	}
}

func TestBVecAnyAll(t *testing.T) {
	tests := []struct {
		name     string
		v        BVec4
		any, all bool
	}{
		{"false", BVec4False, false, false},
		{"true", BVec4True, true, true},
		{"one", BVec4Z, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Any() != tt.any {
				t.Errorf("Any() = %v, want %v", tt.v.Any(), tt.any)
			}
			if tt.v.All() != tt.all {
				t.Errorf("All() = %v, want %v", tt.v.All(), tt.all)
			}
		})
	}

	if !BVec2True.All() || BVec2False.Any() {
		t.Error("BVec2 constants")
	}
	if BVec3X.Or(BVec3Y).Or(BVec3Z) != BVec3True {
		t.Error("BVec3 axes should combine to true")
	}
}

func TestBVecExtendTruncate(t *testing.T) {
	v := BVec2X.Extend(true).Extend(false)
	if v != (BVec4{true, false, true, false}) {
		t.Errorf("Extend: got %v", v)
	}
	if got := v.Truncate(); got != (BVec3{true, false, true}) {
		t.Errorf("Truncate: got %v", got)
	}
	if got := v.Truncate().Truncate().Truncate(); !got {
		t.Errorf("BVec2 Truncate: got %v, want true", got)
	}
	if got := BVec2Y.Xor(BVec2True).Array(); got != [2]bool{true, false} {
		t.Errorf("Array: got %v", got)
	}
	if got := BVec4W.Not().Array(); got != [4]bool{true, true, true, false} {
		t.Errorf("Array: got %v", got)
	}
}
