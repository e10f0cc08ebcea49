package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/lamar/vmath"
)

// parseVec parses "x,y,z" into a float64 vector
func parseVec(s string) (vmath.Vec3[float64], error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vmath.Vec3[float64]{}, fmt.Errorf("vector %q: expected 3 components, got %d", s, len(parts))
	}

	var c [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vmath.Vec3[float64]{}, fmt.Errorf("vector %q component %d: %w", s, i, err)
		}
		c[i] = f
	}
	return vmath.New(c[0], c[1], c[2]), nil
}

// withAxis returns v with component axis (0=X, 1=Y, 2=Z) shifted by d
func withAxis(v vmath.Vec3[float64], axis int, d float64) vmath.Vec3[float64] {
	switch axis {
	case 0:
		return vmath.New(v.X+d, v.Y, v.Z)
	case 1:
		return vmath.New(v.X, v.Y+d, v.Z)
	default:
		return vmath.New(v.X, v.Y, v.Z+d)
	}
}
