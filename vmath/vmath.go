package vmath

import (
	"golang.org/x/exp/constraints"
)

// Scalar is the set of component types a Vec3 accepts
// Every member is closed under + - * /, has a zero value and is comparable
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex
}
