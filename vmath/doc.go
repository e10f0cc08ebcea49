// Package vmath provides a generic 3D vector value type.
//
// Vec3 is parameterized over any Scalar (integer, float or complex Go type)
// and exposes its arithmetic as named methods:
//   - Add, Sub: componentwise vector sum and difference
//   - AddScalar, SubScalar, Scale, Div: the scalar applied to each component
//   - Dot, Cross: dot and cross products
//   - Mul: vector × vector, which is the CROSS product, not a componentwise product
//
// All operations take value receivers and return new vectors. Arithmetic
// failure modes (integer wrap, integer divide-by-zero panic, float Inf/NaN)
// are those of the scalar type itself; the package adds no checks.
package vmath
