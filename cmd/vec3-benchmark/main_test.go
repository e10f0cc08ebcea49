package main

import (
	"testing"

	"github.com/lixenwraith/lamar/vmath"
)

// TestInlineReferenceAgrees verifies the generic type matches the hand-expanded formulas
func TestInlineReferenceAgrees(t *testing.T) {
	pairs, _ := samplePairs(7, 2000)
	crossMiss, dotMiss := mismatch(pairs)
	if crossMiss != 0 {
		t.Errorf("Expected 0 cross mismatches, got %d", crossMiss)
	}
	if dotMiss != 0 {
		t.Errorf("Expected 0 dot mismatches, got %d", dotMiss)
	}
}

// TestSamplePairsDeterministic verifies a seed reproduces the same samples
func TestSamplePairsDeterministic(t *testing.T) {
	f1, i1 := samplePairs(sampleSeed, 16)
	f2, i2 := samplePairs(sampleSeed, 16)

	for i := range f1 {
		if f1[i] != f2[i] {
			t.Fatalf("Float sample %d differs: %+v vs %+v", i, f1[i], f2[i])
		}
		if i1[i] != i2[i] {
			t.Fatalf("Int sample %d differs: %+v vs %+v", i, i1[i], i2[i])
		}
	}

	if len(testPairs) != sampleCount || len(testPairsI) != sampleCount {
		t.Errorf("Expected %d package samples, got %d and %d", sampleCount, len(testPairs), len(testPairsI))
	}
}

// TestComplexCrossReference verifies the complex row printed by verifyAccuracy
func TestComplexCrossReference(t *testing.T) {
	a, b := vmath.New[complex128](1i, 2, 0), vmath.New[complex128](1i, 0, 1)
	if got := a.Mul(b); got != vmath.New[complex128](2, -1i, -2i) {
		t.Errorf("Expected (2, -1i, -2i), got %v", got)
	}
}

// === BENCHMARKS ===

func BenchmarkInlineCross(b *testing.B) {
	var sx, sy, sz float64
	for i := 0; i < b.N; i++ {
		p := testPairs[i%sampleCount]
		sx, sy, sz = inlineCross(p.a.X, p.a.Y, p.a.Z, p.b.X, p.b.Y, p.b.Z)
	}
	_, _, _ = sx, sy, sz
}

func BenchmarkVec3Cross(b *testing.B) {
	var sink vmath.Vec3[float64]
	for i := 0; i < b.N; i++ {
		p := testPairs[i%sampleCount]
		sink = p.a.Cross(p.b)
	}
	_ = sink
}

func BenchmarkVec3Mul(b *testing.B) {
	var sink vmath.Vec3[float64]
	for i := 0; i < b.N; i++ {
		p := testPairs[i%sampleCount]
		sink = p.a.Mul(p.b)
	}
	_ = sink
}

func BenchmarkVec3MulInt64(b *testing.B) {
	var sink vmath.Vec3[int64]
	for i := 0; i < b.N; i++ {
		p := testPairsI[i%sampleCount]
		sink = p.a.Mul(p.b)
	}
	_ = sink
}

func BenchmarkInlineDot(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		p := testPairs[i%sampleCount]
		sink = inlineDot(p.a.X, p.a.Y, p.a.Z, p.b.X, p.b.Y, p.b.Z)
	}
	_ = sink
}

func BenchmarkVec3Dot(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		p := testPairs[i%sampleCount]
		sink = p.a.Dot(p.b)
	}
	_ = sink
}

func BenchmarkVec3ScaleDiv(b *testing.B) {
	var sink vmath.Vec3[float64]
	for i := 0; i < b.N; i++ {
		p := testPairs[i%sampleCount]
		sink = p.a.Scale(3).Div(3)
	}
	_ = sink
}
