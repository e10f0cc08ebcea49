package main

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/lixenwraith/lamar/vmath"
)

const (
	sampleCount = 10000
	sampleSeed  = 42
)

// testPair is one random operand pair
type testPair[T vmath.Scalar] struct {
	a, b vmath.Vec3[T]
}

var (
	testPairs  []testPair[float64]
	testPairsI []testPair[int64]
)

func init() {
	testPairs, testPairsI = samplePairs(sampleSeed, sampleCount)
}

// samplePairs generates n float64 pairs in [-100, 100) and n int64 pairs in [-1000, 1000]
// The same seed always yields the same samples
func samplePairs(seed int64, n int) ([]testPair[float64], []testPair[int64]) {
	rng := rand.New(rand.NewSource(seed))
	f := func() float64 { return rng.Float64()*200 - 100 }
	k := func() int64 { return rng.Int63n(2001) - 1000 }

	fp := make([]testPair[float64], n)
	ip := make([]testPair[int64], n)
	for i := range fp {
		fp[i] = testPair[float64]{a: vmath.New(f(), f(), f()), b: vmath.New(f(), f(), f())}
		ip[i] = testPair[int64]{a: vmath.New(k(), k(), k()), b: vmath.New(k(), k(), k())}
	}
	return fp, ip
}

// === HAND-EXPANDED REFERENCE ===

// inlineCross is the cross product written out on raw float64 triples
func inlineCross(ax, ay, az, bx, by, bz float64) (x, y, z float64) {
	return ay*bz - az*by, az*bx - ax*bz, ax*by - ay*bx
}

func inlineDot(ax, ay, az, bx, by, bz float64) float64 {
	return ax*bx + ay*by + az*bz
}

// === ACCURACY VERIFICATION ===

// mismatch counts samples where Vec3 and the inline reference disagree beyond tolerance
// Exact equality is not guaranteed where the compiler fuses multiply-add
func mismatch(pairs []testPair[float64]) (cross, dot int) {
	for _, p := range pairs {
		x, y, z := inlineCross(p.a.X, p.a.Y, p.a.Z, p.b.X, p.b.Y, p.b.Z)
		c := p.a.Mul(p.b)
		if !near(c.X, x) || !near(c.Y, y) || !near(c.Z, z) {
			cross++
		}
		if !near(p.a.Dot(p.b), inlineDot(p.a.X, p.a.Y, p.a.Z, p.b.X, p.b.Y, p.b.Z)) {
			dot++
		}
	}
	return
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func verifyAccuracy() {
	fmt.Println("=== Accuracy Verification ===")
	fmt.Println()

	fmt.Printf("%-12s %-24s %-24s %10s\n", "Scalar", "a * b (cross)", "a . b", "Match")
	fmt.Println(strings.Repeat("-", 74))

	ai, bi := vmath.New(5, 10, 15), vmath.New(3, 1, 7)
	printRow("int", ai.Mul(bi), ai.Dot(bi), ai.Mul(bi) == vmath.New(55, 10, -25))

	a64, b64 := vmath.New[int64](5, 10, 15), vmath.New[int64](3, 1, 7)
	printRow("int64", a64.Mul(b64), a64.Dot(b64), a64.Mul(b64) == a64.Cross(b64))

	af, bf := vmath.New[float32](0.5, -1.5, 2), vmath.New[float32](4, 0.25, -1)
	x, y, z := inlineCross(0.5, -1.5, 2, 4, 0.25, -1)
	printRow("float32", af.Mul(bf), af.Dot(bf), af.Mul(bf) == vmath.New(float32(x), float32(y), float32(z)))

	ac, bc := vmath.New[complex128](1i, 2, 0), vmath.New[complex128](1i, 0, 1)
	printRow("complex128", ac.Mul(bc), ac.Dot(bc), ac.Mul(bc) == vmath.New[complex128](2, -1i, -2i))

	crossMiss, dotMiss := mismatch(testPairs)
	fmt.Println()
	fmt.Printf("Random float64 samples: %d (seed %d), cross mismatches: %d, dot mismatches: %d\n",
		sampleCount, sampleSeed, crossMiss, dotMiss)
}

func printRow[T vmath.Scalar](name string, cross vmath.Vec3[T], dot T, ok bool) {
	fmt.Printf("%-12s %-24s %-24v %10t\n", name,
		fmt.Sprintf("(%v, %v, %v)", cross.X, cross.Y, cross.Z), dot, ok)
}

func main() {
	fmt.Println("lamar vmath Vec3 Operations Benchmark")
	fmt.Println("=====================================")
	fmt.Println()

	verifyAccuracy()

	fmt.Println()
	fmt.Println("=== Running Benchmarks ===")
	fmt.Println("Run with: go test -bench=. -benchmem ./cmd/vec3-benchmark/")
	fmt.Println()

	// Quick inline benchmark for immediate results
	iterations := 1000000

	start := time.Now()
	for i := 0; i < iterations; i++ {
		p := testPairs[i%sampleCount]
		_, _, _ = inlineCross(p.a.X, p.a.Y, p.a.Z, p.b.X, p.b.Y, p.b.Z)
	}
	inlineTime := time.Since(start)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		p := testPairs[i%sampleCount]
		_ = p.a.Mul(p.b)
	}
	vecTime := time.Since(start)

	fmt.Printf("Quick benchmark (%d iterations):\n", iterations)
	fmt.Printf("  Inline cross: %v\n", inlineTime)
	fmt.Printf("  Vec3.Mul:     %v (%+.1f%%)\n",
		vecTime, float64(vecTime-inlineTime)/float64(inlineTime)*100)
}
