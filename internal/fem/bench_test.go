package fem

import "testing"

func BenchmarkSolve(b *testing.B) {
	elements := make([]Element, 64)
	for i := range elements {
		elements[i] = Element{Area: 0.001, Modulus: 200e9, Length: 0.5, Force: 100}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Solve(elements); err != nil {
			b.Fatal(err)
		}
	}
}
