// SPDX-License-Identifier: MIT

// Package array2d_test provides benchmarks for the core container operations,
// using deterministic contents so runs are comparable.
package array2d_test

import (
	"fmt"
	"testing"

	"github.com/qmkit/array2d"
)

// benchSizes are the square extents to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkA *array2d.Array2D[int]
	sinkI int
	sinkU uint64
)

func mustBench(b *testing.B, rows, cols int) *array2d.Array2D[int] {
	b.Helper()
	a, err := array2d.New[int](rows, cols)
	if err != nil {
		b.Fatal(err)
	}
	return a
}

func BenchmarkFill(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := mustBench(b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a.Fill(i)
			}
		})
	}
}

func BenchmarkFillParallel(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := mustBench(b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a.FillParallel(i)
			}
		})
	}
}

func BenchmarkTransposeInPlace(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := mustBench(b, n, n)
			a.Fill(7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := a.Transpose(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkTransposed(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := mustBench(b, n, n+8) // rectangular
			a.Fill(7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkA = a.Transposed()
			}
		})
	}
}

func BenchmarkRowSum(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := mustBench(b, n, n)
			a.Fill(1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sum := 0
				for r := 0; r < a.Rows(); r++ {
					for _, v := range a.Row(r) {
						sum += v
					}
				}
				sinkI = sum
			}
		})
	}
}

func BenchmarkIteratorWalk(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := mustBench(b, n, n)
			a.Fill(1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sum := 0
				for it, end := a.Begin(), a.End(); !it.Equal(end); it = it.Next() {
					sum += it.Value()
				}
				sinkI = sum
			}
		})
	}
}

func BenchmarkChecksum(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := mustBench(b, n, n)
			a.Fill(42)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := array2d.Checksum(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkU = s
			}
		})
	}
}

func BenchmarkResize(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := mustBench(b, n, n)
			a.Fill(3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := a.Resize(n+1, n); err != nil {
					b.Fatal(err)
				}
				if err := a.Resize(n, n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
