// Package benchmarks provides memory footprint benchmarks.
package benchmarks

import (
	"fmt"
	"runtime"
	"testing"
)

func BenchmarkMemoryPerNode(b *testing.B) {
	for _, n := range []int{10, 1000, 100000} {
		b.Run(fmt.Sprintf("nodes=%d", n), func(b *testing.B) {
			var before, after runtime.MemStats
			for i := 0; i < b.N; i++ {
				runtime.ReadMemStats(&before)
				l := GenIntList(n)
				runtime.ReadMemStats(&after)
				b.ReportMetric(float64(after.TotalAlloc-before.TotalAlloc)/float64(n), "B/node")
				l.Clear()
			}
		})
	}
}

func BenchmarkClear(b *testing.B) {
	for _, n := range []int{1000, 100000} {
		b.Run(fmt.Sprintf("nodes=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				l := GenIntList(n)
				b.StartTimer()
				l.Clear()
			}
		})
	}
}
