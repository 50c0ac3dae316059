package indexheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/critpath/indexheap"
)

// BenchmarkDecreaseKey measures a full insert / decrease / drain cycle on 10k elements.
func BenchmarkDecreaseKey(b *testing.B) {
	const n = 10000
	r := rand.New(rand.NewSource(1))
	prios := make([]float64, n)
	for i := range prios {
		prios[i] = r.Float64() * 1000
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, _ := indexheap.New(n)
		for e, p := range prios {
			_ = h.Insert(e, p)
		}
		for e := 0; e < n; e += 3 {
			_ = h.ModifyPriority(e, prios[e]/2)
		}
		for !h.IsEmpty() {
			_, _ = h.ExtractMin()
		}
	}
}
