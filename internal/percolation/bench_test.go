package percolation

import (
	"testing"

	"percolator/internal/core"
)

func BenchmarkExtract(b *testing.B) {
	g, err := GenerateSeeded(640, 400, 99)
	if err != nil {
		b.Fatal(err)
	}
	for _, level := range []core.Level{30, 59, 80} {
		b.Run(level.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Extract(g, level)
			}
		})
	}
}
