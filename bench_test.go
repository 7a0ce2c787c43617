package stitch

import (
	"runtime"
	"testing"

	"github.com/gogpu/stitch/spirv"
)

func BenchmarkLink(b *testing.B) {
	cases := []struct {
		name    string
		entries []string
	}{
		{"PixelOnly", []string{"PSMain"}},
		{"VertexPixel", []string{"VSMain", "PSMain"}},
	}
	for _, bc := range cases {
		source := unlinked(b, spirv.Version1_3, bc.entries...)
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(source)))
			b.ResetTimer()

			var result []byte
			for i := 0; i < b.N; i++ {
				var err error
				result, _, err = Link(source, DefaultOptions())
				if err != nil {
					b.Fatalf("link failed: %v", err)
				}
			}
			runtime.KeepAlive(result)
		})
	}
}
