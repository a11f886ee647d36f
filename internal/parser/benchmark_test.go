package parser

import (
	"strings"
	"testing"
)

func BenchmarkParseScript(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString("g1-f3 g8-f6\nf3-g1 f6-g8\n")
	}
	text := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseString(text, "bench"); err != nil {
			b.Fatal(err)
		}
	}
}
