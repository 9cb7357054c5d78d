package key_test

import "testing"

// BenchmarkScript_Full renders a key with every attribute set.
func BenchmarkScript_Full(b *testing.B) {
	p := fullyLoaded()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Script()
	}
}
