package sealcore

import "testing"

func benchmarkSeal(b *testing.B, size int) {
	payload := make([]byte, size)
	password := []byte("benchmark password")
	ctx := NewContext()
	b.SetBytes(int64(size))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Seal(ctx, payload, nil, password); err != nil {
			b.Fatalf("Seal: %v", err)
		}
	}
}

func BenchmarkSeal64(b *testing.B)   { benchmarkSeal(b, 64) }
func BenchmarkSeal1024(b *testing.B) { benchmarkSeal(b, 1024) }
func BenchmarkSeal64K(b *testing.B)  { benchmarkSeal(b, 64*1024) }

func benchmarkUnseal(b *testing.B, size int) {
	payload := make([]byte, size)
	password := []byte("benchmark password")
	token, err := Seal(NewContext(), payload, nil, password)
	if err != nil {
		b.Fatalf("Seal: %v", err)
	}
	ctx := NewContext()
	b.SetBytes(int64(size))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Unseal(ctx, token, nil, password); err != nil {
			b.Fatalf("Unseal: %v", err)
		}
	}
}

func BenchmarkUnseal64(b *testing.B)   { benchmarkUnseal(b, 64) }
func BenchmarkUnseal1024(b *testing.B) { benchmarkUnseal(b, 1024) }
func BenchmarkUnseal64K(b *testing.B)  { benchmarkUnseal(b, 64*1024) }
