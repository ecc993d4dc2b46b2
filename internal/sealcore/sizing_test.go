package sealcore

import "testing"

func TestEncryptionBufferLenProperties(t *testing.T) {
	for n := 0; n <= 300; n++ {
		got, err := EncryptionBufferLen(n)
		if err != nil {
			t.Fatalf("EncryptionBufferLen(%d): %v", n, err)
		}
		if got < n+1 {
			t.Fatalf("EncryptionBufferLen(%d) = %d, want >= n+1", n, got)
		}
		if got > n+blockSize {
			t.Fatalf("EncryptionBufferLen(%d) = %d, want <= n+%d", n, got, blockSize)
		}
		if got%blockSize != 0 {
			t.Fatalf("EncryptionBufferLen(%d) = %d is not a multiple of the block size", n, got)
		}
	}
}

func TestEncryptionBufferLenOverflow(t *testing.T) {
	_, err := EncryptionBufferLen(-1)
	assertKind(t, err, OverflowError)
}

func TestSealBufferLenKnownValue(t *testing.T) {
	got, err := SealBufferLen(10, 0, DefaultEncryptionOptions, DefaultIntegrityOptions)
	if err != nil {
		t.Fatalf("SealBufferLen: %v", err)
	}
	if got != 227 {
		t.Fatalf("SealBufferLen(10, 0, ...) = %d, want 227", got)
	}
}

func TestSealUnsealBufferLenRoundtrip(t *testing.T) {
	for _, n := range []int{0, 1, 10, 15, 16, 17, 100, 1000} {
		for _, idLen := range []int{0, 3, 12} {
			sealed, err := SealBufferLen(n, idLen, DefaultEncryptionOptions, DefaultIntegrityOptions)
			if err != nil {
				t.Fatalf("SealBufferLen(%d, %d): %v", n, idLen, err)
			}
			unsealed, err := UnsealBufferLen(sealed, idLen, DefaultEncryptionOptions, DefaultIntegrityOptions)
			if err != nil {
				t.Fatalf("UnsealBufferLen(%d, %d): %v", sealed, idLen, err)
			}
			if unsealed < n {
				t.Fatalf("n=%d idLen=%d: UnsealBufferLen(SealBufferLen(...)) = %d, want >= %d", n, idLen, unsealed, n)
			}
		}
	}
}

func TestUnsealBufferLenRejectsTooShort(t *testing.T) {
	_, err := UnsealBufferLen(1, 0, DefaultEncryptionOptions, DefaultIntegrityOptions)
	assertKind(t, err, OverflowError)
}
