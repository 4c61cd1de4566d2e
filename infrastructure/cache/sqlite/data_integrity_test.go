package sqlite

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"
)

// TestDataIntegrity verifies that payloads come back byte-for-byte as stored
func TestDataIntegrity(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "Simple markup",
			data: []byte("<blog><title>Example Weblog</title></blog>"),
		},
		{
			name: "Binary data",
			data: []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD},
		},
		{
			name: "Empty data",
			data: []byte{},
		},
		{
			name: "Large data",
			data: make([]byte, 10000), // 10KB of zeros
		},
		{
			name: "All possible bytes",
			data: func() []byte {
				data := make([]byte, 256)
				for i := 0; i < 256; i++ {
					data[i] = byte(i)
				}
				return data
			}(),
		},
		{
			name: "UTF-8 text with special characters",
			data: []byte("Hello 世界 🌍 \n\t\r"),
		},
		{
			name: "Data with null bytes",
			data: []byte("before\x00middle\x00after"),
		},
		{
			name: "UTF-16 encoded document",
			data: []byte{0xFF, 0xFE, 0x3C, 0x00, 0x62, 0x00, 0x6C, 0x00, 0x6F, 0x00, 0x67, 0x00, 0x3E, 0x00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "resource:integrity/" + tt.name

			// Empty payloads are rejected by value validation
			if len(tt.data) == 0 {
				err := cache.Set(ctx, key, tt.data, time.Hour)
				if err == nil {
					t.Error("Expected error for empty data, but got none")
				}
				return
			}

			err := cache.Set(ctx, key, tt.data, time.Hour)
			if err != nil {
				t.Fatalf("Failed to set data: %v", err)
			}

			retrieved, err := cache.Get(ctx, key)
			if err != nil {
				t.Fatalf("Failed to get data: %v", err)
			}

			if len(retrieved) != len(tt.data) {
				t.Errorf("Length mismatch: expected %d bytes, got %d bytes", len(tt.data), len(retrieved))
				return
			}

			for i := 0; i < len(tt.data); i++ {
				if retrieved[i] != tt.data[i] {
					t.Errorf("Byte mismatch at position %d: expected %#x, got %#x", i, tt.data[i], retrieved[i])
					start := max(i-5, 0)
					end := min(i+5, len(tt.data))
					t.Errorf("Context: expected %#x, got %#x", tt.data[start:end], retrieved[start:end])
					return
				}
			}
		})
	}
}

// TestDataIntegrityStress checks patterned payloads across a range of sizes
func TestDataIntegrityStress(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	sizes := []int{1, 10, 100, 1000, 10000, 100000, 1 << 20}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("Size_%d", size), func(t *testing.T) {
			// A rolling pattern makes corruption show up at a precise offset
			data := make([]byte, size)
			for i := 0; i < size; i++ {
				data[i] = byte((i * 7) % 256)
			}

			key := fmt.Sprintf("resource:stress/%d", size)

			err := cache.Set(ctx, key, data, time.Hour)
			if err != nil {
				t.Fatalf("Failed to set data of size %d: %v", size, err)
			}

			retrieved, err := cache.Get(ctx, key)
			if err != nil {
				t.Fatalf("Failed to get data of size %d: %v", size, err)
			}

			if !bytes.Equal(retrieved, data) {
				// Find first mismatch
				for i := 0; i < len(data); i++ {
					if i >= len(retrieved) {
						t.Errorf("Retrieved data is shorter: %d vs %d bytes", len(retrieved), len(data))
						break
					}
					if retrieved[i] != data[i] {
						t.Errorf("First mismatch at position %d: expected %#x, got %#x", i, data[i], retrieved[i])
						break
					}
				}
			}
		})
	}
}
