package modem

import (
	"testing"
)

func TestBitSet8(t *testing.T) {
	tests := []struct {
		name      string
		initial   byte
		setBits   []int
		clearBits []int
		expected  byte
	}{
		{"Set and Clear bits", 0, []int{1, 3, 5}, []int{3}, 34},
		{"Set bits only", 0, []int{0, 2, 4}, []int{}, 21},
		{"Clear bits only", 255, []int{}, []int{0, 1, 2}, 248},
		{"No operations", 15, []int{}, []int{}, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs := BitSet8(tt.initial)
			for _, bit := range tt.setBits {
				bs.Set(bit)
			}
			for _, bit := range tt.clearBits {
				bs.Clear(bit)
			}
			if bs.ToByte() != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, bs.ToByte())
			}
		})
	}
}

func TestBitSet8IsSet(t *testing.T) {
	bs := BitSet8(10) // 00001010
	tests := []struct {
		bit      int
		expected bool
	}{
		{1, true},
		{3, true},
		{0, false},
		{2, false},
	}

	for _, tt := range tests {
		if result := bs.IsSet(tt.bit); result != tt.expected {
			t.Errorf("bit %d: expected %v, got %v", tt.bit, tt.expected, result)
		}
	}
}

func TestBitSet8String(t *testing.T) {
	var bs BitSet8
	bs.Set(7)
	bs.Set(0)
	if got := bs.String(); got != "10000001" {
		t.Errorf("expected 10000001, got %s", got)
	}
}
