package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsArabicName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "محمد", true},
		{"with space", "عبد الرحمن", true},
		{"empty", "", false},
		{"spaces only", "   ", false},
		{"latin", "John", false},
		{"mixed", "محمدx", false},
		{"ascii digits", "محمد1", false},
		{"arabic digits", "محمد١", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsArabicName(tt.input))
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"already normalized", "0551234567", "0551234567", true},
		{"spaced", "055 123 4567", "0551234567", true},
		{"international plus", "+966551234567", "0551234567", true},
		{"international zeros", "00966551234567", "0551234567", true},
		{"international zeros spaced", "00966 55 123 4567", "0551234567", true},
		{"double zero local", "00551234567", "0551234567", true},
		{"eastern digits", "٠٥٥١٢٣٤٥٦٧", "0551234567", true},
		{"too short", "05512345", "", false},
		{"wrong prefix", "0661234567", "", false},
		{"letters", "055abc4567", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Phone(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"seven characters", "abc1234", "ABC1234", true},
		{"eight characters", "ABC12345", "ABC12345", true},
		{"spaced and dashed", "ا ب ج-1234", "ابج1234", true},
		{"placeholder underscore", "ABC123_", "", false},
		{"placeholder star", "ABC123٭", "", false},
		{"too short", "AB123", "", false},
		{"too long", "ABC123456", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Plate(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClean(t *testing.T) {
	assert.Equal(t, "محمد", Clean("مـحـمـد"))       // tatweel stripped
	assert.Equal(t, "محمد", Clean("مُحَمَّد"))      // diacritics stripped
	assert.Equal(t, "عبد الرحمن", Clean("  عبد   الرحمن "))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "0123456789", Digits("٠١٢٣٤٥٦٧٨٩"))
	assert.Equal(t, "0123456789", Digits("۰۱۲۳۴۵۶۷۸۹"))
	assert.Equal(t, "05 abc", Digits("٠٥ abc"))
}
