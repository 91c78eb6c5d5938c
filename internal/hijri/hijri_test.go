package hijri

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromGregorian(t *testing.T) {
	tests := []struct {
		name      string
		gregorian string
		year      int
		month     int
		day       int
	}{
		{"hijri new year 1420", "1999-04-17", 1420, 1, 1},
		{"millennium", "2000-01-01", 1420, 9, 24},
		{"mid jumada 1445", "2024-01-10", 1445, 6, 28},
		{"last day of 1445", "2024-07-07", 1445, 12, 30},
		{"rajab 1447", "2025-12-31", 1447, 7, 11},
		{"unix epoch", "1970-01-01", 1389, 10, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := time.Parse("2006-01-02", tt.gregorian)
			assert.NoError(t, err)
			y, m, d := FromGregorian(g)
			assert.Equal(t, tt.year, y)
			assert.Equal(t, tt.month, m)
			assert.Equal(t, tt.day, d)
		})
	}
}

func TestFormat(t *testing.T) {
	g := time.Date(1999, 4, 17, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1 محرم 1420 هـ", Format(g))

	assert.Equal(t, "", Format(time.Time{}))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "24 رمضان 1420 هـ", FormatString("2000-01-01"))
	assert.Equal(t, "", FormatString(""))
	assert.Equal(t, "", FormatString("not-a-date"))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "محرم", MonthName(1))
	assert.Equal(t, "ذو الحجة", MonthName(12))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))
}
