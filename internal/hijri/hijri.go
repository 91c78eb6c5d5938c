// Package hijri projects Gregorian dates onto the tabular (arithmetic)
// Islamic calendar for display. The projection is presentation-only: Hijri
// values are never stored or compared.
package hijri

import (
	"fmt"
	"time"
)

// civilEpoch is the Julian day number of 1 Muharram 1 AH (civil epoch).
const civilEpoch = 1948440

var monthNames = [12]string{
	"محرم", "صفر", "ربيع الأول", "ربيع الآخر",
	"جمادى الأولى", "جمادى الآخرة", "رجب", "شعبان",
	"رمضان", "شوال", "ذو القعدة", "ذو الحجة",
}

// FromGregorian converts a Gregorian date to its tabular Hijri equivalent.
func FromGregorian(t time.Time) (year, month, day int) {
	return fromJulianDay(julianDay(t.Year(), int(t.Month()), t.Day()))
}

// MonthName returns the Arabic name of a Hijri month (1..12).
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// Format renders the Hijri projection of t as "D MonthName YYYY هـ".
// The zero time renders as the empty string.
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	y, m, d := FromGregorian(t)
	return fmt.Sprintf("%d %s %d هـ", d, monthNames[m-1], y)
}

// FormatString renders the Hijri projection of a YYYY-MM-DD date string,
// returning "" for unparseable input.
func FormatString(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return Format(t)
}

func julianDay(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

func fromJulianDay(jd int) (year, month, day int) {
	l := jd - civilEpoch + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29
	month = (24 * l) / 709
	day = l - (709*month)/24
	year = 30*n + j - 30
	return year, month, day
}
