package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BoolToChar renders b as the DBF character for type L: 'T' for true,
// 'F' for false.
func BoolToChar(b bool) byte {
	if b {
		return 'T'
	}

	return 'F'
}

// CharToBool parses a DBF type-L byte. It accepts T/Y as true, F/N as
// false, and reports ok=false for '?' or space (unknown).
func CharToBool(c byte) (value bool, ok bool) {
	switch c {
	case 'T', 't', 'Y', 'y':
		return true, true
	case 'F', 'f', 'N', 'n':
		return false, true
	default:
		return false, false
	}
}

// DateToYYYYMMDD formats t as the 8-digit string a type-D field stores.
func DateToYYYYMMDD(t time.Time) string {
	return t.Format("20060102")
}

// YYYYMMDDToDate parses the 8-digit string a type-D field stores.
func YYYYMMDDToDate(s string) (time.Time, error) {
	t, err := time.Parse("20060102", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("schema: invalid date %q: %w", s, err)
	}

	return t, nil
}

// julianDayNumber implements the Fliegel & Van Flandern Gregorian-to-Julian-
// day-number conversion, which is the day count xBase timestamp fields
// store (days since the proleptic Julian/Gregorian epoch commonly labelled
// 4713-01-01 BC in xBase documentation).
func julianDayNumber(t time.Time) int64 {
	y := int64(t.Year())
	m := int64(t.Month())
	d := int64(t.Day())

	a := (m - 14) / 12
	jdn := (1461 * (y + 4800 + a) / 4) +
		(367 * (m - 2 - 12*a) / 12) -
		(3 * ((y + 4900 + a) / 100) / 4) +
		d - 32075

	return jdn
}

// dateFromJulianDayNumber inverts julianDayNumber.
func dateFromJulianDayNumber(jdn int64) time.Time {
	l := jdn + 68569
	n := (4 * l) / 146097
	l = l - (146097*n+3)/4
	i := (4000 * (l + 1)) / 1461001
	l = l - (1461*i)/4 + 31
	j := (80 * l) / 2447
	day := l - (2447*j)/80
	l = j / 11
	month := j + 2 - 12*l
	year := 100*(n-49) + i + l

	return time.Date(int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC)
}

// DateToTimestampString renders t as the "<days> <ms>" pair a type-@
// field's decoded value is modelled as: days since the xBase Julian-day
// epoch, and milliseconds since midnight.
func DateToTimestampString(t time.Time) string {
	days := julianDayNumber(t)
	ms := ((t.Hour()*3600 + t.Minute()*60 + t.Second()) * 1000) + t.Nanosecond()/int(time.Millisecond)

	return fmt.Sprintf("%d %d", days, ms)
}

// TimestampStringToDate inverts DateToTimestampString.
func TimestampStringToDate(s string) (time.Time, error) {
	parts := strings.SplitN(s, " ", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("schema: invalid timestamp %q: expected \"<days> <ms>\"", s)
	}

	days, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("schema: invalid timestamp day count %q: %w", parts[0], err)
	}

	ms, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("schema: invalid timestamp millisecond count %q: %w", parts[1], err)
	}

	date := dateFromJulianDayNumber(days)

	return date.Add(time.Duration(ms) * time.Millisecond), nil
}
