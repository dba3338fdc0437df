package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Spreadsheet date serials count days from 1899-12-30; the fractional part is
// the time of day.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var serialPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// ExcelSerialToTime converts a spreadsheet date serial to a time.Time in UTC.
func ExcelSerialToTime(serial float64) time.Time {
	days := math.Floor(serial)
	fraction := serial - days
	seconds := math.Round(fraction * 86400)
	return excelEpoch.AddDate(0, 0, int(days)).Add(time.Duration(seconds) * time.Second)
}

// ExcelSerialToDateTimeString renders a date serial as "YYYY-MM-DD HH:mm:ss".
func ExcelSerialToDateTimeString(serial float64) string {
	return ExcelSerialToTime(serial).Format("2006-01-02 15:04:05")
}

// IsExcelSerialDate reports whether the string looks like a numeric date
// serial (digits with an optional decimal part).
func IsExcelSerialDate(s string) bool {
	return s != "" && serialPattern.MatchString(s)
}

// ParseFlexibleDate resolves a platform date cell to an ISO-8601 string.
// Accepts a date serial, "YYYY-MM-DD HH:mm" or "DD-MM-YY HH:mm"; "-" and the
// empty string resolve to "". Unparseable values also resolve to "" rather
// than failing the row.
func ParseFlexibleDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return ""
	}
	if IsExcelSerialDate(s) {
		serial, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return ""
		}
		return ExcelSerialToTime(serial).Format(time.RFC3339)
	}
	for _, layout := range []string{"2006-01-02 15:04", "02-01-06 15:04"} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.Format(time.RFC3339)
		}
	}
	return ""
}

// ParseSlashDateTime parses "DD/MM/YYYY HH:mm:ss" and returns an ISO-8601
// string. Unlike ParseFlexibleDate this is strict: the TikTok export always
// carries this layout, so anything else is an error.
func ParseSlashDateTime(s string) (string, error) {
	t, err := time.ParseInLocation("02/01/2006 15:04:05", strings.TrimSpace(s), time.UTC)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected DD/MM/YYYY HH:mm:ss", s)
	}
	return t.Format(time.RFC3339), nil
}

// DotDateToISO rewrites "DD.MM.YYYY" as "YYYY-MM-DD". Strings in any other
// shape are returned unchanged.
func DotDateToISO(s string) string {
	t, err := time.Parse("02.01.2006", strings.TrimSpace(s))
	if err != nil {
		return s
	}
	return t.Format("2006-01-02")
}

// IsStrictISODate reports whether s is a valid ISO-8601 date or datetime.
func IsStrictISODate(s string) bool {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
