package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcelSerialToTime(t *testing.T) {
	got := ExcelSerialToTime(45000)
	assert.Equal(t, "2023-03-15", got.Format("2006-01-02"))

	// Fractional part is the time of day.
	noon := ExcelSerialToTime(45000.5)
	assert.Equal(t, "2023-03-15 12:00:00", noon.Format("2006-01-02 15:04:05"))
}

func TestExcelSerialToDateTimeString(t *testing.T) {
	assert.Equal(t, "2023-03-15 00:00:00", ExcelSerialToDateTimeString(45000))
}

func TestIsExcelSerialDate(t *testing.T) {
	assert.True(t, IsExcelSerialDate("45000"))
	assert.True(t, IsExcelSerialDate("45000.5"))
	assert.False(t, IsExcelSerialDate("2023-03-15"))
	assert.False(t, IsExcelSerialDate(""))
	assert.False(t, IsExcelSerialDate("15/03/2023"))
}

func TestParseFlexibleDate(t *testing.T) {
	assert.Equal(t, "2023-03-15T00:00:00Z", ParseFlexibleDate("45000"))
	assert.Equal(t, "2024-02-01T13:45:00Z", ParseFlexibleDate("2024-02-01 13:45"))
	assert.Empty(t, ParseFlexibleDate(""))
	assert.Empty(t, ParseFlexibleDate("-"))
	assert.Empty(t, ParseFlexibleDate("not a date"))
}

func TestParseSlashDateTime(t *testing.T) {
	got, err := ParseSlashDateTime("15/03/2023 14:30:00")
	require.NoError(t, err)
	assert.Equal(t, "2023-03-15T14:30:00Z", got)

	_, err = ParseSlashDateTime("2023-03-15")
	assert.Error(t, err)
}

func TestDotDateToISO(t *testing.T) {
	assert.Equal(t, "2023-03-15", DotDateToISO("15.03.2023"))
	assert.Equal(t, "already iso", DotDateToISO("already iso"))
}

func TestIsStrictISODate(t *testing.T) {
	assert.True(t, IsStrictISODate("2023-03-15"))
	assert.True(t, IsStrictISODate("2023-03-15T14:30:00Z"))
	assert.True(t, IsStrictISODate("2023-03-15 14:30:00"))
	assert.False(t, IsStrictISODate("15/03/2023"))
	assert.False(t, IsStrictISODate(""))
}
