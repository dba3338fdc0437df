package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateAtSubdistrict(t *testing.T) {
	addr := "99/1 ถนนสุขุมวิท แขวงคลองเตย เขตคลองเตย กรุงเทพมหานคร"

	assert.Equal(t, "99/1 ถนนสุขุมวิท", truncateAtSubdistrict(addr, "คลองเตย"))
	assert.Equal(t, "99/1 หมู่ 4", truncateAtSubdistrict("99/1 หมู่ 4 ต.บางพลี", "บางพลี"))
	assert.Equal(t, addr, truncateAtSubdistrict(addr, ""))
	assert.Equal(t, addr, truncateAtSubdistrict(addr, "บางรัก"))
}

func TestCleanShippingAddress(t *testing.T) {
	assert.Equal(t, "99/1 ถนนสุขุมวิท",
		cleanShippingAddress("99/1 ถนนสุขุมวิท เขตคลองเตย กรุงเทพมหานคร"))
	assert.Equal(t, "99/1 ถนนสุขุมวิท",
		cleanShippingAddress("99/1 ถนนสุขุมวิท อำเภอเมือง เชียงใหม่"))
	assert.Equal(t, "no markers here", cleanShippingAddress("no markers here"))
}

func TestStripLeadingApostrophe(t *testing.T) {
	assert.Equal(t, "10110", stripLeadingApostrophe("'10110"))
	assert.Equal(t, "10110", stripLeadingApostrophe("10110"))
}

func TestPadTaxpayerID(t *testing.T) {
	assert.Equal(t, "0105536001234", padTaxpayerID("105536001234"))
	assert.Equal(t, "1234567890123", padTaxpayerID("1234567890123"))
	assert.Equal(t, "0000000000000", padTaxpayerID(""))
}
