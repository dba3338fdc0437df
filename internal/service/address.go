package service

import (
	"strings"

	"orderbridge/internal/utils"
)

// Thai addresses repeat the sub-district and district names with varying
// prefixes. Truncation keeps only the street-level part so the fixed-width
// address fields hold the useful half; the administrative names go to
// address3 instead.

// truncateAtSubdistrict cuts the address at the first occurrence of the
// sub-district name, trying the prefixed spellings before the bare name.
func truncateAtSubdistrict(address, subdistrict string) string {
	if subdistrict == "" {
		return address
	}
	markers := []string{
		"แขวง" + subdistrict,
		"ตำบล" + subdistrict,
		"ข." + subdistrict,
		"ต." + subdistrict,
		subdistrict,
	}
	for _, marker := range markers {
		if idx := strings.Index(address, marker); idx >= 0 {
			return strings.TrimSpace(address[:idx])
		}
	}
	return address
}

// cleanShippingAddress prepares a free-form shipping address: collapse
// repeated segments, then cut at the district marker.
func cleanShippingAddress(address string) string {
	deduped := utils.RemoveDuplicateSegments(address)
	return utils.RemoveAfterKeyword(deduped, []string{"เขต", "อำเภอ"})
}

// stripLeadingApostrophe removes the quote prefix spreadsheets add to
// keep postal codes textual.
func stripLeadingApostrophe(s string) string {
	return strings.TrimPrefix(s, "'")
}

// padTaxpayerID left-pads a taxpayer id to 13 digits. Spreadsheets drop
// leading zeros from numeric cells; an absent id pads to all zeros.
func padTaxpayerID(id string) string {
	for len(id) < 13 {
		id = "0" + id
	}
	return id
}
