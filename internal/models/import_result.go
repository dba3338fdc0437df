package models

// Validation error codes carried in per-field keyErrors maps.
const (
	ErrRequiredOnlyString        = "REQUIRED_ONLY_STRING"
	ErrRequiredOnlyNumber        = "REQUIRED_ONLY_NUMBER"
	ErrRequiredOnlyBoolean       = "REQUIRED_ONLY_BOOLEAN"
	ErrMissingRequiredValues     = "MISSING_REQUIRED_VALUES"
	ErrInvalidDateFormat         = "INVALID_DATE_FORMAT"
	ErrSpecialCharacterNotAllow  = "SPECIAL_CHARACTER_NOT_ALLOW"
	ErrMaterialProductCodeAbsent = "MATERIAL_PRODUCT_CODE_NOT_FOUND"
)

// Batch-level and API response messages.
const (
	MsgPostDataFailed  = "POST_DATA_FAILED"
	MsgPostDataSuccess = "POST_DATA_SUCCESS"
	MsgGetDataSuccess  = "GET_DATA_SUCCESS"
	MsgNoDataFound     = "NO_DATA_FOUND"
	MsgInvalidFileType = "INVALID_FILE_TYPE"
	MsgInvalidVatRate  = "INVALID_VAT_RATE"
	MsgFileNotFound    = "FILE_NOT_FOUND"
	MsgEmptySheet      = "EMPTY_SHEET"
)

// ValidationErrorRow pairs an offending draft with its per-field error codes.
type ValidationErrorRow struct {
	Row       OrderTransactionDraft `json:"row"`
	Index     int                   `json:"index"`
	KeyErrors map[string]string     `json:"keyErrors"`
}

// BatchResult is the all-or-nothing outcome of validating a batch of drafts.
// Checker is true only when every row passed.
type BatchResult struct {
	Checker bool                    `json:"checker"`
	Message string                  `json:"message"`
	Data    []OrderTransactionDraft `json:"data"`
	Errors  []ValidationErrorRow    `json:"errors"`
}

// TransactionSummary reports one import run back to the caller.
type TransactionSummary struct {
	Platform       PlatformKind            `json:"platform"`
	TotalRows      int                     `json:"totalRows"`
	Imported       int                     `json:"imported"`
	Duplicates     int                     `json:"duplicates"`
	Skipped        int                     `json:"skipped"`
	Errors         []ImportErrorSummary    `json:"errors"`
	Transactions   []OrderTransactionDraft `json:"transactions"`
	DuplicatedRows []OrderTransactionDraft `json:"duplicatedRows"`
}

// ImportErrorSummary groups rows that were rejected for the same reason.
type ImportErrorSummary struct {
	Reason string                  `json:"reason"`
	Count  int                     `json:"count"`
	Rows   []OrderTransactionDraft `json:"rows"`
}

// Error reasons reported in import summaries.
const (
	ReasonPriceUnitInvalid = "PRICE_UNIT_INVALID"
	ReasonOrderExpired     = "ORDER_EXPIRED"
)
