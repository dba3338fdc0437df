package excel

import (
	"regexp"
	"strings"

	"github.com/spf13/cast"

	"orderbridge/internal/utils"
)

// KeyCase selects how extracted column names are rewritten.
type KeyCase string

const (
	KeyCaseOriginal KeyCase = "original"
	KeyCaseCamel    KeyCase = "camel"
	KeyCaseSnake    KeyCase = "snake"
	KeyCasePascal   KeyCase = "pascal"
	KeyCaseKebab    KeyCase = "kebab"
)

func convertKey(name string, kc KeyCase) string {
	switch kc {
	case KeyCaseCamel:
		return utils.ToCamelCase(name)
	case KeyCaseSnake:
		return utils.ToSnakeCase(name)
	case KeyCasePascal:
		return utils.ToPascalCase(name)
	case KeyCaseKebab:
		return utils.ToKebabCase(name)
	default:
		return name
	}
}

var (
	numericPattern  = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	isoDatePrefix   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	booleanLiterals = map[string]bool{"true": true, "false": true, "TRUE": true, "FALSE": true}
)

// InferType guesses a column's type from one sample value.
func InferType(sample any) ValueType {
	s, ok := sample.(string)
	if !ok || s == "" {
		return TypeString
	}
	switch {
	case numericPattern.MatchString(s):
		return TypeNumber
	case booleanLiterals[s]:
		return TypeBoolean
	case isoDatePrefix.MatchString(s):
		return TypeDateTime
	default:
		return TypeString
	}
}

// BuildHeaderMap infers a header-to-field map from a sample data row,
// rewriting keys with the selected case converter.
func BuildHeaderMap(headers []string, sample map[string]any, kc KeyCase) map[string]ColumnSpec {
	m := make(map[string]ColumnSpec, len(headers))
	for _, h := range headers {
		m[h] = ColumnSpec{
			Header: h,
			Key:    convertKey(h, kc),
			Type:   InferType(sample[h]),
		}
	}
	return m
}

// Coerce applies the per-type transformation rules to one raw cell value.
// Empty results are normalized to nil.
func Coerce(raw any, t ValueType) any {
	if raw == nil {
		return nil
	}
	switch t {
	case TypeNumber:
		n, err := cast.ToFloat64E(raw)
		if err != nil {
			return float64(0)
		}
		return n
	case TypeBoolean:
		if b, ok := raw.(bool); ok {
			return b
		}
		s := cast.ToString(raw)
		return s == "true" || s == "TRUE"
	case TypeDateTime:
		s := cast.ToString(raw)
		if utils.IsExcelSerialDate(s) {
			serial := cast.ToFloat64(s)
			return utils.ExcelSerialToDateTimeString(serial)
		}
		out := utils.DotDateToISO(s)
		if out == "" {
			return nil
		}
		return out
	default:
		s := strings.TrimSpace(cast.ToString(raw))
		if s == "" {
			return nil
		}
		return s
	}
}

// TransformRecords rewrites every record through the header map, coercing
// values by type. Headers absent from the map are dropped.
func TransformRecords(records []map[string]any, headerMap map[string]ColumnSpec) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, record := range records {
		row := make(map[string]any, len(headerMap))
		for header, raw := range record {
			spec, ok := headerMap[header]
			if !ok {
				continue
			}
			row[spec.Key] = Coerce(raw, spec.Type)
		}
		out = append(out, row)
	}
	return out
}

// ExtractByHeader maps a sheet through a declared header-driven schema.
// Used for platforms whose exports have unstable column positions.
func ExtractByHeader(sheet *Sheet, schema PlatformSchema) []map[string]any {
	headerMap := make(map[string]ColumnSpec, len(schema.Columns))
	for _, spec := range schema.Columns {
		headerMap[spec.Header] = spec
	}
	return TransformRecords(sheet.Records(), headerMap)
}

// Extract runs the style of extraction the platform schema declares.
func Extract(sheet *Sheet, schema PlatformSchema, opts StaticOptions) []map[string]any {
	if schema.Positional {
		return ExtractStatic(sheet, schema, opts)
	}
	return ExtractByHeader(sheet, schema)
}
