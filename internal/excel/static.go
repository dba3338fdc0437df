package excel

import (
	"strings"

	"github.com/spf13/cast"
)

// StaticOptions tunes positional extraction.
type StaticOptions struct {
	// StripQuotes removes single and double quote characters from string
	// cells. Product master exports wrap codes in stray quotes.
	StripQuotes bool
}

var quoteReplacer = strings.NewReplacer(`"`, "", `'`, "")

// ExtractStatic walks the sheet by column position using the platform's
// declared layout. String columns are stringified as-is, number columns
// coerced numerically, and missing cells yield nil.
func ExtractStatic(sheet *Sheet, schema PlatformSchema, opts StaticOptions) []map[string]any {
	startRow := schema.StartRow - 1 // 0-based
	var rows []map[string]any

	for r := startRow; r < len(sheet.rows); r++ {
		row := make(map[string]any, len(schema.Columns))
		for col, spec := range schema.Columns {
			raw, ok := sheet.Cell(col, r)
			if !ok {
				row[spec.Key] = nil
				continue
			}
			switch spec.Type {
			case TypeNumber:
				row[spec.Key] = cast.ToFloat64(raw)
			default:
				if opts.StripQuotes {
					raw = quoteReplacer.Replace(raw)
				}
				row[spec.Key] = raw
			}
		}
		rows = append(rows, row)
	}

	return rows
}
