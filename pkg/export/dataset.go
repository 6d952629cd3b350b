// Package export renders tabular datasets as CSV, XLSX or PDF.
package export

import (
	"strconv"
)

// Dataset defines tabular export content. Cells hold strings, numbers or nil.
type Dataset struct {
	Title   string
	Headers []string
	Rows    [][]interface{}
}

// Renderer turns a dataset into a file body.
type Renderer interface {
	Render(data Dataset) ([]byte, error)
	ContentType() string
	Extension() string
}

// FormatCell renders a cell as text.
func FormatCell(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		if x {
			return "Yes"
		}
		return "No"
	default:
		return ""
	}
}
