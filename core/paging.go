// Place for pure domain logic: framework-free, easy to unit test.

package core

import (
	"fmt"
	"strings"
)

// LastPage returns the highest valid zero-based page index for a result set:
// max(0, ceil(totalElements/size)-1). A non-positive size counts as a single
// page so the result is always >= 0, which is what makes the dashboard's
// corrective re-fetch terminate.
func LastPage(totalElements int64, size int) int {
	if size <= 0 || totalElements <= 0 {
		return 0
	}
	pages := (totalElements + int64(size) - 1) / int64(size) // ceil division
	if pages <= 1 {
		return 0
	}
	return int(pages - 1)
}

// NormalizeFilter trims a filter input; a blank value means "no filter".
func NormalizeFilter(s string) string {
	return strings.TrimSpace(s)
}

// FormatSort renders a sort spec the way the backend expects it:
// "<field>,<direction>". An empty field disables sorting entirely; an empty
// direction defaults to asc.
func FormatSort(field, direction string) string {
	if field == "" {
		return ""
	}
	if direction == "" {
		direction = "asc"
	}
	return fmt.Sprintf("%s,%s", field, direction)
}
