package templates

import (
	"strconv"
	"strings"
)

// typeParams renders "T0, T1, ..." for the given arity.
func typeParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("T")
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
