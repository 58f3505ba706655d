package fixmat

import (
	"strconv"
	"strings"
)

// String renders m in the package's diagnostic format:
//
//	Matrix<R,C>
//	{
//	v,v,...,v,
//	...
//	}
//
// Every entry is printed with exactly six fractional digits and followed
// by a comma (including the last entry of a row); every row ends with a
// newline; no newline follows the closing brace. The format is an exact
// external contract consumed by tests and diagnostics - it is case- and
// whitespace-sensitive and must not drift.
// Complexity: O(rows*cols).
func (m *Matrix) String() string {
	var b strings.Builder
	// 9 bytes is a comfortable guess per rendered entry ("x.xxxxxx,").
	b.Grow(len(m.data)*9 + m.rows + 16)

	b.WriteString("Matrix<")
	b.WriteString(strconv.Itoa(m.rows))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(m.cols))
	b.WriteString(">\n{\n")
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'f', 6, 64))
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteByte('}')

	return b.String()
}
