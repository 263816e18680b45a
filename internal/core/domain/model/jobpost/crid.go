package jobpost

import "fmt"

// SequenceName is the named counter that drives CRID allocation.
const SequenceName = "jobpostId"

// FormatCRID derives the human-readable code for a sequence value:
// "CR" followed by the zero-padded 3-digit value. Values past 999 keep
// their full width.
func FormatCRID(seq int64) string {
	return fmt.Sprintf("CR%03d", seq)
}
