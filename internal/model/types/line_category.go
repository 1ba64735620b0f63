package types

// LineCategory is one of the four gameplay modes under which songs, patterns
// and leaderboards are partitioned.
type LineCategory string

const (
	Line4  LineCategory = "4L"
	Line4P LineCategory = "4L+"
	Line6  LineCategory = "6L"
	Line6P LineCategory = "6L+"
)

// Lines enumerates every line category in display order.
var Lines = []LineCategory{Line4, Line4P, Line6, Line6P}

func (l LineCategory) Valid() bool {
	switch l {
	case Line4, Line4P, Line6, Line6P:
		return true
	}
	return false
}
