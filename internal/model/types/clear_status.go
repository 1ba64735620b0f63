package types

// ClearStatus is the ordered outcome tier of a decode result.
// The ordering is monotone: none < clear < full_combo < perfect_decode,
// and a higher tier implies every lower one.
type ClearStatus string

const (
	ClearStatusNone          ClearStatus = "none"
	ClearStatusClear         ClearStatus = "clear"
	ClearStatusFullCombo     ClearStatus = "full_combo"
	ClearStatusPerfectDecode ClearStatus = "perfect_decode"
)

var clearStatusRanks = map[ClearStatus]int{
	ClearStatusNone:          0,
	ClearStatusClear:         1,
	ClearStatusFullCombo:     2,
	ClearStatusPerfectDecode: 3,
}

func (s ClearStatus) Valid() bool {
	_, ok := clearStatusRanks[s]
	return ok
}

// Rank returns the position of s in the clear-status ordering.
// An unknown status ranks below none.
func (s ClearStatus) Rank() int {
	rank, ok := clearStatusRanks[s]
	if !ok {
		return -1
	}
	return rank
}

// Reaches reports whether s counts toward the threshold tier.
// A perfect decode reaches clear, full_combo and perfect_decode alike.
func (s ClearStatus) Reaches(threshold ClearStatus) bool {
	return s.Rank() >= threshold.Rank() && threshold.Rank() > 0
}
