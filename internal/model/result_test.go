package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"platinalab.dev/backend/internal/model/types"
)

func result(status types.ClearStatus, patch float64) *Result {
	return &Result{
		PlayerID:    "P",
		PatternID:   1,
		ClearStatus: status,
		Patch:       patch,
		SubmittedAt: time.Unix(1, 0),
	}
}

func TestSupersedes(t *testing.T) {
	testCases := []struct {
		name   string
		old    *Result
		new    *Result
		expect bool
	}{
		{"first result always wins", nil, result(types.ClearStatusClear, 80), true},
		{"higher patch same status", result(types.ClearStatusClear, 80), result(types.ClearStatusClear, 95), true},
		{"lower patch same status", result(types.ClearStatusClear, 80), result(types.ClearStatusClear, 75), false},
		{"identical resubmission", result(types.ClearStatusClear, 80), result(types.ClearStatusClear, 80), false},
		{"status upgrade equal patch", result(types.ClearStatusClear, 80), result(types.ClearStatusFullCombo, 80), true},
		{"status upgrade higher patch", result(types.ClearStatusClear, 80), result(types.ClearStatusPerfectDecode, 90), true},
		{"status upgrade but patch regresses", result(types.ClearStatusFullCombo, 70), result(types.ClearStatusPerfectDecode, 60), false},
		{"patch improves but status regresses", result(types.ClearStatusFullCombo, 70), result(types.ClearStatusClear, 95), false},
		{"none to clear", result(types.ClearStatusNone, 0), result(types.ClearStatusClear, 10), true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.new.Supersedes(tc.old))
		})
	}
}

func TestSupersedesIdempotent(t *testing.T) {
	// after A is stored, a worse-or-equal B must never supersede, no matter
	// how many times it is replayed
	stored := result(types.ClearStatusClear, 80)
	worse := result(types.ClearStatusClear, 75)
	for i := 0; i < 3; i++ {
		assert.False(t, worse.Supersedes(stored))
	}
}
