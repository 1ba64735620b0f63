package rekuest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/pkg/plerr"
)

func TestValidStructSubmitRequest(t *testing.T) {
	valid := types.SubmitRequest{
		PlayerID:     "player-1",
		PatternID:    42,
		ClearStatus:  types.ClearStatusFullCombo,
		Patch:        97.5,
		Score:        998877,
		Judge:        99.1,
		SourceClient: "desktop/1.4.0",
	}
	assert.NoError(t, ValidStruct(valid))

	badStatus := valid
	badStatus.ClearStatus = "alm0st"
	assertInvalid(t, ValidStruct(badStatus))

	badPatch := valid
	badPatch.Patch = 140
	assertInvalid(t, ValidStruct(badPatch))

	missingPlayer := valid
	missingPlayer.PlayerID = ""
	assertInvalid(t, ValidStruct(missingPlayer))
}

func TestValidStructProposeSongRequest(t *testing.T) {
	valid := types.ProposeSongRequest{
		Title:        "NIGHTMARE CITY",
		Artist:       "Hi-Fi UNZIP",
		BPM:          "190",
		Line:         types.Line6P,
		SourceClient: "desktop/1.4.0",
	}
	assert.NoError(t, ValidStruct(valid))

	badLine := valid
	badLine.Line = "8L"
	assertInvalid(t, ValidStruct(badLine))
}

func TestValidStructProposeLevelEditRequest(t *testing.T) {
	valid := types.ProposeLevelEditRequest{
		Level:        27,
		EditedAt:     time.Now(),
		SourceClient: "desktop/1.4.0",
	}
	assert.NoError(t, ValidStruct(valid))

	noTimestamp := valid
	noTimestamp.EditedAt = time.Time{}
	assertInvalid(t, ValidStruct(noTimestamp))

	levelTooHigh := valid
	levelTooHigh.Level = 99
	assertInvalid(t, ValidStruct(levelTooHigh))
}

func assertInvalid(t *testing.T, err error) {
	t.Helper()
	assert.Error(t, err)
	e, ok := err.(*plerr.PlatinaError)
	assert.True(t, ok)
	assert.Equal(t, plerr.CodeInvalidInput, e.ErrorCode)
}
