package plerr

import "testing"

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_INPUT", "invalid input: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestWithExtrasCopies(t *testing.T) {
	e := ErrStaleEdit.WithExtras(Extras{"currentLevel": 12})
	if ErrStaleEdit.Extras != nil {
		t.Error("Expected sentinel error to remain without extras")
	}
	if e.Extras == nil || (*e.Extras)["currentLevel"] != 12 {
		t.Error("Expected copied error to carry extras")
	}
}
