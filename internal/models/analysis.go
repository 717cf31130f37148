package models

// Analysis is what the analyzer hands back to a handler. Feedback is always
// displayable; Err keeps the underlying cause when Feedback is a warning or an
// error message.
type Analysis struct {
	Feedback string
	Err      error
}

func (a Analysis) OK() bool {
	return a.Err == nil
}
