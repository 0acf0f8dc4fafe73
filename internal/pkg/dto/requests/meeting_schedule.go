package requests

// RegisterEmployeeSchedule carries a nurse's full availability as wire
// timestamps (YYYYMMDDHHmmss). An empty list is a valid request and means
// "delete the entire schedule".
type RegisterEmployeeSchedule struct {
	CheckedTime []string `json:"checkedTime" validate:"dive,len=14,numeric"`
}

type RegisterGuardianSchedule struct {
	SeniorID    int      `json:"seniorId" validate:"required,min=1"`
	CheckedTime []string `json:"checkedTime" validate:"dive,len=14,numeric"`
}

type EditorSelectDate struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type EditorToggleSlot struct {
	Slot string `json:"slot" validate:"required,datetime=15:04"`
}

type RunMatching struct {
	// TargetDate is a wire date (YYYYMMDD); empty means "lead-time days from today".
	TargetDate string `json:"targetDate" validate:"omitempty,len=8,numeric"`
}
