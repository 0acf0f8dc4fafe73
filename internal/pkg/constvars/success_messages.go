package constvars

const (
	RegisterEmployeeScheduleSuccessMessage = "Consultation schedule registered successfully"
	GetEmployeeScheduleSuccessMessage      = "Consultation schedule retrieved successfully"
	RegisterGuardianScheduleSuccessMessage = "Guardian consultation request registered successfully"
	GetGuardianScheduleSuccessMessage      = "Guardian consultation request retrieved successfully"
	EditorOpenedSuccessMessage             = "Schedule editor opened"
	EditorStateSuccessMessage              = "Schedule editor state retrieved"
	EditorDateSelectedSuccessMessage       = "Date selected"
	EditorSlotToggledSuccessMessage        = "Time slot toggled"
	EditorDateStagedSuccessMessage         = "Current date staged"
	EditorDateResetSuccessMessage          = "Current date selection cleared"
	EditorAllSlotsToggledSuccessMessage    = "All time slots toggled"
	EditorSubmittedSuccessMessage          = "All staged schedule changes saved"
	EditorClosedSuccessMessage             = "Schedule editor closed"
	RunMatchingSuccessMessage              = "Meeting matching completed"
	ListMatchesSuccessMessage              = "Meeting matches retrieved successfully"
)
