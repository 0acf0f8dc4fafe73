package responses

import "time"

type EmployeeSchedule struct {
	CheckedTime []string `json:"checkedTime"`
}

type GuardianSchedule struct {
	SeniorID    int      `json:"seniorId"`
	CheckedTime []string `json:"checkedTime"`
}

// EditorState is the full view of one actor's schedule-editor session.
type EditorState struct {
	SelectedDate     string              `json:"selected_date"`
	WorkingSelection []string            `json:"working_selection"`
	Staged           map[string][]string `json:"staged"`
	State            string              `json:"state"`
	EditBlocked      bool                `json:"edit_blocked"`
	CurrentDateDirty bool                `json:"current_date_dirty"`
	HasPendingChange bool                `json:"has_pending_change"`
	SlotCatalog      []string            `json:"slot_catalog"`
}

type MeetingMatch struct {
	ID          string    `json:"id,omitempty"`
	EmployeeID  string    `json:"employee_id"`
	GuardianID  string    `json:"guardian_id"`
	SeniorID    int       `json:"senior_id"`
	MeetingTime time.Time `json:"meeting_time"`
	MatchedAt   time.Time `json:"matched_at"`
	Status      string    `json:"status"`
}

type MatchingRun struct {
	TargetDate string         `json:"target_date"`
	Matches    []MeetingMatch `json:"matches"`
}
