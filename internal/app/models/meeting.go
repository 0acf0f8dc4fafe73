package models

import "time"

// EmployeeScheduleData is the Redis document behind employee:schedule:<id>.
// AvailableTime holds wire timestamps (YYYYMMDDHHmmss). Seniors lists the IDs
// of seniors assigned to this nurse; the matcher walks them to collect
// guardian requests.
type EmployeeScheduleData struct {
	Seniors       []int    `json:"seniors"`
	AvailableTime []string `json:"availableTime"`
	CreatedAt     string   `json:"createdAt"`
	ExpiresAt     string   `json:"expiresAt"`
}

// GuardianRequestData is the Redis document behind senior:request:<seniorId>.
type GuardianRequestData struct {
	UserID        string   `json:"userId"`
	AvailableTime []string `json:"availableTime"`
	RequestedAt   string   `json:"requestedAt"`
	Status        string   `json:"status"`
}

// MeetingMatch is one confirmed nurse/guardian consultation produced by the
// matcher and persisted to MongoDB.
type MeetingMatch struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID  string    `json:"employee_id" bson:"employee_id"`
	GuardianID  string    `json:"guardian_id" bson:"guardian_id"`
	SeniorID    int       `json:"senior_id" bson:"senior_id"`
	MeetingTime time.Time `json:"meeting_time" bson:"meeting_time"`
	MatchedAt   time.Time `json:"matched_at" bson:"matched_at"`
	Status      string    `json:"status" bson:"status"`
}
