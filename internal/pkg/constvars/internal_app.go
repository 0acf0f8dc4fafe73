package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

// Actor roles as stored in the session document.
const (
	RoleEmployee = "EMPLOYEE"
	RoleGuardian = "GUARDIAN"
)

// Redis key formats for the meeting schedule store. The employee key holds the
// nurse's full availability document; the senior key holds the guardian request
// for one senior.
const (
	RedisKeyEmployeeScheduleFormat = "employee:schedule:%s"
	RedisKeyEmployeeSchedulePrefix = "employee:schedule:"
	RedisKeySeniorRequestFormat    = "senior:request:%d"
	RedisKeyMatchingLeaderLock     = "matching:leader"
)

const (
	MongoCollectionMeetingMatches = "meeting_matches"
)

const (
	MeetingMatchStatusPending   = "PENDING"
	MeetingMatchStatusConducted = "CONDUCTED"
)

// Editor workflow states.
const (
	EditorStateIdle       = "IDLE"
	EditorStateDirty      = "DIRTY"
	EditorStateSubmitting = "SUBMITTING"
)
