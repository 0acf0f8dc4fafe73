package constvars

// Client-facing error messages.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientScheduleNotSaved              = "Your schedule changes were not saved, please try again"
	ErrClientDateEditBlocked               = "Dates within the lead-time window cannot be modified"
	ErrClientSubmitInFlight                = "A save is already in progress, please wait for it to finish"
	ErrClientEditorNotOpen                 = "No schedule editor session is open"
	ErrClientNoDateSelected                = "Select a date before editing time slots"
	ErrClientUnknownTimeSlot               = "Unknown time slot"
)

// Developer-facing error messages.
const (
	ErrDevValidationFailed           = "VALIDATION_FAILED"
	ErrDevCannotParseJSON            = "CANNOT_PARSE_JSON"
	ErrDevCannotMarshalJSON          = "CANNOT_MARSHAL_JSON"
	ErrDevServerDeadlineExceeded     = "SERVER_DEADLINE_EXCEEDED"
	ErrDevMissingRequestID           = "MISSING_REQUEST_ID"
	ErrDevMissingSessionData         = "MISSING_SESSION_DATA"
	ErrDevAuthTokenMissing           = "AUTH_TOKEN_MISSING"
	ErrDevAuthTokenInvalid           = "AUTH_TOKEN_INVALID_OR_EXPIRED"
	ErrDevAuthSigningMethod          = "AUTH_INVALID_SIGNING_METHOD"
	ErrDevAuthInvalidSession         = "AUTH_INVALID_SESSION"
	ErrDevAuthGenerateToken          = "AUTH_GENERATE_TOKEN_FAILED"
	ErrDevRoleTypeDoesntMatch        = "ROLE_TYPE_DOES_NOT_MATCH"
	ErrDevRedisSet                   = "REDIS_SET_FAILED"
	ErrDevRedisGet                   = "REDIS_GET_FAILED"
	ErrDevRedisDelete                = "REDIS_DELETE_FAILED"
	ErrDevRedisScan                  = "REDIS_SCAN_FAILED"
	ErrDevRedisUnlock                = "REDIS_UNLOCK_FAILED"
	ErrDevMongoDBInsertDocument      = "MONGODB_INSERT_DOCUMENT_FAILED"
	ErrDevMongoDBFindDocument        = "MONGODB_FIND_DOCUMENT_FAILED"
	ErrDevMongoDBIterateDocuments    = "MONGODB_ITERATE_DOCUMENTS_FAILED"
	ErrDevMessagingPublish           = "MESSAGING_PUBLISH_FAILED"
	ErrDevScheduleWireFormat         = "SCHEDULE_WIRE_FORMAT_INVALID"
	ErrDevScheduleDateKeyMalformed   = "SCHEDULE_DATE_KEY_MALFORMED"
	ErrDevScheduleUnknownSlot        = "SCHEDULE_SLOT_OUTSIDE_CATALOG"
	ErrDevScheduleEditBlocked        = "SCHEDULE_DATE_EDIT_BLOCKED"
	ErrDevScheduleSubmitInFlight     = "SCHEDULE_SUBMIT_IN_FLIGHT"
	ErrDevScheduleEditorNotOpen      = "SCHEDULE_EDITOR_NOT_OPEN"
	ErrDevScheduleNoDateSelected     = "SCHEDULE_NO_DATE_SELECTED"
	ErrDevScheduleGatewayRead        = "SCHEDULE_GATEWAY_READ_FAILED"
	ErrDevScheduleGatewayWrite       = "SCHEDULE_GATEWAY_WRITE_FAILED"
	ErrDevMatchingTargetDateInvalid  = "MATCHING_TARGET_DATE_INVALID"
)
