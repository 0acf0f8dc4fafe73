package constvars

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"len":      "must be exactly %s characters long",
	"numeric":  "must be numeric",
	"datetime": "must match the format %s",
	"oneof":    "must be one of: %s",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
}

var TagsWithParams = map[string]bool{
	"len":      true,
	"datetime": true,
	"oneof":    true,
	"min":      true,
	"max":      true,
}
