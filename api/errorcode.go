package api

import "github.com/tutolink/tutolink-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid role",
		1001: "invalid authorization format",
		1002: "difference between the request time and the current time is too large",
		1003: "invalid token",
		1004: "operation not allowed for this role",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountTaken.Error(),
		1101: store.ErrAccountNotFound.Error(),

		1200: store.ErrSessionNotFound.Error(),
		1201: store.ErrRequestTaken.Error(),
		1202: store.ErrDuplicatePendingRequest.Error(),
		1203: store.ErrDuplicateActiveSession.Error(),
		1204: store.ErrOwnRequest.Error(),
		1205: store.ErrGracePeriodExpired.Error(),
		1206: store.ErrNotSessionParty.Error(),
		1207: store.ErrInvalidTransition.Error(),
		1208: store.ErrSessionNotCompleted.Error(),
		1209: store.ErrFeedbackAlreadyGiven.Error(),

		1300: store.ErrAlreadyRejected.Error(),
		1301: store.ErrRejectionNotFound.Error(),

		1400: store.ErrDuplicateExpertise.Error(),
		1401: store.ErrExpertiseNotFound.Error(),
		1402: store.ErrCourseNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidRole                = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorRequestTimeTooSkewed       = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)
	errorForbiddenRole              = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorSessionNotFound         = errorJSON(1200)
	errorRequestTaken            = errorJSON(1201)
	errorDuplicatePendingRequest = errorJSON(1202)
	errorDuplicateActiveSession  = errorJSON(1203)
	errorOwnRequest              = errorJSON(1204)
	errorGracePeriodExpired      = errorJSON(1205)
	errorNotSessionParty         = errorJSON(1206)
	errorInvalidTransition       = errorJSON(1207)
	errorSessionNotCompleted     = errorJSON(1208)
	errorFeedbackAlreadyGiven    = errorJSON(1209)

	errorAlreadyRejected   = errorJSON(1300)
	errorRejectionNotFound = errorJSON(1301)

	errorDuplicateExpertise = errorJSON(1400)
	errorExpertiseNotFound  = errorJSON(1401)
	errorCourseNotFound     = errorJSON(1402)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
