package domain

import "errors"

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedQueryRequest   = "failed to parse query parameters"

	ErrParseUUID = errors.New("failed to parse UUID")
)
