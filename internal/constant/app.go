package constant

import "time"

const (
	QUERY_TIMEOUT_DURATION = 15 * time.Second

	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"

	DefaultPageSize = 20
	MaxPageSize     = 100

	API_V1_PREFIX = "/api/v1"
)
