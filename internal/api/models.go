package api

// StatusResponse is the body of GET /.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// DBTestResponse is the body of GET /db-test. TestResult is only set on
// success.
type DBTestResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	TestResult *int   `json:"test_result,omitempty"`
}
