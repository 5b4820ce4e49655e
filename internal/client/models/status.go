package models

// Status is the retrieval state of the orchestrator.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusEmpty   Status = "empty"
	StatusError   Status = "error"
)

// Settled reports whether the status is one of success, empty or error.
func (s Status) Settled() bool {
	return s == StatusSuccess || s == StatusEmpty || s == StatusError
}

// Fallback reports whether the static catalog must be shown for this status.
func (s Status) Fallback() bool {
	return s == StatusEmpty || s == StatusError
}
