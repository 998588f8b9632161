package model

type ExportResponse struct {
	ExportMetadata ExportMetadata `json:"export_metadata"`
	ExportResult   ExportResult   `json:"export_result"`
}

type ExportMetadata struct {
	ExportID          string `json:"export_id"`
	TenantID          string `json:"tenant_id"`
	ExportStartedAt   string `json:"export_started_at"`
	ExportCompletedAt string `json:"export_completed_at"`
	ExportDurationMs  int64  `json:"export_duration_ms"`
	ExportOutcome     string `json:"export_outcome"`
}

type ExportResult struct {
	Filename  string `json:"filename"`
	MediaType string `json:"media_type"`
	SizeBytes int    `json:"size_bytes"`
	// Content is the finished document, base64 encoded.
	Content string `json:"content"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// Document is the in-process result of one export call: a finished binary
// or text blob plus the metadata the caller needs to hand it on.
type Document struct {
	Filename  string
	MediaType string
	Content   []byte
}
