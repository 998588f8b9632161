package model

type ExportRequest struct {
	TenantID string         `json:"tenant_id"`
	Will     WillExportData `json:"will"`
	Options  ExportOptions  `json:"options"`
}
