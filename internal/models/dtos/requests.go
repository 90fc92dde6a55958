package dtos

// SubmitReportReq is the gateway payload for a daily-report submission. An
// empty ReportDate means yesterday in the reference timezone.
type SubmitReportReq struct {
	ReportDate string `json:"report_date,omitempty"`
	Content    string `json:"content"`
}

// ReplaceIgnoredDatesReq carries the raw comma-separated date-config text,
// exactly as the admin typed it.
type ReplaceIgnoredDatesReq struct {
	Dates string `json:"dates"`
}

type RegisterUserReq struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Role     string `json:"role"`
}

type SetNicknameReq struct {
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
}

type ToggleFeatureReq struct {
	Name string `json:"name"`
}
