package dto

type UserListResponse struct {
	Users    []*UserResponse `json:"users"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

type SuspendResponse struct {
	UserID    string `json:"user_id"`
	Suspended bool   `json:"suspended"`
}

type StatsResponse struct {
	TotalUsers     int64 `json:"total_users"`
	SuspendedUsers int64 `json:"suspended_users"`
	AdminUsers     int64 `json:"admin_users"`
	TotalJobs      int64 `json:"total_jobs"`
}
