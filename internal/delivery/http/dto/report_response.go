package dto

import "talent-crm/internal/reporting"

type RecentActivityResponse struct {
	ActivityID string `json:"activity_id"`
	Type       string `json:"type"`
	Subject    string `json:"subject"`
	CreatedAt  string `json:"created_at"`
}

type DashboardResponse struct {
	Window          string `json:"window"`
	OpenTasks       int    `json:"open_tasks"`
	OverdueTasks    int    `json:"overdue_tasks"`
	InInterview     int    `json:"in_interview"`
	Hired           int    `json:"hired"`
	TotalActivities int    `json:"total_activities"`

	StageBuckets        []reporting.Bucket       `json:"stage_buckets"`
	TaskStatusBuckets   []reporting.Bucket       `json:"task_status_buckets"`
	ActivityTypeBuckets []reporting.Bucket       `json:"activity_type_buckets"`
	RecentActivities    []RecentActivityResponse `json:"recent_activities"`

	GeneratedAt string `json:"generated_at"`
}
