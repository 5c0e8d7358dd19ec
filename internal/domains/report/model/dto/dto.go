package dto

type ExportReportResponse struct {
	URL           string `json:"url"`
	Key           string `json:"key"`
	OccupancyRate int    `json:"occupancy_rate"`
	GeneratedAt   string `json:"generated_at"`
}

type DeleteReportRequest struct {
	URL string `json:"url" validate:"required,url"`
}
