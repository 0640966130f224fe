package handler

// ProcessResponse is the HTTP response for POST /receipts/process.
type ProcessResponse struct {
	ID string `json:"id"`
}

// PointsResponse is the HTTP response for GET /receipts/{id}/points.
type PointsResponse struct {
	Points int `json:"points"`
}
