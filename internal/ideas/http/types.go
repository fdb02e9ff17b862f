package http

// submitReq is the POST /api/ideas body.
type submitReq struct {
	IdeaTitle       string `json:"ideaTitle"`
	IdeaDescription string `json:"ideaDescription"`
}

// submitResp is the success envelope for POST /api/ideas.
type submitResp struct {
	Success bool                   `json:"success"`
	IdeaID  string                 `json:"ideaId"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}
