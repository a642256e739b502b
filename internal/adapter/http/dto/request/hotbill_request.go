package request

type RecalcIntentRequest struct {
	Intent *bool `json:"intent" binding:"required"`
}
