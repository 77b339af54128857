package dto

type GrantAwardRequest struct {
	UserID      string `json:"user_id" binding:"required,uuid"`
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description"`
	Points      int    `json:"points" binding:"min=0"`
}
