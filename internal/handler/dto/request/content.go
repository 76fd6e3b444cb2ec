package request

type CreateContentRequest struct {
	Title string `json:"title" binding:"required,max=200"`
	Body  string `json:"body" binding:"max=100000"`
}
