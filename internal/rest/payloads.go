package rest

type CreateTaskIn struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"` // Accepted but ignored: new tasks always start PENDING
}

type UpdateTaskIn struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"` // PENDING|COMPLETED
}
