package response

type Error struct {
	Error string `json:"error" example:"message"`
}

type Accepted struct {
	RequestID string `json:"request_id" example:"0b6f1f7e-6d3a-4a39-9d6e-2d0f3a8c1e52"`
	Operation string `json:"operation" example:"convert"`
	Paths     int    `json:"paths" example:"2"`
}

type Outcome struct {
	Type   string `json:"type" example:"conversion_completed"`
	Input  string `json:"input" example:"/data/a.png"`
	Output []byte `json:"output,omitempty" swaggertype:"string" format:"base64"`
	Error  string `json:"error,omitempty"`
}

type Results struct {
	RequestID string    `json:"request_id"`
	Outcomes  []Outcome `json:"outcomes"`
}
