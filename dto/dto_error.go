package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

type AckResponse struct {
	OK bool `json:"ok"`
}
