package api

type CSRFResponse struct {
	Token string `json:"token"`
}
