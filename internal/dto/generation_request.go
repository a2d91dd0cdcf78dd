package dto

type GenerateRequest struct {
	Prompt   string `json:"prompt" validate:"required,min=3"`
	Keywords string `json:"keywords"`
}

type GenerateResponse struct {
	Text string `json:"text"`
}
