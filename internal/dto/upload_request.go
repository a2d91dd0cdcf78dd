package dto

type PresignRequest struct {
	FileName string `json:"fileName" validate:"required,min=1"`
	FileType string `json:"fileType" validate:"required,min=1"`
	Folder   string `json:"folder"`
}

type PresignResponse struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
	PublicURL string `json:"publicUrl"`
}
