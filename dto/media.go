package dto

type MediaUploadResponse struct {
	URL         string `json:"url"`
	ObjectKey   string `json:"object_key"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}
