package models

type ExtractResponse struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	FileType   string `json:"file_type"`
	Text       string `json:"text"`
	Characters int    `json:"characters"`
}

type AnalyzeRequest struct {
	Text string `json:"text" form:"text"`
}

type AnalyzeResponse struct {
	Feedback string `json:"feedback"`
	OK       bool   `json:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
