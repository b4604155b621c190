package domain

// DownloadRequest carries the query parameters of a download call.
type DownloadRequest struct {
	URL     string `json:"url" validate:"required"`
	Quality string `json:"quality"`
}

// DownloadResult is the outcome of one download, successful or not.
type DownloadResult struct {
	ID       string   `json:"id"`
	URL      string   `json:"url"`
	Quality  Quality  `json:"quality"`
	Title    string   `json:"title,omitempty"`
	FilePath string   `json:"file_path,omitempty"`
	Progress []string `json:"progress"`
	Error    string   `json:"error,omitempty"`
}

const DownloadCompleteMessage = "Download complete!"

// DownloadResponse is the 200 response body.
type DownloadResponse struct {
	Message  string   `json:"message"`
	FilePath string   `json:"file_path"`
	Progress []string `json:"progress"`
}

// FailureResponse is the 500 response body.
type FailureResponse struct {
	Error    string   `json:"error"`
	Progress []string `json:"progress"`
}

// ErrorResponse is the body of client errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
