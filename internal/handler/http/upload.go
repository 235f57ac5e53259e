package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/upload"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/handler/http/response"
)

type UploadHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Latest(w http.ResponseWriter, r *http.Request)
	DownloadLatest(w http.ResponseWriter, r *http.Request)
}

type uploadHandlerImpl struct {
	uploadService upload.UploadService
}

func NewUploadHandler(uploadService upload.UploadService) UploadHandler {
	return &uploadHandlerImpl{
		uploadService: uploadService,
	}
}

// List handles GET /uploads
func (h *uploadHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.uploadService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithTotal(w, result, len(result))
}

// Latest handles GET /uploads/latest
func (h *uploadHandlerImpl) Latest(w http.ResponseWriter, r *http.Request) {
	result, err := h.uploadService.Latest(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DownloadLatest handles GET /uploads/latest/file
func (h *uploadHandlerImpl) DownloadLatest(w http.ResponseWriter, r *http.Request) {
	file, err := h.uploadService.LatestFile(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer file.Body.Close()

	response.Attachment(w, file.FileName, file.ContentType, -1, file.Body)
}
