package upload

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/upload"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/storage"
)

const (
	historyLimit = 50
	fileURLTTL   = 15 * time.Minute
)

var importContentTypes = map[string]string{
	".csv":  "text/csv",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

type UploadServiceImpl struct {
	uploadRepo  upload.UploadRepository
	fileStorage storage.FileStorage
}

func NewUploadService(uploadRepo upload.UploadRepository, fileStorage storage.FileStorage) upload.UploadService {
	return &UploadServiceImpl{
		uploadRepo:  uploadRepo,
		fileStorage: fileStorage,
	}
}

func (s *UploadServiceImpl) List(ctx context.Context) ([]upload.UploadResponse, error) {
	uploads, err := s.uploadRepo.List(ctx, historyLimit)
	if err != nil {
		return nil, err
	}

	out := make([]upload.UploadResponse, 0, len(uploads))
	for _, u := range uploads {
		out = append(out, upload.NewUploadResponse(u))
	}
	return out, nil
}

func (s *UploadServiceImpl) Latest(ctx context.Context) (upload.LatestUploadResponse, error) {
	latest, err := s.uploadRepo.LatestWithFile(ctx)
	if err != nil {
		return upload.LatestUploadResponse{}, err
	}

	exists, err := s.fileStorage.Exists(ctx, *latest.StoredPath)
	if err != nil {
		return upload.LatestUploadResponse{}, fmt.Errorf("failed to check stored upload: %w", err)
	}
	if !exists {
		return upload.LatestUploadResponse{}, upload.ErrFileNotFound
	}

	url, err := s.fileStorage.GetURL(ctx, *latest.StoredPath, fileURLTTL)
	if err != nil {
		return upload.LatestUploadResponse{}, fmt.Errorf("failed to get upload url: %w", err)
	}

	return upload.LatestUploadResponse{
		UploadResponse: upload.NewUploadResponse(latest),
		FileURL:        url,
		ExpiresAt:      time.Now().Add(fileURLTTL),
	}, nil
}

func (s *UploadServiceImpl) LatestFile(ctx context.Context) (upload.FileDownload, error) {
	latest, err := s.uploadRepo.LatestWithFile(ctx)
	if err != nil {
		return upload.FileDownload{}, err
	}

	body, err := s.fileStorage.Download(ctx, *latest.StoredPath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return upload.FileDownload{}, upload.ErrFileNotFound
		}
		return upload.FileDownload{}, fmt.Errorf("failed to open stored upload: %w", err)
	}

	name := filepath.Base(*latest.StoredPath)
	if latest.FileName != nil && *latest.FileName != "" {
		name = *latest.FileName
	}
	ext := strings.ToLower(filepath.Ext(name))
	contentType, ok := importContentTypes[ext]
	if !ok {
		contentType = mime.TypeByExtension(ext)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return upload.FileDownload{
		FileName:    name,
		ContentType: contentType,
		Body:        body,
	}, nil
}
