package upload

import (
	"context"
	"log/slog"
	"strings"

	"sahabat3t-backend/config"
	"sahabat3t-backend/internal/global/filestore"
	"sahabat3t-backend/internal/global/logger"
)

var (
	log   *slog.Logger
	local *filestore.Local
	s3    *filestore.S3Store
)

type ModuleUpload struct{}

func (u *ModuleUpload) GetName() string {
	return "Upload"
}

func (u *ModuleUpload) Init() {
	log = logger.New("Upload")
	cfg := config.Get()

	baseURL := strings.TrimRight(cfg.Storage.BaseURL, "/")
	if baseURL == "" {
		baseURL = strings.TrimRight(cfg.Domain, "/") + "/uploads"
	}
	local = filestore.NewLocal(cfg.Storage.Home, baseURL)

	store, err := filestore.NewS3(context.Background(), cfg.S3)
	if err != nil {
		log.Error("S3 storage unavailable, falling back to local disk", "error", err)
		return
	}
	if store != nil {
		log.Info("S3 storage enabled", "bucket", cfg.S3.Bucket)
		s3 = store
	}
}
