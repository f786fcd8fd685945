package upload

import (
	"sahabat3t-backend/config"
	"sahabat3t-backend/internal/global/database"
	"sahabat3t-backend/internal/global/filestore"
	"sahabat3t-backend/internal/global/jwt"
	"sahabat3t-backend/internal/global/response"
	"sahabat3t-backend/internal/model"

	"github.com/gin-gonic/gin"
)

// Store accepts one multipart file under the "file" field, persists it, and
// returns its public URL. Size is checked before anything touches storage.
func Store(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("tidak ada berkas yang diunggah"))
		return
	}

	maxSize := config.Get().Storage.MaxSize
	if maxSize <= 0 {
		maxSize = 10 << 20
	}
	if fileHeader.Size > maxSize {
		log.Warn("upload too large",
			"size", fileHeader.Size,
			"max", maxSize,
			"owner_id", payload.UserID)
		response.Fail(c, response.ErrPayloadTooLarge)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")

	var filename, url string
	if s3 != nil {
		file, err := fileHeader.Open()
		if err != nil {
			response.Fail(c, response.ErrInternal.WithOrigin(err))
			return
		}
		defer file.Close()

		filename = filestore.UniqueName(fileHeader.Filename)
		url, err = s3.Put(c.Request.Context(), filename, contentType, file)
		if err != nil {
			log.Error("S3 upload failed", "error", err, "owner_id", payload.UserID)
			response.Fail(c, response.ErrInternal.WithOrigin(err))
			return
		}
	} else {
		var err error
		filename, url, err = local.Save(fileHeader)
		if err != nil {
			log.Error("local save failed", "error", err, "owner_id", payload.UserID)
			response.Fail(c, response.ErrInternal.WithOrigin(err))
			return
		}
	}

	record := model.Upload{
		OwnerID:      payload.UserID,
		FileName:     filename,
		OriginalName: fileHeader.Filename,
		ContentType:  contentType,
		Size:         fileHeader.Size,
		URL:          url,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		log.Error("failed to record upload", "error", err, "file", filename)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("file stored",
		"file", filename,
		"size", fileHeader.Size,
		"owner_id", payload.UserID)

	response.Success(c, map[string]interface{}{
		"url":           url,
		"file_name":     filename,
		"original_name": fileHeader.Filename,
	})
}

type PresignReq struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
}

// Presign hands the client a direct-to-bucket upload URL. Only available when
// S3 storage is configured.
func Presign(c *gin.Context) {
	if s3 == nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("penyimpanan objek tidak dikonfigurasi"))
		return
	}

	var req PresignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	presigned, err := s3.PresignUpload(c.Request.Context(), filestore.PresignedUploadRequest{
		Filename:    req.Filename,
		ContentType: req.ContentType,
	})
	if err != nil {
		log.Error("presign failed", "error", err, "filename", req.Filename)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	response.Success(c, presigned)
}
