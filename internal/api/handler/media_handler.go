package handler

import (
	"TrainerHub/internal/api/dto"
	"TrainerHub/internal/pkg/consts"
	"TrainerHub/internal/pkg/minio"
	"TrainerHub/internal/pkg/redis"
	"TrainerHub/internal/pkg/response"
	"TrainerHub/internal/pkg/util"
	"TrainerHub/internal/service"
	"bytes"
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil || !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	ext := path.Ext(file.Filename)
	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	fileKey, err := minio.UploadFile(c.Request.Context(), minio.TempBucket, objectName, reader, file.Size, contentType)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "MinIO upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	var width, height int
	var thumbnailKey string

	// 上传把 reader 读到了末尾，解码前先回到开头
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		response.Error(c, service.UnExpectedError)
		return
	}

	// GIF 额外生成首帧缩略图，列表页不用拉整个动图
	var thumb []byte
	if contentType == consts.MimeGif {
		thumb, width, height, err = util.GifThumbnail(reader)
	} else {
		thumb, width, height, err = util.ImageThumbnail(reader)
	}
	if err != nil {
		log.WarnContext(c.Request.Context(), "thumbnail generation failed", "fileKey", fileKey, "err", err)
	} else if contentType == consts.MimeGif {
		thumbName := strings.TrimSuffix(objectName, ext) + "_thumb.png"
		thumbnailKey, err = minio.UploadFile(c.Request.Context(), minio.TempBucket, thumbName,
			bytes.NewReader(thumb), int64(len(thumb)), "image/png")
		if err != nil {
			log.WarnContext(c.Request.Context(), "thumbnail upload failed", "fileKey", fileKey, "err", err)
			thumbnailKey = ""
		}
	}

	meta := dto.MediaTempMetadata{
		MimeType:  contentType,
		Width:     width,
		Height:    height,
		CreatedAt: time.Now().Unix(),
	}
	metaBytes, _ := json.Marshal(meta)
	_ = redis.HSet(c.Request.Context(), consts.MediaTempKey, fileKey, string(metaBytes))
	if thumbnailKey != "" {
		_ = redis.HSet(c.Request.Context(), consts.MediaTempKey, thumbnailKey, string(metaBytes))
	}

	res := map[string]interface{}{
		"url":       minio.GetPublicURL(minio.TempBucket, fileKey),
		"key":       fileKey,
		"thumbnail": thumbnailKey,
		"mime":      contentType,
		"width":     width,
		"height":    height,
		"size":      file.Size,
		"original":  file.Filename,
	}

	log.InfoContext(c.Request.Context(), "media upload success and metadata cached", "fileKey", fileKey, "type", contentType)
	response.Success(c, res)
}
