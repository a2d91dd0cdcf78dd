package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/aryaduta/ecommerce-admin-service/internal/dto"
	"github.com/aryaduta/ecommerce-admin-service/internal/infrastructure/objectstorage"
	"github.com/aryaduta/ecommerce-admin-service/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

const defaultUploadFolder = "products"

var unsafeFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

type UploadServiceImpl struct {
	storage objectstorage.ObjectStorage
}

func CreateUploadService(storage objectstorage.ObjectStorage) UploadService {
	return &UploadServiceImpl{storage: storage}
}

// BuildObjectKey derives a collision-free object key from the sanitized file
// name's extension.
func BuildObjectKey(folder string, fileName string) string {
	if folder == "" {
		folder = defaultUploadFolder
	}

	sanitized := unsafeFileNameChars.ReplaceAllString(fileName, "_")
	ext := "bin"
	if idx := strings.LastIndex(sanitized, "."); idx >= 0 && idx < len(sanitized)-1 {
		ext = sanitized[idx+1:]
	}

	return fmt.Sprintf("%s/%s.%s", folder, strings.ToLower(ulid.Make().String()), ext)
}

func (s *UploadServiceImpl) PresignUpload(ctx context.Context, data dto.PresignRequest) (resp dto.PresignResponse, err error) {
	key := BuildObjectKey(data.Folder, data.FileName)

	uploadURL, err := s.storage.PresignUpload(ctx, key, data.FileType)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PresignUpload").Msg("")
		return resp, errs.ErrUpstream
	}

	resp.UploadURL = uploadURL
	resp.Key = key
	resp.PublicURL = s.storage.PublicURL(key)

	return resp, nil
}
