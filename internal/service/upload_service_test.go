package service

import (
	"context"
	"strings"
	"testing"

	"github.com/aryaduta/ecommerce-admin-service/internal/dto"
	svcmocks "github.com/aryaduta/ecommerce-admin-service/internal/service/mocks"
	"github.com/aryaduta/ecommerce-admin-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBuildObjectKey(t *testing.T) {
	t.Run("keeps the extension and defaults the folder", func(t *testing.T) {
		key := BuildObjectKey("", "photo.JPG")

		assert.True(t, strings.HasPrefix(key, "products/"), key)
		assert.True(t, strings.HasSuffix(key, ".JPG"), key)
	})

	t.Run("uses the requested folder", func(t *testing.T) {
		key := BuildObjectKey("banners", "hero.png")

		assert.True(t, strings.HasPrefix(key, "banners/"), key)
		assert.True(t, strings.HasSuffix(key, ".png"), key)
	})

	t.Run("strips unsafe characters from the name", func(t *testing.T) {
		key := BuildObjectKey("", "my photo (1)/..\\evil.png")

		assert.NotContains(t, key, " ")
		assert.NotContains(t, key, "(")
		assert.NotContains(t, key, "\\")
		assert.True(t, strings.HasSuffix(key, ".png"), key)
		// Exactly one path separator: the folder prefix.
		assert.Equal(t, 1, strings.Count(key, "/"), key)
	})

	t.Run("missing extension falls back to bin", func(t *testing.T) {
		assert.True(t, strings.HasSuffix(BuildObjectKey("", "README"), ".bin"))
		assert.True(t, strings.HasSuffix(BuildObjectKey("", "archive."), ".bin"))
	})

	t.Run("keys are unique per call", func(t *testing.T) {
		assert.NotEqual(t, BuildObjectKey("", "a.png"), BuildObjectKey("", "a.png"))
	})
}

func TestUploadService_PresignUpload(t *testing.T) {
	ctx := context.TODO()

	t.Run("returns upload url, key and public url", func(t *testing.T) {
		mockStorage := new(svcmocks.MockObjectStorage)
		svc := CreateUploadService(mockStorage)

		mockStorage.On("PresignUpload", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "products/") && strings.HasSuffix(key, ".png")
		}), "image/png").Return("https://bucket.s3.amazonaws.com/signed", nil).Once()
		mockStorage.On("PublicURL", mock.Anything).Return("https://bucket.s3.amazonaws.com/public").Once()

		resp, err := svc.PresignUpload(ctx, dto.PresignRequest{FileName: "shoe.png", FileType: "image/png"})
		require.NoError(t, err)

		assert.Equal(t, "https://bucket.s3.amazonaws.com/signed", resp.UploadURL)
		assert.Equal(t, "https://bucket.s3.amazonaws.com/public", resp.PublicURL)
		assert.True(t, strings.HasPrefix(resp.Key, "products/"))
		mockStorage.AssertExpectations(t)
	})

	t.Run("signer failure maps to upstream error", func(t *testing.T) {
		mockStorage := new(svcmocks.MockObjectStorage)
		svc := CreateUploadService(mockStorage)

		mockStorage.On("PresignUpload", ctx, mock.Anything, mock.Anything).Return("", assert.AnError).Once()

		_, err := svc.PresignUpload(ctx, dto.PresignRequest{FileName: "shoe.png", FileType: "image/png"})
		assert.Equal(t, errs.ErrUpstream, err)
	})
}
