package media

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"courseplatform/internal/domain"
)

// CloudinaryStorage — адаптер к Cloudinary. Картинки (постеры) и видео
// (лекции) различаются на уровне resource_type.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStorage{cld: cld}, nil
}

var _ domain.MediaStorage = (*CloudinaryStorage)(nil)

func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader, kind domain.ResourceKind) (domain.Media, error) {
	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		ResourceType: string(kind),
	})
	if err != nil {
		return domain.Media{}, domain.NewMediaStore("media upload failed: " + err.Error())
	}
	if res.Error.Message != "" {
		return domain.Media{}, domain.NewMediaStore("media upload failed: " + res.Error.Message)
	}
	return domain.Media{PublicID: res.PublicID, URL: res.SecureURL}, nil
}

func (s *CloudinaryStorage) Destroy(ctx context.Context, publicID string, kind domain.ResourceKind) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: string(kind),
	})
	if err != nil {
		return domain.NewMediaStore("media destroy failed: " + err.Error())
	}
	// Cloudinary отвечает "not found" тем же полем, что и прочие ошибки;
	// от реального сбоя это не отличить
	if res.Result != "ok" {
		return domain.NewMediaStore("media destroy failed: " + res.Result)
	}
	return nil
}
