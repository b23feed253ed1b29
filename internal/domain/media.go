package domain

import (
	"context"
	"io"
)

type ResourceKind string

const (
	ResourceImage ResourceKind = "image"
	ResourceVideo ResourceKind = "video"
)

// MediaStorage — внешнее объектное хранилище бинарников (постеры, видео).
type MediaStorage interface {
	Upload(ctx context.Context, file io.Reader, kind ResourceKind) (Media, error)
	Destroy(ctx context.Context, publicID string, kind ResourceKind) error
}
