package usecase

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"courseplatform/internal/domain"
)

var errUnexpectedCall = errors.New("unexpected call")

type stubCourseRepo struct {
	createFn  func(ctx context.Context, course *domain.Course) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	listFn    func(ctx context.Context) ([]domain.Course, error)
	saveFn    func(ctx context.Context, course *domain.Course) error
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (s *stubCourseRepo) Create(ctx context.Context, course *domain.Course) error {
	if s.createFn == nil {
		return errUnexpectedCall
	}
	return s.createFn(ctx, course)
}

func (s *stubCourseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	if s.getByIDFn == nil {
		return nil, errUnexpectedCall
	}
	return s.getByIDFn(ctx, id)
}

func (s *stubCourseRepo) List(ctx context.Context) ([]domain.Course, error) {
	if s.listFn == nil {
		return nil, errUnexpectedCall
	}
	return s.listFn(ctx)
}

func (s *stubCourseRepo) Save(ctx context.Context, course *domain.Course) error {
	if s.saveFn == nil {
		return errUnexpectedCall
	}
	return s.saveFn(ctx, course)
}

func (s *stubCourseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn == nil {
		return errUnexpectedCall
	}
	return s.deleteFn(ctx, id)
}

type destroyCall struct {
	publicID string
	kind     domain.ResourceKind
}

type stubMediaStorage struct {
	uploadFn  func(ctx context.Context, file io.Reader, kind domain.ResourceKind) (domain.Media, error)
	destroyFn func(ctx context.Context, publicID string, kind domain.ResourceKind) error

	uploads  []domain.ResourceKind
	destroys []destroyCall
}

func (s *stubMediaStorage) Upload(ctx context.Context, file io.Reader, kind domain.ResourceKind) (domain.Media, error) {
	s.uploads = append(s.uploads, kind)
	if s.uploadFn == nil {
		return domain.Media{}, errUnexpectedCall
	}
	return s.uploadFn(ctx, file, kind)
}

func (s *stubMediaStorage) Destroy(ctx context.Context, publicID string, kind domain.ResourceKind) error {
	s.destroys = append(s.destroys, destroyCall{publicID: publicID, kind: kind})
	if s.destroyFn == nil {
		return errUnexpectedCall
	}
	return s.destroyFn(ctx, publicID, kind)
}

type stubUserRepo struct {
	createFn     func(ctx context.Context, user *domain.User) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	updateFn     func(ctx context.Context, user *domain.User) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error {
	if s.createFn == nil {
		return errUnexpectedCall
	}
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if s.getByIDFn == nil {
		return nil, errUnexpectedCall
	}
	return s.getByIDFn(ctx, id)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.getByEmailFn == nil {
		return nil, errUnexpectedCall
	}
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserRepo) Update(ctx context.Context, user *domain.User) error {
	if s.updateFn == nil {
		return errUnexpectedCall
	}
	return s.updateFn(ctx, user)
}

type stubGateway struct {
	createFn func(ctx context.Context, planID string) (domain.GatewaySubscription, error)
	calls    int
}

func (s *stubGateway) CreateSubscription(ctx context.Context, planID string) (domain.GatewaySubscription, error) {
	s.calls++
	if s.createFn == nil {
		return domain.GatewaySubscription{}, errUnexpectedCall
	}
	return s.createFn(ctx, planID)
}

type stubTokenCache struct {
	saved   map[string]string
	deleted []string
}

func newStubTokenCache() *stubTokenCache {
	return &stubTokenCache{saved: map[string]string{}}
}

func (s *stubTokenCache) SaveRefresh(ctx context.Context, userID string, refreshToken string) error {
	s.saved[refreshToken] = userID
	return nil
}

func (s *stubTokenCache) CheckRefresh(ctx context.Context, refreshToken string) (string, error) {
	userID, ok := s.saved[refreshToken]
	if !ok {
		return "", errors.New("not found")
	}
	return userID, nil
}

func (s *stubTokenCache) DeleteRefresh(ctx context.Context, refreshToken string) error {
	delete(s.saved, refreshToken)
	s.deleted = append(s.deleted, refreshToken)
	return nil
}
