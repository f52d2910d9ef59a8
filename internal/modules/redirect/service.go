package redirect

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/minhtran-dev/shop-admin-backend/internal/slug"
)

// ErrRedirectNotFound is returned when a slug does not resolve to an active
// redirect.
var ErrRedirectNotFound = errors.New("redirect not found")

// Service defines QR redirect business logic.
type Service interface {
	CreateRedirect(ctx context.Context, req CreateRedirectRequest) (*Redirect, error)
	GetRedirect(ctx context.Context, id string) (*Redirect, error)
	ListRedirects(ctx context.Context) ([]*Redirect, error)
	UpdateRedirect(ctx context.Context, id string, req CreateRedirectRequest) (*Redirect, error)
	DeleteRedirect(ctx context.Context, id string) error

	// Resolve returns the target URL for a slug and counts the hit.
	// Inactive and unknown slugs both report ErrRedirectNotFound.
	Resolve(ctx context.Context, s string) (string, error)
}

type service struct{ repo Repository }

// NewService creates a new redirect service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func normalizeSlug(raw string) string {
	return strings.Trim(slug.Make(raw), "_")
}

func validateTarget(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("target_url must be an absolute http(s) URL")
	}
	return nil
}

func (s *service) CreateRedirect(ctx context.Context, req CreateRedirectRequest) (*Redirect, error) {
	normalized := normalizeSlug(req.Slug)
	if normalized == "" {
		return nil, fmt.Errorf("slug is required")
	}
	if err := validateTarget(req.TargetURL); err != nil {
		return nil, err
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	rd := &Redirect{
		ID:        uuid.New(),
		Slug:      normalized,
		TargetURL: req.TargetURL,
		IsActive:  active,
	}
	if err := s.repo.Create(ctx, rd); err != nil {
		return nil, fmt.Errorf("failed to persist redirect: %w", err)
	}
	return rd, nil
}

func (s *service) GetRedirect(ctx context.Context, id string) (*Redirect, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListRedirects(ctx context.Context) ([]*Redirect, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateRedirect(ctx context.Context, id string, req CreateRedirectRequest) (*Redirect, error) {
	rd, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("redirect not found: %w", err)
	}
	if req.Slug != "" {
		normalized := normalizeSlug(req.Slug)
		if normalized == "" {
			return nil, fmt.Errorf("slug must contain at least one letter or digit")
		}
		rd.Slug = normalized
	}
	if req.TargetURL != "" {
		if err := validateTarget(req.TargetURL); err != nil {
			return nil, err
		}
		rd.TargetURL = req.TargetURL
	}
	if req.IsActive != nil {
		rd.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, rd); err != nil {
		return nil, err
	}
	return rd, nil
}

func (s *service) DeleteRedirect(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Resolve(ctx context.Context, raw string) (string, error) {
	rd, err := s.repo.GetBySlug(ctx, raw)
	if err != nil {
		return "", ErrRedirectNotFound
	}
	if !rd.IsActive {
		return "", ErrRedirectNotFound
	}
	// Hit counting is best effort; a failed increment must not break the
	// visitor's redirect.
	_ = s.repo.IncrementHits(ctx, rd.ID.String())
	return rd.TargetURL, nil
}
