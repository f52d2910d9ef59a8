package redirect

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	redirects []*Redirect
	hits      map[string]int
}

func newMemoryRepo() *memoryRepo { return &memoryRepo{hits: map[string]int{}} }

func (m *memoryRepo) Create(_ context.Context, rd *Redirect) error {
	clone := *rd
	m.redirects = append(m.redirects, &clone)
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*Redirect, error) {
	for _, rd := range m.redirects {
		if rd.ID.String() == id {
			return rd, nil
		}
	}
	return nil, errors.New("no rows")
}

func (m *memoryRepo) GetBySlug(_ context.Context, slug string) (*Redirect, error) {
	for _, rd := range m.redirects {
		if rd.Slug == slug {
			return rd, nil
		}
	}
	return nil, errors.New("no rows")
}

func (m *memoryRepo) List(_ context.Context) ([]*Redirect, error) { return m.redirects, nil }

func (m *memoryRepo) Update(_ context.Context, _ *Redirect) error { return nil }

func (m *memoryRepo) IncrementHits(_ context.Context, id string) error {
	m.hits[id]++
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, _ string) error { return nil }

func TestCreateRedirectNormalizesSlug(t *testing.T) {
	svc := NewService(newMemoryRepo())

	rd, err := svc.CreateRedirect(context.Background(), CreateRedirectRequest{
		Slug:      "Thực đơn mùa hè",
		TargetURL: "https://shop.example.com/menu/summer",
	})

	require.NoError(t, err)
	assert.Equal(t, "thuc_don_mua_he", rd.Slug)
	assert.True(t, rd.IsActive)
}

func TestCreateRedirectRejectsBadInput(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.CreateRedirect(context.Background(), CreateRedirectRequest{
		Slug: "!!!", TargetURL: "https://shop.example.com",
	})
	assert.Error(t, err, "slug with no letters or digits normalizes to nothing")

	_, err = svc.CreateRedirect(context.Background(), CreateRedirectRequest{
		Slug: "menu", TargetURL: "ftp://shop.example.com",
	})
	assert.Error(t, err)
}

func TestResolveCountsHits(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	rd, err := svc.CreateRedirect(context.Background(), CreateRedirectRequest{
		Slug: "menu", TargetURL: "https://shop.example.com/menu",
	})
	require.NoError(t, err)

	target, err := svc.Resolve(context.Background(), "menu")
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/menu", target)
	assert.Equal(t, 1, repo.hits[rd.ID.String()])

	_, err = svc.Resolve(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRedirectNotFound)
}

func TestResolveInactiveRedirect(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	inactive := false
	_, err := svc.CreateRedirect(context.Background(), CreateRedirectRequest{
		Slug: "old-menu", TargetURL: "https://shop.example.com/old", IsActive: &inactive,
	})
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), "old_menu")
	assert.ErrorIs(t, err, ErrRedirectNotFound)
}
