package catalog

import (
	"context"
	"testing"

	pkgerrors "github.com/Juliuuslm/tienda-ropa/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, products []Product) Service {
	t.Helper()
	repo := newTestRepo(t)
	require.NoError(t, repo.ReplaceAll(context.Background(), products))
	svc, err := NewService(ServiceParams{Repo: repo})
	require.NoError(t, err)
	return svc
}

func TestService_DetailNotFound(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.Detail(context.Background(), "missing")
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestService_BrowseFallsBackToNewestSort(t *testing.T) {
	svc := newTestService(t, listingProducts(3))

	page, err := svc.Browse(context.Background(), ListingQuery{Sort: "bogus"})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "p00", page.Items[0].ID)
}

func TestService_Categories(t *testing.T) {
	svc := newTestService(t, []Product{
		{ID: "a", Slug: "a", Name: "A", Category: "shirts"},
		{ID: "b", Slug: "b", Name: "B", Category: "jackets"},
		{ID: "c", Slug: "c", Name: "C", Category: "shirts"},
		{ID: "d", Slug: "d", Name: "D"},
	})

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"jackets", "shirts", CategoryFallback}, categories)
}

func TestService_RelatedSharesCategoryAndCaps(t *testing.T) {
	products := []Product{
		{ID: "p0", Slug: "s0", Name: "S0", Category: "shirts"},
		{ID: "p1", Slug: "s1", Name: "S1", Category: "shirts"},
		{ID: "p2", Slug: "s2", Name: "S2", Category: "shirts"},
		{ID: "j0", Slug: "j0", Name: "J0", Category: "jackets"},
		{ID: "p3", Slug: "s3", Name: "S3", Category: "shirts"},
		{ID: "p4", Slug: "s4", Name: "S4", Category: "shirts"},
		{ID: "p5", Slug: "s5", Name: "S5", Category: "shirts"},
	}
	svc := newTestService(t, products)

	related, err := svc.Related(context.Background(), "s0")
	require.NoError(t, err)
	require.Len(t, related, 4)
	for _, p := range related {
		assert.NotEqual(t, "p0", p.ID)
		assert.Equal(t, "shirts", p.Category)
	}
	assert.Equal(t, "p1", related[0].ID)
}
