package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)
	assert.Len(t, c.Categories, 7)
	assert.Len(t, c.Products, 24)
	assert.Len(t, c.Banners, 3)

	slugs := map[string]bool{}
	for _, cat := range c.Categories {
		slugs[cat.Slug] = true
	}
	for _, p := range c.Products {
		assert.True(t, slugs[p.Category], "product %s points at unknown category %s", p.Name, p.Category)
		assert.Equal(t, 100, p.Stock)
		assert.Positive(t, p.Price)
	}

	assert.Equal(t, "Organic Toor Dal", c.Products[0].Name)
	assert.Equal(t, 145.0, c.Products[0].Price)
	assert.Equal(t, 2, c.Banners[2].SortOrder)
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	a, err := Default()
	require.NoError(t, err)
	a.Products[0].Name = "changed"

	b, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "Organic Toor Dal", b.Products[0].Name)
}

func TestRead(t *testing.T) {
	t.Parallel()

	c, err := Read(strings.NewReader(`
categories:
  - name: Pulses
    slug: pulses
products:
  - name: Toor Dal
    category: pulses
    price: 99.5
    stock: 3
`))
	require.NoError(t, err)
	require.Len(t, c.Products, 1)
	assert.Equal(t, 99.5, c.Products[0].Price)
	assert.Equal(t, 3, c.Products[0].Stock)
	assert.Empty(t, c.Banners)

	_, err = Read(strings.NewReader("products: [unterminated"))
	assert.Error(t, err)
}
