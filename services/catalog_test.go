package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalog(t *testing.T) {
	require.NoError(t, InitializeCatalog(""))
	require.NotNil(t, SiteContent)

	products := SiteContent.Products()
	require.Len(t, products, 4)
	assert.Equal(t, "rhodes", products[0].ID)
	assert.Equal(t, "Wheat", products[1].Title)

	stat, ok := SiteContent.Stat("tons")
	assert.True(t, ok)
	assert.Equal(t, 30000.0, stat.End)

	_, ok = SiteContent.Stat("missing")
	assert.False(t, ok)

	p, ok := SiteContent.Product("corn")
	assert.True(t, ok)
	assert.Equal(t, "Corn", p.Title)
}

func TestCatalogIsImmutable(t *testing.T) {
	c, err := ParseCatalog(embeddedSiteContent)
	require.NoError(t, err)

	products := c.Products()
	products[0].Title = "Changed"
	assert.NotEqual(t, "Changed", c.Products()[0].Title)
}

func TestParseCatalogValidation(t *testing.T) {
	t.Run("Duplicate product", func(t *testing.T) {
		_, err := ParseCatalog([]byte("products:\n  - {id: a, title: A}\n  - {id: a, title: B}\n"))
		assert.ErrorContains(t, err, "duplicate product id")
	})

	t.Run("Missing title", func(t *testing.T) {
		_, err := ParseCatalog([]byte("products:\n  - {id: a}\n"))
		assert.Error(t, err)
	})

	t.Run("Non-finite stat parses", func(t *testing.T) {
		c, err := ParseCatalog([]byte("stats:\n  - {id: x, label: X, end: .inf}\n  - {id: y, label: Y, end: .nan}\n"))
		require.NoError(t, err)
		x, _ := c.Stat("x")
		y, _ := c.Stat("y")
		assert.Equal(t, 0, CounterTarget(x.End))
		assert.Equal(t, 0, CounterTarget(y.End))
	})

	t.Run("Description markup is sanitized", func(t *testing.T) {
		c, err := ParseCatalog([]byte("products:\n  - {id: a, title: A, description: '<strong>Premium</strong> bales<script>alert(1)</script>'}\nfeatures:\n  - {title: F, description: '<a href=\"javascript:alert(1)\">x</a> & more'}\n"))
		require.NoError(t, err)
		assert.Equal(t, "<strong>Premium</strong> bales", c.Products()[0].Description)
		assert.NotContains(t, c.Features()[0].Description, "javascript")
		assert.Contains(t, c.Features()[0].Description, "&amp; more")
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		_, err := ParseCatalog([]byte("products: [oops"))
		assert.ErrorContains(t, err, "failed to parse catalog")
	})
}

func TestInitializeCatalogFromFile(t *testing.T) {
	defer func() { _ = InitializeCatalog("") }()

	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products:\n  - {id: dates, title: Dates, description: Sweet}\n"), 0644))

	require.NoError(t, InitializeCatalog(path))
	assert.Len(t, SiteContent.Products(), 1)

	assert.Error(t, InitializeCatalog(filepath.Join(t.TempDir(), "missing.yaml")))
}
