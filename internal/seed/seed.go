package seed

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/repo"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Default returns a fresh copy of the embedded catalog.
func Default() (repo.CatalogSeed, error) {
	return Parse(defaultCatalog)
}

// DefaultBanners returns the banners of the embedded catalog.
func DefaultBanners() ([]models.Banner, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Banners, nil
}

func Parse(data []byte) (repo.CatalogSeed, error) {
	var c repo.CatalogSeed
	if err := yaml.Unmarshal(data, &c); err != nil {
		return repo.CatalogSeed{}, fmt.Errorf("parse catalog: %w", err)
	}
	return c, nil
}

func Read(r io.Reader) (repo.CatalogSeed, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return repo.CatalogSeed{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Load reads a catalog file, or the embedded one when path is empty.
func Load(path string) (repo.CatalogSeed, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return repo.CatalogSeed{}, err
	}
	defer f.Close()
	return Read(f)
}
