package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/eat-around/models"
)

var errEmptyCatalog = errors.New("catalog has no foods")

// catalog is the layout of a seed file:
//
//	foods:
//	  - name: Margherita
//	    price: 9.5
//	    category: pizza
//	    description: Tomato, mozzarella, basil
type catalog struct {
	Foods []models.Food `yaml:"foods"`
}

func loadCatalogFile(path string) ([]models.Food, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return loadCatalog(f)
}

func loadCatalog(r io.Reader) ([]models.Food, error) {
	var c catalog

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyCatalog
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if len(c.Foods) == 0 {
		return nil, errEmptyCatalog
	}
	return c.Foods, nil
}
