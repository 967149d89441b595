package master

import (
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"
)

// Dataset names a searchable part of the index.
type Dataset string

const (
	DatasetBrands     Dataset = "brands"
	DatasetColors     Dataset = "colors"
	DatasetSizes      Dataset = "sizes"
	DatasetCategories Dataset = "categories"
)

// ParseDataset maps a user-supplied name to a Dataset.
func ParseDataset(name string) (Dataset, error) {
	switch Dataset(name) {
	case DatasetBrands, DatasetColors, DatasetSizes, DatasetCategories:
		return Dataset(name), nil
	case "brand":
		return DatasetBrands, nil
	case "color", "colour", "colours":
		return DatasetColors, nil
	case "size":
		return DatasetSizes, nil
	case "category":
		return DatasetCategories, nil
	}
	return "", fmt.Errorf("unknown master dataset %q (want brands, colors, sizes or categories)", name)
}

// Values returns the sorted normalized entries of a dataset.
func (idx *Index) Values(ds Dataset) []string {
	var out []string
	switch ds {
	case DatasetBrands:
		out = keys(idx.brands)
	case DatasetColors:
		out = keys(idx.colors)
	case DatasetSizes:
		out = keys(idx.sizes)
	case DatasetCategories:
		out = make([]string, 0, len(idx.categoryToTemplate))
		for k := range idx.categoryToTemplate {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Search fuzzy-matches term against a dataset and returns up to limit entries,
// best match first. A non-positive limit returns every match.
func (idx *Index) Search(ds Dataset, term string, limit int) []string {
	values := idx.Values(ds)
	matches := fuzzy.Find(term, values)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
