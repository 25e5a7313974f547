// internal/domain/catalog/menu.go
package catalog

import (
	"cmp"
	"slices"

	"github.com/your-org/storefront/internal/infrastructure/commerce"
)

// MenuItem is one entry of the main navigation
type MenuItem struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	URL      string     `json:"url"`
	Weight   int        `json:"weight"`
	Children []MenuItem `json:"children,omitempty"`
}

// BuildMenu orders entries by weight and nests children under their parent.
// Entries whose parent is not in the list are dropped.
func BuildMenu(recs []commerce.Record[commerce.MenuItemAttributes]) []MenuItem {
	sorted := slices.Clone(recs)
	slices.SortStableFunc(sorted, func(a, b commerce.Record[commerce.MenuItemAttributes]) int {
		return cmp.Compare(a.Attributes.Weight, b.Attributes.Weight)
	})

	children := make(map[string][]commerce.Record[commerce.MenuItemAttributes])
	var roots []commerce.Record[commerce.MenuItemAttributes]
	for _, rec := range sorted {
		if p := rec.Attributes.Parent; p != nil && *p != "" {
			children[*p] = append(children[*p], rec)
			continue
		}
		roots = append(roots, rec)
	}

	var build func(rec commerce.Record[commerce.MenuItemAttributes], depth int) MenuItem
	build = func(rec commerce.Record[commerce.MenuItemAttributes], depth int) MenuItem {
		item := MenuItem{
			ID:     rec.ID,
			Title:  rec.Attributes.Title,
			URL:    rec.Attributes.URL,
			Weight: rec.Attributes.Weight,
		}
		// duplicate ids can form a cycle
		if depth >= len(recs) {
			return item
		}
		for _, child := range children[rec.ID] {
			item.Children = append(item.Children, build(child, depth+1))
		}
		return item
	}

	menu := make([]MenuItem, 0, len(roots))
	for _, rec := range roots {
		menu = append(menu, build(rec, 0))
	}
	return menu
}
