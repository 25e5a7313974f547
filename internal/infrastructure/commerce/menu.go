// internal/infrastructure/commerce/menu.go
package commerce

import (
	"context"
	"fmt"
)

// MenuItemAttributes is a navigation entry of the main menu
type MenuItemAttributes struct {
	Title  string  `json:"title"`
	URL    string  `json:"url"`
	Weight int     `json:"weight"`
	Parent *string `json:"parent"`
}

// MainMenu returns the entries of the main navigation menu
func (c *Client) MainMenu(ctx context.Context) ([]Record[MenuItemAttributes], error) {
	items, err := getCollection[MenuItemAttributes](ctx, c, "/api/menu_items/main", nil, false)
	if err != nil {
		return nil, fmt.Errorf("client.MainMenu: %w", err)
	}
	return items, nil
}
