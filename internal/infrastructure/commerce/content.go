// internal/infrastructure/commerce/content.go
package commerce

import (
	"context"
	"fmt"
)

// FileField is an image reference as the backend embeds it
type FileField struct {
	URI struct {
		URL string `json:"url"`
	} `json:"uri"`
}

// TextField is a formatted text field
type TextField struct {
	Value     string `json:"value"`
	Processed string `json:"processed"`
}

// BannerAttributes is a homepage hero banner
type BannerAttributes struct {
	Title string    `json:"title"`
	Image FileField `json:"field_banner_image"`
	Link  string    `json:"field_banner_link"`
	Text  string    `json:"field_banner_text"`
}

// PageAttributes is a basic content page
type PageAttributes struct {
	Title string    `json:"title"`
	Body  TextField `json:"body"`
}

// Banners returns the published banners
func (c *Client) Banners(ctx context.Context) ([]Record[BannerAttributes], error) {
	banners, err := getCollection[BannerAttributes](ctx, c, "/jsonapi/node/banner", nil, true)
	if err != nil {
		return nil, fmt.Errorf("client.Banners: %w", err)
	}
	return banners, nil
}

// HomepageContent returns the editorial home page node
func (c *Client) HomepageContent(ctx context.Context) (Record[PageAttributes], error) {
	page, err := getOne[PageAttributes](ctx, c, "/jsonapi/node/page/home")
	if err != nil {
		return Record[PageAttributes]{}, fmt.Errorf("client.HomepageContent: %w", err)
	}
	return page, nil
}
