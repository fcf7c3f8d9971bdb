package jellyfin

import "fmt"

// MediaItem is the slice of a Jellyfin item the header displays.
type MediaItem struct {
	ID           string
	Name         string
	Year         int
	HasPrimary   bool
	BackdropTags []string
}

// HeaderSource is what a stretchy header shows for an item.
type HeaderSource struct {
	Title string
	// Compact is shown in compact-regular containers, Regular elsewhere.
	Compact string
	Regular string
}

// GetItem returns a single item by ID.
func (c *Client) GetItem(itemID string) (*MediaItem, error) {
	ctx, cancel := c.reqCtx()
	defer cancel()

	result, resp, err := c.api.UserLibraryAPI.GetItem(ctx, itemID).
		UserId(c.userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w (status: %s)", itemID, err, respStatus(resp))
	}
	mi := MediaItem{
		Name:         result.GetName(),
		Year:         int(result.GetProductionYear()),
		BackdropTags: result.BackdropImageTags,
	}
	if result.Id != nil {
		mi.ID = *result.Id
	}
	_, mi.HasPrimary = result.ImageTags["Primary"]
	return &mi, nil
}

// HeaderSource resolves the title and image URLs for an item, each image
// bounded by the size of the variant showing it. Items without a poster use
// the backdrop for both variants and vice versa.
func (c *Client) HeaderSource(itemID string, sizes HeaderSizes) (HeaderSource, error) {
	item, err := c.GetItem(itemID)
	if err != nil {
		return HeaderSource{}, err
	}
	return c.headerSourceFor(item, sizes), nil
}

func (c *Client) headerSourceFor(item *MediaItem, sizes HeaderSizes) HeaderSource {
	src := HeaderSource{Title: item.Name}
	if item.Year > 0 {
		src.Title = fmt.Sprintf("%s (%d)", item.Name, item.Year)
	}
	kind := func(preferred ImageType) (ImageType, bool) {
		hasBackdrop := len(item.BackdropTags) > 0
		switch {
		case !item.HasPrimary && !hasBackdrop:
			return "", false
		case preferred == ImagePrimary && !item.HasPrimary:
			return ImageBackdrop, true
		case preferred == ImageBackdrop && !hasBackdrop:
			return ImagePrimary, true
		}
		return preferred, true
	}
	if k, ok := kind(ImagePrimary); ok {
		src.Compact = c.ImageURL(item.ID, k, sizes.Compact)
	}
	if k, ok := kind(ImageBackdrop); ok {
		src.Regular = c.ImageURL(item.ID, k, sizes.Regular)
	}
	return src
}
