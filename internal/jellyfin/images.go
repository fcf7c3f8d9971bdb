package jellyfin

import (
	"net/url"
	"strconv"
)

// ImageType names a Jellyfin image slot.
type ImageType string

const (
	ImagePrimary  ImageType = "Primary"
	ImageBackdrop ImageType = "Backdrop"
)

// imageQuality is the JPEG quality requested from the server.
const imageQuality = 90

// VariantSize is the pixel size a header variant is drawn at. Zero fields
// leave that dimension unbounded.
type VariantSize struct {
	Width, Height int
}

// HeaderSizes bounds the images fetched for each header variant.
type HeaderSizes struct {
	Compact, Regular VariantSize
}

// ImageURL returns the URL of an item's image scaled to fit within size.
func (c *Client) ImageURL(itemID string, kind ImageType, size VariantSize) string {
	q := url.Values{}
	if size.Width > 0 {
		q.Set("maxWidth", strconv.Itoa(size.Width))
	}
	if size.Height > 0 {
		q.Set("maxHeight", strconv.Itoa(size.Height))
	}
	q.Set("quality", strconv.Itoa(imageQuality))
	return c.serverURL + "/Items/" + url.PathEscape(itemID) + "/Images/" + string(kind) + "?" + q.Encode()
}
