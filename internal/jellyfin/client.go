package jellyfin

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

const (
	clientName    = "StretchyHeader"
	clientVersion = "0.1.0"
	deviceName    = "StretchyHeader Desktop"

	requestTimeout = 10 * time.Second
)

// Client wraps the generated Jellyfin API client with the few calls the
// header needs.
type Client struct {
	api       *jellyfin.APIClient
	ctx       context.Context
	userID    string
	serverURL string
}

func normalizeURL(serverURL string) string {
	serverURL = strings.TrimSpace(serverURL)
	if !strings.HasPrefix(serverURL, "http://") && !strings.HasPrefix(serverURL, "https://") {
		serverURL = "https://" + serverURL
	}
	return strings.TrimRight(serverURL, "/")
}

func NewClient(ctx context.Context, serverURL string) *Client {
	serverURL = normalizeURL(serverURL)
	cfg := jellyfin.NewConfiguration()
	cfg.Servers = jellyfin.ServerConfigurations{
		{URL: serverURL},
	}
	cfg.AddDefaultHeader("X-Emby-Authorization",
		fmt.Sprintf(`MediaBrowser Client="%s", Device="%s", DeviceId="stretchyheader-1", Version="%s"`,
			clientName, deviceName, clientVersion))

	return &Client{
		api:       jellyfin.NewAPIClient(cfg),
		ctx:       ctx,
		serverURL: serverURL,
	}
}

func (c *Client) SetToken(token, userID string) {
	c.userID = userID
	c.api.GetConfig().AddDefaultHeader("X-Emby-Token", token)
}

func (c *Client) ServerURL() string { return c.serverURL }

func (c *Client) reqCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.ctx, requestTimeout)
}

func respStatus(resp *http.Response) string {
	if resp == nil {
		return "no response"
	}
	return resp.Status
}
