package wordpress

import (
	"context"
	"fmt"
)

// SiteInfo is the projected site metadata plus a local declaration of the
// operations this adapter supports. The capability map is not derived from
// the remote response.
type SiteInfo struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	URL          string          `json:"url"`
	Timezone     string          `json:"timezone"`
	Capabilities map[string]bool `json:"capabilities"`
}

type rawSiteIndex struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	URL            string  `json:"url"`
	TimezoneString string  `json:"timezone_string"`
	GMTOffset      float64 `json:"gmt_offset"`
}

// SiteInfo fetches the API index and projects the site metadata.
func (c *Client) SiteInfo(ctx context.Context) (*SiteInfo, error) {
	var raw rawSiteIndex
	if _, err := c.getJSON(ctx, c.rootBase, "", nil, &raw); err != nil {
		return nil, requestError("fetch site info", err)
	}

	tz := raw.TimezoneString
	if tz == "" {
		tz = fmt.Sprintf("UTC%+g", raw.GMTOffset)
	}

	return &SiteInfo{
		Name:        raw.Name,
		Description: raw.Description,
		URL:         raw.URL,
		Timezone:    tz,
		Capabilities: map[string]bool{
			"posts":      true,
			"pages":      true,
			"categories": true,
			"tags":       true,
			"media":      true,
			"search":     true,
		},
	}, nil
}
