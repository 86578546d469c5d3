package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Place struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
	Type    string  `json:"type"`
}

type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func New(apiKey, baseURL string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SearchNearby queries the places API around a point. Returns at most limit
// places; an unconfigured client returns none so plan generation still works.
func (c *Client) SearchNearby(ctx context.Context, lat, lng float64, categories []string, limit int) ([]Place, error) {
	if c.APIKey == "" {
		return nil, nil
	}
	if limit <= 0 || limit > 20 {
		limit = 10
	}

	reqBody := map[string]any{
		"includedTypes":  categories,
		"maxResultCount": limit,
		"locationRestriction": map[string]any{
			"circle": map[string]any{
				"center": map[string]float64{
					"latitude":  lat,
					"longitude": lng,
				},
				"radius": 5000.0,
			},
		},
	}
	payload, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/places:searchNearby", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.APIKey)
	req.Header.Set("X-Goog-FieldMask", "places.displayName,places.formattedAddress,places.rating,places.primaryType")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places api: status %d", res.StatusCode)
	}

	var parsed struct {
		Places []struct {
			DisplayName struct {
				Text string `json:"text"`
			} `json:"displayName"`
			FormattedAddress string  `json:"formattedAddress"`
			Rating           float64 `json:"rating"`
			PrimaryType      string  `json:"primaryType"`
		} `json:"places"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}

	out := make([]Place, 0, len(parsed.Places))
	for _, p := range parsed.Places {
		out = append(out, Place{
			Name:    p.DisplayName.Text,
			Address: p.FormattedAddress,
			Rating:  p.Rating,
			Type:    p.PrimaryType,
		})
	}
	return out, nil
}
