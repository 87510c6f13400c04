package sources

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kerbaras/purrfect/pkg/data"
	"github.com/kerbaras/purrfect/pkg/utils"
	"go.uber.org/zap"
)

const DefaultCatAPIURL = "https://api.thecatapi.com"

// Image is the wire form of a search result. The API sends more fields
// (width, height, breeds) which the gallery has no use for.
type Image struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (i *Image) ToImage() data.Image {
	return data.Image{ID: i.ID, URL: i.URL}
}

type CatAPI struct {
	api *utils.API
}

func NewCatAPI(baseURL string, log *zap.Logger) *CatAPI {
	if baseURL == "" {
		baseURL = DefaultCatAPIURL
	}
	return &CatAPI{api: utils.NewAPI(baseURL, log)}
}

func (c *CatAPI) Images(ctx context.Context, page, limit int) ([]data.Image, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be >= 1, got %d", page)
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))
	params.Set("order", "Desc")

	var results []Image
	if err := c.api.Get(ctx, "/v1/images/search", params, &results); err != nil {
		return nil, err
	}
	out := make([]data.Image, len(results))
	for i, img := range results {
		out[i] = img.ToImage()
	}
	return out, nil
}
