package httpclient

import (
	"context"
	"errors"
	"fmt"

	"resty.dev/v3"

	"github.com/mbeoliero/iou/infra/config"
	"github.com/mbeoliero/iou/infra/resource"
)

var ErrEmptyBaseUrl = errors.New("http base_url is empty")

type Client = resource.Lazy[config.HttpConfig, *resty.Client]

func New(cfg config.HttpConfig) *Client {
	return resource.NewLazy("http", cfg, Build, func(c *resty.Client) error {
		return c.Close()
	})
}

// Build creates the resty client. No request is made.
func Build(cfg config.HttpConfig) (*resty.Client, error) {
	if cfg.BaseUrl == "" {
		return nil, ErrEmptyBaseUrl
	}
	c := resty.New().SetBaseURL(cfg.BaseUrl)
	if cfg.Timeout > 0 {
		c.SetTimeout(cfg.Timeout)
	}
	return c, nil
}

// Get issues a GET against the base url, building the client if needed.
func Get(ctx context.Context, c *Client, path string) (string, error) {
	rc, err := c.Get()
	if err != nil {
		return "", err
	}
	resp, err := rc.R().SetContext(ctx).Get(path)
	if err != nil {
		return "", err
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("http status: %s", resp.Status())
	}
	return string(resp.Bytes()), nil
}
