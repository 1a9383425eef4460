package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"province-exporter/model"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/phuslu/log"
)

var ErrStatus = errors.New("unexpected response status")

type Options struct {
	BaseUrl   string
	Timeout   time.Duration
	UserAgent string
	// MaxRedirects bounds how many 3xx hops a request follows.
	MaxRedirects int
	Cache        Cache
	Logger       *log.Logger
}

// Client reads provinces and districts from the VNAppMob style API:
// GET {base} and GET {base}/district/{province_id}.
type Client struct {
	base    string
	timeout time.Duration
	redirs  int
	http    *fiber.Client
	cache   Cache
	logger  *log.Logger
}

func NewClient(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = &log.DefaultLogger
	}
	return &Client{
		base:    strings.TrimRight(opts.BaseUrl, "/"),
		timeout: opts.Timeout,
		redirs:  opts.MaxRedirects,
		http: &fiber.Client{
			UserAgent:   opts.UserAgent,
			JSONEncoder: json.Marshal,
			JSONDecoder: json.Unmarshal,
		},
		cache:  opts.Cache,
		logger: logger,
	}
}

func (c *Client) ProvincesUrl() string {
	return c.base
}

func (c *Client) DistrictsUrl(provinceId model.LocationID) string {
	return c.base + "/district/" + url.PathEscape(provinceId.String())
}

func (c *Client) Provinces(ctx context.Context) ([]model.Province, error) {
	var resp model.ListResponse[model.Province]
	if err := c.getJSON(ctx, c.ProvincesUrl(), &resp); err != nil {
		return nil, err
	}
	for i, p := range resp.Results {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("province #%d: %w", i, err)
		}
	}
	return resp.Results, nil
}

func (c *Client) Districts(ctx context.Context, provinceId model.LocationID) ([]model.District, error) {
	var resp model.ListResponse[model.District]
	if err := c.getJSON(ctx, c.DistrictsUrl(provinceId), &resp); err != nil {
		return nil, err
	}
	for i, d := range resp.Results {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("province %s district #%d: %w", provinceId, i, err)
		}
	}
	return resp.Results, nil
}

func (c *Client) getJSON(ctx context.Context, target string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.cache != nil {
		body, ok, err := c.cache.Get(ctx, target)
		if err != nil {
			c.logger.Warn().Err(err).Str("Url", target).Msg("cache lookup failed")
		} else if ok {
			if err := json.Unmarshal(body, v); err == nil {
				c.logger.Debug().Str("Url", target).Msg("served from cache")
				return nil
			}
		}
	}

	body, err := c.get(target)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("GET %s: unable to decode body: %w", target, err)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, target, body); err != nil {
			c.logger.Warn().Err(err).Str("Url", target).Msg("cache store failed")
		}
	}
	return nil
}

func (c *Client) get(target string) ([]byte, error) {
	agent := c.http.Get(target)
	if c.timeout > 0 {
		agent.Timeout(c.timeout)
	}
	if c.redirs > 0 {
		agent.MaxRedirectsCount(c.redirs)
	}
	started := time.Now()
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("GET %s: %w", target, errors.Join(errs...))
	}
	c.logger.Debug().Str("Url", target).Int("Status", code).Dur("Elapsed", time.Since(started)).Msg("fetched")
	if code < 200 || code > 299 {
		return nil, fmt.Errorf("GET %s: %w %d", target, ErrStatus, code)
	}
	return body, nil
}
