package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"barflow/internal/model"
)

// HTTPSource polls an endpoint returning a JSON array of rows. Requests
// are rate limited so a tight polling loop stays polite to the upstream.
type HTTPSource struct {
	client  *resty.Client
	url     string
	kind    model.Kind
	limiter *rate.Limiter
}

// NewHTTPSource builds a source for url. maxRPS bounds the request rate;
// zero or negative means one request per second.
func NewHTTPSource(url string, kind model.Kind, maxRPS float64) *HTTPSource {
	if maxRPS <= 0 {
		maxRPS = 1
	}
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Accept", "application/json")
	return &HTTPSource{
		client:  client,
		url:     url,
		kind:    kind,
		limiter: rate.NewLimiter(rate.Limit(maxRPS), 1),
	}
}

// Fetch retrieves the current window of rows as a dataset.
func (s *HTTPSource) Fetch(ctx context.Context) (model.Dataset, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return model.Dataset{}, err
	}
	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("feed: fetch %s: %w", s.url, err)
	}
	if resp.IsError() {
		return model.Dataset{}, fmt.Errorf("feed: fetch %s: status %s", s.url, resp.Status())
	}
	var frs []feedRow
	if err := json.Unmarshal(resp.Body(), &frs); err != nil {
		return model.Dataset{}, fmt.Errorf("feed: decode %s: %w", s.url, err)
	}
	return toDataset(s.kind, frs), nil
}
