package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/flotilla-app/fleet-service/internal/model"
	"github.com/flotilla-app/fleet-service/pkg/circuit_breaker"
)

// Config points at the external live-position feed (Radius/Velocity style:
// bearer token, customer scoped, POST returning a device array).
type Config struct {
	BaseURL    string        `yaml:"baseUrl" envconfig:"RADIUS_BASE_URL"`
	Path       string        `yaml:"path" envconfig:"RADIUS_LIVE_POSITIONS_PATH" default:"/live-positions"`
	CustomerID string        `yaml:"customerId" envconfig:"RADIUS_CUSTOMER_ID"`
	Bearer     string        `yaml:"bearer" envconfig:"RADIUS_BEARER_TOKEN"`
	Timeout    time.Duration `yaml:"timeout" envconfig:"RADIUS_TIMEOUT" default:"30s"`
}

type Client struct {
	cfg    Config
	client *http.Client
	cb     circuit_breaker.CircuitBreaker
	log    *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		cb:     circuit_breaker.New(10, 30*time.Second, 0.5, 3),
		log:    log.Named("telemetry"),
	}
}

// LivePositions polls the feed once and returns normalized positions.
// Rows without a plate or coordinates are dropped, not failed.
func (c *Client) LivePositions(ctx context.Context) ([]model.VehiclePosition, error) {
	u := fmt.Sprintf("%s%s?customer=%s", c.cfg.BaseURL, c.cfg.Path, url.QueryEscape(c.cfg.CustomerID))

	var body []byte
	err := c.cb.Call(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, http.NoBody)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.cfg.Bearer)
		req.Header.Set("Cache-Control", "no-cache")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err = io.ReadAll(io.LimitReader(resp.Body, 8<<20))
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusOK {
			return errors.Errorf("telemetry feed status %d", resp.StatusCode)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "live positions")
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "decode feed payload")
	}

	items := pickArray(payload)
	now := time.Now().UTC()
	positions := make([]model.VehiclePosition, 0, len(items))
	for _, it := range items {
		p, ok := normalizeItem(it, now)
		if !ok {
			continue
		}
		positions = append(positions, p)
	}
	c.log.Debug("polled live positions",
		zap.Int("raw", len(items)), zap.Int("normalized", len(positions)))
	return positions, nil
}
