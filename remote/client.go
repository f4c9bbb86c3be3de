// Package remote pushes samples to a Prometheus compatible remote write
// endpoint.
package remote

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/go-logr/logr"
	"github.com/golang/protobuf/proto"
	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"go.buf.build/protocolbuffers/go/prometheus/prometheus"
)

const (
	WritePath      = "/api/v1/write"
	DefaultTimeout = 30 * time.Second
)

type Client struct {
	url        *url.URL
	httpClient *http.Client
	log        logr.Logger
}

// NewClient builds a client for the Prometheus server at rawURL. The remote
// write path is appended to whatever path rawURL already has.
func NewClient(rawURL string, log logr.Logger) (*Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid prometheus url %q", rawURL)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("invalid prometheus url %q: missing scheme or host", rawURL)
	}
	parsed.Path = path.Join(parsed.Path, WritePath)

	return &Client{
		url: parsed,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: log,
	}, nil
}

func (c *Client) URL() string {
	return c.url.String()
}

func (c *Client) Write(ctx context.Context, wr *prometheus.WriteRequest) error {
	data, err := proto.Marshal(wr)
	if err != nil {
		return errors.Wrap(err, "failed to marshal write request")
	}
	encoded := snappy.Encode(nil, data)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url.String(), bytes.NewReader(encoded))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Content-Type", "application/x-protobuf")
	req.Header.Set("Content-Encoding", "snappy")
	req.Header.Set("X-Prometheus-Remote-Write-Version", "0.1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "remote write failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusBadRequest {
			// possibly duplicate data? ignore it.
			c.log.Info("invalid data detected, ignoring it", "status", resp.StatusCode)
			return nil
		}
		return errors.Errorf("unexpected remote write status code: %v", resp.StatusCode)
	}
	return nil
}

// Gauge wraps labels and a single sample into a write request carrying
// gauge metadata.
func Gauge(labels []*prometheus.Label, value float64, timestamp time.Time) *prometheus.WriteRequest {
	return &prometheus.WriteRequest{
		Timeseries: []*prometheus.TimeSeries{{
			Labels: labels,
			Samples: []*prometheus.Sample{{
				Value:     value,
				Timestamp: timestamp.UnixMilli(),
			}},
		}},
		Metadata: []*prometheus.MetricMetadata{{
			Type: prometheus.MetricMetadata_GAUGE,
		}},
	}
}
