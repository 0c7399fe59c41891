package enpal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

const (
	// The inverter web server can be very slow while the firmware is busy.
	fetchTimeout = 15 * time.Second

	devicePath = "/deviceMessages"
)

// DeviceReader is the capability the Monitor needs from an inverter: fetch
// the raw telemetry page and check reachability at configuration time.
type DeviceReader interface {
	FetchRaw(ctx context.Context) (string, error)
	Probe(ctx context.Context) error
}

// HTTPDeviceReader reads the deviceMessages page of one inverter over plain
// HTTP. No auth: the page is only reachable on the local network. A circuit
// breaker keeps a dead inverter from being hammered on every poll tick.
type HTTPDeviceReader struct {
	host    string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewHTTPDeviceReader creates a reader bound to host, a dotted-quad or
// resolvable hostname, optionally with a port.
func NewHTTPDeviceReader(host string) *HTTPDeviceReader {
	return &HTTPDeviceReader{
		host: host,
		client: &http.Client{
			Timeout: fetchTimeout,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: fmt.Sprintf("enpal_%s", host),
		}),
	}
}

func (r *HTTPDeviceReader) url() string {
	return fmt.Sprintf("http://%s%s", r.host, devicePath)
}

// FetchRaw performs one GET against the deviceMessages page and returns the
// body. Non-200 responses are errors.
func (r *HTTPDeviceReader) FetchRaw(ctx context.Context) (string, error) {
	body, err := r.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url(), nil)
		if err != nil {
			return nil, err
		}
		resp, err := r.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("enpal: unexpected status %d", resp.StatusCode)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return string(data), nil
	})
	if err != nil {
		return "", err
	}
	return body.(string), nil
}

// Probe checks that the inverter answers the deviceMessages page with a 200.
// Used at configuration time only; the breaker is bypassed so a probe never
// trips it.
func (r *HTTPDeviceReader) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url(), nil)
	if err != nil {
		return err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("enpal: unexpected status %d", resp.StatusCode)
	}
	return nil
}
