package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/horizon"
)

// Client клиент API записей (бронирования и события ресторана)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента API записей
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchRecords параллельно загружает бронирования, разовые и ежедневные события окна.
// Результат возвращается только если пришли все три потока.
func (c *Client) FetchRecords(ctx context.Context, h domain.Horizon) (*Records, error) {
	params := horizon.Params(h)
	var records Records

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records.Bookings, err = c.FetchBookings(gctx, params.Bookings)
		return err
	})
	g.Go(func() error {
		var err error
		records.EventsCurrent, err = c.FetchEvents(gctx, params.EventsCurrent)
		return err
	})
	g.Go(func() error {
		var err error
		records.EventsRepeating, err = c.FetchEvents(gctx, params.EventsRepeating)
		return err
	})

	if err := g.Wait(); err != nil {
		c.log.Error("FetchRecords: horizon %s..%s failed: %v", h.Min, h.Max, err)
		return nil, err
	}

	c.log.Info("FetchRecords: horizon %s..%s bookings=%d events_current=%d events_repeating=%d",
		h.Min, h.Max, len(records.Bookings), len(records.EventsCurrent), len(records.EventsRepeating))
	return &records, nil
}

// FetchBookings получает бронирования по фильтру
func (c *Client) FetchBookings(ctx context.Context, params url.Values) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)
	if err := c.getJSON(ctx, PathBooking, params, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// FetchEvents получает события по фильтру
func (c *Client) FetchEvents(ctx context.Context, params url.Values) ([]domain.Event, error) {
	events := make([]domain.Event, 0)
	if err := c.getJSON(ctx, PathEvent, params, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateBooking отправляет бронирование
func (c *Client) CreateBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	body, err := json.Marshal(booking)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode booking: %v", ErrInvalidResponse, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PathBooking, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, readError(resp.Body))
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrTransport, resp.StatusCode, readError(resp.Body))
	}

	var created domain.Booking
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("CreateBooking: booking id=%d created for table=%s date=%s hour=%s",
		created.ID, created.Table, created.Date, created.Hour)
	return &created, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %s: unexpected status code %d: %s",
			ErrTransport, path, resp.StatusCode, readError(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: failed to decode response: %v", ErrInvalidResponse, path, err)
	}
	return nil
}

// readError достает сообщение об ошибке из тела ответа
func readError(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, 4096))
	var e ErrorResponse
	if err := json.Unmarshal(data, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(string(data))
}
