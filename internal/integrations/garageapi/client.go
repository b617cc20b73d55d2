package garageapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

// Client клиент REST API бэкенда гаража
// У бэкенда две базы: административная и клиентская, сессия у каждой своя
type Client struct {
	adminURL   string
	userURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
}

// NewClient создает новый экземпляр клиента бэкенда
func NewClient(adminURL, userURL string, timeout time.Duration, log Logger, metrics Metrics) *Client {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Client{
		adminURL: adminURL,
		userURL:  userURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// CheckSession проверяет сессию роли; 401 означает отсутствие сессии, а не ошибку
func (c *Client) CheckSession(ctx context.Context, role domain.Role) (*domain.Session, error) {
	base := c.userURL
	if role == domain.RoleAdmin {
		base = c.adminURL
	}

	var resp sessionResponse
	err := c.do(ctx, "check_session", http.MethodGet, base+"/session", nil, &resp)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return &domain.Session{Authenticated: false, Role: role}, nil
		}
		return nil, err
	}

	return resp.toDomain(role), nil
}

// GetAllAppointments все записи с деталями клиента (администратор)
func (c *Client) GetAllAppointments(ctx context.Context) ([]*domain.Appointment, error) {
	var resp []appointmentResponse
	if err := c.do(ctx, "get_all_appointments", http.MethodGet, c.adminURL+"/appointments-with-details", nil, &resp); err != nil {
		return nil, err
	}
	return toAppointments(resp), nil
}

// GetCustomerAppointments записи одного клиента
func (c *Client) GetCustomerAppointments(ctx context.Context, customerID int64) ([]*domain.Appointment, error) {
	endpoint := fmt.Sprintf("%s/appointments/%d", c.userURL, customerID)

	var resp []appointmentResponse
	if err := c.do(ctx, "get_customer_appointments", http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return toAppointments(resp), nil
}

// UpdateAppointmentStatus меняет статус одной записи
func (c *Client) UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status domain.AppointmentStatus) error {
	endpoint := fmt.Sprintf("%s/appointments/%d/status", c.adminURL, appointmentID)
	return c.do(ctx, "update_appointment_status", http.MethodPut, endpoint, statusRequest{Status: string(status)}, nil)
}

// RescheduleAppointments переносит все записи машины на новую дату
func (c *Client) RescheduleAppointments(ctx context.Context, carID int64, req RescheduleRequest) error {
	endpoint := fmt.Sprintf("%s/appointments/%d", c.userURL, carID)
	return c.do(ctx, "reschedule_appointments", http.MethodPut, endpoint, req, nil)
}

// DeleteAppointmentGroup удаляет группу записей клиента
func (c *Client) DeleteAppointmentGroup(ctx context.Context, customerID int64, groupID string) error {
	endpoint := fmt.Sprintf("%s/appointments/%d/%s", c.userURL, customerID, url.PathEscape(groupID))
	return c.do(ctx, "delete_appointment_group", http.MethodDelete, endpoint, nil, nil)
}

// GetAllKitBookings все бронирования комплектов (администратор)
func (c *Client) GetAllKitBookings(ctx context.Context) ([]domain.KitBooking, error) {
	var resp []kitBookingResponse
	if err := c.do(ctx, "get_all_kit_bookings", http.MethodGet, c.adminURL+"/facelift/bookings", nil, &resp); err != nil {
		return nil, err
	}
	return toKitBookings(resp), nil
}

// GetCustomerKitBookings бронирования комплектов одного клиента
func (c *Client) GetCustomerKitBookings(ctx context.Context, customerID int64) ([]domain.KitBooking, error) {
	endpoint := fmt.Sprintf("%s/facelift/bookings/%d", c.userURL, customerID)

	var resp []kitBookingResponse
	if err := c.do(ctx, "get_customer_kit_bookings", http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return toKitBookings(resp), nil
}

// UpdateKitBookingStatus меняет статус бронирования комплекта
func (c *Client) UpdateKitBookingStatus(ctx context.Context, bookingID int64, status domain.KitBookingStatus) error {
	endpoint := fmt.Sprintf("%s/bookings/%d/status", c.adminURL, bookingID)
	return c.do(ctx, "update_kit_booking_status", http.MethodPut, endpoint, statusRequest{Status: string(status)}, nil)
}

// do выполняет запрос и разбирает ответ в out (если out != nil)
func (c *Client) do(ctx context.Context, operation, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for _, cookie := range cookiesFromContext(ctx) {
		req.AddCookie(cookie)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.BackendCall(operation, 0, time.Since(start))
		c.log.Error("garageapi: %s %s failed: %v", method, endpoint, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	c.metrics.BackendCall(operation, resp.StatusCode, time.Since(start))

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, readMessage(resp.Body))
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, readMessage(resp.Body))
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status code %d: %s", ErrUnavailable, resp.StatusCode, readMessage(resp.Body))
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readMessage(resp.Body))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func toAppointments(resp []appointmentResponse) []*domain.Appointment {
	out := make([]*domain.Appointment, len(resp))
	for i, a := range resp {
		out[i] = a.toDomain()
	}
	return out
}

func toKitBookings(resp []kitBookingResponse) []domain.KitBooking {
	out := make([]domain.KitBooking, len(resp))
	for i, k := range resp {
		out[i] = k.toDomain()
	}
	return out
}

type nopMetrics struct{}

func (nopMetrics) BackendCall(string, int, time.Duration) {}
