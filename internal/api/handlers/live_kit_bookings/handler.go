package live_kit_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-GarageDesk/internal/api/handlers"
	"github.com/m04kA/SMC-GarageDesk/internal/api/middleware"
	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/service/views"
	"github.com/m04kA/SMC-GarageDesk/internal/usecase/change_kit_status"
)

const (
	msgFetchFailed      = "не удалось загрузить бронирования, попробуйте обновить страницу"
	msgInvalidFrame     = "некорректное сообщение"
	msgReadOnly         = "изменение статуса недоступно"
	msgUpdateInFlight   = "дождитесь завершения предыдущего изменения статуса"
	msgInvalidStatus    = "недопустимый статус бронирования"
	msgNotFound         = "бронирование не найдено"
	msgRejected         = "бэкенд отклонил изменение статуса"
	msgUpdateFailed     = "не удалось обновить статус, попробуйте позже"
	msgSessionExpired   = "сессия истекла, войдите снова"
	msgUnsupportedFrame = "неизвестное действие"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	readLimit  = 4 << 10
)

type Handler struct {
	role       domain.Role
	client     KitBookingsClient
	subscriber views.Subscriber
	useCase    StatusUseCase
	metrics    views.Metrics
	upgrader   websocket.Upgrader
	logger     Logger
}

// Config зависимости обработчика
type Config struct {
	Role       domain.Role
	Client     KitBookingsClient
	Subscriber views.Subscriber
	// UseCase nil - клиентское представление только для чтения
	UseCase        StatusUseCase
	Metrics        views.Metrics
	AllowedOrigins []string
	Logger         Logger
}

func NewHandler(cfg Config) *Handler {
	return &Handler{
		role:       cfg.Role,
		client:     cfg.Client,
		subscriber: cfg.Subscriber,
		useCase:    cfg.UseCase,
		metrics:    cfg.Metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(cfg.AllowedOrigins),
		},
		logger: cfg.Logger,
	}
}

// Handle GET /api/v1/admin/kit-bookings/live, GET /api/v1/me/kit-bookings/live
// Одно соединение - одно живое представление со своей подпиской на push-канал
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		middleware.RedirectToLogin(w, r)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrader уже ответил клиенту
		h.logger.Warn("GET %s - Upgrade failed: %v", r.URL.Path, err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	view := views.NewKitBookingsView(views.Config{
		Role:       h.role,
		Actor:      session.Email,
		Fetch:      h.fetchFunc(session),
		Subscriber: h.subscriber,
		Changer:    h.changer(),
		Metrics:    h.metrics,
		Logger:     h.logger,
	})

	lc := &liveConn{
		conn:      conn,
		view:      view,
		loginPath: middleware.LoginPath(r.Context()),
		frames:    make(chan ServerFrame, 8),
		cancel:    cancel,
		logger:    h.logger,
	}

	// 1. Писатель: снимки по сигналу представления, ошибки, ping
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		lc.writeLoop(ctx)
		cancel()
		_ = conn.Close()
	}()

	// 2. Активация: подписка и первичная загрузка
	if err := view.Activate(ctx); err != nil {
		h.logger.Warn("GET %s - Initial fetch failed: %v", r.URL.Path, err)
		lc.send(ServerFrame{Type: frameError, Message: msgFetchFailed})
	}

	h.logger.Info("GET %s - Live view opened for %s %d", r.URL.Path, h.role, session.UserID)

	// 3. Читатель до закрытия соединения
	lc.readLoop(ctx, &wg)

	// 4. Закрытие подписки, затем ожидание фоновых горутин
	cancel()
	view.Deactivate()
	wg.Wait()

	h.logger.Info("GET %s - Live view closed for %s %d", r.URL.Path, h.role, session.UserID)
}

func (h *Handler) fetchFunc(session *domain.Session) views.FetchFunc {
	if h.role == domain.RoleAdmin {
		return h.client.GetAllKitBookings
	}
	customerID := session.UserID
	return func(ctx context.Context) ([]domain.KitBooking, error) {
		return h.client.GetCustomerKitBookings(ctx, customerID)
	}
}

func (h *Handler) changer() views.StatusChanger {
	if h.useCase == nil {
		return nil
	}
	return views.ChangerFunc(func(ctx context.Context, bookingID int64, status string, actor string) error {
		_, err := h.useCase.Execute(ctx, &change_kit_status.Request{
			BookingID: bookingID,
			Status:    status,
			Actor:     actor,
		})
		return err
	})
}

// liveConn одно websocket-соединение; писать в conn может только writeLoop
type liveConn struct {
	conn      *websocket.Conn
	view      *views.KitBookingsView
	loginPath string
	frames    chan ServerFrame
	// cancel закрывает соединение со стороны сервера
	cancel context.CancelFunc
	logger Logger
}

// send ставит сообщение в очередь писателя; переполненная очередь отбрасывает сообщение
func (c *liveConn) send(frame ServerFrame) {
	select {
	case c.frames <- frame:
	default:
		c.logger.Warn("live_kit_bookings: frame queue full, dropping %s frame", frame.Type)
	}
}

func (c *liveConn) writeLoop(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		var err error
		select {
		case <-ctx.Done():
			c.flush()
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		case <-c.view.Changes():
			err = c.write(c.snapshot())
		case frame := <-c.frames:
			err = c.write(frame)
		case <-ticker.C:
			err = c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
		}
		if err != nil {
			c.logger.Warn("live_kit_bookings: write failed: %v", err)
			return
		}
	}
}

// flush дописывает сообщения, поставленные в очередь до закрытия
func (c *liveConn) flush() {
	for {
		select {
		case frame := <-c.frames:
			if err := c.write(frame); err != nil {
				return
			}
		default:
			return
		}
	}
}

func (c *liveConn) write(frame ServerFrame) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(frame)
}

func (c *liveConn) snapshot() ServerFrame {
	bookings := handlers.FromKitBookings(c.view.Snapshot())
	return ServerFrame{
		Type:       frameSnapshot,
		Bookings:   bookings,
		UpdatingID: c.view.UpdatingID(),
	}
}

func (c *liveConn) readLoop(ctx context.Context, wg *sync.WaitGroup) {
	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("live_kit_bookings: read failed: %v", err)
			}
			return
		}

		var frame ClientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			c.send(ServerFrame{Type: frameError, Message: msgInvalidFrame})
			continue
		}

		if frame.Action != actionUpdateStatus {
			c.send(ServerFrame{Type: frameError, Message: msgUnsupportedFrame})
			continue
		}

		// Изменение выполняется в фоне, читатель продолжает принимать сообщения
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.changeStatus(ctx, frame)
		}()
	}
}

func (c *liveConn) changeStatus(ctx context.Context, frame ClientFrame) {
	err := c.view.ChangeStatus(ctx, frame.BookingID, frame.Status)
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, views.ErrReadOnly):
		c.send(ServerFrame{Type: frameError, BookingID: frame.BookingID, Message: msgReadOnly})
	case errors.Is(err, views.ErrNotActive), errors.Is(err, context.Canceled):
		// Соединение закрывается
	case errors.Is(err, views.ErrUpdateInFlight), errors.Is(err, change_kit_status.ErrUpdateInFlight):
		c.send(ServerFrame{Type: frameError, BookingID: frame.BookingID, Message: msgUpdateInFlight})
	case errors.Is(err, change_kit_status.ErrInvalidStatus), errors.Is(err, change_kit_status.ErrInvalidInput):
		c.send(ServerFrame{Type: frameError, BookingID: frame.BookingID, Message: msgInvalidStatus})
	case errors.Is(err, change_kit_status.ErrBookingNotFound):
		c.send(ServerFrame{Type: frameError, BookingID: frame.BookingID, Message: msgNotFound})
	case errors.Is(err, change_kit_status.ErrRejected):
		c.send(ServerFrame{Type: frameError, BookingID: frame.BookingID, Message: msgRejected})
	case errors.Is(err, change_kit_status.ErrUnauthorized):
		// Сессия истекла: представление с данными не должно оставаться открытым
		c.send(ServerFrame{Type: frameUnauthorized, Message: msgSessionExpired, Redirect: c.loginPath})
		c.cancel()
	default:
		c.logger.Error("live_kit_bookings: status change failed: booking_id=%d, error=%v", frame.BookingID, err)
		c.send(ServerFrame{Type: frameError, BookingID: frame.BookingID, Message: msgUpdateFailed})
	}
}
