package stomp

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	gostomp "github.com/go-stomp/stomp/v3"
	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-GarageDesk/internal/service/livestatus"
)

const (
	// DefaultTopic топик обновлений статусов бронирований
	DefaultTopic = "/booking-status/update"

	connectTimeout    = 10 * time.Second
	disconnectTimeout = 2 * time.Second
	messageBuffer     = 64
)

// Transport подключается к STOMP-брокеру бэкенда поверх websocket
type Transport struct {
	url       string
	topic     string
	heartbeat time.Duration
	// connectTimeout ограничивает ожидание CONNECTED от брокера
	connectTimeout time.Duration
	dialer         *websocket.Dialer
	logger         Logger
}

func NewTransport(rawURL, topic string, heartbeat time.Duration, logger Logger) *Transport {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Transport{
		url:            rawURL,
		topic:          topic,
		heartbeat:      heartbeat,
		connectTimeout: connectTimeout,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
			Subprotocols:     []string{"v12.stomp", "v11.stomp", "v10.stomp"},
		},
		logger: logger,
	}
}

// Dial открывает websocket, выполняет STOMP CONNECT и подписывается на топик
func (t *Transport) Dial(ctx context.Context) (livestatus.Stream, error) {
	// 1. Websocket-соединение
	ws, _, err := t.dialer.DialContext(ctx, t.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDial, t.url, err)
	}

	// 2. STOMP CONNECT
	opts := []func(*gostomp.Conn) error{
		gostomp.ConnOpt.HeartBeat(t.heartbeat, t.heartbeat),
	}
	if u, err := url.Parse(t.url); err == nil && u.Host != "" {
		opts = append(opts, gostomp.ConnOpt.Host(u.Hostname()))
	}

	// CONNECTED ждём не дольше connectTimeout и до отмены ctx
	stop := context.AfterFunc(ctx, func() { _ = ws.Close() })
	_ = ws.SetReadDeadline(time.Now().Add(t.connectTimeout))
	conn, err := gostomp.Connect(newWSConn(ws), opts...)
	if !stop() {
		if err == nil {
			_ = conn.MustDisconnect()
		}
		_ = ws.Close()
		return nil, fmt.Errorf("%w: %v", ErrHandshake, ctx.Err())
	}
	if err != nil {
		_ = ws.Close()
		return nil, fmt.Errorf("%w: %v", ErrHandshake, err)
	}
	_ = ws.SetReadDeadline(time.Time{})

	// 3. Подписка на топик статусов
	sub, err := conn.Subscribe(t.topic, gostomp.AckAuto)
	if err != nil {
		_ = conn.MustDisconnect()
		_ = ws.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrSubscribe, t.topic, err)
	}

	s := &stream{
		ws:     ws,
		conn:   conn,
		sub:    sub,
		out:    make(chan []byte, messageBuffer),
		done:   make(chan struct{}),
		logger: t.logger,
	}
	go s.pump()

	return s, nil
}

// stream одна STOMP-подписка. Messages закрывается при обрыве соединения или Close
type stream struct {
	ws     *websocket.Conn
	conn   *gostomp.Conn
	sub    *gostomp.Subscription
	out    chan []byte
	done   chan struct{}
	logger Logger

	once     sync.Once
	closeErr error
}

func (s *stream) Messages() <-chan []byte {
	return s.out
}

func (s *stream) pump() {
	defer close(s.out)

	for {
		select {
		case <-s.done:
			return
		case msg, ok := <-s.sub.C:
			if !ok {
				return
			}
			if msg.Err != nil {
				s.logger.Warn("push.stomp: subscription error: %v", msg.Err)
				return
			}
			select {
			case s.out <- msg.Body:
			case <-s.done:
				return
			}
		}
	}
}

// Close отписывается и закрывает соединение; повторный вызов безопасен
func (s *stream) Close() error {
	s.once.Do(func() {
		close(s.done)

		result := make(chan error, 1)
		go func() {
			result <- s.conn.Disconnect()
		}()

		select {
		case err := <-result:
			if err != nil && err != gostomp.ErrAlreadyClosed {
				s.closeErr = err
			}
		case <-time.After(disconnectTimeout):
			s.logger.Warn("push.stomp: no disconnect receipt in %s, dropping connection", disconnectTimeout)
			_ = s.conn.MustDisconnect()
		}

		_ = s.ws.Close()
	})
	return s.closeErr
}
