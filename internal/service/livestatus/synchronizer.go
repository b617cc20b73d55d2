package livestatus

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/pkg/metrics"
)

// DefaultReconnectDelay фиксированная пауза перед переподключением
const DefaultReconnectDelay = 5 * time.Second

// Synchronizer открывает подписки на push-канал статусов
// Сам не хранит соединений: каждая подписка принадлежит своему представлению
type Synchronizer struct {
	transport      Transport
	reconnectDelay time.Duration
	metrics        Metrics
	logger         Logger
}

// Option настройка синхронизатора
type Option func(*Synchronizer)

// WithReconnectDelay задает паузу между попытками переподключения
func WithReconnectDelay(d time.Duration) Option {
	return func(s *Synchronizer) {
		if d > 0 {
			s.reconnectDelay = d
		}
	}
}

// WithMetrics подключает метрики
func WithMetrics(m Metrics) Option {
	return func(s *Synchronizer) {
		s.metrics = m
	}
}

func NewSynchronizer(transport Transport, logger Logger, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		transport:      transport,
		reconnectDelay: DefaultReconnectDelay,
		metrics:        nopMetrics{},
		logger:         logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscription логическая подписка одного представления
// Close закрывает ее детерминированно: после возврата из Close события не доставляются
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Close останавливает подписку и ждет завершения цикла приема
// Повторный вызов безопасен
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}

// Done закрывается, когда цикл приема завершен
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Subscribe открывает подписку; onEvent вызывается последовательно в порядке получения
// При потере соединения подписка переподключается с фиксированной паузой без ограничения
// числа попыток, пока не будет вызван Close или не отменен ctx
func (s *Synchronizer) Subscribe(ctx context.Context, onEvent func(domain.StatusUpdateEvent)) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(sub.done)
		s.run(ctx, onEvent)
	}()

	return sub
}

func (s *Synchronizer) run(ctx context.Context, onEvent func(domain.StatusUpdateEvent)) {
	attempt := 0
	for {
		if ctx.Err() != nil {
			return
		}

		if attempt > 0 {
			s.metrics.PushReconnect()
		}
		attempt++

		stream, err := s.transport.Dial(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			s.logger.Warn("livestatus: dial failed (attempt %d), retry in %s: %v", attempt, s.reconnectDelay, err)
		} else {
			s.logger.Info("livestatus: subscribed to status channel (attempt %d)", attempt)
			s.pump(ctx, stream, onEvent)
			if err := stream.Close(); err != nil {
				s.logger.Warn("livestatus: close stream: %v", err)
			}
			if ctx.Err() != nil {
				return
			}
			s.logger.Warn("livestatus: status channel disconnected, retry in %s", s.reconnectDelay)
		}

		timer := time.NewTimer(s.reconnectDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// pump читает сообщения до закрытия потока или отмены контекста
func (s *Synchronizer) pump(ctx context.Context, stream Stream, onEvent func(domain.StatusUpdateEvent)) {
	messages := stream.Messages()
	for {
		select {
		case <-ctx.Done():
			return
		case body, ok := <-messages:
			if !ok {
				return
			}
			event, err := DecodeEvent(body)
			if err != nil {
				s.metrics.PushEvent(metrics.PushMalformed)
				s.logger.Warn("livestatus: dropping message: %v", err)
				continue
			}
			// Отмена могла произойти, пока сообщение ждало в канале
			if ctx.Err() != nil {
				return
			}
			onEvent(event)
		}
	}
}

type nopMetrics struct{}

func (nopMetrics) PushEvent(string) {}
func (nopMetrics) PushReconnect()   {}
