package livestatus

import (
	"context"
	"errors"
	"sync"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

// fakeBroker имитирует push-брокер: каждая подписка получает копию опубликованного сообщения
type fakeBroker struct {
	mu      sync.Mutex
	streams []*fakeStream
	dials   int
	failN   int // сколько первых Dial завершаются ошибкой
	dialed  chan struct{}
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{dialed: make(chan struct{}, 16)}
}

func (b *fakeBroker) Dial(ctx context.Context) (Stream, error) {
	b.mu.Lock()
	b.dials++
	fail := b.dials <= b.failN
	b.mu.Unlock()

	defer func() { b.dialed <- struct{}{} }()

	if fail {
		return nil, errors.New("connection refused")
	}

	s := &fakeStream{ch: make(chan []byte, 16)}
	b.mu.Lock()
	b.streams = append(b.streams, s)
	b.mu.Unlock()
	return s, nil
}

func (b *fakeBroker) publish(body []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.streams {
		s.send(body)
	}
}

func (b *fakeBroker) publishEvent(id int64, status domain.KitBookingStatus) {
	b.publish(EncodeEvent(domain.StatusUpdateEvent{BookingID: id, NewStatus: status}))
}

// dropAll имитирует обрыв соединения у всех подписчиков
func (b *fakeBroker) dropAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.streams {
		s.disconnect()
	}
	b.streams = nil
}

func (b *fakeBroker) openStreams() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, s := range b.streams {
		if !s.isClosed() {
			n++
		}
	}
	return n
}

func (b *fakeBroker) dialCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dials
}

type fakeStream struct {
	mu     sync.Mutex
	ch     chan []byte
	closed bool
}

func (s *fakeStream) Messages() <-chan []byte { return s.ch }

func (s *fakeStream) send(body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.ch <- body
	}
}

func (s *fakeStream) disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

func (s *fakeStream) Close() error {
	s.disconnect()
	return nil
}

func (s *fakeStream) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
