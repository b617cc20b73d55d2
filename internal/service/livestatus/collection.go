package livestatus

import (
	"sync"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

// Collection коллекция бронирований одного представления
// Push-события и действия администратора сходятся на одной операции
// "заменить статус по идентификатору", побеждает последняя запись
type Collection struct {
	mu       sync.RWMutex
	bookings []domain.KitBooking
	index    map[int64]int
}

func NewCollection() *Collection {
	return &Collection{index: make(map[int64]int)}
}

// Replace полностью заменяет содержимое коллекции результатом выборки
func (c *Collection) Replace(bookings []domain.KitBooking) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.bookings = make([]domain.KitBooking, len(bookings))
	copy(c.bookings, bookings)
	c.index = make(map[int64]int, len(bookings))
	for i, b := range c.bookings {
		c.index[b.ID] = i
	}
}

// Apply применяет push-событие: меняется только статус совпавшего бронирования
// Возвращает false, если бронирования с таким id нет (событие отбрасывается)
func (c *Collection) Apply(event domain.StatusUpdateEvent) bool {
	return c.SetStatus(event.BookingID, event.NewStatus) == nil
}

// SetStatus заменяет статус бронирования по идентификатору
func (c *Collection) SetStatus(bookingID int64, status domain.KitBookingStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[bookingID]
	if !ok {
		return ErrBookingNotFound
	}
	c.bookings[i].Status = status
	return nil
}

// Get возвращает копию бронирования
func (c *Collection) Get(bookingID int64) (domain.KitBooking, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[bookingID]
	if !ok {
		return domain.KitBooking{}, false
	}
	return c.bookings[i], true
}

// Snapshot копия коллекции в исходном порядке
func (c *Collection) Snapshot() []domain.KitBooking {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.KitBooking, len(c.bookings))
	copy(out, c.bookings)
	return out
}

func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.bookings)
}
