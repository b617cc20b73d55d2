package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/service/livestatus"
	"github.com/m04kA/SMC-GarageDesk/pkg/metrics"
)

// KitBookingsView живая страница бронирований комплектов одного пользователя
// Пока представление активно, коллекция держится в актуальном состоянии
// через одну подписку на push-канал
type KitBookingsView struct {
	role       domain.Role
	actor      string
	fetch      FetchFunc
	subscriber Subscriber
	changer    StatusChanger
	metrics    Metrics
	logger     Logger

	mu         sync.Mutex
	active     bool
	generation uint64
	sub        *livestatus.Subscription
	collection *livestatus.Collection
	updatingID int64

	changes chan struct{}
}

// Config зависимости представления
type Config struct {
	Role       domain.Role
	Actor      string
	Fetch      FetchFunc
	Subscriber Subscriber
	// Changer nil - представление только для чтения
	Changer StatusChanger
	Metrics Metrics
	Logger  Logger
}

func NewKitBookingsView(cfg Config) *KitBookingsView {
	if cfg.Metrics == nil {
		cfg.Metrics = nopMetrics{}
	}
	return &KitBookingsView{
		role:       cfg.Role,
		actor:      cfg.Actor,
		fetch:      cfg.Fetch,
		subscriber: cfg.Subscriber,
		changer:    cfg.Changer,
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
		collection: livestatus.NewCollection(),
		changes:    make(chan struct{}, 1),
	}
}

// Activate загружает бронирования и открывает подписку
// Повторная активация активного представления ничего не делает
func (v *KitBookingsView) Activate(ctx context.Context) error {
	// 1. Новое поколение и подписка
	v.mu.Lock()
	if v.active {
		v.mu.Unlock()
		return nil
	}
	v.active = true
	v.generation++
	gen := v.generation
	v.collection = livestatus.NewCollection()
	v.sub = v.subscriber.Subscribe(ctx, v.onEvent(gen))
	v.mu.Unlock()

	v.metrics.ViewOpened(string(v.role))
	v.logger.Info("views: %s kit bookings view activated (generation %d)", v.role, gen)

	// 2. Загрузка без блокировки: push-события идут параллельно
	bookings, err := v.fetch(ctx)

	// 3. Результат устаревшей загрузки отбрасывается
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.active || v.generation != gen {
		v.logger.Info("views: discarding fetch of generation %d", gen)
		return nil
	}
	if err != nil {
		v.logger.Warn("views: %s kit bookings fetch failed: %v", v.role, err)
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	v.collection.Replace(bookings)
	v.notify()

	return nil
}

// Deactivate закрывает подписку; после возврата события не применяются
func (v *KitBookingsView) Deactivate() {
	v.mu.Lock()
	if !v.active {
		v.mu.Unlock()
		return
	}
	v.active = false
	v.generation++
	sub := v.sub
	v.sub = nil
	v.mu.Unlock()

	if sub != nil {
		sub.Close()
	}
	v.metrics.ViewClosed(string(v.role))
	v.logger.Info("views: %s kit bookings view deactivated", v.role)
}

// ChangeStatus меняет статус бронирования через бэкенд
// В представлении одновременно выполняется не более одного изменения
func (v *KitBookingsView) ChangeStatus(ctx context.Context, bookingID int64, status string) error {
	if v.changer == nil {
		return ErrReadOnly
	}

	v.mu.Lock()
	if !v.active {
		v.mu.Unlock()
		return ErrNotActive
	}
	if v.updatingID != 0 {
		v.mu.Unlock()
		return ErrUpdateInFlight
	}
	v.updatingID = bookingID
	gen := v.generation
	v.notify()
	v.mu.Unlock()

	err := v.changer.ChangeKitStatus(ctx, bookingID, status, v.actor)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.updatingID = 0
	v.notify()

	if err != nil {
		return err
	}

	// Локальная правка после подтверждения; остальные представления сойдутся по push
	if v.active && v.generation == gen {
		if err := v.collection.SetStatus(bookingID, domain.KitBookingStatus(status)); err != nil {
			v.logger.Warn("views: booking %d acknowledged but not in view: %v", bookingID, err)
		}
	}
	return nil
}

// Snapshot текущее содержимое коллекции
func (v *KitBookingsView) Snapshot() []domain.KitBooking {
	v.mu.Lock()
	c := v.collection
	v.mu.Unlock()
	return c.Snapshot()
}

// UpdatingID бронирование, изменение которого выполняется (0 - нет)
func (v *KitBookingsView) UpdatingID() int64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.updatingID
}

func (v *KitBookingsView) Active() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active
}

func (v *KitBookingsView) Role() domain.Role {
	return v.role
}

// Changes сигнал об изменении состояния; несколько изменений подряд схлопываются в один
func (v *KitBookingsView) Changes() <-chan struct{} {
	return v.changes
}

func (v *KitBookingsView) onEvent(gen uint64) func(domain.StatusUpdateEvent) {
	return func(event domain.StatusUpdateEvent) {
		v.mu.Lock()
		defer v.mu.Unlock()

		if !v.active || v.generation != gen {
			return
		}
		if !v.collection.Apply(event) {
			v.metrics.PushEvent(metrics.PushUnmatched)
			return
		}
		v.metrics.PushEvent(metrics.PushApplied)
		v.notify()
	}
}

// notify вызывается под v.mu
func (v *KitBookingsView) notify() {
	select {
	case v.changes <- struct{}{}:
	default:
	}
}

type nopMetrics struct{}

func (nopMetrics) PushEvent(string)  {}
func (nopMetrics) ViewOpened(string) {}
func (nopMetrics) ViewClosed(string) {}
