package change_kit_status

import "sync"

// inFlight множество бронирований с незавершенным изменением
type inFlight struct {
	mu  sync.Mutex
	ids map[int64]struct{}
}

func newInFlight() *inFlight {
	return &inFlight{ids: make(map[int64]struct{})}
}

// acquire возвращает false, если изменение бронирования уже выполняется
func (f *inFlight) acquire(id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, busy := f.ids[id]; busy {
		return false
	}
	f.ids[id] = struct{}{}
	return true
}

func (f *inFlight) release(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.ids, id)
}

func (f *inFlight) busy(id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.ids[id]
	return ok
}
