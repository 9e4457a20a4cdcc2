package txmonitor

import (
	"context"
	"sync"
	"time"
)

// memoryLedger is an in-memory SignatureLedger used to exercise the
// deduplication behavior of the engine end to end.
type memoryLedger struct {
	mu      sync.Mutex
	entries map[string]string
}

var _ SignatureLedger = (*memoryLedger)(nil)

func newMemoryLedger(seen ...string) *memoryLedger {
	l := &memoryLedger{entries: make(map[string]string)}
	for _, sig := range seen {
		l.entries[sig] = ""
	}
	return l
}

func (l *memoryLedger) IsSeen(_ context.Context, signature string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.entries[signature]
	return ok, nil
}

func (l *memoryLedger) MarkSeen(_ context.Context, signature, wallet string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.entries[signature]; !ok {
		l.entries[signature] = wallet
	}
	return nil
}

func (l *memoryLedger) Prune(context.Context, time.Duration) (int64, error) {
	return 0, nil
}

func (l *memoryLedger) signatures() map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]string, len(l.entries))
	for k, v := range l.entries {
		out[k] = v
	}
	return out
}
