package messagebus

import (
	"log/slog"
	"sync"

	"github.com/mmsswimming/go_academy_backend/internal/domain"
)

type EventHandler func(event domain.Event) error

// MessageBus dispatches domain events to registered handlers. Handlers run
// asynchronously; Close waits for in-flight handlers to finish.
type MessageBus struct {
	logger   *slog.Logger
	handlers map[string][]EventHandler
	wg       sync.WaitGroup
}

func New(logger *slog.Logger) *MessageBus {
	return &MessageBus{
		logger:   logger,
		handlers: make(map[string][]EventHandler),
	}
}

func (b *MessageBus) Register(eventType string, handler EventHandler) {
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

func (b *MessageBus) PublishEvents(events ...domain.Event) error {
	for _, event := range events {
		for _, handler := range b.handlers[event.Type()] {
			b.wg.Add(1)
			go func(h EventHandler, e domain.Event) {
				defer b.wg.Done()
				if err := h(e); err != nil {
					b.logger.Error("failed to handle event", "type", e.Type(), "err", err)
				}
			}(handler, event)
		}
	}
	return nil
}

func (b *MessageBus) Close() {
	b.wg.Wait()
}
