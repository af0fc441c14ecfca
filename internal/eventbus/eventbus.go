// Package eventbus - синхронная шина событий внутри процесса.
// Библиотека для Go-клиентов API (CLI, боты, тестовые стенды); сервер её не использует.
package eventbus

import (
	"sync"
)

// Handler - обработчик события, payload передаётся как есть
type Handler func(payload interface{})

type subscription struct {
	id      uint64
	handler Handler
}

// Bus - синхронная шина событий по имени события.
// Паника в обработчике не перехватывается и прерывает Emit
type Bus struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[string][]subscription
}

func New() *Bus {
	return &Bus{handlers: make(map[string][]subscription)}
}

// On - подписка на событие. Возвращает функцию отписки именно этой подписки
func (b *Bus) On(event string, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[event] = append(b.handlers[event], subscription{id: id, handler: handler})

	return func() {
		b.off(event, id)
	}
}

func (b *Bus) off(event string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[event]
	for i, sub := range subs {
		if sub.id != id {
			continue
		}
		// новый срез, чтобы не портить снимок идущего Emit
		rest := make([]subscription, 0, len(subs)-1)
		rest = append(rest, subs[:i]...)
		rest = append(rest, subs[i+1:]...)
		if len(rest) == 0 {
			delete(b.handlers, event)
		} else {
			b.handlers[event] = rest
		}
		return
	}
}

// Emit - вызывает обработчики в порядке подписки.
// Подписки, добавленные или снятые во время Emit, на текущий вызов не влияют
func (b *Bus) Emit(event string, payload interface{}) {
	b.mu.Lock()
	subs := b.handlers[event]
	b.mu.Unlock()

	for _, sub := range subs {
		sub.handler(payload)
	}
}

// Subscribers - количество подписок на событие
func (b *Bus) Subscribers(event string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers[event])
}
