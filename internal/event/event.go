// internal/event/event.go
package event

import "slices"

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер событий. Всё вызывается из тика
// симуляции, поэтому блокировок нет.
type Dispatcher struct {
	listeners map[EventType][]Listener
	wildcard  []Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll receives every event regardless of type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.wildcard = append(d.wildcard, listener)
}

// Dispatch — отправка события всем подписчикам. Подписки, добавленные
// во время рассылки, получат только следующие события.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range slices.Clone(d.listeners[event.Type]) {
		listener.OnEvent(event)
	}
	for _, listener := range slices.Clone(d.wildcard) {
		listener.OnEvent(event)
	}
}
