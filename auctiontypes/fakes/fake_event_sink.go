// This file was generated by counterfeiter
package fakes

import (
	"sync"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
)

type FakeEventSink struct {
	EmitStub        func(event auctiontypes.Event)
	emitMutex       sync.RWMutex
	emitArgsForCall []struct {
		event auctiontypes.Event
	}
}

func (fake *FakeEventSink) Emit(event auctiontypes.Event) {
	fake.emitMutex.Lock()
	fake.emitArgsForCall = append(fake.emitArgsForCall, struct {
		event auctiontypes.Event
	}{event})
	stub := fake.EmitStub
	fake.emitMutex.Unlock()
	if stub != nil {
		stub(event)
	}
}

func (fake *FakeEventSink) EmitCallCount() int {
	fake.emitMutex.RLock()
	defer fake.emitMutex.RUnlock()
	return len(fake.emitArgsForCall)
}

func (fake *FakeEventSink) EmitArgsForCall(i int) auctiontypes.Event {
	fake.emitMutex.RLock()
	defer fake.emitMutex.RUnlock()
	return fake.emitArgsForCall[i].event
}

// Events returns a copy of every event emitted so far.
func (fake *FakeEventSink) Events() []auctiontypes.Event {
	fake.emitMutex.RLock()
	defer fake.emitMutex.RUnlock()
	events := make([]auctiontypes.Event, 0, len(fake.emitArgsForCall))
	for _, args := range fake.emitArgsForCall {
		events = append(events, args.event)
	}
	return events
}

// EventsOfType filters Events by type.
func (fake *FakeEventSink) EventsOfType(eventType auctiontypes.EventType) []auctiontypes.Event {
	events := []auctiontypes.Event{}
	for _, event := range fake.Events() {
		if event.Type == eventType {
			events = append(events, event)
		}
	}
	return events
}

var _ auctiontypes.EventSink = new(FakeEventSink)
