package eventsink

import "code.cloudfoundry.org/auctionhouse/auctiontypes"

type Fanout []auctiontypes.EventSink

func (f Fanout) Emit(event auctiontypes.Event) {
	for _, sink := range f {
		sink.Emit(event)
	}
}

// ChannelSink hands events to an in-process consumer. Emit blocks while the
// channel is full.
type ChannelSink struct {
	events chan auctiontypes.Event
}

func NewChannelSink(buffer int) *ChannelSink {
	return &ChannelSink{events: make(chan auctiontypes.Event, buffer)}
}

func (s *ChannelSink) Emit(event auctiontypes.Event) {
	s.events <- event
}

func (s *ChannelSink) Events() <-chan auctiontypes.Event {
	return s.events
}
