package tracker

import (
	"sync"
	"time"
)

// logger buffers finished event payloads and ships them to the collector in
// batches, either when the buffer fills up or on the background flush tick.
type logger struct {
	events    []interface{}
	transport *transport
	tick      *time.Ticker
	mu        sync.Mutex
	maxEvents int
	disabled  bool
	options   *Options
}

func newLogger(transport *transport, options *Options) *logger {
	flushInterval := time.Minute
	maxEvents := 1000
	if options.FlushInterval > 0 {
		flushInterval = options.FlushInterval
	}
	if options.MaxBufferSize > 0 {
		maxEvents = options.MaxBufferSize
	}
	disabled := options.TrackerLoggerOptions.DisableAllLogging
	log := &logger{
		events:    make([]interface{}, 0),
		transport: transport,
		tick:      time.NewTicker(flushInterval),
		maxEvents: maxEvents,
		disabled:  disabled,
		options:   options,
	}

	go log.backgroundFlush()

	return log
}

func (l *logger) backgroundFlush() {
	for range l.tick.C {
		l.flush(false)
	}
}

func (l *logger) logTracked(event map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disabled {
		return
	}

	l.events = append(l.events, event)
	if len(l.events) >= l.maxEvents {
		l.flushInternal(false)
	}
}

func (l *logger) flush(closing bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.flushInternal(closing)
}

func (l *logger) flushInternal(closing bool) {
	if closing {
		l.tick.Stop()
	}
	if len(l.events) == 0 {
		return
	}

	if closing {
		l.sendEvents(l.events)
	} else {
		go l.sendEvents(l.events)
	}

	l.events = make([]interface{}, 0)
}

func (l *logger) sendEvents(events []interface{}) {
	Logger().Debug(events)
	var res logEventResponse
	err := l.transport.logEvents(events, &res, RequestOptions{retries: maxRetries})
	if err != nil {
		Logger().LogError(&LogEventError{Err: err, Events: len(events)})
	}
}
