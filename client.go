package tracker

import (
	"strconv"

	"github.com/google/uuid"
)

// An instance of a Tracker for building and emitting tracking events
// decorated with its Subject's context.
type Tracker struct {
	subject   *Subject
	logger    *logger
	transport *transport
	options   *Options
}

// NewTracker initializes a Tracker posting to the given collector URL, with
// default options and a default subject.
func NewTracker(collector string) *Tracker {
	return NewTrackerWithOptions(&Options{Collector: collector})
}

// NewTrackerWithOptions initializes a Tracker with the given options.
func NewTrackerWithOptions(options *Options) *Tracker {
	if options.Collector == "" && !options.LocalMode {
		panic("Must provide a collector URL.")
	}

	subjectConfig := &SubjectConfiguration{}
	if options.Subject != nil {
		config := *options.Subject
		subjectConfig = &config
	}
	if subjectConfig.UAParserOptions == nil {
		uaOptions := options.UAParserOptions
		subjectConfig.UAParserOptions = &uaOptions
	}
	if subjectConfig.IPCountryOptions == nil {
		ipOptions := options.IPCountryOptions
		subjectConfig.IPCountryOptions = &ipOptions
	}

	transport := newTransport(options)
	return &Tracker{
		subject:   newSubject(false, false, subjectConfig),
		logger:    newLogger(transport, options),
		transport: transport,
		options:   options,
	}
}

// Subject returns the tracker's subject for mutation as user and
// environment state changes.
func (t *Tracker) Subject() *Subject {
	return t.subject
}

// SetSubject replaces the tracker's subject. A nil subject is ignored.
func (t *Tracker) SetSubject(subject *Subject) {
	if subject == nil {
		return
	}
	t.subject = subject
}

// Track buffers a custom event for emission.
func (t *Tracker) Track(event Event) {
	tm := event.Time
	if tm == 0 {
		tm = getUnixMilli()
	}
	t.track(event.toPayload(), tm)
}

// TrackStructEvent buffers a structured event for emission.
func (t *Tracker) TrackStructEvent(event StructuredEvent) {
	t.track(event.toPayload(), getUnixMilli())
}

// TrackPageView buffers a page view event for emission.
func (t *Tracker) TrackPageView(event PageViewEvent) {
	t.track(event.toPayload(), getUnixMilli())
}

// TrackScreenView buffers a screen view event for emission.
func (t *Tracker) TrackScreenView(event ScreenViewEvent) {
	t.track(event.toPayload(), getUnixMilli())
}

// TrackTiming buffers a timing event for emission.
func (t *Tracker) TrackTiming(event TimingEvent) {
	t.track(event.toPayload(), getUnixMilli())
}

func (t *Tracker) track(payload *Payload, tm int64) {
	payload.Add(keyEventID, uuid.NewString())
	payload.Add(keyTimestamp, strconv.FormatInt(tm, 10))
	payload.Add(keyPlatform, defaultString(t.options.Platform, "srv"))
	payload.Add(keyNamespace, t.options.Namespace)
	payload.Add(keyAppID, t.options.AppID)
	payload.Add(keyVersion, trackerVersion)
	payload.AddPayload(t.subject.GetStandardDict())
	payload.AddPayload(t.subject.GetPlatformDict())

	wire := make(map[string]interface{}, payload.Len()+1)
	for k, v := range payload.Map() {
		wire[k] = v
	}
	if geo := t.subject.GetGeoLocationDict(); geo != nil {
		wire[keyGeoContext] = geo
	}

	t.logger.logTracked(wire)
}

// Flush sends all buffered events to the collector immediately.
func (t *Tracker) Flush() {
	t.logger.flush(false)
}

// Shutdown flushes the remaining events synchronously and stops the
// background flush. Using any method is undefined after Shutdown() has been
// called.
func (t *Tracker) Shutdown() {
	t.logger.flush(true)
}
