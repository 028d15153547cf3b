// Package tracker implements an event-tracking SDK: events are decorated
// with the subject's user/device context and shipped to a collector in
// batches.
package tracker

import (
	"fmt"
	"time"
)

var instance *Tracker

// Initializes the global tracker instance posting to the given collector
func Initialize(collector string) {
	InitializeGlobalOutputLogger(OutputLoggerOptions{})
	InitializeGlobalSessionID()
	if IsInitialized() {
		Logger().Log("Tracker is already initialized.", nil)
		return
	}

	instance = NewTracker(collector)
}

// Initializes the global tracker instance with the given options
func InitializeWithOptions(options *Options) {
	InitializeGlobalOutputLogger(options.OutputLoggerOptions)
	InitializeGlobalSessionID()
	if IsInitialized() {
		Logger().Log("Tracker is already initialized.", nil)
		return
	}

	if options.InitTimeout > 0 {
		channel := make(chan *Tracker, 1)
		go func() {
			channel <- NewTrackerWithOptions(options)
		}()

		select {
		case res := <-channel:
			instance = res
		case <-time.After(options.InitTimeout):
			Logger().Log("Initialize timed out.", nil)
			return
		}
	} else {
		instance = NewTrackerWithOptions(options)
	}
}

// IsInitialized returns whether the global tracker instance has already been initialized or not
func IsInitialized() bool {
	return instance != nil
}

// GetSubject returns the global tracker's subject
func GetSubject() *Subject {
	if !IsInitialized() {
		panic(fmt.Errorf("must Initialize() the tracker before calling GetSubject"))
	}
	return instance.Subject()
}

// Buffers a custom event on the global tracker
func Track(event Event) {
	if !IsInitialized() {
		panic(fmt.Errorf("must Initialize() the tracker before calling Track"))
	}
	instance.Track(event)
}

// Buffers a structured event on the global tracker
func TrackStructEvent(event StructuredEvent) {
	if !IsInitialized() {
		panic(fmt.Errorf("must Initialize() the tracker before calling TrackStructEvent"))
	}
	instance.TrackStructEvent(event)
}

// Buffers a page view event on the global tracker
func TrackPageView(event PageViewEvent) {
	if !IsInitialized() {
		panic(fmt.Errorf("must Initialize() the tracker before calling TrackPageView"))
	}
	instance.TrackPageView(event)
}

// Buffers a screen view event on the global tracker
func TrackScreenView(event ScreenViewEvent) {
	if !IsInitialized() {
		panic(fmt.Errorf("must Initialize() the tracker before calling TrackScreenView"))
	}
	instance.TrackScreenView(event)
}

// Buffers a timing event on the global tracker
func TrackTiming(event TimingEvent) {
	if !IsInitialized() {
		panic(fmt.Errorf("must Initialize() the tracker before calling TrackTiming"))
	}
	instance.TrackTiming(event)
}

// Flushes the global tracker's event buffer
func Flush() {
	if !IsInitialized() {
		panic(fmt.Errorf("must Initialize() the tracker before calling Flush"))
	}
	instance.Flush()
}

// Cleans up the tracker, pausing all background processes and flushing any
// remaining events.
// Using any method is undefined after Shutdown() has been called
func Shutdown() {
	if instance == nil {
		return
	}
	instance.Shutdown()
}

// For test only so we can clear the shared instance. Not thread safe.
func ShutdownAndDangerouslyClearInstance() {
	Shutdown()
	instance = nil
}
