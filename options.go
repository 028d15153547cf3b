package tracker

import (
	"net/http"
	"time"
)

// Advanced options for configuring the tracker
type Options struct {
	// Collector is the base URL events are posted to. Required unless
	// LocalMode is set.
	Collector string `json:"collector"`
	// AppID identifies the application in the event payload.
	AppID string `json:"appId"`
	// Namespace distinguishes multiple trackers reporting to the same
	// collector.
	Namespace string `json:"namespace"`
	// Platform is the "p" pair sent with every event. Defaults to "srv".
	Platform  string `json:"platform"`
	LocalMode bool   `json:"localMode"`

	Transport      http.RoundTripper
	FlushInterval  time.Duration
	MaxBufferSize  int
	InitTimeout    time.Duration
	RequestTimeout time.Duration

	// Subject carries initial values for the tracker's subject and its two
	// context flags.
	Subject *SubjectConfiguration

	OutputLoggerOptions  OutputLoggerOptions
	TrackerLoggerOptions TrackerLoggerOptions
	IPCountryOptions     IPCountryOptions
	UAParserOptions      UAParserOptions
}

type OutputLoggerOptions struct {
	LogCallback func(message string, err error)
	EnableDebug bool
}

type TrackerLoggerOptions struct {
	DisableAllLogging bool
}

type IPCountryOptions struct {
	Disabled     bool // Fully disable IP to country lookup
	LazyLoad     bool // Load in background
	EnsureLoaded bool // Wait until loaded when needed
}

type UAParserOptions struct {
	Disabled     bool // Fully disable user agent parsing
	LazyLoad     bool // Load in background
	EnsureLoaded bool // Wait until loaded when needed
}
