package tracker

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type testServerOptions struct {
	status     int
	onLogEvent func(events []map[string]interface{})
}

func getTestServer(opts testServerOptions) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		status := opts.status
		if status == 0 {
			status = http.StatusOK
		}
		res.WriteHeader(status)
		if status < 200 || status >= 300 {
			return
		}
		if strings.Contains(req.URL.Path, "tp2") && opts.onLogEvent != nil {
			type requestInput struct {
				Events          []map[string]interface{} `json:"events"`
				TrackerMetadata trackerMetadata          `json:"trackerMetadata"`
			}
			input := &requestInput{}
			defer req.Body.Close()
			_ = json.NewDecoder(req.Body).Decode(input)
			opts.onLogEvent(input.Events)
		}
	}))
}

func getOutputLoggerOptionsForTest(t *testing.T) OutputLoggerOptions {
	return OutputLoggerOptions{
		LogCallback: func(message string, err error) {
			t.Log(message, err)
		},
	}
}

func waitForCondition(t *testing.T, condition func() bool) {
	timeout := 2000 * time.Millisecond
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond) // Adjust the polling interval as needed
	}

	t.Errorf("Timeout Expired")
}

// Subject with the given context flags but the platform loaders disabled,
// so tests stay deterministic and offline.
func newOfflineSubject(platformContext bool, geoLocationContext bool) *Subject {
	return newSubject(platformContext, geoLocationContext, &SubjectConfiguration{
		UAParserOptions:  &UAParserOptions{Disabled: true},
		IPCountryOptions: &IPCountryOptions{Disabled: true},
	})
}
