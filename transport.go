package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	maxRetries        = 5
	backoffMultiplier = 10

	logEventEndpoint = "/tp2"
)

type RequestOptions struct {
	retries int
}

type transport struct {
	collector string
	metadata  trackerMetadata
	client    *http.Client
	options   *Options
}

func newTransport(options *Options) *transport {
	collector := strings.TrimSuffix(options.Collector, "/")
	client := &http.Client{}
	if options.Transport != nil {
		client.Transport = options.Transport
	}
	if options.RequestTimeout > 0 {
		client.Timeout = options.RequestTimeout
	}

	return &transport{
		collector: collector,
		metadata:  getTrackerMetadata(),
		client:    client,
		options:   options,
	}
}

type logEventInput struct {
	Events          []interface{}   `json:"events"`
	TrackerMetadata trackerMetadata `json:"trackerMetadata"`
}

type logEventResponse struct{}

func (t *transport) logEvents(events []interface{}, out *logEventResponse, options RequestOptions) error {
	input := logEventInput{
		Events:          events,
		TrackerMetadata: t.metadata,
	}
	return t.post(logEventEndpoint, input, out, options)
}

func (t *transport) post(endpoint string, in interface{}, out interface{}, options RequestOptions) error {
	if t.options.LocalMode {
		return nil
	}
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	backoff := time.Second
	attempted := 0
	err = retry(options.retries, backoff, func() (bool, error) {
		attempted++
		response, requestErr := t.doRequest(endpoint, body)
		if requestErr != nil {
			return response != nil, requestErr
		}
		defer response.Body.Close()

		if response.StatusCode >= 200 && response.StatusCode < 300 {
			if out == nil {
				return false, nil
			}
			decodeErr := json.NewDecoder(response.Body).Decode(&out)
			if decodeErr == io.EOF {
				decodeErr = nil
			}
			return false, decodeErr
		}

		return shouldRetry(response.StatusCode), &TransportError{
			RequestMetadata: &RequestMetadata{
				StatusCode: response.StatusCode,
				Endpoint:   endpoint,
				Retries:    attempted - 1,
			},
			Err: fmt.Errorf("http response error code: %d", response.StatusCode),
		}
	})
	return err
}

func (t *transport) doRequest(endpoint string, body []byte) (*http.Response, error) {
	req, err := http.NewRequest("POST", t.collector+endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Add("TRACKER-NAMESPACE", t.options.Namespace)
	req.Header.Add("TRACKER-CLIENT-TIME", strconv.FormatInt(getUnixMilli(), 10))

	return t.client.Do(req)
}

func retry(retries int, backoff time.Duration, fn func() (bool, error)) error {
	for {
		if retry, err := fn(); retry {
			if retries <= 0 {
				return err
			}

			retries--
			time.Sleep(backoff)
			backoff = backoff * backoffMultiplier
		} else {
			return err
		}
	}
}

func shouldRetry(code int) bool {
	switch code {
	case 408, 500, 502, 503, 504, 522, 524, 599:
		return true
	default:
		return false
	}
}
