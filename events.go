package tracker

import (
	"encoding/json"
	"strconv"
)

// An event to be sent to the collector for logging and analysis. Typed events
// below reduce to this through their payload methods.
type Event struct {
	EventName string            `json:"eventName"`
	Value     string            `json:"value"`
	Metadata  map[string]string `json:"metadata"`
	Time      int64             `json:"time"`
}

func (e Event) toPayload() *Payload {
	p := NewPayload()
	p.Add(keyEvent, eventTypeCustom)
	p.Add(keyEventName, e.EventName)
	p.Add(keyEventValue, e.Value)
	if len(e.Metadata) > 0 {
		if bytes, err := json.Marshal(e.Metadata); err == nil {
			p.Add(keyEventMetadata, string(bytes))
		}
	}
	return p
}

// StructuredEvent is a category/action event in the classic five-field shape.
type StructuredEvent struct {
	Category string
	Action   string
	Label    string
	Property string
	Value    *float64
}

func (e StructuredEvent) toPayload() *Payload {
	p := NewPayload()
	p.Add(keyEvent, eventTypeStructured)
	p.Add(keySeCategory, e.Category)
	p.Add(keySeAction, e.Action)
	p.Add(keySeLabel, e.Label)
	p.Add(keySeProperty, e.Property)
	if e.Value != nil {
		p.Add(keySeValue, strconv.FormatFloat(*e.Value, 'f', -1, 64))
	}
	return p
}

type PageViewEvent struct {
	PageURL   string
	PageTitle string
	Referrer  string
}

func (e PageViewEvent) toPayload() *Payload {
	p := NewPayload()
	p.Add(keyEvent, eventTypePageView)
	p.Add(keyPageURL, e.PageURL)
	p.Add(keyPageTitle, e.PageTitle)
	p.Add(keyPageReferrer, e.Referrer)
	return p
}

type ScreenViewEvent struct {
	Name string
	ID   string
}

func (e ScreenViewEvent) toPayload() *Payload {
	p := NewPayload()
	p.Add(keyEvent, eventTypeScreenView)
	p.Add(keyScreenName, e.Name)
	p.Add(keyScreenID, e.ID)
	return p
}

// TimingEvent reports a measured duration in milliseconds.
type TimingEvent struct {
	Category string
	Variable string
	Timing   int64
	Label    string
}

func (e TimingEvent) toPayload() *Payload {
	p := NewPayload()
	p.Add(keyEvent, eventTypeTiming)
	p.Add(keyTimingCat, e.Category)
	p.Add(keyTimingVar, e.Variable)
	p.Add(keyTimingTime, strconv.FormatInt(e.Timing, 10))
	p.Add(keyTimingLabel, e.Label)
	return p
}
