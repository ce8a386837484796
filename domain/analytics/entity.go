package analytics

import "time"

// Event is one first-party analytics event sent by the site.
type Event struct {
	Name       string            `json:"name"`
	Path       string            `json:"path,omitempty"`
	VisitorID  string            `json:"visitorId,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
	ReceivedAt time.Time         `json:"receivedAt"`
}

type TrackResponse struct {
	Accepted bool `json:"accepted"`
}

// EventCount is the number of events seen for one name since start.
type EventCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type SummaryResponse struct {
	Events []EventCount `json:"events"`
	Total  int64        `json:"total"`
}
