package sse

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
)

// Writer frames events onto an HTTP response stream, flushing after every
// write.
type Writer struct {
	w http.ResponseWriter
	f http.Flusher
}

// NewWriter prepares w for event streaming and writes the SSE headers.
func NewWriter(w http.ResponseWriter) (*Writer, error) {
	f, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support streaming")
	}
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	return &Writer{w: w, f: f}, nil
}

// WriteEvent writes one named event. Multi-line data gets a data: prefix per
// line so embedded newlines cannot break framing.
func (sw *Writer) WriteEvent(eventType, data string) error {
	var b strings.Builder
	b.WriteString("event: ")
	b.WriteString(eventType)
	b.WriteByte('\n')
	for _, line := range strings.Split(data, "\n") {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	if _, err := fmt.Fprint(sw.w, b.String()); err != nil {
		return err
	}
	sw.f.Flush()
	return nil
}

// WriteComment writes a comment line. Used as the initial connection ack and
// as the idle keep-alive probe; clients ignore it.
func (sw *Writer) WriteComment(text string) error {
	if _, err := fmt.Fprintf(sw.w, ": %s\n\n", text); err != nil {
		return err
	}
	sw.f.Flush()
	return nil
}

// FilterReplay prepares persisted events for replay to a reconnecting
// client. If the set contains a final response, intermediate artifact
// updates are suppressed — the final response already embeds the artifacts,
// and replaying both duplicates them in the client transcript.
func FilterReplay(events []*ent.SSEEvent) []*ent.SSEEvent {
	hasFinal := false
	for _, ev := range events {
		if ev.EventType == EventTypeFinalResponse {
			hasFinal = true
			break
		}
	}
	if !hasFinal {
		return events
	}
	out := make([]*ent.SSEEvent, 0, len(events))
	for _, ev := range events {
		if ev.EventType == EventTypeArtifactUpdate {
			continue
		}
		out = append(out, ev)
	}
	return out
}
