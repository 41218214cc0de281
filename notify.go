package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/tidwall/sjson"
)

func annotationLabel(a Annotation) string {
	if d, ok := a.(*DocAnnotation); ok {
		return d.DisplayName()
	}
	return a.ID()
}

func connectionLine(from, to Annotation) string {
	return fmt.Sprintf("%s -> %s", annotationLabel(from), annotationLabel(to))
}

// edgeListText renders one "from -> to" line per edge.
func edgeListText(edges []NetworkEdge) string {
	lines := make([]string, len(edges))
	for i, edge := range edges {
		lines[i] = connectionLine(edge.From.Annotation, edge.To.Annotation)
	}
	return strings.Join(lines, "\n")
}

// connectionPayload encodes ev as a single-line JSON object.
func connectionPayload(ev ConnectionCreated, at time.Time) (string, error) {
	payload := `{"type":"connection.created"}`
	fields := []struct {
		path  string
		value any
	}{
		{"created", at.UTC().Format(time.RFC3339Nano)},
		{"from.id", ev.From.ID()},
		{"from.label", annotationLabel(ev.From)},
		{"to.id", ev.To.ID()},
		{"to.label", annotationLabel(ev.To)},
	}
	var err error
	for _, f := range fields {
		payload, err = sjson.Set(payload, f.path, f.value)
		if err != nil {
			return "", fmt.Errorf("encode %s: %w", f.path, err)
		}
	}
	return payload, nil
}

// jsonlNotifier appends every created connection to a JSON-lines file.
type jsonlNotifier struct {
	path string
	now  func() time.Time
}

func newJSONLNotifier(path string) *jsonlNotifier {
	return &jsonlNotifier{path: path, now: time.Now}
}

func (n *jsonlNotifier) Notify(ev ConnectionCreated) {
	if err := n.append(ev); err != nil {
		log.Printf("notify %s: %v", n.path, err)
	}
}

func (n *jsonlNotifier) append(ev ConnectionCreated) error {
	payload, err := connectionPayload(ev, n.now())
	if err != nil {
		return err
	}
	file, err := os.OpenFile(n.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = fmt.Fprintln(file, payload)
	return err
}

func copyConnection(ev ConnectionCreated) {
	if err := writeClipboardText(connectionLine(ev.From, ev.To)); err != nil {
		log.Printf("copy connection: %v", err)
	}
}
