package sink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ldurand/CardioFlow/internal/domain"
)

func TestConsoleSinkWritesOneLinePerSample(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsoleSink(&buf)

	samples := []domain.HeartData{
		{Timestamp: 0, BPM: 60, RRIntervalMS: 1000, Scenario: "rest"},
		{Timestamp: 1, BPM: 58.7, RRIntervalMS: 1021, Scenario: "rest"},
	}
	if err := s.WriteBatch(samples); err != nil {
		t.Fatalf("write batch: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "[rest] BPM: 60.0 | RR: 1000ms | Time: 0.00s" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
}

func TestConsoleSinkEmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsoleSink(&buf)
	if err := s.WriteBatch(nil); err != nil {
		t.Fatalf("empty batch: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("empty batch should write nothing, got %q", buf.String())
	}
}
