package cardioflow

import (
	"errors"
	"testing"
)

func TestNewCallbackSink(t *testing.T) {
	var received []HeartData
	s := NewCallbackSink("cb", func(batch []HeartData) error {
		received = append(received, batch...)
		return nil
	})

	input := HeartData{Timestamp: 1, BPM: 60, RRIntervalMS: 1000, Scenario: "rest"}

	if err := s.WriteBatch([]HeartData{input}); err != nil {
		t.Fatalf("WriteBatch returned error: %v", err)
	}
	if len(received) != 1 {
		t.Fatalf("expected 1 batch entry, got %d", len(received))
	}
	got := received[0]
	if got.BPM != input.BPM || got.Scenario != input.Scenario {
		t.Fatalf("mismatched sample payload: %+v vs %+v", got, input)
	}
}

func TestNewCallbackSinkNilHandler(t *testing.T) {
	s := NewCallbackSink("", nil)
	err := s.WriteBatch([]HeartData{{BPM: 60}})
	if err == nil {
		t.Fatalf("expected error when callback is nil")
	}
}

func TestNewCallbackSinkEmptyBatch(t *testing.T) {
	called := false
	s := NewCallbackSink("cb", func(batch []HeartData) error {
		called = true
		return nil
	})
	if err := s.WriteBatch(nil); err != nil {
		t.Fatalf("empty batch: %v", err)
	}
	if called {
		t.Fatalf("callback should not run for an empty batch")
	}
}

func TestNewChannelSink(t *testing.T) {
	s, ch, closeFn := NewChannelSink("chan", 1)
	defer closeFn()

	input := []HeartData{{Timestamp: 2, BPM: 62, RRIntervalMS: 970, Scenario: "rest"}}
	if err := s.WriteBatch(input); err != nil {
		t.Fatalf("WriteBatch returned error: %v", err)
	}

	batch := <-ch
	if len(batch) != 1 || batch[0].BPM != 62 {
		t.Fatalf("unexpected batch: %+v", batch)
	}

	// The channel receives a copy, not the caller's backing array.
	input[0].BPM = 0
	if batch[0].BPM != 62 {
		t.Fatalf("batch should be isolated from the caller's slice")
	}
}

func TestChannelSinkClosed(t *testing.T) {
	s, _, closeFn := NewChannelSink("chan", 0)
	closeFn()

	err := s.WriteBatch([]HeartData{{BPM: 60}})
	if !errors.Is(err, ErrChannelSinkClosed) {
		t.Fatalf("expected ErrChannelSinkClosed, got %v", err)
	}
}

func TestChannelSinkCloseIdempotent(t *testing.T) {
	_, _, closeFn := NewChannelSink("chan", 0)
	closeFn()
	closeFn()
}
