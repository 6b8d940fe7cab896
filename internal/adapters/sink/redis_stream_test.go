package sink

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"github.com/ldurand/CardioFlow/internal/domain"
)

func TestRedisStreamSinkWriteBatch(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer client.Close()

	s := NewRedisStreamSink(client, "cardioflow:samples")

	samples := []domain.HeartData{
		{Timestamp: 0, BPM: 60, RRIntervalMS: 1000, Scenario: "rest"},
		{Timestamp: 1, BPM: 59.3, RRIntervalMS: 1012, Scenario: "rest"},
	}
	if err := s.WriteBatch(samples); err != nil {
		t.Fatalf("write batch: %v", err)
	}

	ctx := context.Background()
	entries, err := client.XRange(ctx, "cardioflow:samples", "-", "+").Result()
	if err != nil {
		t.Fatalf("xrange: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 stream entries, got %d", len(entries))
	}

	var decoded domain.HeartData
	raw, ok := entries[0].Values["data"].(string)
	if !ok {
		t.Fatalf("expected a data field, got %+v", entries[0].Values)
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("unmarshal entry: %v", err)
	}
	if decoded.BPM != 60 || decoded.Scenario != "rest" {
		t.Fatalf("unexpected entry payload: %+v", decoded)
	}
	if entries[0].Values["scenario"] != "rest" {
		t.Fatalf("scenario field missing, got %+v", entries[0].Values)
	}
}

func TestRedisStreamSinkEmptyBatch(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer client.Close()

	s := NewRedisStreamSink(client, "cardioflow:samples")
	if err := s.WriteBatch(nil); err != nil {
		t.Fatalf("empty batch: %v", err)
	}
}
