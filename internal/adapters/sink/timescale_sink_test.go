package sink

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ldurand/CardioFlow/internal/domain"
)

func TestTimescaleSinkWriteBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	s := NewTimescaleSink(db, "heart_samples", "session-1")

	samples := []domain.HeartData{
		{Timestamp: 0, BPM: 60, RRIntervalMS: 1000, Scenario: "rest"},
		{Timestamp: 1, BPM: 61.2, RRIntervalMS: 984, Scenario: "rest"},
	}

	expectedQuery := regexp.QuoteMeta("INSERT INTO heart_samples (session_id, sim_time, bpm, rr_interval_ms, scenario) VALUES ($1,$2,$3,$4,$5),($6,$7,$8,$9,$10) ON CONFLICT (session_id, sim_time) DO NOTHING")
	mock.ExpectExec(expectedQuery).
		WithArgs(
			"session-1", 0.0, 60.0, 1000.0, "rest",
			"session-1", 1.0, 61.2, 984.0, "rest",
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := s.WriteBatch(samples); err != nil {
		t.Fatalf("write batch: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTimescaleSinkWriteBatchNoSamples(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	s := NewTimescaleSink(db, "heart_samples", "session-1")
	if err := s.WriteBatch(nil); err != nil {
		t.Fatalf("empty batch should be a no-op, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no statements should run for an empty batch: %v", err)
	}
}
