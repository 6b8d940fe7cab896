package sink

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ldurand/CardioFlow/internal/domain"
	"github.com/ldurand/CardioFlow/internal/ports"
)

// TimescaleSink persists samples into a TimescaleDB/Postgres hypertable so
// recorded sessions can be replayed or analyzed offline.
type TimescaleSink struct {
	db        *sql.DB
	tableName string
	sessionID string
}

func NewTimescaleSink(db *sql.DB, table, sessionID string) *TimescaleSink {
	return &TimescaleSink{db: db, tableName: table, sessionID: sessionID}
}

func (t *TimescaleSink) Name() string { return "timescaledb" }

func (t *TimescaleSink) WriteBatch(samples []domain.HeartData) error {
	if len(samples) == 0 {
		return nil
	}

	// Multi-row INSERT, idempotent via the (session_id, sim_time) unique key.
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(t.tableName)
	b.WriteString(" (session_id, sim_time, bpm, rr_interval_ms, scenario) VALUES ")

	args := make([]any, 0, len(samples)*5)
	for i, s := range samples {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(fmt.Sprintf("($%d,$%d,$%d,$%d,$%d)",
			len(args)+1, len(args)+2, len(args)+3, len(args)+4, len(args)+5))
		args = append(args,
			t.sessionID,
			s.Timestamp,
			s.BPM,
			s.RRIntervalMS,
			s.Scenario,
		)
	}

	b.WriteString(" ON CONFLICT (session_id, sim_time) DO NOTHING")

	_, err := t.db.Exec(b.String(), args...)
	return err
}

var _ ports.Sink = (*TimescaleSink)(nil)
