package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RoundRecord captures one round of play. Records live in memory for the
// process lifetime only; there is no on-disk persistence.
type RoundRecord struct {
	UUID      string
	Mode      Mode
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Steps     int
}

// Stats aggregates the rounds played during this process. The session is
// single-threaded, so no locking is needed here.
type Stats struct {
	SessionUUID string
	StartTime   time.Time
	Rounds      []RoundRecord
	HighScore   int
}

func NewStats() *Stats {
	return &Stats{
		SessionUUID: uuid.New().String(),
		StartTime:   time.Now(),
	}
}

// BeginRound opens a record for a new round and returns it for EndRound.
func (st *Stats) BeginRound(mode Mode) *RoundRecord {
	st.Rounds = append(st.Rounds, RoundRecord{
		UUID:      uuid.New().String(),
		Mode:      mode,
		StartTime: time.Now(),
	})
	return &st.Rounds[len(st.Rounds)-1]
}

// EndRound closes a record with the final score and step count.
func (st *Stats) EndRound(r *RoundRecord, score, steps int) {
	if r == nil {
		return
	}
	r.EndTime = time.Now()
	r.Score = score
	r.Steps = steps
	if score > st.HighScore {
		st.HighScore = score
	}
}

// Summary renders a short end-of-session report.
func (st *Stats) Summary() string {
	finished := 0
	for _, r := range st.Rounds {
		if !r.EndTime.IsZero() {
			finished++
		}
	}
	return fmt.Sprintf("session %s: %d rounds finished, high score %d, uptime %s",
		st.SessionUUID, finished, st.HighScore, time.Since(st.StartTime).Round(time.Second))
}
