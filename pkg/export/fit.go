// Package export turns a recorded analysis session into a FIT activity
// file suitable for upload to training platforms.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/muktihari/fit/encoder"
	"github.com/muktihari/fit/profile/mesgdef"
	"github.com/muktihari/fit/profile/typedef"
	"github.com/muktihari/fit/proto"
)

// SessionRecord is one analyzed frame inside a workout session.
type SessionRecord struct {
	Timestamp  time.Time
	Exercise   string
	Status     string
	Confidence float64
}

// GenerateSessionFile encodes a workout session as a FIT activity file.
// Each contiguous run of one exercise becomes a set; the rep count is the
// number of frames with correct form in that run.
func GenerateSessionFile(records []SessionRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("session must have at least one record")
	}

	startTime := records[0].Timestamp
	endTime := records[len(records)-1].Timestamp
	elapsed := endTime.Sub(startTime)
	if elapsed < 0 {
		return nil, fmt.Errorf("records must be ordered by timestamp")
	}

	fit := &proto.FIT{
		Messages: []proto.Message{},
	}

	// 1. FileId message
	fileId := mesgdef.NewFileId(nil).
		SetType(typedef.FileActivity).
		SetManufacturer(typedef.ManufacturerDevelopment).
		SetProduct(1). // FormSight product ID
		SetTimeCreated(startTime)
	fit.Messages = append(fit.Messages, fileId.ToMesg(nil))

	// 2. Activity message (created now, appended last)
	activityMsg := mesgdef.NewActivity(nil).
		SetTimestamp(startTime).
		SetType(typedef.ActivityManual).
		SetNumSessions(1)

	// 3. Session message (created now, appended last)
	sessionMsg := mesgdef.NewSession(nil).
		SetTimestamp(startTime).
		SetSport(typedef.SportTraining).
		SetStartTime(startTime).
		SetTotalElapsedTime(uint32(elapsed.Milliseconds())).
		SetTotalTimerTime(uint32(elapsed.Milliseconds()))

	// 4. Set messages: one per contiguous run of the same exercise
	for i, run := range splitRuns(records) {
		setMsg := mesgdef.NewSet(nil).
			SetTimestamp(run.start).
			SetStartTime(run.start).
			SetSetType(typedef.SetTypeActive).
			SetMessageIndex(typedef.MessageIndex(i))

		if run.correct > 0 {
			setMsg.SetRepetitions(uint16(run.correct))
		}
		if d := run.end.Sub(run.start); d > 0 {
			setMsg.SetDuration(uint32(d.Milliseconds()))
		}

		fit.Messages = append(fit.Messages, setMsg.ToMesg(nil))
	}

	// 5. Lap message
	lapMsg := mesgdef.NewLap(nil).
		SetTimestamp(startTime).
		SetStartTime(startTime).
		SetSport(typedef.SportTraining).
		SetMessageIndex(0).
		SetTotalElapsedTime(uint32(elapsed.Milliseconds())).
		SetTotalTimerTime(uint32(elapsed.Milliseconds()))
	fit.Messages = append(fit.Messages, lapMsg.ToMesg(nil))

	// 6. Append summary messages (Session, Activity) at the end
	fit.Messages = append(fit.Messages, sessionMsg.ToMesg(nil))
	fit.Messages = append(fit.Messages, activityMsg.ToMesg(nil))

	var buf bytes.Buffer
	enc := encoder.New(&buf)
	if err := enc.Encode(fit); err != nil {
		return nil, fmt.Errorf("failed to encode FIT file: %w", err)
	}
	return buf.Bytes(), nil
}

type exerciseRun struct {
	exercise string
	start    time.Time
	end      time.Time
	correct  int
}

// splitRuns groups consecutive records of the same exercise.
func splitRuns(records []SessionRecord) []exerciseRun {
	var runs []exerciseRun
	for _, rec := range records {
		if n := len(runs); n > 0 && runs[n-1].exercise == rec.Exercise {
			runs[n-1].end = rec.Timestamp
			if rec.Status == "correct" {
				runs[n-1].correct++
			}
			continue
		}
		run := exerciseRun{
			exercise: rec.Exercise,
			start:    rec.Timestamp,
			end:      rec.Timestamp,
		}
		if rec.Status == "correct" {
			run.correct = 1
		}
		runs = append(runs, run)
	}
	return runs
}
