package leave

import (
	"time"

	"github.com/samber/lo"
)

type EventType string

const (
	EventTypeCreate   EventType = "CREATE"
	EventTypeAgree    EventType = "AGREE"
	EventTypeReject   EventType = "REJECT"
	EventTypeApproved EventType = "APPROVED"
)

// SnapshotSchemaVersion is bumped on any incompatible change of LeaveSnapshot.
const SnapshotSchemaVersion = 1

// LeaveEvent is the fact that a leave request changed state. Payload holds
// the aggregate as it was right after the transition.
type LeaveEvent struct {
	ID         string
	Type       EventType
	LeaveID    string
	Source     string
	OccurredAt time.Time
	Payload    LeaveSnapshot
}

type LeaveSnapshot struct {
	SchemaVersion  int                `json:"schema_version"`
	LeaveID        string             `json:"leave_id"`
	ApplicantID    string             `json:"applicant_id"`
	ApplicantName  string             `json:"applicant_name"`
	ApplicantType  string             `json:"applicant_type"`
	ApproverID     *string            `json:"approver_id,omitempty"`
	ApproverName   *string            `json:"approver_name,omitempty"`
	ApproverLevel  *int               `json:"approver_level,omitempty"`
	LeaveType      string             `json:"leave_type"`
	Reason         string             `json:"reason"`
	Status         string             `json:"status"`
	StartTime      time.Time          `json:"start_time"`
	EndTime        *time.Time         `json:"end_time,omitempty"`
	DurationMs     int64              `json:"duration_ms"`
	LeaderMaxLevel int                `json:"leader_max_level"`
	Version        int64              `json:"version"`
	History        []ApprovalSnapshot `json:"history"`
}

type ApprovalSnapshot struct {
	ID            string    `json:"id"`
	ApproverID    string    `json:"approver_id"`
	ApproverName  string    `json:"approver_name"`
	ApproverLevel int       `json:"approver_level"`
	Decision      string    `json:"decision"`
	Message       string    `json:"message"`
	DecidedAt     time.Time `json:"decided_at"`
}

// SnapshotOf captures the current state of l.
func SnapshotOf(l *Leave) LeaveSnapshot {
	s := LeaveSnapshot{
		SchemaVersion:  SnapshotSchemaVersion,
		LeaveID:        l.id,
		ApplicantID:    l.applicant.personID,
		ApplicantName:  l.applicant.personName,
		ApplicantType:  string(l.applicant.personType),
		LeaveType:      string(l.leaveType),
		Reason:         l.reason,
		Status:         string(l.status),
		StartTime:      l.startTime,
		DurationMs:     l.Duration().Milliseconds(),
		LeaderMaxLevel: l.leaderMaxLevel,
		Version:        l.version,
		History: lo.Map(l.history, func(info ApprovalInfo, _ int) ApprovalSnapshot {
			return ApprovalSnapshot{
				ID:            info.id,
				ApproverID:    info.approver.personID,
				ApproverName:  info.approver.personName,
				ApproverLevel: info.approver.level,
				Decision:      string(info.decision),
				Message:       info.message,
				DecidedAt:     info.decidedAt,
			}
		}),
	}
	if a, ok := l.approver.Get(); ok {
		s.ApproverID = lo.ToPtr(a.personID)
		s.ApproverName = lo.ToPtr(a.personName)
		s.ApproverLevel = lo.ToPtr(a.level)
	}
	if end, ok := l.endTime.Get(); ok {
		s.EndTime = lo.ToPtr(end)
	}
	return s
}
