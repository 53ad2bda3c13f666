package leave

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/nearzk/ddd-leave-sample/internal/person"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"gorm.io/datatypes"
)

type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Factory translates between the aggregate and its rows. It performs no
// I/O; the only non-determinism is identity generation.
type Factory struct {
	ids IDGenerator
}

func NewFactory(ids IDGenerator) *Factory {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Factory{ids: ids}
}

// ToRow flattens l. A leave without identity gets a fresh one.
// The transient current decision is not stored.
func (f *Factory) ToRow(l *Leave) LeaveRow {
	id := l.id
	if id == "" {
		id = f.ids.NewID()
	}

	row := LeaveRow{
		ID:             id,
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
		History: lo.Map(l.history, func(info ApprovalInfo, i int) ApprovalInfoRow {
			return ApprovalInfoRow{
				LeaveID:        id,
				Seq:            i,
				ApprovalInfoID: info.id,
				ApproverID:     info.approver.personID,
				ApproverName:   info.approver.personName,
				ApproverLevel:  info.approver.level,
				Decision:       string(info.decision),
				Message:        info.message,
				DecidedAt:      info.decidedAt,
			}
		}),
	}
	if a, ok := l.approver.Get(); ok {
		row.ApproverID = lo.ToPtr(a.personID)
		row.ApproverName = lo.ToPtr(a.personName)
		row.ApproverLevel = lo.ToPtr(a.level)
	}
	if end, ok := l.endTime.Get(); ok {
		row.EndTime = lo.ToPtr(end)
	}
	return row
}

// FromRow rebuilds the aggregate with its history in decision order.
func (f *Factory) FromRow(row LeaveRow) *Leave {
	history := slices.Clone(row.History)
	slices.SortStableFunc(history, func(a, b ApprovalInfoRow) int {
		return a.Seq - b.Seq
	})

	l := &Leave{
		id: row.ID,
		applicant: Applicant{
			personID:   row.ApplicantID,
			personName: row.ApplicantName,
			personType: person.PersonType(row.ApplicantType),
		},
		leaveType:      LeaveType(row.LeaveType),
		reason:         row.Reason,
		status:         Status(row.Status),
		startTime:      row.StartTime,
		leaderMaxLevel: row.LeaderMaxLevel,
		version:        row.Version,
		history: lo.Map(history, func(r ApprovalInfoRow, _ int) ApprovalInfo {
			return ApprovalInfo{
				id: r.ApprovalInfoID,
				approver: Approver{
					personID:   r.ApproverID,
					personName: r.ApproverName,
					level:      r.ApproverLevel,
				},
				decision:  Decision(r.Decision),
				message:   r.Message,
				decidedAt: r.DecidedAt,
			}
		}),
	}
	if row.ApproverID != nil {
		l.approver = mo.Some(Approver{
			personID:   *row.ApproverID,
			personName: lo.FromPtr(row.ApproverName),
			level:      lo.FromPtr(row.ApproverLevel),
		})
	}
	if row.EndTime != nil {
		l.endTime = mo.Some(*row.EndTime)
	}
	return l
}

// NewEvent builds an event of eventType carrying a snapshot of l.
func (f *Factory) NewEvent(eventType EventType, l *Leave, source string, at time.Time) LeaveEvent {
	return LeaveEvent{
		ID:         f.ids.NewID(),
		Type:       eventType,
		LeaveID:    l.id,
		Source:     source,
		OccurredAt: at,
		Payload:    SnapshotOf(l),
	}
}

// ToEventRow serializes e into a pending event log entry.
func (f *Factory) ToEventRow(e LeaveEvent) (LeaveEventRow, error) {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return LeaveEventRow{}, err
	}
	return LeaveEventRow{
		ID:            e.ID,
		AggregateID:   e.LeaveID,
		EventType:     string(e.Type),
		Source:        e.Source,
		SchemaVersion: e.Payload.SchemaVersion,
		Payload:       datatypes.JSON(payload),
		OccurredAt:    e.OccurredAt,
		Status:        EventStatusPending,
	}, nil
}
