package leave_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/nearzk/ddd-leave-sample/internal/leave"
	"github.com/nearzk/ddd-leave-sample/internal/person"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type seqIDs struct {
	prefix string
	n      int
}

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func mustApplicant(t *testing.T, id string) leave.Applicant {
	t.Helper()
	a, err := leave.NewApplicant(id, "Applicant "+id, person.PersonTypeInternal)
	require.NoError(t, err)
	return a
}

func mustApprover(t *testing.T, id string, level int) leave.Approver {
	t.Helper()
	a, err := leave.NewApprover(id, "Approver "+id, level)
	require.NoError(t, err)
	return a
}

func mustInfo(t *testing.T, id string, approver leave.Approver, d leave.Decision, at time.Time) leave.ApprovalInfo {
	t.Helper()
	info, err := leave.NewApprovalInfo(id, approver, d, "message "+id, at)
	require.NoError(t, err)
	return info
}

func newDraft(t *testing.T) *leave.Leave {
	t.Helper()
	l, err := leave.NewLeave(mustApplicant(t, "p1"), leave.LeaveTypeAnnual, "family trip")
	require.NoError(t, err)
	return l
}

// newCreated returns a request of p1 awaiting a1 (level 1), max level 3.
func newCreated(t *testing.T) *leave.Leave {
	t.Helper()
	l := newDraft(t)
	require.NoError(t, l.Create(t0, 3, mustApprover(t, "a1", 1)))
	return l
}

// approvingRow is a stored request awaiting a1.
func approvingRow(id string) leave.LeaveRow {
	return leave.LeaveRow{
		ID:             id,
		ApplicantID:    "p1",
		ApplicantName:  "Applicant p1",
		ApplicantType:  string(person.PersonTypeInternal),
		ApproverID:     strPtr("a1"),
		ApproverName:   strPtr("Approver a1"),
		ApproverLevel:  intPtr(1),
		LeaveType:      string(leave.LeaveTypeAnnual),
		Reason:         "family trip",
		Status:         string(leave.StatusApproving),
		StartTime:      t0,
		LeaderMaxLevel: 3,
		Version:        1,
		History:        []leave.ApprovalInfoRow{},
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func assertApproverID(t *testing.T, l *leave.Leave, want string) {
	t.Helper()
	a, ok := l.Approver().Get()
	if assert.True(t, ok, "approver should be present") {
		assert.Equal(t, want, a.PersonID())
	}
}
