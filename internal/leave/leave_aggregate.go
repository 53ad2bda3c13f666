package leave

import (
	"time"

	leaveerrors "github.com/nearzk/ddd-leave-sample/internal/leave/errors"

	"github.com/samber/mo"
)

// Leave is the approval workflow aggregate. State changes only through
// its transition methods; every method validates first and leaves the
// aggregate untouched when it returns an error.
//
// While APPROVING an approver is present and the end time is absent.
// Once APPROVED or REJECTED the approver is absent and the end time is set.
type Leave struct {
	id                  string
	applicant           Applicant
	approver            mo.Option[Approver]
	leaveType           LeaveType
	reason              string
	status              Status
	startTime           time.Time
	endTime             mo.Option[time.Time]
	leaderMaxLevel      int
	currentApprovalInfo mo.Option[ApprovalInfo]
	history             []ApprovalInfo
	version             int64
}

// NewLeave returns a request that has not been created yet.
func NewLeave(applicant Applicant, leaveType LeaveType, reason string) (*Leave, error) {
	if applicant.PersonID() == "" {
		return nil, leaveerrors.ErrInvalidApplicant
	}
	if !leaveType.IsValid() {
		return nil, leaveerrors.ErrInvalidLeaveType
	}
	return &Leave{
		applicant: applicant,
		leaveType: leaveType,
		reason:    reason,
		history:   []ApprovalInfo{},
	}, nil
}

func (l *Leave) ID() string                                   { return l.id }
func (l *Leave) Applicant() Applicant                         { return l.applicant }
func (l *Leave) Approver() mo.Option[Approver]                { return l.approver }
func (l *Leave) LeaveType() LeaveType                         { return l.leaveType }
func (l *Leave) Reason() string                               { return l.reason }
func (l *Leave) Status() Status                               { return l.status }
func (l *Leave) StartTime() time.Time                         { return l.startTime }
func (l *Leave) EndTime() mo.Option[time.Time]                { return l.endTime }
func (l *Leave) LeaderMaxLevel() int                          { return l.leaderMaxLevel }
func (l *Leave) CurrentApprovalInfo() mo.Option[ApprovalInfo] { return l.currentApprovalInfo }
func (l *Leave) Version() int64                               { return l.version }

// Duration is endTime - startTime, zero until the request is closed.
func (l *Leave) Duration() time.Duration {
	end, ok := l.endTime.Get()
	if !ok {
		return 0
	}
	return end.Sub(l.startTime)
}

// HistoryApprovalInfos returns the decisions in the order they were made.
func (l *Leave) HistoryApprovalInfos() []ApprovalInfo {
	out := make([]ApprovalInfo, len(l.history))
	copy(out, l.history)
	return out
}

// Create starts the approval flow with the first approver.
func (l *Leave) Create(at time.Time, leaderMaxLevel int, approver Approver) error {
	if l.status != "" {
		return leaveerrors.ErrLeaveAlreadyCreated
	}
	if leaderMaxLevel < 1 {
		return leaveerrors.ErrInvalidLeaderMaxLevel
	}
	if approver.IsZero() {
		return leaveerrors.ErrInvalidApprover
	}
	if approver.Level() > leaderMaxLevel {
		return leaveerrors.ErrApproverLevelExceeded
	}

	l.leaderMaxLevel = leaderMaxLevel
	l.approver = mo.Some(approver)
	l.status = StatusApproving
	l.startTime = at
	l.endTime = mo.None[time.Time]()
	return nil
}

// RecordDecision stores the decision of the active approver. It is
// consumed by the next Agree, Reject or Finish.
func (l *Leave) RecordDecision(info ApprovalInfo) error {
	if l.status != StatusApproving {
		return leaveerrors.ErrLeaveNotApproving
	}
	current, ok := l.approver.Get()
	if !ok || current.PersonID() != info.Approver().PersonID() {
		return leaveerrors.ErrNotCurrentApprover
	}
	l.currentApprovalInfo = mo.Some(info)
	return nil
}

// Agree hands the request to the next approver of the chain.
func (l *Leave) Agree(next Approver) error {
	if err := l.requireDecision(DecisionAgree); err != nil {
		return err
	}
	if next.IsZero() {
		return leaveerrors.ErrInvalidApprover
	}
	if next.Level() > l.leaderMaxLevel {
		return leaveerrors.ErrApproverLevelExceeded
	}

	l.approver = mo.Some(next)
	l.currentApprovalInfo = mo.None[ApprovalInfo]()
	return nil
}

// Reject closes the request at the given time.
func (l *Leave) Reject(at time.Time) error {
	if err := l.requireDecision(DecisionReject); err != nil {
		return err
	}
	if at.Before(l.startTime) {
		return leaveerrors.ErrInvalidEndTime
	}
	l.close(StatusRejected, at)
	return nil
}

// Finish approves the request once no further approver exists.
func (l *Leave) Finish(at time.Time) error {
	if err := l.requireDecision(DecisionAgree); err != nil {
		return err
	}
	if at.Before(l.startTime) {
		return leaveerrors.ErrInvalidEndTime
	}
	l.close(StatusApproved, at)
	return nil
}

// AddHistoryApprovalInfo appends info as is. Calling it twice with the
// same info records the decision twice.
func (l *Leave) AddHistoryApprovalInfo(info ApprovalInfo) {
	l.history = append(l.history, info)
}

// ChangeDetails edits the request body while it is still under approval.
func (l *Leave) ChangeDetails(leaveType LeaveType, reason string) error {
	if l.status != StatusApproving {
		return leaveerrors.ErrLeaveNotApproving
	}
	if !leaveType.IsValid() {
		return leaveerrors.ErrInvalidLeaveType
	}
	l.leaveType = leaveType
	l.reason = reason
	return nil
}

func (l *Leave) requireDecision(want Decision) error {
	if l.status != StatusApproving {
		return leaveerrors.ErrLeaveNotApproving
	}
	info, ok := l.currentApprovalInfo.Get()
	if !ok {
		return leaveerrors.ErrNoDecisionRecorded
	}
	if info.Decision() != want {
		return leaveerrors.ErrDecisionMismatch
	}
	return nil
}

func (l *Leave) close(status Status, at time.Time) {
	l.status = status
	l.approver = mo.None[Approver]()
	l.endTime = mo.Some(at)
	l.currentApprovalInfo = mo.None[ApprovalInfo]()
}

func (l *Leave) clone() *Leave {
	cp := *l
	cp.history = append(make([]ApprovalInfo, 0, len(l.history)), l.history...)
	return &cp
}
