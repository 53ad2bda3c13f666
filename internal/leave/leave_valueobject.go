package leave

import (
	"strings"
	"time"

	leaveerrors "github.com/nearzk/ddd-leave-sample/internal/leave/errors"
	"github.com/nearzk/ddd-leave-sample/internal/person"
)

type LeaveType string

const (
	LeaveTypeAnnual   LeaveType = "ANNUAL"
	LeaveTypeSick     LeaveType = "SICK"
	LeaveTypeUnpaid   LeaveType = "UNPAID"
	LeaveTypePersonal LeaveType = "PERSONAL"
)

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypeUnpaid, LeaveTypePersonal:
		return true
	}
	return false
}

func ParseLeaveType(s string) (LeaveType, error) {
	t := LeaveType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", leaveerrors.ErrInvalidLeaveType
	}
	return t, nil
}

type Status string

const (
	StatusApproving Status = "APPROVING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
)

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Decision string

const (
	DecisionAgree  Decision = "AGREE"
	DecisionReject Decision = "REJECT"
)

func ParseDecision(s string) (Decision, error) {
	d := Decision(strings.ToUpper(strings.TrimSpace(s)))
	if d != DecisionAgree && d != DecisionReject {
		return "", leaveerrors.ErrInvalidDecision
	}
	return d, nil
}

// Applicant is the requesting person as seen when the request was filed.
type Applicant struct {
	personID   string
	personName string
	personType person.PersonType
}

func NewApplicant(personID, personName string, personType person.PersonType) (Applicant, error) {
	if personID == "" || !personType.IsValid() {
		return Applicant{}, leaveerrors.ErrInvalidApplicant
	}
	return Applicant{personID: personID, personName: personName, personType: personType}, nil
}

func ApplicantFromPerson(p person.Person) (Applicant, error) {
	return NewApplicant(p.ID, p.Name, p.PersonType)
}

func (a Applicant) PersonID() string              { return a.personID }
func (a Applicant) PersonName() string            { return a.personName }
func (a Applicant) PersonType() person.PersonType { return a.personType }

// Approver is a snapshot of the person currently holding the decision.
// Changing approver means replacing the value, never editing it.
type Approver struct {
	personID   string
	personName string
	level      int
}

func NewApprover(personID, personName string, level int) (Approver, error) {
	if personID == "" || level < 0 {
		return Approver{}, leaveerrors.ErrInvalidApprover
	}
	return Approver{personID: personID, personName: personName, level: level}, nil
}

func ApproverFromPerson(p person.Person) (Approver, error) {
	return NewApprover(p.ID, p.Name, p.RoleLevel)
}

func (a Approver) PersonID() string   { return a.personID }
func (a Approver) PersonName() string { return a.personName }
func (a Approver) Level() int         { return a.level }
func (a Approver) IsZero() bool       { return a.personID == "" }

// ApprovalInfo records one decision. The approver is copied in so the
// history stays accurate when the directory changes later.
type ApprovalInfo struct {
	id        string
	approver  Approver
	decision  Decision
	message   string
	decidedAt time.Time
}

func NewApprovalInfo(id string, approver Approver, decision Decision, message string, decidedAt time.Time) (ApprovalInfo, error) {
	if id == "" || decidedAt.IsZero() {
		return ApprovalInfo{}, leaveerrors.ErrInvalidApprovalInfo
	}
	if approver.IsZero() {
		return ApprovalInfo{}, leaveerrors.ErrInvalidApprover
	}
	if decision != DecisionAgree && decision != DecisionReject {
		return ApprovalInfo{}, leaveerrors.ErrInvalidDecision
	}
	return ApprovalInfo{
		id:        id,
		approver:  approver,
		decision:  decision,
		message:   message,
		decidedAt: decidedAt,
	}, nil
}

func (i ApprovalInfo) ID() string           { return i.id }
func (i ApprovalInfo) Approver() Approver   { return i.approver }
func (i ApprovalInfo) Decision() Decision   { return i.decision }
func (i ApprovalInfo) Message() string      { return i.message }
func (i ApprovalInfo) DecidedAt() time.Time { return i.decidedAt }
