package leave

import (
	"time"

	"github.com/samber/lo"
)

type CreateLeaveRequest struct {
	ApplicantID string `json:"applicant_id" binding:"required"`
	LeaveType   string `json:"leave_type" binding:"required,oneof=ANNUAL SICK UNPAID PERSONAL"`
	Reason      string `json:"reason" binding:"max=1000"`
}

type UpdateLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=ANNUAL SICK UNPAID PERSONAL"`
	Reason    string `json:"reason" binding:"max=1000"`
	// Version, when set, must match the stored version.
	Version *int64 `json:"version"`
}

type SubmitApprovalRequest struct {
	ApproverID string `json:"approver_id"`
	Decision   string `json:"decision" binding:"required,oneof=AGREE REJECT"`
	Message    string `json:"message" binding:"max=1000"`
	Version    *int64 `json:"version"`
}

type ApproverResponse struct {
	PersonID   string `json:"person_id"`
	PersonName string `json:"person_name"`
	Level      int    `json:"level"`
}

type ApprovalInfoResponse struct {
	ID        string           `json:"id"`
	Approver  ApproverResponse `json:"approver"`
	Decision  string           `json:"decision"`
	Message   string           `json:"message"`
	DecidedAt string           `json:"decided_at"`
}

type LeaveResponse struct {
	ID             string                 `json:"id"`
	ApplicantID    string                 `json:"applicant_id"`
	ApplicantName  string                 `json:"applicant_name"`
	ApplicantType  string                 `json:"applicant_type"`
	Approver       *ApproverResponse      `json:"approver,omitempty"`
	LeaveType      string                 `json:"leave_type"`
	Reason         string                 `json:"reason"`
	Status         string                 `json:"status"`
	StartTime      string                 `json:"start_time"`
	EndTime        *string                `json:"end_time,omitempty"`
	DurationMs     int64                  `json:"duration_ms"`
	LeaderMaxLevel int                    `json:"leader_max_level"`
	Version        int64                  `json:"version"`
	History        []ApprovalInfoResponse `json:"history"`
}

func mapToResponse(l *Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:             l.ID(),
		ApplicantID:    l.Applicant().PersonID(),
		ApplicantName:  l.Applicant().PersonName(),
		ApplicantType:  string(l.Applicant().PersonType()),
		LeaveType:      string(l.LeaveType()),
		Reason:         l.Reason(),
		Status:         string(l.Status()),
		StartTime:      l.StartTime().Format(time.RFC3339),
		DurationMs:     l.Duration().Milliseconds(),
		LeaderMaxLevel: l.LeaderMaxLevel(),
		Version:        l.Version(),
		History: lo.Map(l.HistoryApprovalInfos(), func(info ApprovalInfo, _ int) ApprovalInfoResponse {
			return ApprovalInfoResponse{
				ID:        info.ID(),
				Approver:  mapApprover(info.Approver()),
				Decision:  string(info.Decision()),
				Message:   info.Message(),
				DecidedAt: info.DecidedAt().Format(time.RFC3339),
			}
		}),
	}
	if a, ok := l.Approver().Get(); ok {
		resp.Approver = lo.ToPtr(mapApprover(a))
	}
	if end, ok := l.EndTime().Get(); ok {
		resp.EndTime = lo.ToPtr(end.Format(time.RFC3339))
	}
	return resp
}

func mapToListResponse(leaves []*Leave) []LeaveResponse {
	return lo.Map(leaves, func(l *Leave, _ int) LeaveResponse { return mapToResponse(l) })
}

func mapApprover(a Approver) ApproverResponse {
	return ApproverResponse{PersonID: a.PersonID(), PersonName: a.PersonName(), Level: a.Level()}
}
