package leave

import (
	"time"

	"gorm.io/datatypes"
)

const (
	EventStatusPending = "pending"
	EventStatusSent    = "sent"
	EventStatusFailed  = "failed"
)

// LeaveRow is the storage shape of a Leave. Approver columns are NULL
// once the request is closed.
type LeaveRow struct {
	ID             string     `gorm:"type:varchar(64);primaryKey"`
	ApplicantID    string     `gorm:"type:varchar(64);not null;index:idx_leaves_applicant"`
	ApplicantName  string     `gorm:"type:varchar(120);not null"`
	ApplicantType  string     `gorm:"type:varchar(20);not null"`
	ApproverID     *string    `gorm:"type:varchar(64);index:idx_leaves_approver"`
	ApproverName   *string    `gorm:"type:varchar(120)"`
	ApproverLevel  *int
	LeaveType      string     `gorm:"type:varchar(20);not null"`
	Reason         string     `gorm:"type:text"`
	Status         string     `gorm:"type:varchar(20);not null"`
	StartTime      time.Time  `gorm:"not null"`
	EndTime        *time.Time
	DurationMs     int64      `gorm:"not null"`
	LeaderMaxLevel int        `gorm:"not null"`
	Version        int64      `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	History []ApprovalInfoRow `gorm:"foreignKey:LeaveID;references:ID"`
}

func (LeaveRow) TableName() string {
	return "leaves"
}

// ApprovalInfoRow is one history entry with the approver denormalized.
// Rows are keyed by their position in the history, so the same decision
// may appear more than once.
type ApprovalInfoRow struct {
	LeaveID        string    `gorm:"type:varchar(64);primaryKey"`
	Seq            int       `gorm:"primaryKey;autoIncrement:false"`
	ApprovalInfoID string    `gorm:"type:varchar(64);not null;index:idx_leave_approval_infos_info"`
	ApproverID     string    `gorm:"type:varchar(64);not null"`
	ApproverName   string    `gorm:"type:varchar(120);not null"`
	ApproverLevel  int       `gorm:"not null"`
	Decision       string    `gorm:"type:varchar(10);not null"`
	Message        string    `gorm:"type:text"`
	DecidedAt      time.Time `gorm:"not null"`
}

func (ApprovalInfoRow) TableName() string {
	return "leave_approval_infos"
}

// LeaveEventRow is the durable event log entry. The delivery columns make
// the table double as the outbox read by the relay worker.
type LeaveEventRow struct {
	ID            string         `gorm:"type:varchar(64);primaryKey"`
	AggregateID   string         `gorm:"type:varchar(64);not null;index:idx_leave_events_aggregate"`
	EventType     string         `gorm:"type:varchar(20);not null"`
	Source        string         `gorm:"type:varchar(64);not null"`
	SchemaVersion int            `gorm:"not null"`
	Payload       datatypes.JSON `gorm:"not null"`
	OccurredAt    time.Time      `gorm:"not null"`
	Status        string         `gorm:"type:varchar(20);not null;index:idx_leave_events_status"`
	RetryCount    int            `gorm:"not null"`
	NextRetryAt   *time.Time
	ErrorMessage  *string `gorm:"type:varchar(500)"`
	ProcessedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (LeaveEventRow) TableName() string {
	return "leave_events"
}
