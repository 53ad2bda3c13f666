package rule

import "time"

// ApprovalRule caps how far up the hierarchy a leave request escalates
// for a given applicant type and leave type.
type ApprovalRule struct {
	ID             string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	PersonType     string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_approval_rules_types" json:"person_type"`
	LeaveType      string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_approval_rules_types" json:"leave_type"`
	LeaderMaxLevel int       `gorm:"not null" json:"leader_max_level"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (ApprovalRule) TableName() string {
	return "approval_rules"
}
