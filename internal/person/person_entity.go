package person

import (
	"time"
)

type PersonType string

const (
	PersonTypeInternal PersonType = "INTERNAL"
	PersonTypeExternal PersonType = "EXTERNAL"
)

func (t PersonType) IsValid() bool {
	return t == PersonTypeInternal || t == PersonTypeExternal
}

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Person is an entry of the organisation directory. LeaderID points one
// level up the reporting hierarchy; RoleLevel grows towards the top.
type Person struct {
	ID         string     `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name       string     `gorm:"type:varchar(120);not null" json:"name"`
	PersonType PersonType `gorm:"type:varchar(20);not null" json:"person_type"`
	RoleLevel  int        `gorm:"not null" json:"role_level"`
	LeaderID   *string    `gorm:"type:varchar(64);index:idx_persons_leader" json:"leader_id,omitempty"`
	Status     string     `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Person) TableName() string {
	return "persons"
}

func (p Person) IsActive() bool {
	return p.Status == StatusActive
}
