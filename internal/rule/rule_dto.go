package rule

type ConfigureRuleRequest struct {
	PersonType     string `json:"person_type" binding:"required"`
	LeaveType      string `json:"leave_type" binding:"required,oneof=ANNUAL SICK UNPAID PERSONAL"`
	LeaderMaxLevel int    `json:"leader_max_level" binding:"required,min=1"`
}

type RuleResponse struct {
	PersonType     string `json:"person_type"`
	LeaveType      string `json:"leave_type"`
	LeaderMaxLevel int    `json:"leader_max_level"`
}
