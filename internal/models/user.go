package models

import (
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type Plan string

const (
	PlanFree      Plan = "free"
	PlanPro       Plan = "pro"
	PlanBusiness  Plan = "business"
	PlanUnlimited Plan = "unlimited"
)

// PaidPlans are the plans counted towards MRR.
var PaidPlans = []Plan{PlanPro, PlanBusiness}

// MonthlyPricePerPaidUser is the flat per-seat revenue constant.
const MonthlyPricePerPaidUser = 9

type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Password  string     `json:"-"`
	Name      string     `json:"name"`
	Role      Role       `gorm:"type:text;default:'user'" json:"role"`
	Plan      Plan       `gorm:"type:text;default:'free'" json:"plan"`
	TrialEnds *time.Time `json:"trialEnds"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin time.Time  `json:"lastLogin"`
}

// TrialDaysLeft mirrors the dashboard trial math: ceil((trialEnds-now)/24h).
// Returns nil when the user has no trial (admin, upgraded plans).
func (u *User) TrialDaysLeft(now time.Time) *int {
	if u.TrialEnds == nil {
		return nil
	}
	remaining := u.TrialEnds.Sub(now)
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) > 0 {
		days++
	}
	return &days
}

// TrialStatus is the trial block returned by login and /api/auth/me.
type TrialStatus struct {
	Active   bool `json:"active"`
	Expired  bool `json:"expired"`
	DaysLeft int  `json:"daysLeft"`
}

func (u *User) Trial(now time.Time) TrialStatus {
	daysLeft := u.TrialDaysLeft(now)
	if daysLeft == nil {
		return TrialStatus{Active: false, Expired: true, DaysLeft: 0}
	}
	status := TrialStatus{
		Active:  *daysLeft > 0,
		Expired: *daysLeft <= 0,
	}
	if *daysLeft > 0 {
		status.DaysLeft = *daysLeft
	}
	return status
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsPaid() bool {
	return u.Plan == PlanPro || u.Plan == PlanBusiness
}
