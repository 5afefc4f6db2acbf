package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID             int64
	CompanyID      int64
	AreaID         int64
	UserID         *int64
	EmployeeNumber string
	FirstName      string
	LastNames      string
	HireDate       time.Time
	DailySalary    decimal.Decimal
	ShiftID        *int64
	BiometricID    *string
	Position       *string
	ScheduleID     *int64
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time

	// Join
	CompanyName string
	AreaName    string
	UserEmail   *string
}

func (e Employee) FullName() string {
	return FullName(e.FirstName, e.LastNames)
}

func FullName(firstName, lastNames string) string {
	return firstName + " " + lastNames
}

// ActiveEmployee is what attendance needs to know about an employee.
type ActiveEmployee struct {
	ID             int64
	Active         bool
	CompanyID      int64
	CompanyName    string
	AreaID         int64
	AreaName       string
	FullName       string
	EmployeeNumber string
	ScheduleID     *int64
	AreaScheduleID *int64
}

// EffectiveScheduleID prefers the employee's own schedule over the area's.
func (a ActiveEmployee) EffectiveScheduleID() *int64 {
	if a.ScheduleID != nil {
		return a.ScheduleID
	}
	return a.AreaScheduleID
}
