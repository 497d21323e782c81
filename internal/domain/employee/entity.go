package employee

import "time"

// Positions
const (
	PositionMassageTherapist = "massage-therapist"
	PositionEsthetician      = "esthetician"
	PositionNailTechnician   = "nail-technician"
	PositionHairStylist      = "hair-stylist"
	PositionWellnessCoach    = "wellness-coach"
	PositionReceptionist     = "receptionist"
	PositionManager          = "manager"
	PositionSupervisor       = "supervisor"
)

// Departments
const (
	DepartmentSpaServices     = "spa-services"
	DepartmentWellness        = "wellness"
	DepartmentBeauty          = "beauty"
	DepartmentAdministration  = "administration"
	DepartmentCustomerService = "customer-service"
)

var Positions = []string{
	PositionMassageTherapist,
	PositionEsthetician,
	PositionNailTechnician,
	PositionHairStylist,
	PositionWellnessCoach,
	PositionReceptionist,
	PositionManager,
	PositionSupervisor,
}

var Departments = []string{
	DepartmentSpaServices,
	DepartmentWellness,
	DepartmentBeauty,
	DepartmentAdministration,
	DepartmentCustomerService,
}

// Document types
var DocumentTypes = []string{"contract", "id-copy", "certificate", "tax-form", "other"}

type UnavailableDate struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Reason    *string   `json:"reason,omitempty"`
	Type      *string   `json:"type,omitempty"`
}

type Availability struct {
	IsAvailable      bool              `json:"isAvailable"`
	UnavailableDates []UnavailableDate `json:"unavailableDates"`
}

type Performance struct {
	RatingAverage     float64 `json:"ratingAverage"`
	RatingCount       int     `json:"ratingCount"`
	TotalBookings     int     `json:"totalBookings"`
	CompletedBookings int     `json:"completedBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	Revenue           float64 `json:"revenue"`
}

type Document struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	UploadDate time.Time `json:"uploadDate"`
}

type Employee struct {
	ID                string
	UserID            string
	Code              string
	Position          string
	Department        string
	HireDate          time.Time
	Salary            *float64
	CommissionRate    float64
	Specializations   []string
	Availability      Availability
	Performance       Performance
	Documents         []Document
	IsActive          bool
	TerminationDate   *time.Time
	TerminationReason *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO / Join
	FirstName string
	LastName  string
	Email     string
	Phone     *string
}

// FullName joins the linked user's first and last name.
func (e *Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// CompletionRate is the percentage of bookings this employee completed.
func (e *Employee) CompletionRate() int {
	if e.Performance.TotalBookings == 0 {
		return 0
	}
	rate := float64(e.Performance.CompletedBookings) / float64(e.Performance.TotalBookings) * 100
	return int(rate + 0.5)
}

// UnavailableOn reports whether date falls inside a blocked-out period.
func (e *Employee) UnavailableOn(date time.Time) bool {
	for _, u := range e.Availability.UnavailableDates {
		if !date.Before(u.StartDate) && !date.After(u.EndDate) {
			return true
		}
	}
	return false
}
