package employee

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/attendance"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/booking"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/schedule"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateRequest struct {
	UserID          string   `json:"userId"`
	Position        string   `json:"position"`
	Department      string   `json:"department"`
	HireDate        string   `json:"hireDate"`
	Salary          *float64 `json:"salary"`
	CommissionRate  float64  `json:"commissionRate"`
	Specializations []string `json:"specializations"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId is required",
		})
	}

	if !validator.IsInSlice(r.Position, Positions) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "invalid position",
		})
	}

	if !validator.IsInSlice(r.Department, Departments) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "invalid department",
		})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hireDate",
			Message: "hireDate is required in YYYY-MM-DD format",
		})
	}

	if r.Salary != nil && *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary cannot be negative",
		})
	}

	if r.CommissionRate < 0 || r.CommissionRate > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "commissionRate",
			Message: "commissionRate must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRequest is a partial update. Schedule edits ride along as day-name
// keys pinned by weekStartDate.
type UpdateRequest struct {
	Position        *string  `json:"position"`
	Department      *string  `json:"department"`
	Salary          *float64 `json:"salary"`
	CommissionRate  *float64 `json:"commissionRate"`
	Specializations []string `json:"specializations"`

	WorkSchedule  map[string]schedule.DaySchedule `json:"workSchedule"`
	WeekStartDate string                          `json:"weekStartDate"`
}

// SelfEditable returns a copy stripped down to the fields an employee may
// change on their own record. Pay and position stay with management.
func (r UpdateRequest) SelfEditable() UpdateRequest {
	return UpdateRequest{
		Specializations: r.Specializations,
		WorkSchedule:    r.WorkSchedule,
		WeekStartDate:   r.WeekStartDate,
	}
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Position != nil && !validator.IsInSlice(*r.Position, Positions) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "invalid position",
		})
	}

	if r.Department != nil && !validator.IsInSlice(*r.Department, Departments) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "invalid department",
		})
	}

	if r.Salary != nil && *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary cannot be negative",
		})
	}

	if r.CommissionRate != nil && (*r.CommissionRate < 0 || *r.CommissionRate > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "commissionRate",
			Message: "commissionRate must be between 0 and 100",
		})
	}

	if len(r.WorkSchedule) > 0 {
		weekReq := schedule.UpdateWeekRequest{
			WorkSchedule:  r.WorkSchedule,
			WeekStartDate: r.WeekStartDate,
		}
		if err := weekReq.Validate(); err != nil {
			var weekErrs validator.ValidationErrors
			if ve, ok := err.(validator.ValidationErrors); ok {
				weekErrs = ve
			}
			errs = append(errs, weekErrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	Page       int
	Limit      int
	Position   string
	Department string
	IsActive   *bool
	Search     string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	if f.Position != "" && !validator.IsInSlice(f.Position, Positions) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "invalid position",
		})
	}

	if f.Department != "" && !validator.IsInSlice(f.Department, Departments) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "invalid department",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AvailabilityRequest struct {
	IsAvailable      *bool             `json:"isAvailable"`
	UnavailableDates []UnavailableDate `json:"unavailableDates"`
}

func (r *AvailabilityRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.IsAvailable == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "isAvailable",
			Message: "isAvailable is required",
		})
	}

	for i, u := range r.UnavailableDates {
		if u.EndDate.Before(u.StartDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "unavailableDates[" + validator.Itoa(i) + "]",
				Message: "endDate must not be before startDate",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AvailableFilter selects conflict-free employees for a service time slot.
type AvailableFilter struct {
	ServiceID string
	StartTime time.Time
	EndTime   time.Time
}

func ParseAvailableFilter(serviceID, startTime, endTime string) (AvailableFilter, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(serviceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "serviceId",
			Message: "serviceId is required",
		})
	}

	start, startOK := validator.IsValidDateTime(startTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startTime",
			Message: "startTime must be an ISO8601 timestamp",
		})
	}

	end, endOK := validator.IsValidDateTime(endTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endTime",
			Message: "endTime must be an ISO8601 timestamp",
		})
	}

	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "endTime",
			Message: "endTime must be after startTime",
		})
	}

	if len(errs) > 0 {
		return AvailableFilter{}, errs
	}

	return AvailableFilter{ServiceID: serviceID, StartTime: start, EndTime: end}, nil
}

type DocumentUploadRequest struct {
	Type       string                `json:"type"`
	Name       string                `json:"name"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *DocumentUploadRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, DocumentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "invalid document type",
		})
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "document file is required",
		})
	} else {
		filename := r.FileHeader.Filename
		idx := strings.LastIndex(filename, ".")
		ext := ""
		if idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if !validator.IsInSlice(ext, []string{".pdf", ".jpg", ".jpeg", ".png"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "invalid file type: only pdf, jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "document size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID              string              `json:"id"`
	Code            string              `json:"employeeId"`
	FirstName       string              `json:"firstName"`
	LastName        string              `json:"lastName"`
	Email           string              `json:"email"`
	Phone           *string             `json:"phone,omitempty"`
	Position        string              `json:"position"`
	Department      string              `json:"department"`
	HireDate        time.Time           `json:"hireDate"`
	Salary          *float64            `json:"salary,omitempty"`
	CommissionRate  float64             `json:"commissionRate"`
	Specializations []string            `json:"specializations"`
	Availability    Availability        `json:"availability"`
	Performance     Performance         `json:"performance"`
	IsActive        bool                `json:"isActive"`
	WorkSchedule    schedule.WeeklyView `json:"workSchedule"`
	CreatedAt       time.Time           `json:"createdAt"`
}

func ToResponse(e *Employee) Response {
	return Response{
		ID:              e.ID,
		Code:            e.Code,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		Email:           e.Email,
		Phone:           e.Phone,
		Position:        e.Position,
		Department:      e.Department,
		HireDate:        e.HireDate,
		Salary:          e.Salary,
		CommissionRate:  e.CommissionRate,
		Specializations: e.Specializations,
		Availability:    e.Availability,
		Performance:     e.Performance,
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt,
	}
}

type StatsResponse struct {
	Total        int64            `json:"total"`
	Active       int64            `json:"active"`
	ByPosition   map[string]int64 `json:"byPosition"`
	ByDepartment map[string]int64 `json:"byDepartment"`
}

type RatingEntry struct {
	Rating      int       `json:"rating"`
	Comment     *string   `json:"comment,omitempty"`
	ClientName  string    `json:"clientName"`
	ServiceName string    `json:"serviceName"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type RatingsResponse struct {
	Average   float64       `json:"average"`
	Total     int           `json:"total"`
	Breakdown map[int]int   `json:"breakdown"`
	Recent    []RatingEntry `json:"recent"`
}

// PerformanceResponse pairs the rolled-up performance figures with the raw
// per-status breakdowns they were derived from.
type PerformanceResponse struct {
	Performance     Performance              `json:"performance"`
	BookingStats    []booking.ItemStatusStat `json:"bookingStats"`
	AttendanceStats []attendance.StatusStat  `json:"attendanceStats"`
}
