package feedback

import "time"

// Feedback is one client rating for a service performed by an employee on a
// booking. At most one row exists per (booking, service, employee).
type Feedback struct {
	ID          string
	BookingID   string
	ServiceID   string
	EmployeeID  string
	ClientID    string
	Rating      int
	Comment     *string
	SubmittedAt time.Time

	// DTO / Join
	ClientFirstName string
	ClientLastName  string
	ServiceName     string
}

// ClientName joins the reviewer's first and last name.
func (f *Feedback) ClientName() string {
	if f.ClientLastName == "" {
		return f.ClientFirstName
	}
	return f.ClientFirstName + " " + f.ClientLastName
}
