package attendance

import "context"

type Service interface {
	// CheckIn clocks in the authenticated employee for today (UTC).
	CheckIn(ctx context.Context) (*CheckInResponse, error)

	// CheckOut clocks out the authenticated employee and computes hours.
	CheckOut(ctx context.Context) (*CheckOutResponse, error)

	// MarkAbsent marks today absent for the authenticated employee.
	MarkAbsent(ctx context.Context, req MarkAbsentRequest) (*MarkAbsentResponse, error)

	// GetMyAttendance lists the authenticated employee's records.
	GetMyAttendance(ctx context.Context, filter ListFilter) ([]Record, error)
}
