package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/schedule"
)

func TestUpdateRequestSelfEditable(t *testing.T) {
	position := PositionManager
	department := DepartmentAdministration
	salary := 9000.0
	rate := 0.5

	req := UpdateRequest{
		Position:        &position,
		Department:      &department,
		Salary:          &salary,
		CommissionRate:  &rate,
		Specializations: []string{"massage"},
		WorkSchedule: map[string]schedule.DaySchedule{
			"monday": {IsWorking: true},
		},
		WeekStartDate: "2026-08-31",
	}

	limited := req.SelfEditable()

	assert.Nil(t, limited.Position)
	assert.Nil(t, limited.Department)
	assert.Nil(t, limited.Salary)
	assert.Nil(t, limited.CommissionRate)

	assert.Equal(t, req.Specializations, limited.Specializations)
	assert.Equal(t, req.WorkSchedule, limited.WorkSchedule)
	assert.Equal(t, req.WeekStartDate, limited.WeekStartDate)
}
