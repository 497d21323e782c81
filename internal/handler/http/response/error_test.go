package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/attendance"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/booking"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/user"
)

func handleErr(t *testing.T, err error) (int, Response) {
	t.Helper()

	rec := httptest.NewRecorder()
	HandleError(rec, err)

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec.Code, body
}

func TestHandleError_AttendanceStateConflictsAreBadRequests(t *testing.T) {
	stateErrs := []error{
		attendance.ErrAlreadyCheckedIn,
		attendance.ErrAlreadyCheckedOut,
		attendance.ErrAbsentAfterCheckIn,
		attendance.ErrMarkedAbsent,
		attendance.ErrDuplicateDay,
		attendance.ErrNoCheckInRecord,
	}

	for _, err := range stateErrs {
		code, body := handleErr(t, err)
		assert.Equal(t, http.StatusBadRequest, code, "error %q", err)
		require.NotNil(t, body.Error)
		assert.Equal(t, "BAD_REQUEST", body.Error.Code)
		assert.Equal(t, err.Error(), body.Error.Message)
	}
}

func TestHandleError_ResourceConflictsStayConflicts(t *testing.T) {
	code, _ := handleErr(t, user.ErrUserEmailExists)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = handleErr(t, booking.ErrSlotConflict)
	assert.Equal(t, http.StatusConflict, code)
}

func TestHandleError_UnknownErrorIsInternal(t *testing.T) {
	code, body := handleErr(t, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Error.Code)
}
