package appointment

import "github.com/Wisofer/GlowNic-sub000/internal/httperr"

var (
	ErrTenantNotFound        = httperr.ErrBusiness("tenant_not_found")
	ErrTenantInactive        = httperr.ErrBusiness("tenant_inactive")
	ErrServiceNotFound       = httperr.ErrBusiness("service_not_found")
	ErrSlotUnavailable       = httperr.ErrBusiness("slot_unavailable")
	ErrPastDateTime          = httperr.ErrBusiness("past_date_time")
	ErrAppointmentNotFound   = httperr.ErrBusiness("appointment_not_found")
	ErrInvalidTransition     = httperr.ErrBusiness("invalid_transition")
	ErrEmployeeNotAuthorized = httperr.ErrBusiness("employee_not_authorized")

	ErrInvalidStatus       = httperr.ErrBusiness("invalid_status")
	ErrInvalidDateOrTime   = httperr.ErrBusiness("invalid_date_or_time")
	ErrInvalidWorkingHours = httperr.ErrBusiness("invalid_working_hours")
	ErrInvalidBlockedTime  = httperr.ErrBusiness("invalid_blocked_time")
	ErrBlockedTimeNotFound = httperr.ErrBusiness("blocked_time_not_found")
)
