package transition_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.TenantKey) == "" {
		return fmt.Errorf("%w: tenantKey is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.AppointmentID) == "" {
		return fmt.Errorf("%w: appointmentId is required", ErrInvalidInput)
	}
	if !req.TargetStatus.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.TargetStatus)
	}
	if req.ExpectedStatus != nil && !req.ExpectedStatus.IsValid() {
		return fmt.Errorf("%w: unknown expected status %q", ErrInvalidInput, *req.ExpectedStatus)
	}
	if req.BoxID != nil && *req.BoxID < 1 {
		return fmt.Errorf("%w: boxId must be positive", ErrInvalidInput)
	}
	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellationReason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}
	return nil
}
