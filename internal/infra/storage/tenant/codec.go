package tenant

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

func encodeState(state *domain.TenantState) ([]byte, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("%w: tenant=%s: %v", ErrEncode, state.TenantKey, err)
	}
	return payload, nil
}

func decodeState(tenantKey string, payload []byte, version int64) (*domain.TenantState, error) {
	state := &domain.TenantState{}
	if err := json.Unmarshal(payload, state); err != nil {
		return nil, fmt.Errorf("%w: decode tenant=%s: %v", ErrScanRow, tenantKey, err)
	}
	state.TenantKey = tenantKey
	state.Version = version
	normalize(state)
	return state, nil
}

// normalize заменяет nil коллекции пустыми, чтобы JSON ответы были массивами
func normalize(state *domain.TenantState) {
	if state.Customers == nil {
		state.Customers = []*domain.Customer{}
	}
	if state.Services == nil {
		state.Services = []*domain.ServiceItem{}
	}
	if state.Appointments == nil {
		state.Appointments = []*domain.Appointment{}
	}
}
