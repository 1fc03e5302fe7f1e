package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
)

// OperatorIDHeader заголовок с идентификатором оператора студии
const OperatorIDHeader = "X-Operator-ID"

const (
	maxOperatorIDLength = 128

	msgMissingOperator = "отсутствует идентификатор оператора"
	msgInvalidOperator = "некорректный идентификатор оператора"
)

type contextKey string

const operatorIDKey contextKey = "operator_id"

// Auth проверяет заголовок X-Operator-ID и кладет оператора в контекст
// Полноценная аутентификация выполняется на шлюзе
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operatorID := strings.TrimSpace(r.Header.Get(OperatorIDHeader))
		if operatorID == "" {
			handlers.RespondUnauthorized(w, msgMissingOperator)
			return
		}
		if len(operatorID) > maxOperatorIDLength || strings.ContainsAny(operatorID, " \t\r\n") {
			handlers.RespondUnauthorized(w, msgInvalidOperator)
			return
		}

		ctx := context.WithValue(r.Context(), operatorIDKey, operatorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetOperatorID возвращает идентификатор оператора из контекста
func GetOperatorID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(operatorIDKey).(string)
	return id, ok && id != ""
}
