package middleware

import (
	"context"
	"net/http"

	"github.com/paptec/pregador/internal/api/models"
	"github.com/paptec/pregador/internal/entitlement"
)

// EntitlementStates is the slice of the entitlement service the gate needs.
type EntitlementStates interface {
	GetState(ctx context.Context, deviceID string) (entitlement.State, error)
}

// RequireEntitlement creates middleware that blocks devices without an
// active trial or subscription. The state is read fresh on every request so
// an expiry between ticks still blocks the call. Must run after DeviceID.
func RequireEntitlement(states EntitlementStates) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			deviceID := GetDeviceID(r.Context())
			if deviceID == "" {
				writeDeviceIDError(w, r, "missing "+DeviceIDHeader+" header")
				return
			}

			state, err := states.GetState(r.Context(), deviceID)
			if err != nil {
				writeEntitlementError(w, r)
				return
			}
			if !state.Allowed() {
				traceID := GetRequestID(r.Context())
				problem := models.NewPaymentRequired(traceID, "trial or subscription expired")
				problem.Instance = r.URL.Path
				problem.Write(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// writeEntitlementError writes a 500 response.
// This is implemented directly here to avoid import cycle with response package.
func writeEntitlementError(w http.ResponseWriter, r *http.Request) {
	traceID := GetRequestID(r.Context())
	problem := models.NewInternalError(traceID, "entitlement lookup failed")
	problem.Instance = r.URL.Path
	problem.Write(w)
}
