package middleware

import (
	"context"
	"net/http"

	"github.com/paptec/pregador/internal/api/models"
)

// DeviceIDHeader carries the installation identity on every client request.
const DeviceIDHeader = "X-Device-Id"

// deviceIDKey is the context key for the device identity.
type deviceIDKey struct{}

// deviceIDLength matches the identity format issued by the device service.
const deviceIDLength = 6

// DeviceID creates middleware that requires a well-formed device identity
// header and adds it to the request context. The identity is 6 characters,
// uppercase letters and digits.
func DeviceID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			deviceID := r.Header.Get(DeviceIDHeader)
			if deviceID == "" {
				writeDeviceIDError(w, r, "missing "+DeviceIDHeader+" header")
				return
			}
			if !validDeviceID(deviceID) {
				writeDeviceIDError(w, r, "malformed device identity")
				return
			}

			// Echo the identity so clients can confirm what the server saw.
			w.Header().Set(DeviceIDHeader, deviceID)

			ctx := context.WithValue(r.Context(), deviceIDKey{}, deviceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetDeviceID retrieves the device identity from the context.
// Returns an empty string if the request carried none.
func GetDeviceID(ctx context.Context) string {
	if id, ok := ctx.Value(deviceIDKey{}).(string); ok {
		return id
	}
	return ""
}

func validDeviceID(id string) bool {
	if len(id) != deviceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// writeDeviceIDError writes a 400 response.
// This is implemented directly here to avoid import cycle with response package.
func writeDeviceIDError(w http.ResponseWriter, r *http.Request, detail string) {
	traceID := GetRequestID(r.Context())
	problem := models.NewBadRequest(traceID, detail, nil)
	problem.Instance = r.URL.Path
	problem.Write(w)
}
