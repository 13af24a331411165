package transport

import (
	"encoding/json"
	"net/http"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

// StatusPath serves the miner status snapshot.
const StatusPath = "/v1/miner/status"

// RegisterStatus adds the status route to a gateway mux.
func RegisterStatus(mux *gwruntime.ServeMux, source StatusSource, logger *zap.Logger) error {
	return mux.HandlePath(http.MethodGet, StatusPath, func(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(source.Status()); err != nil {
			logger.Warn("status not written", zap.Error(err))
		}
	})
}
