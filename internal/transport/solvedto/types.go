package solvedto

import (
	"errors"
	"net/http"

	"github.com/awmpietro/algoviz/internal/app"
	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/strategy"
)

const ServiceName = "Algorithm Visualizer API"

type Liveness struct {
	Message string `json:"message"`
}

func Alive() Liveness { return Liveness{Message: ServiceName} }

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// FromError maps a service error onto the status and body both transports
// send back.
func FromError(err error) (int, ErrorResponse) {
	var (
		verr *model.ValidationError
		ferr *strategy.UnknownFamilyError
		vaer *strategy.UnknownVariantError
	)
	switch {
	case errors.As(err, &ferr):
		return http.StatusNotFound, ErrorResponse{Error: "unknown algorithm", Details: ferr.Error()}
	case errors.As(err, &vaer):
		return http.StatusBadRequest, ErrorResponse{Error: "unknown algorithm type", Details: vaer.Error()}
	case errors.Is(err, app.ErrInvalidJSON):
		return http.StatusBadRequest, ErrorResponse{Error: "invalid json", Details: err.Error()}
	case errors.As(err, &verr):
		if len(verr.Fields) == 0 {
			return http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: verr.Error()}
		}
		return http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: verr.Fields}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "solve failed", Details: err.Error()}
	}
}
