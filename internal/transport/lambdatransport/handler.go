package lambdatransport

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/awmpietro/algoviz/internal/app"
	"github.com/awmpietro/algoviz/internal/transport/solvedto"
)

type Handler struct {
	svc    app.SolveService
	logger *slog.Logger
}

func NewHandler(svc app.SolveService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{svc: svc, logger: logger}
}

// Handle serves the same routes as the HTTP transport behind an API Gateway
// HTTP API: GET / and POST /solve/{family}[/{variant}].
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method := strings.ToUpper(req.RequestContext.HTTP.Method)
	path := req.RawPath
	if path == "" {
		path = req.RequestContext.HTTP.Path
	}

	if method == http.MethodOptions {
		return resp(http.StatusNoContent, ""), nil
	}

	if path == "" || path == "/" {
		if method != http.MethodGet {
			return jsonResp(http.StatusMethodNotAllowed, solvedto.ErrorResponse{Error: "method not allowed"}), nil
		}
		return jsonResp(http.StatusOK, solvedto.Alive()), nil
	}

	family, variant, ok := parseSolvePath(path)
	if !ok {
		return jsonResp(http.StatusNotFound, solvedto.ErrorResponse{Error: "not found", Details: path}), nil
	}
	if method != http.MethodPost {
		return jsonResp(http.StatusMethodNotAllowed, solvedto.ErrorResponse{Error: "method not allowed"}), nil
	}

	body, err := readBody(req)
	if err != nil {
		return jsonResp(http.StatusBadRequest, solvedto.ErrorResponse{Error: "invalid body", Details: err.Error()}), nil
	}

	res, err := h.svc.Solve(ctx, family, variant, body)
	if err != nil {
		status, payload := solvedto.FromError(err)
		if status >= http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "solve failed",
				slog.String("family", family),
				slog.String("variant", variant),
				slog.String("request_id", req.RequestContext.RequestID),
				slog.String("error", err.Error()),
			)
		}
		return jsonResp(status, payload), nil
	}
	return jsonResp(http.StatusOK, res), nil
}

// parseSolvePath splits /solve/{family} or /solve/{family}/{variant}.
func parseSolvePath(path string) (family, variant string, ok bool) {
	rest, found := strings.CutPrefix(strings.TrimSuffix(path, "/"), "/solve/")
	if !found || rest == "" {
		return "", "", false
	}
	parts := strings.Split(rest, "/")
	switch len(parts) {
	case 1:
		return parts[0], "", true
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return "", "", false
		}
		return parts[0], parts[1], true
	default:
		return "", "", false
	}
}

func readBody(req events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if req.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(req.Body)
	}
	return []byte(req.Body), nil
}

func jsonResp(status int, body any) events.APIGatewayV2HTTPResponse {
	b, _ := json.Marshal(body)
	r := resp(status, string(b))
	r.Headers["content-type"] = "application/json"
	return r
}

func resp(status int, body string) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers: map[string]string{
			"access-control-allow-origin":  "*",
			"access-control-allow-methods": "GET, POST, OPTIONS",
			"access-control-allow-headers": "*",
		},
		Body: body,
	}
}
