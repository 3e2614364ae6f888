package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
	"github.com/docfold/docfold/pkg/utils/errutil"
	"github.com/docfold/docfold/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type errorBody struct {
	Detail string `json:"detail"`
}

func respondJSON(ctx context.Context, w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.From(ctx).Error("fail to write response", slog.Any("error", err))
	}
}

// respondError maps the error taxonomy onto HTTP statuses. Remote API
// errors pass the upstream status and body through verbatim.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	var remoteErr *model.RemoteAPIError
	if errors.As(err, &remoteErr) {
		respondJSON(ctx, w, remoteErr.StatusCode, errorBody{Detail: remoteErr.Body})
		return
	}

	switch {
	case errors.Is(err, types.ErrNotFound):
		respondJSON(ctx, w, http.StatusNotFound, errorBody{Detail: err.Error()})

	case errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrValidationFailed),
		errors.Is(err, types.ErrSyncNotConfigured),
		errors.Is(err, types.ErrInvalidQuery):
		respondJSON(ctx, w, http.StatusBadRequest, errorBody{Detail: err.Error()})

	default:
		errutil.HandleError(ctx, "unexpected error in request handling", err)
		respondJSON(ctx, w, http.StatusInternalServerError, errorBody{Detail: "internal server error"})
	}
}

// decodeBody parses a JSON request body. Malformed input is a boundary
// validation failure.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "malformed request body")
	}
	return nil
}
