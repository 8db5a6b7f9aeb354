package testutil

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	"github.com/MindOfAhmed/DigitalSociety/pkg/requestcontext"
)

// AsCitizen attaches a citizen principal to the request, as RequireAuth would.
func AsCitizen(req *http.Request, nationalID string) *http.Request {
	ctx := requestcontext.WithPrincipal(req.Context(), id.NationalID(nationalID), requestcontext.RoleCitizen)
	return req.WithContext(ctx)
}

// AsInspector attaches an inspector principal to the request.
func AsInspector(req *http.Request, nationalID string) *http.Request {
	ctx := requestcontext.WithPrincipal(req.Context(), id.NationalID(nationalID), requestcontext.RoleInspector)
	return req.WithContext(ctx)
}

// WithChiParam sets a chi URL parameter so handlers can be called directly.
func WithChiParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(req.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
