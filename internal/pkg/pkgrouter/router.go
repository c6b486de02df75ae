package pkgrouter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"

	"github.com/king-open/SkyFinder/internal/pkg/pkgerror"
	"github.com/king-open/SkyFinder/internal/pkg/pkguid"
)

const HeaderRequestID = "X-Request-ID"

// Handler is an endpoint returning a JSON-encodable body or an error.
type Handler func(ctx context.Context, r *http.Request) (any, error)

type Router struct {
	mux  chi.Router
	uuid pkguid.StringID
}

type ctxKey struct{}

func NewRouter(uuid pkguid.StringID) *Router {
	r := &Router{mux: chi.NewRouter(), uuid: uuid}
	r.mux.Use(r.requestID)
	r.mux.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, pkgerror.NewBusiness("route not found", pkgerror.CodeNotFound))
	})
	r.mux.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: errorDetail{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"}})
	})
	return r
}

// RateLimit limits every route to requests per minute per client IP. Zero disables it.
func (r *Router) RateLimit(requests int) {
	if requests <= 0 {
		return
	}
	r.mux.Use(httprate.Limit(requests, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
}

func (r *Router) GET(path string, h Handler)    { r.mux.Get(path, r.wrap(h)) }
func (r *Router) POST(path string, h Handler)   { r.mux.Post(path, r.wrap(h)) }
func (r *Router) DELETE(path string, h Handler) { r.mux.Delete(path, r.wrap(h)) }

// Raw mounts a plain http.Handler, e.g. the metrics exporter.
func (r *Router) Raw(path string, h http.Handler) { r.mux.Handle(path, h) }

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Param returns a path parameter such as {id}.
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// RequestID returns the id attached to the request context.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (r *Router) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := req.Header.Get(HeaderRequestID)
		if id == "" {
			id = r.uuid.Generate()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, req.WithContext(context.WithValue(req.Context(), ctxKey{}, id)))
	})
}

func (r *Router) wrap(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		resp, err := h(req.Context(), req)
		if err != nil {
			writeError(w, req, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	be, ok := pkgerror.As(err)
	if !ok {
		slog.ErrorContext(r.Context(), "unhandled error", "path", r.URL.Path, "request_id", RequestID(r.Context()), "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: errorDetail{Code: pkgerror.CodeInternal.String(), Message: "internal server error"}})
		return
	}

	status := http.StatusInternalServerError
	switch be.Code() {
	case pkgerror.CodeInvalidInput:
		status = http.StatusBadRequest
	case pkgerror.CodeNotFound:
		status = http.StatusNotFound
	case pkgerror.CodeConflict:
		status = http.StatusConflict
	}
	writeJSON(w, status, errorBody{Error: errorDetail{Code: be.Code().String(), Message: be.Error()}})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
