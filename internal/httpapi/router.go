package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tripmates/userd/internal/domain"
	"github.com/tripmates/userd/internal/service"
	"github.com/tripmates/userd/internal/store"
	"github.com/tripmates/userd/pkg/httpx"
	"github.com/tripmates/userd/pkg/jwtx"
	"github.com/tripmates/userd/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	ProfileService *service.ProfileService
	AdminService   *service.AdminService
}

func NewRouter(
	verifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProfile()
	r.registerAdmin()
	r.registerSystem()
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints get the strict profile to slow brute forcing.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{ProfileService: r.ProfileService}

	secured := httpx.Chain(h,
		httpx.SessionMiddleware(r.verifier),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)

	r.Mux.Handle("PUT /v1/profile", secured)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{AdminService: r.AdminService}

	securedList := httpx.Chain(http.HandlerFunc(h.HandleListUsers),
		httpx.SessionMiddleware(r.verifier),
		httpx.RequireRole(domain.RoleAdmin),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)

	securedStatus := httpx.Chain(http.HandlerFunc(h.HandleUpdateStatus),
		httpx.SessionMiddleware(r.verifier),
		httpx.RequireRole(domain.RoleAdmin),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /v1/admin/users", securedList)
	r.Mux.Handle("PUT /v1/admin/users/{userId}/status", securedStatus)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
