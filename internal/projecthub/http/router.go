package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/service"
	"github.com/aussiebroadwan/projecthub/internal/projecthub/store"
	"github.com/aussiebroadwan/projecthub/pkg/cryptox"
	"github.com/aussiebroadwan/projecthub/pkg/httpx"
	"github.com/aussiebroadwan/projecthub/pkg/jwtx"
	"github.com/aussiebroadwan/projecthub/pkg/mailx"
	"github.com/aussiebroadwan/projecthub/pkg/slogx"

	_ "github.com/aussiebroadwan/projecthub/api/projecthub" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store
	mail  mailx.Sender

	AuthService       *service.AuthService
	ProjectService    *service.ProjectService
	TicketService     *service.TicketService
	InvitationService *service.InvitationService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	mail mailx.Sender,
	corsOrigins []string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		mail:         mail,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger, redactTokenPath),
		httpx.CORS(corsOrigins),
	}

	return r
}

// redactTokenPath hides invitation tokens carried in the URL.
func redactTokenPath(path string) string {
	for _, prefix := range []string{"/v1/invitations/accept/", "/v1/invitations/decline/"} {
		if token, ok := strings.CutPrefix(path, prefix); ok {
			return prefix + cryptox.RedactToken(token)
		}
	}
	return path
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProjects()
	r.registerTickets()
	r.registerInvitations()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Project Hub API
//	@version		0.1.0
//	@description	Projects, tickets and team invitations. Invitations are sent by email and accepted with a single use token.
//	@description
//	@description				Bearer tokens are HS256 JWTs issued by /v1/auth/login and /v1/auth/register.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/projecthub
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured authenticates the caller, then rate limits per user.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints - strict rate limit by IP to slow brute force
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

	r.Mux.Handle("GET /v1/auth/me", r.secured(h.HandleMe, httpx.LenientLimit))
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{ProjectService: r.ProjectService}

	r.Mux.Handle("GET /v1/projects", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/projects", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/projects/{id}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/projects/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/projects/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerTickets() {
	h := &TicketsHandler{TicketService: r.TicketService}

	r.Mux.Handle("POST /v1/tickets", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/tickets/all", r.secured(h.HandleListMine, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/tickets/project/{projectId}", r.secured(h.HandleListByProject, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/tickets/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/tickets/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{
		InvitationService: r.InvitationService,
		AuthService:       r.AuthService,
	}

	// Endpoints that send mail - strict, each call can reach an inbox
	r.Mux.Handle("POST /v1/invitations/send", r.secured(h.HandleSend, httpx.StrictLimit))
	r.Mux.Handle("POST /v1/invitations/resend", r.secured(h.HandleResend, httpx.StrictLimit))
	r.Mux.Handle("POST /v1/invitations/test-email", r.secured(h.HandleTestEmail, httpx.StrictLimit))

	// Token endpoints - moderate, guessing tokens is not a viable attack
	r.Mux.Handle("POST /v1/invitations/accept/{token}", r.secured(h.HandleAccept, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/invitations/decline/{token}", r.secured(h.HandleDecline, httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/invitations/pending", r.secured(h.HandlePending, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/invitations/project/{projectId}", r.secured(h.HandleProject, httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/invitations/cancel", r.secured(h.HandleCancel, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.mail),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
