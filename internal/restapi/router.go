package restapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goodmem-ai/goodmem/internal/bootstrap"
	"github.com/goodmem-ai/goodmem/internal/db"
	"github.com/goodmem-ai/goodmem/internal/grpcserver"
	"github.com/goodmem-ai/goodmem/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RouterConfig assembles everything the REST adapter needs: the same
// service-layer instances the gRPC adapter wraps, plus the health checker
// and the shared Resolver used to authenticate x-api-key headers.
type RouterConfig struct {
	Users     *service.Users
	ApiKeys   *service.ApiKeys
	Embedders *service.Embedders
	Spaces    *service.Spaces
	Memories  *service.Memories
	Bootstrap *bootstrap.Service
	Resolver  *grpcserver.Resolver
	DB        *gorm.DB
	Log       *zap.Logger
}

// NewRouter builds the chi router implementing the REST adapter of §6: a
// 1:1 mapping onto the service layer, authenticated uniformly by
// x-api-key except for /healthz and the bootstrap endpoint.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(cfg.Log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context(), cfg.DB); err != nil {
			errJSON(w, http.StatusServiceUnavailable, "database unreachable", "unavailable")
			return
		}
		Ok(w, map[string]string{"status": "ok"})
	})

	sys := &systemHandlers{bootstrap: cfg.Bootstrap}
	r.Post("/v1/system/init", sys.initialize)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware(cfg.Resolver))

		users := &userHandlers{users: cfg.Users}
		r.Get("/v1/users", users.getUser)
		r.Get("/v1/users/{id}", users.getUser)

		apiKeys := &apiKeyHandlers{apiKeys: cfg.ApiKeys}
		r.Post("/v1/apikeys", apiKeys.create)
		r.Get("/v1/apikeys", apiKeys.list)
		r.Patch("/v1/apikeys/{id}", apiKeys.update)
		r.Delete("/v1/apikeys/{id}", apiKeys.delete)

		embedders := &embedderHandlers{embedders: cfg.Embedders}
		r.Post("/v1/embedders", embedders.create)
		r.Get("/v1/embedders", embedders.list)
		r.Get("/v1/embedders/{id}", embedders.get)
		r.Patch("/v1/embedders/{id}", embedders.update)
		r.Delete("/v1/embedders/{id}", embedders.delete)

		spaces := &spaceHandlers{spaces: cfg.Spaces}
		r.Post("/v1/spaces", spaces.create)
		r.Get("/v1/spaces", spaces.list)
		r.Get("/v1/spaces/{id}", spaces.get)
		r.Patch("/v1/spaces/{id}", spaces.update)
		r.Delete("/v1/spaces/{id}", spaces.delete)

		memories := &memoryHandlers{memories: cfg.Memories}
		r.Post("/v1/memories", memories.create)
		r.Post("/v1/memories/search", memories.search)
		r.Get("/v1/memories", memories.list)
		r.Get("/v1/memories/{id}", memories.get)
		r.Delete("/v1/memories/{id}", memories.delete)
	})

	return r
}
