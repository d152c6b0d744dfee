// Package server wires the stores, handlers, and background services into an
// http.Handler.
package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/savrlabs/savr/internal/backup"
	"github.com/savrlabs/savr/internal/config"
	"github.com/savrlabs/savr/internal/handler"
	"github.com/savrlabs/savr/internal/middleware"
	"github.com/savrlabs/savr/internal/push"
	"github.com/savrlabs/savr/internal/store"
	ws "github.com/savrlabs/savr/internal/websocket"
)

type Server struct {
	db            *sql.DB
	hub           *ws.Hub
	profileH      *handler.ProfileHandler
	inventoryH    *handler.InventoryHandler
	groceryH      *handler.GroceryHandler
	mealsH        *handler.MealsHandler
	planH         *handler.PlanHandler
	catalogH      *handler.CatalogHandler
	pushH         *handler.PushHandler
	backupH       *handler.BackupHandler
	pushStore     *store.PushStore
	rateLimiter   *middleware.RateLimiter
	backupManager *backup.Manager
	pushService   *push.Service
	pushScheduler *push.Scheduler
	logger        *slog.Logger
}

func New(db *sql.DB, cfg *config.Config, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	profileStore := store.NewProfileStore(db)
	catalogStore := store.NewCatalogStore(db)
	pushStore := store.NewPushStore(db)
	backupStore := store.NewBackupStore(db)

	backupCfg := backup.Config{
		S3: backup.S3Config{
			Endpoint:  cfg.Backup.S3Endpoint,
			Bucket:    cfg.Backup.S3Bucket,
			Region:    cfg.Backup.S3Region,
			AccessKey: cfg.Backup.S3AccessKey,
			SecretKey: cfg.Backup.S3SecretKey,
		},
		DBPath:        cfg.Database.Path,
		Passphrase:    cfg.Backup.Passphrase,
		IntervalHours: cfg.Backup.IntervalHours,
		RetentionDays: cfg.Backup.RetentionDays,
	}
	backupMgr := backup.NewManager(backupCfg, db, backupStore, func(s backup.Status) {
		hub.Broadcast(ws.Message{
			Type:   "backup_status",
			Entity: "backup",
			Action: string(s.State),
			Extra: map[string]any{
				"in_progress": s.InProgress,
				"error":       s.Error,
			},
		})
	}, logger.With("component", "backup"))

	var pushSvc *push.Service
	var pushSched *push.Scheduler
	var pushH *handler.PushHandler
	if cfg.PushEnabled() {
		pushSvc = push.NewService(cfg.Push.VAPIDPublicKey, cfg.Push.VAPIDPrivateKey)
		pushSched = push.NewScheduler(pushSvc, pushStore, profileStore, logger.With("component", "push"))
		pushH = handler.NewPushHandler(pushStore, pushSvc, logger.With("component", "push_handler"))
	}

	return &Server{
		db:            db,
		hub:           hub,
		profileH:      handler.NewProfileHandler(profileStore, logger.With("component", "profile")),
		inventoryH:    handler.NewInventoryHandler(profileStore, hub, logger.With("component", "inventory")),
		groceryH:      handler.NewGroceryHandler(profileStore, hub, logger.With("component", "grocery")),
		mealsH:        handler.NewMealsHandler(profileStore, catalogStore, hub, logger.With("component", "meals")),
		planH:         handler.NewPlanHandler(profileStore, hub, logger.With("component", "plan")),
		catalogH:      handler.NewCatalogHandler(catalogStore, logger.With("component", "catalog")),
		pushH:         pushH,
		backupH:       handler.NewBackupHandler(backupMgr, backupStore, logger.With("component", "backup_handler")),
		pushStore:     pushStore,
		rateLimiter:   middleware.NewRateLimiter(),
		backupManager: backupMgr,
		pushService:   pushSvc,
		pushScheduler: pushSched,
		logger:        logger,
	}
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

// BackupManager returns the backup manager.
func (s *Server) BackupManager() *backup.Manager {
	return s.backupManager
}

// PushScheduler returns the push notification scheduler. Nil when VAPID keys
// are not configured.
func (s *Server) PushScheduler() *push.Scheduler {
	return s.pushScheduler
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)

	mux.HandleFunc("GET /api/profile", s.profileH.Get)

	mux.HandleFunc("GET /api/inventory/items", s.inventoryH.List)
	mux.HandleFunc("GET /api/inventory/groups", s.inventoryH.Groups)
	mux.HandleFunc("POST /api/inventory/items", s.rateLimitedHandler(s.inventoryH.Create))
	mux.HandleFunc("DELETE /api/inventory/items/{index}", s.inventoryH.Delete)

	mux.HandleFunc("GET /api/grocery/items", s.groceryH.List)
	mux.HandleFunc("GET /api/grocery/groups", s.groceryH.Groups)
	mux.HandleFunc("POST /api/grocery/items", s.rateLimitedHandler(s.groceryH.Create))
	mux.HandleFunc("DELETE /api/grocery/items/{index}", s.groceryH.Delete)
	mux.HandleFunc("POST /api/grocery/items/{index}/check", s.groceryH.ToggleChecked)

	mux.HandleFunc("POST /api/meals/generate", s.rateLimitedHandler(s.mealsH.Generate))
	mux.HandleFunc("GET /api/meals", s.mealsH.List)

	mux.HandleFunc("GET /api/plan", s.planH.Get)
	mux.HandleFunc("PUT /api/plan/days/{day}", s.planH.SetDay)

	mux.HandleFunc("GET /api/catalog/recipes", s.catalogH.ListRecipes)
	mux.HandleFunc("GET /api/catalog/foods", s.catalogH.ListFoods)

	if s.pushH != nil {
		mux.HandleFunc("POST /api/push/subscribe", s.pushH.Subscribe)
		mux.HandleFunc("DELETE /api/push/subscriptions/{id}", s.pushH.Unsubscribe)
		mux.HandleFunc("GET /api/push/subscriptions", s.pushH.ListSubscriptions)
		mux.HandleFunc("GET /api/push/vapid-key", s.pushH.GetVAPIDKey)
		mux.HandleFunc("POST /api/push/test", s.pushH.TestNotification)
	}

	mux.HandleFunc("POST /api/backups", s.rateLimitedHandler(s.backupH.Run))
	mux.HandleFunc("GET /api/backups", s.backupH.List)
	mux.HandleFunc("GET /api/backups/status", s.backupH.Status)
	mux.HandleFunc("GET /api/backups/{id}/download", s.backupH.Download)

	// WebSocket
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 60, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}
