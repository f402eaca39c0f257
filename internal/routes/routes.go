package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/CondoClubServices/area-scheduler/internal/audit"
	"github.com/CondoClubServices/area-scheduler/internal/config"
	"github.com/CondoClubServices/area-scheduler/internal/handlers"
	"github.com/CondoClubServices/area-scheduler/internal/identity"
	infraRepo "github.com/CondoClubServices/area-scheduler/internal/infra/repository"
	"github.com/CondoClubServices/area-scheduler/internal/middleware"
	"github.com/CondoClubServices/area-scheduler/internal/storage"
	ucReservation "github.com/CondoClubServices/area-scheduler/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, rdb *redis.Client) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	resolver := identity.NewResolver(db, cfg)

	var photos *storage.PhotoStore
	if cfg.S3AccessKey != "" {
		photos = storage.NewPhotoStore(cfg)
	}

	// ======================================================
	// 🧠 USE CASES — RESERVAS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
		cfg.AdminPermission,
	)

	updateReservationUC := ucReservation.NewUpdateReservation(
		reservationRepo,
		auditDispatcher,
		cfg.AdminPermission,
	)

	deleteReservationUC := ucReservation.NewDeleteReservation(
		reservationRepo,
		auditDispatcher,
		cfg.AdminPermission,
	)

	getReservationUC := ucReservation.NewGetReservation(reservationRepo)
	listReservationsUC := ucReservation.NewListReservations(reservationRepo)
	listUserReservationsUC := ucReservation.NewListUserReservations(reservationRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(resolver)
	userHandler := handlers.NewUserHandler(db, cfg, auditDispatcher)
	areaHandler := handlers.NewAreaHandler(db, auditDispatcher, photos)

	reservationHandler := handlers.NewReservationHandler(
		cfg,
		createReservationUC,
		updateReservationUC,
		deleteReservationUC,
		getReservationUC,
		listReservationsUC,
		listUserReservationsUC,
	)

	authRequired := middleware.AuthMiddleware(resolver)
	adminOnly := middleware.RequirePermission(cfg.AdminPermission)

	// ======================================================
	// 🔐 AUTH
	// ======================================================
	r.POST("/token",
		middleware.RateLimit(rdb, "rl:token", cfg.RateLimitMax, cfg.RateLimitTTL),
		authHandler.Token,
	)
	r.POST("/refresh_token", authRequired, authHandler.RefreshToken)
	r.GET("/users/permissions", authRequired, authHandler.Permissions)

	// ======================================================
	// 👤 USUÁRIOS
	// ======================================================
	r.POST("/usuarios", userHandler.Create)
	r.GET("/usuarios", authRequired, adminOnly, userHandler.List)
	r.GET("/usuarios/:id", authRequired, userHandler.Get)
	r.PUT("/usuarios/:id", authRequired, userHandler.Update)
	r.DELETE("/usuarios/:id", authRequired, userHandler.Delete)
	r.PUT("/usuario/senha", authRequired, userHandler.UpdatePassword)
	r.GET("/usuario/reservas", authRequired, reservationHandler.ListMine)

	// ======================================================
	// 🏟️ ÁREAS
	// ======================================================
	r.GET("/areas", areaHandler.List)
	r.GET("/areas/nome/:nome", areaHandler.GetByName)
	r.GET("/areas/:id", authRequired, adminOnly, areaHandler.Get)
	r.POST("/areas", authRequired, adminOnly, areaHandler.Create)
	r.PUT("/areas/:id", authRequired, adminOnly, areaHandler.Update)
	r.DELETE("/areas/:id", authRequired, adminOnly, areaHandler.Delete)
	r.POST("/areas/:id/foto", authRequired, adminOnly, areaHandler.UploadPhoto)

	// ======================================================
	// 📅 RESERVAS
	// ======================================================
	r.POST("/reservas", authRequired, reservationHandler.Create)
	r.GET("/reservas", authRequired, reservationHandler.List)
	r.GET("/reservas/:id", authRequired, reservationHandler.Get)
	r.PUT("/reservas/:id", authRequired, reservationHandler.Update)
	r.DELETE("/reservas/:id", authRequired, reservationHandler.Delete)
}
