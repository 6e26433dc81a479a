package v1

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"talent-screen/internal/config"
	"talent-screen/internal/database"
	"talent-screen/internal/delivery/http/handler"
	"talent-screen/internal/delivery/http/middleware"
	"talent-screen/internal/infrastructure/cache"
	"talent-screen/internal/infrastructure/extract"
	"talent-screen/internal/infrastructure/storage"
	"talent-screen/internal/repository"
	"talent-screen/internal/usecase"
	ucauth "talent-screen/internal/usecase/auth"
	"talent-screen/internal/ws"
)

type Deps struct {
	Cfg     config.Config
	DB      database.DB
	Cache   *cache.Redis
	Storage *storage.Client
	Hub     *ws.Hub
	Logger  *log.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	userRepo := repository.NewPostgresUserRepository(d.DB)
	sessionRepo := repository.NewPostgresSessionRepository(d.DB)
	jobRepo := repository.NewPostgresJobRepository(d.DB)
	resumeRepo := repository.NewPostgresResumeRepository(d.DB)
	screeningRepo := repository.NewPostgresScreeningRepository(d.DB)

	authSvc := ucauth.NewService(userRepo, sessionRepo, d.Cfg.Auth.SessionTTL)
	authMw := middleware.NewAuthMiddleware(authSvc)

	// A missing storage config leaves uploads disabled rather than failing
	// boot; the upload route answers 503.
	var files usecase.FileStore
	if d.Storage != nil {
		files = d.Storage
	}

	jobUC := usecase.NewJobUsecase(jobRepo)
	resumeUC := usecase.NewResumeUsecase(
		resumeRepo, jobRepo,
		files, extract.New(), ws.NewNotifier(d.Hub), d.Cache, d.Logger,
	)
	screeningUC := usecase.NewScreeningUsecase(screeningRepo, d.Cache)
	dashboardUC := usecase.NewDashboardUsecase(jobRepo, resumeRepo, screeningRepo, d.Cache)

	authHandler := handler.NewAuthHandler(authSvc, d.Cfg.Auth.SessionTTL)
	jobHandler := handler.NewJobHandler(jobUC)
	resumeHandler := handler.NewResumeHandler(resumeUC)
	screeningHandler := handler.NewScreeningHandler(screeningUC)
	dashboardHandler := handler.NewDashboardHandler(dashboardUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	jobHandler.RegisterRoutes(protected.Group("/jobs"))
	resumeHandler.RegisterRoutes(protected.Group("/resumes"))
	screeningHandler.RegisterRoutes(protected.Group("/screening-results"))
	dashboardHandler.RegisterRoutes(protected.Group("/dashboard"))
}
