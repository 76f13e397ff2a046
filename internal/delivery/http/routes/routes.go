package routes

import (
	"github.com/gofiber/fiber/v3"

	"talent-map/internal/config"
	"talent-map/internal/database"
	"talent-map/internal/delivery/http/handler"
	"talent-map/internal/delivery/http/middleware"
	"talent-map/internal/pkg/jwt"
	"talent-map/internal/repository"
	"talent-map/internal/usecase"
)

func Register(app *fiber.App, cfg config.Config, db database.DB) {
	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.AccessExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc).Middleware()

	userRepo := repository.NewPostgresUserRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	languageRepo := repository.NewPostgresLanguageRepository(db)
	projectRepo := repository.NewPostgresProjectRepository(db)
	collabRepo := repository.NewPostgresCollaborationRepository(db)
	statsRepo := repository.NewPostgresStatsRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo, projectRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	languageUC := usecase.NewLanguageUsecase(languageRepo)
	projectUC := usecase.NewProjectUsecase(userRepo, projectRepo)
	collabUC := usecase.NewCollaborationUsecase(userRepo, projectRepo, collabRepo)
	searchUC := usecase.NewSearchUsecase(userRepo)
	talentMapUC := usecase.NewTalentMapUsecase(statsRepo)

	handler.NewHealthHandler().RegisterRoutes(app)

	api := app.Group("/api")
	handler.NewAuthHandler(authUC).RegisterRoutes(api)
	handler.NewUserHandler(userUC).RegisterRoutes(api, authMw)
	handler.NewSkillHandler(skillUC).RegisterRoutes(api)
	handler.NewLanguageHandler(languageUC).RegisterRoutes(api)
	handler.NewProjectHandler(projectUC).RegisterRoutes(api, authMw)
	handler.NewCollaborationHandler(collabUC).RegisterRoutes(api, authMw)
	handler.NewSearchHandler(searchUC).RegisterRoutes(api)
	handler.NewTalentMapHandler(talentMapUC).RegisterRoutes(api)
}
