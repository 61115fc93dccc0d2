package router

import (
	"github.com/campusbridge/student-support-api/internal/application"
	"github.com/campusbridge/student-support-api/internal/container"
	pginfra "github.com/campusbridge/student-support-api/internal/infrastructure/postgres"
	handlers "github.com/campusbridge/student-support-api/internal/interface/http"
	"github.com/campusbridge/student-support-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	postRepo := pginfra.NewPostRepository(pool)
	eventRepo := pginfra.NewEventRepository(pool)
	resourceRepo := pginfra.NewResourceRepository(pool)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), logger, container.GetRabbitPub(), cfg.AppName, cfg.MailSendEnabled)
	communitySvc := application.NewCommunityService(postRepo, eventRepo, logger, container.GetES(), cfg.ESPostsIndex)
	resourceSvc := application.NewResourceService(resourceRepo, container.GetRedis(), logger)
	chatSvc := application.NewChatService(container.GetAI(), logger)

	directory := handlers.NewDirectoryHandler()

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewCommunityModule(handlers.NewCommunityHandler(communitySvc, logger), directory, container.GetJWT()))
	r.Add(modules.NewAcademicModule(directory))
	r.Add(modules.NewFinancialModule(directory))
	r.Add(modules.NewMentalHealthModule(handlers.NewResourceHandler(resourceSvc, logger), handlers.NewChatHandler(chatSvc, logger), container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
