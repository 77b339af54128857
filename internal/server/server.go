package server

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"brik.community/portal/internal/middleware"
	"brik.community/portal/pkg/storage"

	adminHttp "brik.community/portal/internal/modules/admin/delivery/http"
	adminService "brik.community/portal/internal/modules/admin/service"

	announcementHttp "brik.community/portal/internal/modules/announcement/delivery/http"
	announcementRepo "brik.community/portal/internal/modules/announcement/repository"
	announcementService "brik.community/portal/internal/modules/announcement/service"

	awardHttp "brik.community/portal/internal/modules/award/delivery/http"
	awardRepo "brik.community/portal/internal/modules/award/repository"
	awardService "brik.community/portal/internal/modules/award/service"

	eventHttp "brik.community/portal/internal/modules/event/delivery/http"
	eventRepo "brik.community/portal/internal/modules/event/repository"
	eventService "brik.community/portal/internal/modules/event/service"

	leaderboardHttp "brik.community/portal/internal/modules/leaderboard/delivery/http"
	leaderboardRepo "brik.community/portal/internal/modules/leaderboard/repository"
	leaderboardService "brik.community/portal/internal/modules/leaderboard/service"

	notiHttp "brik.community/portal/internal/modules/notification/delivery/http"
	notifRepo "brik.community/portal/internal/modules/notification/repository"
	notifService "brik.community/portal/internal/modules/notification/service"

	opportunityHttp "brik.community/portal/internal/modules/opportunity/delivery/http"
	opportunityRepo "brik.community/portal/internal/modules/opportunity/repository"
	opportunityService "brik.community/portal/internal/modules/opportunity/service"

	profileHttp "brik.community/portal/internal/modules/profile/delivery/http"
	profileService "brik.community/portal/internal/modules/profile/service"

	projectHttp "brik.community/portal/internal/modules/project/delivery/http"
	projectRepo "brik.community/portal/internal/modules/project/repository"
	projectService "brik.community/portal/internal/modules/project/service"

	resourceHttp "brik.community/portal/internal/modules/resource/delivery/http"
	resourceRepo "brik.community/portal/internal/modules/resource/repository"
	resourceService "brik.community/portal/internal/modules/resource/service"

	searchService "brik.community/portal/internal/modules/search/service"

	statHttp "brik.community/portal/internal/modules/stat/delivery/http"
	statRepo "brik.community/portal/internal/modules/stat/repository"
	statService "brik.community/portal/internal/modules/stat/service"

	uploadHttp "brik.community/portal/internal/modules/upload/delivery/http"
	uploadService "brik.community/portal/internal/modules/upload/service"

	userHttp "brik.community/portal/internal/modules/user/delivery/http"
	userRepo "brik.community/portal/internal/modules/user/repository"
	userService "brik.community/portal/internal/modules/user/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(db *gorm.DB, redisClient *redis.Client) *Server {
	users := userRepo.NewUserRepository(db)

	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	meiliHost := os.Getenv("MEILISEARCH_HOST")
	if meiliHost == "" {
		meiliHost = "http://localhost:7700"
	}
	if !strings.HasPrefix(meiliHost, "http") {
		meiliHost = "http://" + meiliHost + ":7700"
	}
	meiliClient := meilisearch.New(meiliHost, meilisearch.WithAPIKey(os.Getenv("MEILI_MASTER_KEY")))
	meiliSvc := searchService.NewSearchService(meiliClient)

	authSvc := userService.NewAuthService(users, meiliSvc)
	authHandler := userHttp.NewAuthHandler(authSvc)

	notifications := notifRepo.NewNotificationRepository(db)
	notificationSvc := notifService.NewNotificationService(notifications, redisClient)
	notificationHandler := notiHttp.NewNotificationHandler(notificationSvc, redisClient)
	go notificationSvc.StartPruneWorker(context.Background())

	leaderboards := leaderboardRepo.NewLeaderboardRepository(db)
	leaderboardSvc := leaderboardService.NewLeaderboardService(leaderboards, notificationSvc)
	leaderboardHandler := leaderboardHttp.NewLeaderboardHandler(leaderboardSvc)

	awards := awardRepo.NewAwardRepository(db)
	awardSvc := awardService.NewAwardService(awards, users, leaderboardSvc)
	awardHandler := awardHttp.NewAwardHandler(awardSvc)

	profileSvc := profileService.NewProfileService(users, awards, leaderboards, imageStorage)
	profileHandler := profileHttp.NewProfileHandler(profileSvc)

	announcements := announcementRepo.NewAnnouncementRepository(db)
	announcementSvc := announcementService.NewAnnouncementService(announcements, meiliSvc, redisClient)
	announcementHandler := announcementHttp.NewAnnouncementHandler(announcementSvc)

	events := eventRepo.NewEventRepository(db)
	eventSvc := eventService.NewEventService(events)
	eventHandler := eventHttp.NewEventHandler(eventSvc)

	opportunities := opportunityRepo.NewOpportunityRepository(db)
	opportunitySvc := opportunityService.NewOpportunityService(opportunities, meiliSvc)
	opportunityHandler := opportunityHttp.NewOpportunityHandler(opportunitySvc)

	resources := resourceRepo.NewResourceRepository(db)
	resourceSvc := resourceService.NewResourceService(resources)
	resourceHandler := resourceHttp.NewResourceHandler(resourceSvc)

	projects := projectRepo.NewProjectRepository(db)
	projectSvc := projectService.NewProjectService(projects, users, notificationSvc)
	projectHandler := projectHttp.NewProjectHandler(projectSvc)

	adminSvc := adminService.NewAdminService(users, projectSvc, imageStorage)
	adminHandler := adminHttp.NewAdminHandler(adminSvc)

	uploadSvc := uploadService.NewUploadService(imageStorage)
	uploadHandler := uploadHttp.NewUploadHandler(uploadSvc)

	stats := statRepo.NewStatRepository(db)
	statSvc := statService.NewStatService(stats)
	statHandler := statHttp.NewStatHandler(statSvc)

	router := gin.New()

	setupCORS(router)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(users)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		adminGroup := protected.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAdmin())
		{
			adminGroup.POST("/members", adminHandler.CreateMember)
			adminGroup.GET("/members", adminHandler.GetAllMembers)
			adminGroup.PUT("/members/:id", adminHandler.UpdateMember)
			adminGroup.DELETE("/members/:id", adminHandler.DeleteMember)

			adminGroup.POST("/add-project-member", adminHandler.AddProjectMember)
			adminGroup.POST("/remove-project-member", adminHandler.RemoveProjectMember)

			adminGroup.POST("/announcements", announcementHandler.Create)
			adminGroup.PUT("/announcements/:id", announcementHandler.Update)
			adminGroup.DELETE("/announcements/:id", announcementHandler.Delete)

			adminGroup.POST("/events", eventHandler.Create)
			adminGroup.PUT("/events/:id", eventHandler.Update)
			adminGroup.DELETE("/events/:id", eventHandler.Delete)

			adminGroup.POST("/opportunities", opportunityHandler.Create)
			adminGroup.PUT("/opportunities/:id", opportunityHandler.Update)
			adminGroup.DELETE("/opportunities/:id", opportunityHandler.Delete)

			adminGroup.POST("/resources", resourceHandler.Create)
			adminGroup.PUT("/resources/:id", resourceHandler.Update)
			adminGroup.DELETE("/resources/:id", resourceHandler.Delete)

			adminGroup.POST("/projects", projectHandler.Create)
			adminGroup.PUT("/projects/:id", projectHandler.Update)
			adminGroup.DELETE("/projects/:id", projectHandler.Delete)

			adminGroup.POST("/awards", awardHandler.GrantAward)
			adminGroup.DELETE("/awards/:id", awardHandler.RevokeAward)

			adminGroup.GET("/leaderboard", leaderboardHandler.GetAdminLeaderboard)
		}

		protected.GET("/announcements", announcementHandler.GetAll)
		protected.GET("/announcements/:id", announcementHandler.GetByID)

		protected.GET("/events", eventHandler.GetAll)
		protected.GET("/events/calendar", eventHandler.GetCalendar)
		protected.GET("/events/upcoming", eventHandler.GetUpcoming)
		protected.GET("/events/:id", eventHandler.GetByID)

		protected.GET("/opportunities", opportunityHandler.GetAll)
		protected.GET("/opportunities/saved", opportunityHandler.GetSaved)
		protected.GET("/opportunities/:id", opportunityHandler.GetByID)
		protected.POST("/opportunities/:id/save", opportunityHandler.Save)
		protected.DELETE("/opportunities/:id/save", opportunityHandler.Unsave)

		protected.GET("/resources", resourceHandler.GetAll)
		protected.GET("/resources/:id", resourceHandler.GetByID)

		protected.GET("/projects", projectHandler.GetAll)
		protected.GET("/projects/:id", projectHandler.GetByID)
		protected.POST("/projects/:id/updates", projectHandler.PostUpdate)

		protected.GET("/profile/me", profileHandler.GetOwn)
		protected.PUT("/profile", profileHandler.Update)
		protected.POST("/profile/avatar", profileHandler.UploadAvatar)
		protected.GET("/profile/:username", profileHandler.GetByUsername)

		protected.GET("/awards/user/:user_id", awardHandler.GetAwardsByUser)

		protected.GET("/leaderboard", leaderboardHandler.GetLeaderboard)

		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		protected.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)
		protected.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)
		protected.GET("/notifications/ws", notificationHandler.HandleWebSocket)

		protected.POST("/upload-image", uploadHandler.UploadImage)

		protected.GET("/stats", statHandler.GetDashboardStats)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine) {
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
