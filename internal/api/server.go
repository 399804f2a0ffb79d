package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/esprit/eventsproject/docs"
	v1 "github.com/esprit/eventsproject/internal/api/handler/v1"
	"github.com/esprit/eventsproject/internal/api/middleware"
	"github.com/esprit/eventsproject/internal/config"
	"github.com/esprit/eventsproject/internal/domain"
	"github.com/esprit/eventsproject/internal/repository"
	"github.com/esprit/eventsproject/internal/repository/dao"
	"github.com/esprit/eventsproject/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	Config       *config.AppConfig
	Router       *gin.Engine
	EventService *service.EventService
}

// NewServer mounts the handlers of svc. defaultOrganizer is read on every
// cost recalculation request that does not name an organizer.
func NewServer(conf *config.AppConfig, svc *service.EventService, defaultOrganizer func() domain.Organizer) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:       conf,
		Router:       engine,
		EventService: svc,
	}

	s.MountMiddlewares()

	eventHandler := v1.NewEventHandler(s.EventService, defaultOrganizer)
	s.MountHandlers(eventHandler)

	return s
}

// NewEventService builds the event service and its stores on db.
func NewEventService(db *gorm.DB) *service.EventService {
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	participantRepo := repository.NewParticipantRepository(dao.NewParticipantDAO(db))
	logisticsRepo := repository.NewLogisticsRepository(dao.NewLogisticsDAO(db))

	return service.NewEventService(eventRepo, participantRepo, logisticsRepo)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New(requestid.WithGenerator(uuid.NewString)))
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(eventHandler *v1.EventHandler) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.GET("/participants/:participantID", eventHandler.HandleGetParticipant)
		public.GET("/logistics", eventHandler.HandleGetLogisticsDates)
	}

	protected := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		protected.POST("/participants", eventHandler.HandleAddParticipant)
		protected.POST("/events", eventHandler.HandleAffectEventToParticipants)
		protected.POST("/events/participants/:participantID", eventHandler.HandleAffectEventToParticipant)
		protected.PUT("/events/logistics/*description", eventHandler.HandleAffectLogistics)
		protected.POST("/events/costs", eventHandler.HandleCalculateCost)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Events project API"
	docs.SwaggerInfo.Description = "Participants, events, logistics and event costs."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

// ListenAndServe serves on addr until ctx is done, then drains in-flight
// requests before returning.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router,
	}

	serveErr := make(chan error, 1)
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		zap.L().Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("srv.Shutdown -> %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("srv.ListenAndServe -> %w", err)
	}
}
