package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/stockboard-api/docs"
	v1 "github.com/vietanh2810/stockboard-api/internal/api/handler/v1"
	"github.com/vietanh2810/stockboard-api/internal/api/middleware"
	"github.com/vietanh2810/stockboard-api/internal/config"
	"github.com/vietanh2810/stockboard-api/internal/domain"
	"github.com/vietanh2810/stockboard-api/internal/repository"
	"github.com/vietanh2810/stockboard-api/internal/repository/dao"
	"github.com/vietanh2810/stockboard-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	authenticator := s.initAuthenticator(db)
	stakeHandler := v1.NewTradableHandler(domain.KindStake, s.initTradableService(dao.NewStakeDAO(db)))
	stockHandler := v1.NewTradableHandler(domain.KindStock, s.initTradableService(dao.NewStockDAO(db)))
	s.MountHandlers(authHandler, authenticator, stakeHandler, stockHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initAuthenticator(db *gorm.DB) *middleware.Authenticator {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)

	return middleware.NewAuthenticator(s.Config.API.JWTSigningKey, svc)
}

func (s *Server) initTradableService(d repository.TradableDAO) *service.TradableService {
	repo := repository.NewTradableRepository(d)

	return service.NewTradableService(repo)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, authenticator *middleware.Authenticator, tradableHandlers ...*v1.TradableHandler) {
	const basePath = "/"

	s.Router.POST("/token", authHandler.HandleLogin)

	protected := s.Router.Group(basePath, authenticator.VerifyJWT())
	for _, h := range tradableHandlers {
		h.RegisterRoutes(protected)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "stockboard API"
	docs.SwaggerInfo.Description = "CRUD API over stakes and stocks with bearer token login."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
