package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/tutolink/tutolink-api/external/daily"
	"github.com/tutolink/tutolink-api/logmodule"
	"github.com/tutolink/tutolink-api/matching"
	"github.com/tutolink/tutolink-api/notification"
	"github.com/tutolink/tutolink-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.TutoriaCore

	// ranker orders open requests for a tuto
	ranker *matching.Ranker

	// realtime notification fan-out
	notifier notification.Notifier

	// websocket hub for client attachment
	hub *notification.Hub

	// video room provisioning
	rooms daily.RoomService

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	jwtKey *rsa.PrivateKey,
	hub *notification.Hub,
	rooms daily.RoomService) *Server {
	s := store.NewTutoriaStore(ormDB)

	return &Server{
		store:         s,
		ranker:        matching.NewRanker(s),
		notifier:      hub,
		hub:           hub,
		rooms:         rooms,
		jwtPrivateKey: jwtKey,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth", s.requestJWT)

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.POST("", s.accountRegister)
	}

	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
	}

	requestRoute := apiRoute.Group("/requests")
	requestRoute.Use(s.recognizeAccountMiddleware())
	{
		requestRoute.GET("", s.requireRole(roleTuto), s.listOpenRequests)
	}

	sessionRoute := apiRoute.Group("/sessions")
	sessionRoute.Use(s.recognizeAccountMiddleware())
	{
		sessionRoute.POST("", s.requireRole(roleRookie), s.createSessionRequest)
		sessionRoute.GET("", s.listSessions)

		sessionRoute.PATCH("/:sessionID/accept", s.requireRole(roleTuto), s.acceptSession)
		sessionRoute.PATCH("/:sessionID/reject", s.requireRole(roleTuto), s.rejectSession)
		sessionRoute.PATCH("/:sessionID/unreject", s.requireRole(roleTuto), s.unrejectSession)
		sessionRoute.PATCH("/:sessionID/start", s.startSession)
		sessionRoute.PATCH("/:sessionID/end", s.endSession)
		sessionRoute.DELETE("/:sessionID", s.requireRole(roleRookie), s.withdrawSession)

		sessionRoute.POST("/:sessionID/feedback", s.submitFeedback)
		sessionRoute.GET("/:sessionID/room", s.sessionRoom)
	}

	expertiseRoute := apiRoute.Group("/expertise")
	expertiseRoute.Use(s.recognizeAccountMiddleware())
	expertiseRoute.Use(s.requireRole(roleTuto))
	{
		expertiseRoute.GET("", s.listExpertise)
		expertiseRoute.POST("", s.addExpertise)
		expertiseRoute.DELETE("/:entryID", s.removeExpertise)
	}

	courseRoute := apiRoute.Group("/courses")
	courseRoute.Use(s.recognizeAccountMiddleware())
	{
		courseRoute.GET("", s.listCourses)
	}

	wsRoute := r.Group("/ws")
	wsRoute.Use(logmodule.Ginrus("WS"))
	wsRoute.Use(s.authMiddleware())
	wsRoute.Use(s.recognizeAccountMiddleware())
	{
		wsRoute.GET("", s.wsConnect)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"matching": map[string]interface{}{
				"grace_period_minutes":    5,
				"max_session_minutes":     60,
				"request_window_minutes":  5,
				"fallback_min_expertise":  6,
				"open_request_page_limit": defaultPageLimit,
			},
			"system_version": "TutoLink 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
