package server

import (
	"course-server/confs"
	"course-server/db"
	"course-server/handlers"
	httpHandler "course-server/handlers/http"
	"course-server/middleware"
	"course-server/repositories"
	"course-server/services"
	"course-server/usecases"
	"course-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	app := gin.New()
	app.Use(gin.Logger())
	app.Use(middleware.Recovery())
	return &Server{
		app: app,
		db:  database,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // Allow all origins for development
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))
	s.app.Use(middleware.RequestID())

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	courseRepo := repositories.NewCoursePgRepository(s.db)

	// Activity feed: websocket manager + in-memory event buffer
	manager := ws.NewManager()
	recorder := services.NewActivityRecorder(manager, confs.ActivityBufferSize())

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo, courseRepo, recorder, confs.BcryptCost())
	courseUseCase := usecases.NewCourseUseCase(courseRepo, recorder)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(userUseCase)
	courseHandler := httpHandler.NewCourseHandler(courseUseCase)
	activityHandler := handlers.NewActivityHandler(recorder, manager)
	wsHandler := handlers.NewWSHandler(manager)

	authenticate := middleware.Authenticate(userRepo)

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		// User routes
		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", authenticate, userHandler.GetCurrentUser)
		}

		// Course routes
		courses := api.Group("/courses")
		{
			courses.GET("", courseHandler.GetAllCourses)
			courses.GET("/:id", courseHandler.GetCourse)
			courses.POST("", authenticate, courseHandler.CreateCourse)
			courses.PUT("/:id", authenticate, courseHandler.UpdateCourse)
			courses.DELETE("/:id", authenticate, courseHandler.DeleteCourse)
		}

		// Recent catalog activity
		activity := api.Group("/activity")
		{
			activity.GET("", activityHandler.GetRecentActivity)
			activity.GET("/stats", activityHandler.GetActivityStats)
		}
	}

	s.app.GET("/ws", wsHandler.HandleActivityWS)

	if err := s.app.Run(confs.ServerAddr()); err != nil {
		panic(err)
	}
}
