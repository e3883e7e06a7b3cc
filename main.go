package main

import (
	"log"

	"interview-service/configs"
	"interview-service/internal/adaptive"
	"interview-service/internal/event"
	"interview-service/internal/execution"
	"interview-service/internal/handlers"
	"interview-service/internal/interview"
	"interview-service/internal/llm"
	"interview-service/internal/resume"
	"interview-service/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configs.LoadConfig()
	cfg := configs.AppConfig

	gin.SetMode(cfg.GinMode)

	// Event publishing is optional: without a broker URI the service runs
	// standalone and the store skips publishing.
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Printf("Warning: Failed to connect to RabbitMQ: %v", err)
			publisher = nil
		} else {
			defer publisher.Close()
			log.Println("Connected to RabbitMQ")
		}
	}

	storeOpts := []store.Option{
		store.WithIntervals(cfg.AutoSaveInterval, cfg.ArchiveInterval, cfg.IdleThreshold),
	}
	if publisher != nil {
		storeOpts = append(storeOpts, store.WithPublisher(publisher))
	}
	sessionStore := store.New(storeOpts...)
	sessionStore.Start()
	defer sessionStore.Stop()

	client := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	gateway := llm.NewGateway(client, cfg.LLMMaxRetries, cfg.LLMBackoffBase)
	if !client.Configured() {
		log.Println("Warning: LLM_API_KEY not set, all completions will use fallback responses")
	}

	var lifecycleEvents store.Publisher
	if publisher != nil {
		lifecycleEvents = publisher
	}
	service := interview.NewService(sessionStore, gateway, adaptive.NewAssessor(nil), execution.NewSimulatedRunner(), lifecycleEvents)

	interviewHandler := handlers.NewInterviewHandler(service)
	resumeHandler := handlers.NewResumeHandler(resume.PlainTextExtractor{})
	healthHandler := handlers.NewHealthHandler(cfg, sessionStore, client)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	api := r.Group("/api")
	{
		api.POST("/interview-agent", interviewHandler.HandleAgent)
		api.POST("/session-recover", interviewHandler.RecoverSession)
		api.GET("/session/:sessionId", interviewHandler.GetSessionStatus)
		api.POST("/resume-parser", resumeHandler.ParseResume)
		api.GET("/health", healthHandler.Health)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	log.Printf("%s v%s starting on port %s", cfg.ServiceName, cfg.ServiceVersion, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
