package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"volunteer-connect/internal/auth"
)

// Handlers groups every endpoint handler mounted by NewRouter
type Handlers struct {
	Auth          *AuthHandler
	Users         *UserHandler
	Organizations *OrganizationHandler
	Opportunities *OpportunityHandler
	Applications  *ApplicationHandler
	Payments      *PaymentHandler
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173", // Vite dev server
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// NewRouter builds the gin engine with CORS, request ids and all routes
func NewRouter(h Handlers, tokens *auth.TokenIssuer, frontendURL string) *gin.Engine {
	router := gin.Default()
	router.Use(RequestID())

	allowedOrigins := append([]string{}, defaultOrigins...)
	if frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Volunteer Connect API running"})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Authentication routes (public)
	router.POST("/register", h.Auth.Register)
	router.POST("/login", h.Auth.Login)

	authProtected := router.Group("/auth")
	authProtected.Use(auth.AuthMiddleware(tokens))
	{
		authProtected.GET("/me", h.Auth.GetMe)
	}

	users := router.Group("/users")
	{
		users.GET("", h.Users.ListUsers)
		users.GET("/:id", h.Users.GetUser)
		users.DELETE("/:id", h.Users.DeleteUser)
	}

	orgs := router.Group("/organizations")
	{
		orgs.GET("", h.Organizations.GetOrganizations)
		orgs.POST("", h.Organizations.CreateOrganization)
		orgs.GET("/:id", h.Organizations.GetOrganizationByID)
		orgs.PATCH("/:id", h.Organizations.UpdateOrganization)
		orgs.DELETE("/:id", h.Organizations.DeleteOrganization)
	}

	opps := router.Group("/opportunities")
	{
		opps.GET("", h.Opportunities.GetOpportunities)
		opps.POST("", h.Opportunities.CreateOpportunity)
		opps.GET("/:id", h.Opportunities.GetOpportunityByID)
		opps.PATCH("/:id", h.Opportunities.UpdateOpportunity)
		opps.DELETE("/:id", h.Opportunities.DeleteOpportunity)
	}

	apps := router.Group("/applications")
	{
		apps.GET("", h.Applications.GetApplications)
		apps.POST("", h.Applications.CreateApplication)
		apps.GET("/:id", h.Applications.GetApplicationByID)
		apps.PATCH("/:id", h.Applications.UpdateApplication)
		apps.DELETE("/:id", h.Applications.DeleteApplication)
	}

	payments := router.Group("/payments")
	{
		payments.GET("", h.Payments.GetPayments)
		payments.POST("", h.Payments.CreatePayment)
		payments.GET("/:id", h.Payments.GetPaymentByID)
		payments.PATCH("/:id", h.Payments.UpdatePayment)
		payments.DELETE("/:id", h.Payments.DeletePayment)
	}

	return router
}
