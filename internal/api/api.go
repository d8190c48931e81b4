package api

import (
	"net/http"

	intakeHandler "dealerdesk/internal/intake/handler"
	leadsHandler "dealerdesk/internal/leadsview/handler"
	speechHandler "dealerdesk/internal/speech/handler"
	transcribeHandler "dealerdesk/internal/transcribe/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router            *gin.RouterGroup
	intakeHandler     intakeHandler.Handler
	transcribeHandler transcribeHandler.Handler
	speechHandler     speechHandler.Handler
	leadsHandler      leadsHandler.Handler
}

func New(router *gin.RouterGroup, intake intakeHandler.Handler, transcribe transcribeHandler.Handler,
	speech speechHandler.Handler, leads leadsHandler.Handler) API {
	return API{
		router:            router,
		intakeHandler:     intake,
		transcribeHandler: transcribe,
		speechHandler:     speech,
		leadsHandler:      leads,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		apiGroup.POST("/transcribe", a.transcribeHandler.HandleTranscribe)
		apiGroup.POST("/chat", a.intakeHandler.HandleChat)
		apiGroup.POST("/speech", a.speechHandler.HandleSynthesize)
		apiGroup.GET("/leads", a.leadsHandler.HandleListLeads)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
