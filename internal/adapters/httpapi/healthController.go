package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthController struct{ hc HealthUseCase }

func NewHealthController(hc HealthUseCase) *HealthController { return &HealthController{hc: hc} }

func (ctl *HealthController) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.hc.Health())
}
