package healthz

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cashtracker/backend/internal/httputil"
	"github.com/cashtracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Pinger checks the connection to the database. *sql.DB implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Controller struct {
	DB Pinger
}

func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", co.Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httputil.HTTPError
// @Router			/healthz [get]
func (co Controller) Get(c *gin.Context) {
	if err := co.DB.PingContext(c.Request.Context()); err != nil {
		httputil.Error(c, fmt.Errorf("%w: %w", models.ErrGeneral, err))
		return
	}

	c.Status(http.StatusNoContent)
}
