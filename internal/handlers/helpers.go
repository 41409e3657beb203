package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mechhub/portal/internal/config"
	"github.com/mechhub/portal/internal/httperr"
	"github.com/mechhub/portal/internal/middleware"
	"github.com/mechhub/portal/internal/upstream"
)

func userClient(c *gin.Context, cfg *config.Config) *upstream.Client {
	token := c.MustGet(middleware.ContextToken).(string)
	return upstream.NewUserClient(cfg, token)
}

func adminClient(c *gin.Context, cfg *config.Config) *upstream.Client {
	token := c.MustGet(middleware.ContextToken).(string)
	return upstream.NewAdminClient(cfg, token)
}

func actor(c *gin.Context) string {
	id, _ := c.MustGet(middleware.ContextUserID).(string)
	return id
}

// writeUpstream surfaces a failed remote call: the server's own message when
// it sent one, the generic fallback otherwise. Local state is never changed
// before this point.
func writeUpstream(c *gin.Context, err error) {
	if ue, ok := httperr.AsUpstream(err); ok {
		status := ue.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		httperr.Write(c, status, ue.Code, httperr.UserMessage(err))
		return
	}
	httperr.Internal(c, "internal_error", httperr.UserMessage(err))
}
