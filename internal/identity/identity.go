// Package identity hands the externally-authenticated actor to the request
// pipeline. The session provider lives outside this service; it forwards the
// acting user's ID in a header and every handler passes the resolved actor
// into the core explicitly. The core never reads ambient session state.
package identity

import (
	"errors"
	"net/http"

	"bid-portal/internal/biderrors"
	model "bid-portal/internal/models"
	"bid-portal/internal/repository"
	"bid-portal/utils"

	"github.com/gin-gonic/gin"
)

// HeaderActorID carries the authenticated user's ID, set by the session
// provider in front of this service
const HeaderActorID = "X-Actor-Id"

const contextActorKey = "identity.actor"

// Resolve looks up the actor named in the request header and attaches it to
// the request context. Requests without the header stay anonymous; an unknown
// actor ID is rejected outright.
func Resolve(repo repository.MarketplaceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader(HeaderActorID)
		if actorID == "" {
			c.Next()
			return
		}

		actor, err := repo.GetUser(c.Request.Context(), actorID)
		if err != nil {
			if errors.Is(err, biderrors.ErrNotFound) {
				utils.JSONError(c, http.StatusUnauthorized, err, "unknown actor")
				c.Abort()
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, err, "failed to resolve actor")
			utils.Error("identity: actor lookup failed", map[string]any{"actor_id": actorID, "error": err.Error()})
			c.Abort()
			return
		}

		c.Set(contextActorKey, actor)
		c.Next()
	}
}

// ActorFrom returns the resolved actor, if any
func ActorFrom(c *gin.Context) (model.User, bool) {
	value, ok := c.Get(contextActorKey)
	if !ok {
		return model.User{}, false
	}
	actor, ok := value.(model.User)
	return actor, ok
}

// RequireActor returns the resolved actor or writes a 401 and reports false
func RequireActor(c *gin.Context) (model.User, bool) {
	actor, ok := ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("missing "+HeaderActorID+" header"), "authentication required")
		return model.User{}, false
	}
	return actor, true
}
