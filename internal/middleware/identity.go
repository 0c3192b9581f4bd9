package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/collabhub-io/collabhub/internal/modules/model"
	"github.com/collabhub-io/collabhub/internal/modules/serializer"
)

const identityKey = "identity"

// Identity attaches the signed-in user to the request context. Until real
// authentication lands this is a fixed identity supplied by configuration.
// It also tags the current span with the user id for telemetry filtering.
func Identity(id model.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id.ID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.Err(http.StatusUnauthorized, "no identity configured", nil))
			return
		}

		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			span.SetAttributes(attribute.String("user_id", id.ID.String()))
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// CurrentIdentity reads the identity set by the Identity middleware.
func CurrentIdentity(c *gin.Context) (model.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return model.Identity{}, false
	}
	id, ok := v.(model.Identity)
	return id, ok
}
