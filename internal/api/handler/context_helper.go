package handler

import (
	"github.com/gin-gonic/gin"

	pkgerrors "github.com/IT22102546/ArmiGo-Research-sub009/pkg/errors"
	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/response"
)

// MustGetUserID safely extracts user_id from the Gin context.
// When the JWT middleware did not inject one it writes a 401 response
// and returns false. Callers should return immediately on ok=false.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetRole safely extracts role from the Gin context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// Viewer extracts the optional identity injected by OptionalJWTAuth.
// Anonymous callers yield empty strings.
func Viewer(c *gin.Context) (userID, role string) {
	if v, exists := c.Get("user_id"); exists {
		userID, _ = v.(string)
	}
	if v, exists := c.Get("role"); exists {
		role, _ = v.(string)
	}
	return userID, role
}

// respondServiceError maps a domain error to the HTTP envelope.
// base is the module's error-code block (e.g. 12100 for transfers);
// the kind picks an offset within it.
func respondServiceError(c *gin.Context, err error, base int) {
	switch pkgerrors.KindOf(err) {
	case pkgerrors.KindNotFound:
		response.NotFound(c, base+1, err.Error())
	case pkgerrors.KindForbidden:
		response.Forbidden(c, base+2, err.Error())
	case pkgerrors.KindInvalidState:
		response.BadRequest(c, base+3, err.Error())
	case pkgerrors.KindConflict:
		response.Conflict(c, base+4, err.Error())
	default:
		response.InternalError(c)
	}
}
