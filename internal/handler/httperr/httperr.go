package httperr

import (
	"github.com/gin-gonic/gin"

	"ondc-seller-bridge/internal/ondc"
)

// AbortWithProtocolError answers with a well-formed protocol error envelope
// and preserves the original error on the gin context for the logging
// middleware. No failure escapes as a bare HTTP error body.
func AbortWithProtocolError(c *gin.Context, status int, respCtx ondc.Context, err error, code, msg string) {
	if err == nil {
		panic("AbortWithProtocolError: err cannot be nil")
	}

	resp := ondc.Response{
		Context: respCtx,
		Error: &ondc.Error{
			Type:    "DOMAIN-ERROR",
			Code:    code,
			Message: msg,
		},
	}

	_ = c.Error(err).SetType(gin.ErrorTypePublic).SetMeta(resp)
	c.AbortWithStatusJSON(status, resp)
}
