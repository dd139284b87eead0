package middleware

import (
	"net/http"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "github.com/JamesLawwd/BITSA/internal/transport/http/response"
)

// Recovery logs the panic with its stack and answers 500 in the standard
// envelope.
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return ginzap.CustomRecoveryWithZap(l, true, func(c *gin.Context, err any) {
		resp.AbortFail(c, http.StatusInternalServerError, "Server error")
	})
}
