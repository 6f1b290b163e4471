package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/pos_finance_manager/internal/utils"
	"github.com/gin-gonic/gin"
)

// PosthogMiddleware records successful finance mutations as product analytics
// events. Reads and failed requests are not tracked.
func PosthogMiddleware(analytics *utils.AnalyticsClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !analytics.IsInitialized() || c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := FinanceEventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"status_code": c.Writer.Status(),
		}
		for _, param := range c.Params {
			props[param.Key] = param.Value
		}
		analytics.Enqueue(userID, eventName, props)
	}
}

// FinanceEventName derives an analytics event name from a route template,
// e.g. POST /api/v1/finance/services/:serviceID/parts -> finance_post_services_parts.
func FinanceEventName(method, fullPath string) string {
	_, rest, found := strings.Cut(fullPath, "/finance/")
	if !found || rest == "" {
		return ""
	}
	segments := []string{"finance", strings.ToLower(method)}
	for _, seg := range strings.Split(rest, "/") {
		if seg == "" || strings.HasPrefix(seg, ":") {
			continue
		}
		segments = append(segments, strings.ReplaceAll(seg, "-", "_"))
	}
	return strings.Join(segments, "_")
}
