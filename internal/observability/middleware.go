package observability

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Context keys a decode handler sets for the request log line.
const (
	decodeSourceKey = "podctl.decode.source"
	decodeBytesKey  = "podctl.decode.bytes"
	decodeErrorsKey = "podctl.decode.errors"
)

// MarkDecode records a decode served by the current request and tags the
// request's log line with its outcome.
func MarkDecode(c *gin.Context, source string, size int, nodeErrs []error) {
	RecordDecode(source, size, nodeErrs)
	c.Set(decodeSourceKey, source)
	c.Set(decodeBytesKey, size)
	c.Set(decodeErrorsKey, len(nodeErrs))
}

// RequestLogger writes one line per request. Requests that decoded a POD
// also carry the decode source, input size and node error count.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := logger.WithLevel(requestLevel(status)).
			Str("method", c.Request.Method).
			Str("path", routePath(c)).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Int("response_bytes", c.Writer.Size())
		if source := c.GetString(decodeSourceKey); source != "" {
			event = event.
				Str("decode_source", source).
				Int("decode_bytes", c.GetInt(decodeBytesKey)).
				Int("decode_errors", c.GetInt(decodeErrorsKey))
		}
		event.Msg("http_request")
	}
}

func RequestMetricsMiddleware(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		RecordHTTPRequest(service, c.Request.Method, routePath(c), c.Writer.Status(), time.Since(start))
	}
}

func requestLevel(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	}
	return zerolog.InfoLevel
}

// routePath is the matched route template, or the raw path for 404s.
func routePath(c *gin.Context) string {
	if path := c.FullPath(); path != "" {
		return path
	}
	return c.Request.URL.Path
}
