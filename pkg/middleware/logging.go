package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// slowRequestThreshold marca requisições lentas no log
const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware gera o ID de correlação e registra cada requisição HTTP
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"query":          r.URL.RawQuery,
				"remote_addr":    r.RemoteAddr,
				"user_agent":     r.UserAgent(),
			}).Debug("http: requisição iniciada")

			next.ServeHTTP(lrw, r)

			responseTime := time.Since(startTime)

			logger := log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"status_code":    lrw.statusCode,
				"duration_ms":    responseTime.Milliseconds(),
			})

			msg := fmt.Sprintf("http: requisição finalizada em %s", formatDuration(responseTime))
			switch {
			case lrw.statusCode >= 500:
				logger.Error(msg)
			case lrw.statusCode >= 400:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if responseTime > slowRequestThreshold {
				logger.Warnf("http: requisição lenta: %s %s", r.Method, r.URL.Path)
			}
		})
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status code da resposta
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	if !lrw.wroteHeader {
		lrw.statusCode = code
		lrw.wroteHeader = true
	}
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	lrw.wroteHeader = true
	return lrw.ResponseWriter.Write(b)
}

// LogPanicMiddleware recupera panics dos handlers e responde 500 sem expor detalhes
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)

					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"error":  err,
						"method": r.Method,
						"path":   r.URL.Path,
					})
					logger.Error("http: erro não tratado na aplicação")
					logger.WithField("stack_trace", string(stack[:stackSize])).Debug("http: stack trace do erro")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
