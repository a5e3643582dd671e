package logging

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type ILogger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Infoln(args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
	Print(args ...any)
	Printf(format string, args ...any)
	Println(args ...any)
	Fatal(args ...any)
	Fatalf(format string, args ...any)
}

func SetupLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warningf("Unknown log level %q, falling back to info", level)
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

type responseData struct {
	status int
	size   int
}

type loggingResponseWriter struct {
	http.ResponseWriter
	data *responseData
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := w.ResponseWriter.Write(b)
	w.data.size += size
	return size, err
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.data.status = statusCode
}

func Middleware(logger ILogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		logFn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			data := &responseData{status: http.StatusOK}
			lw := loggingResponseWriter{ResponseWriter: w, data: data}
			next.ServeHTTP(&lw, r)
			logger.Infof(
				"Request: %s %s. Status: %d. Size: %d. Duration: %s. Request ID: %s",
				r.Method,
				r.RequestURI,
				data.status,
				data.size,
				time.Since(start),
				middleware.GetReqID(r.Context()),
			)
		}
		return http.HandlerFunc(logFn)
	}
}
