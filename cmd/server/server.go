package server

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"

	"sahabat3t-backend/config"
	"sahabat3t-backend/internal/global/cache"
	"sahabat3t-backend/internal/global/database"
	"sahabat3t-backend/internal/global/httpclient"
	"sahabat3t-backend/internal/global/logger"
	"sahabat3t-backend/internal/global/middleware"
	internalSentry "sahabat3t-backend/internal/global/sentry"
	"sahabat3t-backend/internal/module"
	"sahabat3t-backend/tools"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

var log *slog.Logger

var sentryEnabled bool

func Init() {
	config.Init()
	log = logger.New("Server")

	enabled, err := internalSentry.Init()
	if err != nil {
		log.Error("failed to init Sentry", "error", err)
	}
	sentryEnabled = enabled

	database.Init()

	cache.Init()

	httpclient.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	if sentryEnabled {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
		r.Use(middleware.SentryEnrichIP())
		defer internalSentry.Flush()
	}

	// Locally stored uploads are served as static files.
	r.Static("/uploads", config.Get().Storage.Home)

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}

	ln := listen(config.Get().Host, config.Get().Port)
	err := r.RunListener(ln)
	tools.PanicOnErr(err)
}

// listen binds the configured port, walking upward a few ports when the
// requested one is already taken.
func listen(host, port string) net.Listener {
	base, err := strconv.Atoi(port)
	tools.PanicOnErr(err)

	for i := 0; i < 10; i++ {
		addr := net.JoinHostPort(host, strconv.Itoa(base+i))
		ln, err := net.Listen("tcp", addr)
		if err == nil {
			if i > 0 {
				log.Warn("configured port busy, moved up", "addr", addr)
			}
			log.Info("listening", "addr", addr)
			return ln
		}
	}
	panic(fmt.Sprintf("no free port in range %d-%d", base, base+9))
}
