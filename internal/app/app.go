package app

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/king-open/SkyFinder/internal/pkg/pkgconfig"
	"github.com/king-open/SkyFinder/internal/pkg/pkglog"
	"github.com/king-open/SkyFinder/internal/pkg/pkgrouter"
	"github.com/king-open/SkyFinder/internal/pkg/pkguid"
)

type App struct {
	config     pkgconfig.Config
	uuid       pkguid.StringID
	router     *pkgrouter.Router
	httpServer *http.Server
	closerFn   map[string]func(context.Context) error
	serving    atomic.Bool
}

func New() *App {
	app := &App{}
	loadEnv()
	pkglog.InitLogging()
	app.initConfig()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()
	return app
}
