package app

import (
	"log/slog"
	"os"

	"github.com/king-open/SkyFinder/internal/skyfinder"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.skyfinder.enabled") {
		if err := skyfinder.New(skyfinder.Dependency{
			Config: a.config,
			Router: a.router,
			UUID:   a.uuid,
		}); err != nil {
			slog.Error("failed to init module skyfinder", "error", err)
			os.Exit(1)
		}
	}
}
