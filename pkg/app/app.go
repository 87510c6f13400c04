package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/purrfect/pkg/app/screens"
	"github.com/kerbaras/purrfect/pkg/config"
	"github.com/kerbaras/purrfect/pkg/logging"
	"github.com/kerbaras/purrfect/pkg/services"
	"github.com/kerbaras/purrfect/pkg/sources"
	"go.uber.org/zap"
)

type App struct {
	cfg *config.Config
}

func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	return &App{cfg: cfg}
}

// NewFetchController wires the Cat API client the way the gallery uses it.
func NewFetchController(cfg *config.Config) *services.FetchController {
	source := sources.NewCatAPI(cfg.APIURL, logging.Named("catapi"))
	return services.NewFetchController(source, logging.Named("fetch")).
		WithTimeout(cfg.RequestTimeout)
}

func (a *App) Run() error {
	log := logging.Named("app")
	log.Info("starting gallery",
		zap.String("api_url", a.cfg.APIURL),
		zap.Stringer("mode", a.cfg.Mode()),
	)

	fetcher := NewFetchController(a.cfg)
	defer fetcher.Cancel()

	model := screens.NewRootScreen(fetcher, a.cfg.Mode())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	if err != nil {
		log.Error("gallery exited with error", zap.Error(err))
	}
	return err
}
