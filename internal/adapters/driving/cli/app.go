package cli

import (
	"net/http"

	"github.com/custodia-labs/sercha-bot/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-bot/internal/adapters/driven/fetch"
	"github.com/custodia-labs/sercha-bot/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-bot/internal/connectors/filesystem"
	"github.com/custodia-labs/sercha-bot/internal/connectors/yandexdisk"
	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-bot/internal/core/services"
	"github.com/custodia-labs/sercha-bot/internal/logger"
	"github.com/custodia-labs/sercha-bot/internal/normalisers"
	"github.com/custodia-labs/sercha-bot/internal/normalisers/doc"
	"github.com/custodia-labs/sercha-bot/internal/normalisers/docx"
	"github.com/custodia-labs/sercha-bot/internal/normalisers/odt"
	"github.com/custodia-labs/sercha-bot/internal/normalisers/pdf"
	"github.com/custodia-labs/sercha-bot/internal/normalisers/plaintext"
	"github.com/custodia-labs/sercha-bot/internal/normalisers/spreadsheet"
)

// dotEnvFile is read from the working directory before the config file.
const dotEnvFile = ".env"

// app holds the wired services for one command invocation.
type app struct {
	settings *domain.Settings
	index    *services.IndexService
	search   *services.SearchService
	access   *services.AccessService
	files    *fetch.Fetcher
}

// resolveConfigDir returns the --config directory or the default one.
func resolveConfigDir() (string, error) {
	if configDir != "" {
		return configDir, nil
	}
	return file.DefaultDir()
}

// loadSettings reads .env, the config file and the environment.
func loadSettings() (*domain.Settings, error) {
	if err := file.LoadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	dir, err := resolveConfigDir()
	if err != nil {
		return nil, err
	}

	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, err
	}
	logger.Debug("Config file: %s", store.Path())

	settings, err := services.NewSettingsService(store).Get()
	if err != nil {
		return nil, err
	}
	if settings.Verbose {
		logger.SetVerbose(true)
	}
	return settings, nil
}

// newApp wires the index, search and access services for the given settings.
func newApp(settings *domain.Settings) (*app, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	antiword := doc.New()
	if err := antiword.CheckAvailable(); err != nil {
		logger.Warn(".doc files will be indexed without text: %v", err)
		logger.Debug("%s", doc.InstallInstructions())
	}

	registry := normalisers.NewRegistry(
		plaintext.New(),
		pdf.New(),
		docx.New(),
		odt.New(),
		antiword,
		spreadsheet.New(),
	)
	logger.Debug("Extractors registered for %v", registry.SupportedFormats())

	connectors := []driven.Connector{filesystem.New(settings.DocumentsPath)}
	if settings.HasRemote() {
		client := yandexdisk.NewClient(
			settings.RemoteAPIBaseURL,
			&http.Client{Timeout: settings.RequestTimeout},
			yandexdisk.NewRateLimiter(yandexdisk.DefaultRate, yandexdisk.DefaultBurst),
		)
		connectors = append(connectors, yandexdisk.New(client, settings.PublicFolderURL, settings.DownloadWorkers))
	}

	index := memory.NewDocumentIndex()
	files := fetch.New(settings.RequestTimeout)
	indexService := services.NewIndexService(index, registry, files, settings.DocumentsPath, connectors...)

	return &app{
		settings: settings,
		index:    indexService,
		search:   services.NewSearchService(index, indexService),
		access:   services.NewAccessService(memory.NewAllowList(settings.AllowedUserIDs...)),
		files:    files,
	}, nil
}

// setup loads settings and wires the services in one step.
func setup() (*app, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}
	return newApp(settings)
}
