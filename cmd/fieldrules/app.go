package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fieldrules/internal/config"
	"github.com/dmitrymomot/fieldrules/internal/demo"
	"github.com/dmitrymomot/fieldrules/pkg/environment"
	"github.com/dmitrymomot/fieldrules/pkg/i18n"
	"github.com/dmitrymomot/fieldrules/pkg/logger"
)

type runIDKey struct{}

type app struct {
	log    *slog.Logger
	lang   string
	runner *demo.Runner
}

// newApp loads configuration, applies flag overrides and wires the logger,
// translator and runner. The returned context carries the run ID and
// environment.
func newApp(ctx context.Context, flags globalFlags, stdout, stderr io.Writer) (context.Context, *app, error) {
	var envFiles []string
	if flags.envFile != "" {
		envFiles = append(envFiles, flags.envFile)
	}

	cfg, err := config.Load(envFiles...)
	if err != nil {
		return ctx, nil, err
	}
	if flags.lang != "" {
		cfg.Lang = flags.lang
	}
	if flags.translations != "" {
		cfg.Translations = flags.translations
	}

	ctx = environment.WithContext(ctx, cfg.Environment())
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())

	log := logger.New(append(cfg.LoggerOptions(),
		logger.WithOutput(stderr),
		logger.WithContextValue("run_id", runIDKey{}),
	)...)

	adapters := i18n.MergeAdapter{demo.Translations()}
	if cfg.Translations != "" {
		adapters = append(adapters, i18n.NewFileAdapter(nil, cfg.Translations))
	}

	tr, err := i18n.NewTranslator(ctx, adapters,
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(!environment.IsProduction(ctx)),
	)
	if err != nil {
		log.ErrorContext(ctx, "load translations", logger.Error(err))
		return ctx, nil, fmt.Errorf("load translations: %w", err)
	}

	lang := tr.Match(cfg.Lang)
	if lang != cfg.Lang {
		log.DebugContext(ctx, "language matched", slog.String("requested", cfg.Lang), logger.Lang(lang))
	}

	return ctx, &app{
		log:    log,
		lang:   lang,
		runner: demo.NewRunner(stdout, tr, lang, demo.WithLogger(log)),
	}, nil
}
