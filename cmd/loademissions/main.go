// Command loademissions ingests the regional CO2 spreadsheet export into the
// database, replacing any rows previously loaded for the target region.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"ecoscan/config"
	"ecoscan/internal/infra/emissions"
	logs "ecoscan/internal/infra/log"
	"ecoscan/internal/infra/persistence/postgres"
	"ecoscan/internal/usecase"
	"ecoscan/internal/usecase/impl"

	"go.uber.org/fx"
)

const defaultSkipRows = 3

type runParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config    *config.Config
	Logger    *slog.Logger
	Emissions usecase.EmissionUsecase
}

func main() {
	csvPath := flag.String("csv", "", "path to the emissions CSV export (overrides config)")
	region := flag.String("region", "", "region row to load (overrides config)")
	flag.Parse()

	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewEmissionRepository,
			postgres.NewTransactionManager,
			impl.NewEmissionService,
		),
		fx.Invoke(func(params runParams) {
			registerLoad(params, *csvPath, *region)
		}),
	).Run()
}

// registerLoad defers the load to an OnStart hook. Hooks run in registration
// order, so the database provider's own start hook has already pinged the
// connection and run migrations by the time the load begins.
func registerLoad(params runParams, csvPath, region string) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go run(params, csvPath, region)

			return nil
		},
	})
}

func run(params runParams, csvPath, region string) {
	logger := params.Logger

	skipRows := defaultSkipRows
	if cfg := params.Config.Emissions; cfg != nil {
		if csvPath == "" {
			csvPath = cfg.CSVPath
		}
		if region == "" {
			region = cfg.RegionName
		}
		if cfg.SkipRows > 0 {
			skipRows = cfg.SkipRows
		}
	}
	if csvPath == "" || region == "" {
		logger.Error("Missing CSV path or region; set -csv and -region flags or the emissions config block")
		shutdown(params, 2)

		return
	}

	loader := emissions.New(skipRows)
	facts, err := loader.LoadFile(csvPath, region)
	if err != nil {
		logger.Error("Failed to parse emissions CSV", slog.String("csv", csvPath), slog.Any("error", err))
		shutdown(params, 1)

		return
	}

	output, err := params.Emissions.LoadRegion(context.Background(), region, facts)
	if err != nil {
		logger.Error("Failed to store emission facts", slog.String("region", region), slog.Any("error", err))
		shutdown(params, 1)

		return
	}

	logger.Info("Emission facts loaded",
		slog.String("region", region),
		slog.Int("inserted", output.Inserted),
	)
	shutdown(params, 0)
}

func shutdown(params runParams, code int) {
	if err := params.Shutdown(fx.ExitCode(code)); err != nil {
		os.Exit(code)
	}
}
