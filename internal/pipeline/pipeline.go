package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ecommerce-dataset/internal/analytics"
	"ecommerce-dataset/internal/config"
	"ecommerce-dataset/internal/database"
	"ecommerce-dataset/internal/dataset"
	"ecommerce-dataset/internal/store"
)

// Pipeline runs the batch stages strictly in sequence: generate, load,
// analyze. Every stage either completes or fails with an error naming
// the stage.
type Pipeline struct {
	cfg   *config.Config
	db    database.Driver
	log   *zap.Logger
	runID string
}

func New(cfg *config.Config, db database.Driver, log *zap.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, db: db, log: log, runID: uuid.New().String()}
}

func (p *Pipeline) RunID() string {
	return p.runID
}

// Generate fabricates the dataset from the configured seed and writes
// the CSV exports. Equal seeds produce byte-identical files.
func (p *Pipeline) Generate() (*dataset.Dataset, error) {
	start, err := p.cfg.RegistrationStart()
	if err != nil {
		return nil, fmt.Errorf("generate stage: %w", err)
	}
	end, err := p.cfg.EndDate()
	if err != nil {
		return nil, fmt.Errorf("generate stage: %w", err)
	}

	p.log.Info("generating dataset",
		zap.String("run_id", p.runID),
		zap.Uint64("seed", p.cfg.Seed),
		zap.Int("customers", p.cfg.Counts.Customers),
		zap.Int("products", p.cfg.Counts.Products),
		zap.Int("orders", p.cfg.Counts.Orders),
		zap.Int("order_items", p.cfg.Counts.OrderItems),
		zap.Int("reviews", p.cfg.Counts.Reviews))

	faker := gofakeit.New(p.cfg.Seed)
	ds, err := dataset.Generate(faker, dataset.Params{
		Customers:         p.cfg.Counts.Customers,
		Products:          p.cfg.Counts.Products,
		Orders:            p.cfg.Counts.Orders,
		OrderItems:        p.cfg.Counts.OrderItems,
		Reviews:           p.cfg.Counts.Reviews,
		RegistrationStart: start,
		EndDate:           end,
	})
	if err != nil {
		return nil, fmt.Errorf("generate stage: %w", err)
	}

	if err := ds.WriteAll(p.cfg.DataDir); err != nil {
		return nil, fmt.Errorf("generate stage: %w", err)
	}
	p.log.Info("dataset written", zap.String("dir", p.cfg.DataDir))
	return ds, nil
}

// Load recreates the schema and bulk-inserts the dataset in one
// transaction. A nil dataset is read back from the CSV exports, so the
// load stage can run standalone.
func (p *Pipeline) Load(ctx context.Context, ds *dataset.Dataset) error {
	if ds == nil {
		var err error
		ds, err = dataset.ReadAll(p.cfg.DataDir)
		if err != nil {
			return fmt.Errorf("load stage: %w", err)
		}
	}

	loader := store.NewLoader(p.db, p.log)
	if err := loader.Recreate(ctx); err != nil {
		return fmt.Errorf("load stage: %w", err)
	}
	if err := loader.Load(ctx, ds); err != nil {
		return fmt.Errorf("load stage: %w", err)
	}

	counts, err := loader.Counts(ctx)
	if err != nil {
		return fmt.Errorf("load stage: %w", err)
	}
	for _, table := range store.TableNames {
		p.log.Info("table loaded", zap.String("table", table), zap.Int64("rows", counts[table]))
	}
	return nil
}

// Analyze runs the query battery. Individual query failures are
// reported in the summary and do not abort the stage.
func (p *Pipeline) Analyze(ctx context.Context, repeat int) error {
	runner := analytics.NewRunner(p.db, p.cfg.ResultsDir, p.log)
	reports, err := runner.RunAll(ctx, repeat)
	if err != nil {
		return fmt.Errorf("analyze stage: %w", err)
	}
	analytics.PrintSummary(os.Stdout, p.runID, reports)
	return nil
}
