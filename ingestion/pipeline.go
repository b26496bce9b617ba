package ingestion

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"slices"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/roamly/waypoint/ai"
	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/storage"
)

// defaultBatchSize is how many seeds go into one embedding request.
const defaultBatchSize = 16

// Pipeline orchestrates batch seeding of landmark knowledge.
// It manages concurrent embedding of QA pairs and facts.
type Pipeline struct {
	qaPool     *ants.Pool
	factPool   *ants.Pool
	qaSeeder   *qaSeeder
	factSeeder *factSeeder
	batchSize  int
	logger     *slog.Logger
}

// Report summarizes one Seed call.
type Report struct {
	LandmarkID core.ID
	QAPairs    int
	Facts      int
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pools
		if p.qaPool != nil {
			p.qaPool.Release()
		}
		if p.factPool != nil {
			p.factPool.Release()
		}

		// Create new pools
		qaPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		factPool, err := ants.NewPool(size)
		if err != nil {
			qaPool.Release()
			return err
		}

		p.qaPool = qaPool
		p.factPool = factPool
		return nil
	}
}

// WithBatchSize sets how many seeds are embedded per request.
// Default is defaultBatchSize.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new seeding pipeline.
func NewPipeline(
	pairs storage.QARepository,
	facts storage.FactRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if pairs == nil {
		return nil, ErrQARepositoryRequired
	}
	if facts == nil {
		return nil, ErrFactRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	// Default logger
	logger := slog.Default()

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	qaPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	factPool, err := ants.NewPool(poolSize)
	if err != nil {
		qaPool.Release()
		return nil, err
	}

	p := &Pipeline{
		qaPool:    qaPool,
		factPool:  factPool,
		batchSize: defaultBatchSize,
		logger:    logger,
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	// Create seeders after options are applied (so they get final config)
	qs, err := newQASeeder(pairs, provider.Embedder(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}

	fs, err := newFactSeeder(facts, provider.Embedder(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}

	p.qaSeeder = qs
	p.factSeeder = fs

	return p, nil
}

// Seed embeds and stores the given QA pairs and facts for one landmark.
// Batches are embedded concurrently across the worker pools. Seed
// returns once every batch has finished; the report counts what was
// stored, and batch failures are joined into the returned error.
func (p *Pipeline) Seed(ctx context.Context, landmarkID core.ID, pairs []QASeed, facts []FactSeed) (*Report, error) {
	if landmarkID == 0 {
		return nil, ErrLandmarkRequired
	}

	report := &Report{LandmarkID: landmarkID}

	var mu sync.Mutex
	var wg sync.WaitGroup
	var errs []error

	record := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	for batch := range slices.Chunk(pairs, p.batchSize) {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			count, err := p.qaSeeder.seed(ctx, landmarkID, batch)
			if err != nil {
				p.logger.Error("error seeding qa batch", "landmarkID", landmarkID, "err", err)
				record(err)
				return
			}
			mu.Lock()
			report.QAPairs += count
			mu.Unlock()
		}
		if err := p.qaPool.Submit(task); err != nil {
			wg.Done()
			record(err)
		}
	}

	for batch := range slices.Chunk(facts, p.batchSize) {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			count, err := p.factSeeder.seed(ctx, landmarkID, batch)
			if err != nil {
				p.logger.Error("error seeding fact batch", "landmarkID", landmarkID, "err", err)
				record(err)
				return
			}
			mu.Lock()
			report.Facts += count
			mu.Unlock()
		}
		if err := p.factPool.Submit(task); err != nil {
			wg.Done()
			record(err)
		}
	}

	wg.Wait()

	p.logger.Info("seeded landmark",
		"landmarkID", landmarkID,
		"qaPairs", report.QAPairs,
		"facts", report.Facts,
		"failures", len(errs))

	return report, errors.Join(errs...)
}

// Release releases resources including worker pools.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.qaPool != nil {
		p.qaPool.Release()
	}
	if p.factPool != nil {
		p.factPool.Release()
	}
}
