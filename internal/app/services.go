// Package app provides service initialization.
package app

import (
	"time"

	"github.com/guttosm/pallet-service/config"
	"github.com/guttosm/pallet-service/internal/queue"
	"github.com/guttosm/pallet-service/internal/repository"
	"github.com/guttosm/pallet-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator service.AllocationCalculator
	Partitions service.PartitionService
	// Lookup is nil when neither MongoDB nor the pallet index is available.
	Lookup service.PalletLookupService
}

// InitializeServices initializes business logic services.
// db and index may be nil; partitions then only support stateless previews.
func InitializeServices(
	cfg config.AllocationConfig,
	db *DatabaseComponents,
	index repository.PalletIndex,
	publisher queue.Publisher,
) *ServiceComponents {
	var calcOpts []service.Option
	if cfg.MaxCratesPerPallet > 0 {
		calcOpts = append(calcOpts, service.WithMaxCratesPerPallet(cfg.MaxCratesPerPallet))
	}
	calculator := service.NewAllocationCalculator(calcOpts...)

	var partitionRepo repository.PartitionRepositoryInterface
	var receptionRepo repository.ReceptionRepositoryInterface
	if db != nil {
		partitionRepo = db.PartitionRepo
		receptionRepo = db.ReceptionRepo
	}

	opts := []service.PartitionOption{
		service.WithDefaultCratesPerPallet(cfg.DefaultCratesPerPallet),
		service.WithLocation(loadLocation(cfg.Timezone)),
		service.WithPublisher(publisher),
	}
	if cfg.DraftCacheSize > 0 {
		opts = append(opts, service.WithDraftCache(service.NewDraftCache(cfg.DraftCacheSize, cfg.DraftTTL)))
	}
	if index != nil {
		opts = append(opts, service.WithPalletIndex(index))
	}

	components := &ServiceComponents{
		Calculator: calculator,
		Partitions: service.NewPartitionService(calculator, partitionRepo, receptionRepo, opts...),
	}

	if strategies := service.DefaultLookupStrategies(index, partitionRepo, receptionRepo); len(strategies) > 0 {
		components.Lookup = service.NewLookupService(index, strategies...)
	}

	return components
}

// loadLocation resolves an IANA zone name, falling back to UTC.
func loadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Err(err).Str("timezone", name).Msg("Unknown reference timezone, using UTC")
		return time.UTC
	}
	return loc
}
