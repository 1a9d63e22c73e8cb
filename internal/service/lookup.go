package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/guttosm/pallet-service/internal/logger"
	"github.com/guttosm/pallet-service/internal/metrics"
	"github.com/guttosm/pallet-service/internal/repository"
)

// LookupStrategy resolves a value against one storage location.
// A miss is reported as (nil, nil).
type LookupStrategy interface {
	Name() string
	Find(ctx context.Context, tenantID string, query model.LookupQuery) (*model.PalletLocation, error)
}

// PalletLookupService resolves scanned or typed values to pallets.
type PalletLookupService interface {
	Lookup(ctx context.Context, tenantID string, query model.LookupQuery) (*model.PalletLocation, error)
	// Scan parses raw scanner input before resolving it.
	Scan(ctx context.Context, tenantID, raw string) (*model.PalletLocation, error)
}

// LookupServiceImpl tries its strategies in order; the first hit wins.
type LookupServiceImpl struct {
	strategies []LookupStrategy
	index      repository.PalletIndex
}

// NewLookupService creates a lookup service over an explicit strategy chain.
// index, when not nil, is backfilled with hits from other locations.
func NewLookupService(index repository.PalletIndex, strategies ...LookupStrategy) *LookupServiceImpl {
	return &LookupServiceImpl{strategies: strategies, index: index}
}

// DefaultLookupStrategies returns the standard chain: the reference index, then
// partitions and receptions, each searched by reference, number and palletNumber.
func DefaultLookupStrategies(
	index repository.PalletIndex,
	partitions repository.PartitionRepositoryInterface,
	receptions repository.ReceptionRepositoryInterface,
) []LookupStrategy {
	var chain []LookupStrategy
	if index != nil {
		chain = append(chain, IndexStrategy{Index: index})
	}
	if partitions != nil {
		for _, field := range model.LookupFields {
			chain = append(chain, FieldStrategy{Source: model.SourcePartitions, Field: field, Finder: partitions})
		}
	}
	if receptions != nil {
		for _, field := range model.LookupFields {
			chain = append(chain, FieldStrategy{Source: model.SourceReceptions, Field: field, Finder: receptions})
		}
	}
	return chain
}

// Lookup resolves a query. Strategy errors do not stop the chain. When nothing
// is found and a storage location failed, the joined errors are returned under
// ErrLookupUnavailable, since the pallet may exist in the unreachable store.
// A failing index alone still yields ErrPalletNotFound.
func (s *LookupServiceImpl) Lookup(ctx context.Context, tenantID string, query model.LookupQuery) (*model.PalletLocation, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrTenantRequired
	}
	query.Value = strings.TrimSpace(query.Value)
	if query.Value == "" {
		return nil, ErrEmptyLookup
	}

	l := logger.WithTenant(tenantID)
	var errs []error
	storageFailed := false
	for _, strategy := range s.strategies {
		loc, err := strategy.Find(ctx, tenantID, query)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			l.Warn().Err(err).Str("strategy", strategy.Name()).Msg("Lookup strategy failed")
			errs = append(errs, fmt.Errorf("%s: %w", strategy.Name(), err))
			if _, isIndex := strategy.(IndexStrategy); !isIndex {
				storageFailed = true
			}
			continue
		}
		if loc == nil {
			continue
		}

		metrics.RecordLookup(loc.Source, "hit")
		s.backfill(ctx, loc)
		l.Debug().
			Str("value", query.Value).
			Str("source", loc.Source).
			Str("field", string(loc.MatchedField)).
			Str("reception_id", loc.ReceptionID).
			Msg("Pallet resolved")
		return loc, nil
	}

	if storageFailed {
		metrics.RecordLookup("none", "error")
		return nil, fmt.Errorf("%w: %w", ErrLookupUnavailable, errors.Join(errs...))
	}
	if len(errs) > 0 {
		metrics.RecordLookup("none", "miss")
		return nil, errors.Join(append([]error{ErrPalletNotFound}, errs...)...)
	}
	metrics.RecordLookup("none", "miss")
	return nil, ErrPalletNotFound
}

// Scan parses raw scanner input and resolves it.
func (s *LookupServiceImpl) Scan(ctx context.Context, tenantID, raw string) (*model.PalletLocation, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrTenantRequired
	}
	query, err := ParseScan(tenantID, raw)
	if err != nil {
		return nil, err
	}
	return s.Lookup(ctx, tenantID, query)
}

// backfill indexes a reference found outside the index.
func (s *LookupServiceImpl) backfill(ctx context.Context, loc *model.PalletLocation) {
	if s.index == nil || loc.Source == model.SourceIndex || loc.Pallet.Reference == "" {
		return
	}
	entry := *loc
	entry.Source = model.SourceIndex
	entry.MatchedField = model.FieldReference
	if err := s.index.Put(ctx, entry); err != nil {
		l := logger.WithContext(map[string]interface{}{
			"tenant_id":    loc.TenantID,
			"reception_id": loc.ReceptionID,
			"source":       loc.Source,
		})
		l.Debug().Err(err).Str("reference", loc.Pallet.Reference).Msg("Pallet index backfill failed")
	}
}

// IndexStrategy resolves references through the pallet index.
type IndexStrategy struct {
	Index repository.PalletIndex
}

// Name returns the strategy name.
func (IndexStrategy) Name() string {
	return model.SourceIndex
}

// Find looks the value up as a reference. Index entries recorded for another
// reception are ignored when the query names one.
func (s IndexStrategy) Find(ctx context.Context, tenantID string, query model.LookupQuery) (*model.PalletLocation, error) {
	loc, err := s.Index.Get(ctx, tenantID, query.Value)
	if err != nil || loc == nil {
		return nil, err
	}
	if query.ReceptionID != "" && loc.ReceptionID != query.ReceptionID {
		return nil, nil
	}
	loc.Source = model.SourceIndex
	loc.MatchedField = model.FieldReference
	return loc, nil
}

// PalletFinder searches pallets stored in one collection.
type PalletFinder interface {
	FindByPallet(ctx context.Context, tenantID string, field model.PalletField, value, receptionID string) (*repository.PalletMatch, error)
}

// FieldStrategy searches one field of one collection.
type FieldStrategy struct {
	Source string
	Field  model.PalletField
	Finder PalletFinder
}

// Name returns source.field.
func (s FieldStrategy) Name() string {
	return s.Source + "." + string(s.Field)
}

// Find searches the field. Ordinals repeat across receptions, so without a
// reception id an ordinal resolves to the most recent match.
func (s FieldStrategy) Find(ctx context.Context, tenantID string, query model.LookupQuery) (*model.PalletLocation, error) {
	match, err := s.Finder.FindByPallet(ctx, tenantID, s.Field, query.Value, query.ReceptionID)
	if err != nil || match == nil {
		return nil, err
	}
	return &model.PalletLocation{
		TenantID:     tenantID,
		ReceptionID:  match.ReceptionID,
		Pallet:       match.Pallet,
		Source:       s.Source,
		MatchedField: s.Field,
	}, nil
}

var (
	_ PalletLookupService = (*LookupServiceImpl)(nil)
	_ LookupStrategy      = IndexStrategy{}
	_ LookupStrategy      = FieldStrategy{}
)
