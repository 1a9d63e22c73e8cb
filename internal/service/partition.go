package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/guttosm/pallet-service/internal/logger"
	"github.com/guttosm/pallet-service/internal/metrics"
	"github.com/guttosm/pallet-service/internal/queue"
	"github.com/guttosm/pallet-service/internal/repository"
)

// Advisory warnings attached to a partition view.
const (
	WarningShortfall       = "shortfall"
	WarningOverflow        = "overflow"
	WarningTotalChanged    = "reception_total_changed"
	WarningClientCodeClash = "client_code_collision"
)

// PartitionService manages draft partitions and their persistence.
// Every operation is scoped to a tenant.
type PartitionService interface {
	// Preview computes a partition without a reception or a draft.
	Preview(totalCrates, cratesPerPallet int, overrides map[int]int) (model.Partition, model.ConsistencyReport, error)
	Open(ctx context.Context, tenantID, receptionID string) (model.PartitionView, error)
	SetCratesPerPallet(ctx context.Context, tenantID, receptionID string, cratesPerPallet int) (model.PartitionView, error)
	SetOverride(ctx context.Context, tenantID, receptionID string, ordinal, crates int) (model.PartitionView, error)
	ResetOverrides(ctx context.Context, tenantID, receptionID string) (model.PartitionView, error)
	Save(ctx context.Context, tenantID, receptionID string) (model.SaveResult, error)
	// PrintLabels saves on a best-effort basis and always returns the labels.
	PrintLabels(ctx context.Context, tenantID, receptionID string) (model.PrintResult, error)
	Discard(tenantID, receptionID string)
}

// PartitionServiceImpl implements PartitionService.
type PartitionServiceImpl struct {
	calculator             AllocationCalculator
	partitions             repository.PartitionRepositoryInterface
	receptions             repository.ReceptionRepositoryInterface
	index                  repository.PalletIndex
	publisher              queue.Publisher
	drafts                 DraftCache
	defaultCratesPerPallet int
	location               *time.Location
	clock                  func() time.Time
}

// PartitionOption configures a PartitionServiceImpl.
type PartitionOption func(*PartitionServiceImpl)

// WithPalletIndex writes saved references to the pallet index.
func WithPalletIndex(index repository.PalletIndex) PartitionOption {
	return func(s *PartitionServiceImpl) {
		s.index = index
	}
}

// WithPublisher publishes label requests.
func WithPublisher(p queue.Publisher) PartitionOption {
	return func(s *PartitionServiceImpl) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithDraftCache replaces the default draft cache.
func WithDraftCache(c DraftCache) PartitionOption {
	return func(s *PartitionServiceImpl) {
		if c != nil {
			s.drafts = c
		}
	}
}

// WithDefaultCratesPerPallet sets the capacity of receptions never saved before.
func WithDefaultCratesPerPallet(n int) PartitionOption {
	return func(s *PartitionServiceImpl) {
		if n > 0 {
			s.defaultCratesPerPallet = n
		}
	}
}

// WithLocation sets the time zone used for reference dates.
func WithLocation(loc *time.Location) PartitionOption {
	return func(s *PartitionServiceImpl) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) PartitionOption {
	return func(s *PartitionServiceImpl) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewPartitionService creates a partition service.
func NewPartitionService(
	calculator AllocationCalculator,
	partitions repository.PartitionRepositoryInterface,
	receptions repository.ReceptionRepositoryInterface,
	opts ...PartitionOption,
) *PartitionServiceImpl {
	if calculator == nil {
		calculator = NewAllocationCalculator()
	}
	s := &PartitionServiceImpl{
		calculator:             calculator,
		partitions:             partitions,
		receptions:             receptions,
		publisher:              queue.NoopPublisher{},
		defaultCratesPerPallet: 42,
		location:               time.UTC,
		clock:                  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.drafts == nil {
		s.drafts = NewDraftCache(1000, 30*time.Minute)
	}
	return s
}

// Preview computes a partition and its consistency report.
func (s *PartitionServiceImpl) Preview(totalCrates, cratesPerPallet int, overrides map[int]int) (model.Partition, model.ConsistencyReport, error) {
	partition, err := s.calculator.Compute(totalCrates, cratesPerPallet, overrides)
	if err != nil {
		return model.Partition{}, model.ConsistencyReport{}, err
	}
	return partition, CheckConsistency(partition), nil
}

// Open returns the draft of a reception, loading the stored partition on first access.
func (s *PartitionServiceImpl) Open(ctx context.Context, tenantID, receptionID string) (model.PartitionView, error) {
	d, err := s.draft(ctx, tenantID, receptionID)
	if err != nil {
		return model.PartitionView{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	partition, err := s.compute(d)
	if err != nil {
		return model.PartitionView{}, err
	}
	return s.view(d, partition), nil
}

// SetCratesPerPallet changes the pallet capacity. An invalid capacity leaves the draft unchanged.
func (s *PartitionServiceImpl) SetCratesPerPallet(ctx context.Context, tenantID, receptionID string, cratesPerPallet int) (model.PartitionView, error) {
	d, err := s.draft(ctx, tenantID, receptionID)
	if err != nil {
		return model.PartitionView{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	partition, err := s.calculator.Compute(d.reception.TotalCrates, cratesPerPallet, d.overrides.Snapshot())
	if err != nil {
		return model.PartitionView{}, err
	}
	if cratesPerPallet != d.cratesPerPallet {
		d.cratesPerPallet = cratesPerPallet
		d.capacityDirty = true
	}
	s.assignReferences(d, &partition)
	return s.view(d, partition), nil
}

// SetOverride sets the crate count of one pallet.
func (s *PartitionServiceImpl) SetOverride(ctx context.Context, tenantID, receptionID string, ordinal, crates int) (model.PartitionView, error) {
	d, err := s.draft(ctx, tenantID, receptionID)
	if err != nil {
		return model.PartitionView{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.overrides.Set(ordinal, crates); err != nil {
		return model.PartitionView{}, err
	}
	partition, err := s.compute(d)
	if err != nil {
		return model.PartitionView{}, err
	}
	return s.view(d, partition), nil
}

// ResetOverrides drops every override of the draft.
func (s *PartitionServiceImpl) ResetOverrides(ctx context.Context, tenantID, receptionID string) (model.PartitionView, error) {
	d, err := s.draft(ctx, tenantID, receptionID)
	if err != nil {
		return model.PartitionView{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.overrides.ResetAll()
	partition, err := s.compute(d)
	if err != nil {
		return model.PartitionView{}, err
	}
	return s.view(d, partition), nil
}

// Save persists the draft. Saving an unchanged draft rewrites the same record.
func (s *PartitionServiceImpl) Save(ctx context.Context, tenantID, receptionID string) (model.SaveResult, error) {
	d, err := s.draft(ctx, tenantID, receptionID)
	if err != nil {
		return model.SaveResult{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	partition, err := s.compute(d)
	if err != nil {
		return model.SaveResult{}, err
	}
	result, err := s.persist(ctx, d, partition)
	if err != nil {
		return model.SaveResult{}, err
	}
	return model.SaveResult{ID: result.ID, Created: result.Created, View: s.view(d, partition)}, nil
}

// PrintLabels builds label payloads for every pallet. A failed save is logged and
// reported in the result; the labels are returned regardless.
func (s *PartitionServiceImpl) PrintLabels(ctx context.Context, tenantID, receptionID string) (model.PrintResult, error) {
	d, err := s.draft(ctx, tenantID, receptionID)
	if err != nil {
		return model.PrintResult{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	partition, err := s.compute(d)
	if err != nil {
		return model.PrintResult{}, err
	}

	result := model.PrintResult{Persisted: true}
	if _, err := s.persist(ctx, d, partition); err != nil {
		l := logger.WithReception(tenantID, receptionID)
		l.Warn().Err(err).Msg("Printing labels for an unsaved partition")
		result.Persisted = false
		result.PersistError = err.Error()
	}

	result.Labels = BuildLabels(tenantID, d.reception, partition)
	metrics.RecordLabelPrint(result.Persisted)

	event := queue.NewLabelsRequestedEvent(tenantID, receptionID, result.Labels, result.Persisted)
	if err := s.publisher.Publish(ctx, queue.LabelsRequestedQueue, event); err != nil {
		l := logger.WithReception(tenantID, receptionID)
		l.Warn().Err(err).Msg("Failed to publish label request")
	} else {
		result.Published = true
	}

	result.View = s.view(d, partition)
	return result, nil
}

// Discard drops the draft and its unsaved edits.
func (s *PartitionServiceImpl) Discard(tenantID, receptionID string) {
	s.drafts.Invalidate(draftKey(tenantID, receptionID))
}

// draft returns the cached draft or loads a new one.
func (s *PartitionServiceImpl) draft(ctx context.Context, tenantID, receptionID string) (*Draft, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrTenantRequired
	}
	if strings.TrimSpace(receptionID) == "" {
		return nil, ErrReceptionNotFound
	}

	key := draftKey(tenantID, receptionID)
	if d, ok := s.drafts.Get(key); ok {
		return d, nil
	}

	if s.partitions == nil || s.receptions == nil {
		return nil, ErrRepositoryNotConfigured
	}

	doc, err := s.receptions.Get(ctx, tenantID, receptionID)
	if err != nil {
		return nil, fmt.Errorf("load reception: %w", err)
	}
	if doc == nil {
		return nil, ErrReceptionNotFound
	}
	stored, err := s.partitions.FindByReception(ctx, tenantID, receptionID)
	if err != nil {
		return nil, fmt.Errorf("load partition: %w", err)
	}

	d := newDraft(tenantID, doc.ToReception(), stored, s.defaultCratesPerPallet, s.clock().In(s.location))
	d.collisions = s.countCollisions(ctx, d)

	actual, _ := s.drafts.SetIfAbsent(key, d)
	return actual, nil
}

// compute recomputes the draft's partition and assigns references. Callers hold d.mu.
func (s *PartitionServiceImpl) compute(d *Draft) (model.Partition, error) {
	partition, err := s.calculator.Compute(d.reception.TotalCrates, d.cratesPerPallet, d.overrides.Snapshot())
	if err != nil {
		return model.Partition{}, err
	}
	s.assignReferences(d, &partition)
	return partition, nil
}

func (s *PartitionServiceImpl) assignReferences(d *Draft, partition *model.Partition) {
	AssignReferences(partition, d.referenceDate.In(s.location), d.reception.ClientName, d.references)
}

// persist saves the partition and refreshes the pallet index. Callers hold d.mu.
func (s *PartitionServiceImpl) persist(ctx context.Context, d *Draft, partition model.Partition) (repository.UpsertResult, error) {
	if s.partitions == nil {
		return repository.UpsertResult{}, ErrRepositoryNotConfigured
	}

	l := logger.WithReception(d.tenantID, d.reception.ID)
	doc := repository.NewPartitionDocument(d.tenantID, d.reception.ID, partition, d.overrides.Snapshot())
	result, err := s.partitions.Save(ctx, d.tenantID, d.reception.ID, doc)
	if err != nil {
		metrics.RecordPartitionSave("error")
		return repository.UpsertResult{}, fmt.Errorf("save partition: %w", err)
	}

	if result.Created {
		metrics.RecordPartitionSave("created")
	} else {
		metrics.RecordPartitionSave("updated")
	}
	s.unindexRetired(ctx, d, partition)
	d.markSaved(result, partition)

	report := CheckConsistency(partition)
	if !report.Balanced() {
		metrics.RecordShortfall()
		l.Warn().
			Int("total_crates", report.TotalCrates).
			Int("total_crates_used", report.TotalCratesUsed).
			Int("shortfall", report.Shortfall).
			Msg("Saved partition does not place every crate")
	}

	s.indexPallets(ctx, d.tenantID, d.reception.ID, partition)

	l.Info().
		Str("partition_id", result.ID).
		Bool("created", result.Created).
		Int("pallets", partition.PalletCount()).
		Msg("Partition saved")
	return result, nil
}

// indexPallets writes saved references to the pallet index on a best-effort basis.
func (s *PartitionServiceImpl) indexPallets(ctx context.Context, tenantID, receptionID string, partition model.Partition) {
	if s.index == nil {
		return
	}
	locs := make([]model.PalletLocation, 0, len(partition.Pallets))
	for _, p := range partition.Pallets {
		locs = append(locs, model.PalletLocation{
			TenantID:     tenantID,
			ReceptionID:  receptionID,
			Pallet:       p,
			Source:       model.SourceIndex,
			MatchedField: model.FieldReference,
		})
	}
	if err := s.index.PutMany(ctx, locs); err != nil {
		l := logger.WithReception(tenantID, receptionID)
		l.Warn().Err(err).Msg("Failed to index pallet references")
	}
}

// unindexRetired drops index entries of pallets the new partition no longer has.
// Callers hold d.mu.
func (s *PartitionServiceImpl) unindexRetired(ctx context.Context, d *Draft, partition model.Partition) {
	retired := retiredReferences(d.references, partition)
	if len(retired) == 0 || s.index == nil {
		return
	}
	if err := s.index.Delete(ctx, d.tenantID, retired...); err != nil {
		l := logger.WithReception(d.tenantID, d.reception.ID)
		l.Warn().Err(err).Strs("references", retired).Msg("Failed to remove retired pallet references")
	}
}

// retiredReferences lists known references whose ordinal is past the partition's last pallet
// or whose pallet now carries a different reference.
func retiredReferences(known map[int]string, partition model.Partition) []string {
	current := make(map[string]struct{}, len(partition.Pallets))
	for _, p := range partition.Pallets {
		current[p.Reference] = struct{}{}
	}
	var retired []string
	for _, ordinal := range sortedOrdinals(known) {
		ref := known[ordinal]
		if _, ok := current[ref]; !ok && ref != "" {
			retired = append(retired, ref)
		}
	}
	return retired
}

// countCollisions counts other receptions already using this draft's reference prefix.
// Two clients sharing a 3-letter code on the same day get identical references;
// the count is surfaced as a warning, never corrected.
func (s *PartitionServiceImpl) countCollisions(ctx context.Context, d *Draft) int64 {
	prefix := strings.TrimSuffix(GenerateReference(d.referenceDate.In(s.location), d.reception.ClientName, 0), "000")
	count, err := s.partitions.CountReferencePrefix(ctx, d.tenantID, prefix, d.reception.ID)
	if err != nil {
		l := logger.WithReception(d.tenantID, d.reception.ID)
		l.Debug().Err(err).Msg("Reference collision count failed")
		return 0
	}
	if count > 0 {
		l := logger.WithReception(d.tenantID, d.reception.ID)
		l.Warn().
			Str("prefix", prefix).
			Int64("receptions", count).
			Msg("Pallet reference prefix already used by another reception")
	}
	return count
}

// view renders the draft for the operator. Callers hold d.mu.
func (s *PartitionServiceImpl) view(d *Draft, partition model.Partition) model.PartitionView {
	report := CheckConsistency(partition)
	v := model.PartitionView{
		Reception:   d.reception,
		Partition:   partition,
		Consistency: report,
		Dirty:       d.dirty(),
		PersistedID: d.persistedID,
		CreatedAt:   d.createdAt,
		UpdatedAt:   d.updatedAt,
	}
	switch report.Status {
	case model.ConsistencyShortfall:
		v.Warnings = append(v.Warnings, WarningShortfall)
	case model.ConsistencyOverflow:
		v.Warnings = append(v.Warnings, WarningOverflow)
	}
	if d.totalChanged {
		v.Warnings = append(v.Warnings, WarningTotalChanged)
	}
	if d.collisions > 0 {
		v.Warnings = append(v.Warnings, WarningClientCodeClash)
	}
	return v
}

var _ PartitionService = (*PartitionServiceImpl)(nil)
