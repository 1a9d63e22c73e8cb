//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/pallet-service/internal/circuitbreaker"
	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/guttosm/pallet-service/internal/mocks"
	"github.com/guttosm/pallet-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const lookupRef = "PAL-20250914-CLI-002"

func lookupPallet() model.Pallet {
	return model.Pallet{Number: 2, Crates: 42, IsFull: true, Reference: lookupRef}
}

type lookupFixture struct {
	index      *mocks.MockPalletIndex
	partitions *mocks.MockPartitionRepositoryInterface
	receptions *mocks.MockReceptionRepositoryInterface
	service    *LookupServiceImpl
}

func newLookupFixture() *lookupFixture {
	f := &lookupFixture{
		index:      new(mocks.MockPalletIndex),
		partitions: new(mocks.MockPartitionRepositoryInterface),
		receptions: new(mocks.MockReceptionRepositoryInterface),
	}
	f.service = NewLookupService(f.index, DefaultLookupStrategies(f.index, f.partitions, f.receptions)...)
	return f
}

// missEverywhere makes every location miss unless an earlier expectation matches.
func (f *lookupFixture) missEverywhere() {
	f.index.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	f.partitions.On("FindByPallet", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	f.receptions.On("FindByPallet", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
}

func TestDefaultLookupStrategies_Order(t *testing.T) {
	f := newLookupFixture()

	names := make([]string, 0, len(f.service.strategies))
	for _, s := range f.service.strategies {
		names = append(names, s.Name())
	}

	assert.Equal(t, []string{
		"index",
		"partitions.reference", "partitions.number", "partitions.palletNumber",
		"receptions.reference", "receptions.number", "receptions.palletNumber",
	}, names)

	assert.Len(t, DefaultLookupStrategies(nil, f.partitions, nil), 3)
}

func TestLookupService_Lookup(t *testing.T) {
	tests := []struct {
		name           string
		query          model.LookupQuery
		setup          func(*lookupFixture)
		expectedSource string
		expectedField  model.PalletField
		expectedErr    error
		validate       func(*testing.T, *lookupFixture)
	}{
		{
			name:  "index hit short-circuits the chain",
			query: model.LookupQuery{Value: lookupRef},
			setup: func(f *lookupFixture) {
				f.index.On("Get", mock.Anything, "tenant-a", lookupRef).Return(&model.PalletLocation{
					TenantID: "tenant-a", ReceptionID: "rec-1", Pallet: lookupPallet(),
				}, nil)
			},
			expectedSource: model.SourceIndex,
			expectedField:  model.FieldReference,
			validate: func(t *testing.T, f *lookupFixture) {
				f.partitions.AssertNotCalled(t, "FindByPallet", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				f.index.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
			},
		},
		{
			name:  "partition hit is backfilled into the index",
			query: model.LookupQuery{Value: lookupRef},
			setup: func(f *lookupFixture) {
				f.index.On("Get", mock.Anything, "tenant-a", lookupRef).Return(nil, nil)
				f.partitions.On("FindByPallet", mock.Anything, "tenant-a", model.FieldReference, lookupRef, "").
					Return(&repository.PalletMatch{ReceptionID: "rec-1", Pallet: lookupPallet()}, nil)
				f.index.On("Put", mock.Anything, mock.MatchedBy(func(loc model.PalletLocation) bool {
					return loc.Source == model.SourceIndex && loc.Pallet.Reference == lookupRef && loc.ReceptionID == "rec-1"
				})).Return(nil)
			},
			expectedSource: model.SourcePartitions,
			expectedField:  model.FieldReference,
			validate: func(t *testing.T, f *lookupFixture) {
				f.index.AssertExpectations(t)
			},
		},
		{
			name:  "ordinal resolves within the scanned reception",
			query: model.LookupQuery{Value: "2", ReceptionID: "rec-1"},
			setup: func(f *lookupFixture) {
				f.partitions.On("FindByPallet", mock.Anything, "tenant-a", model.FieldNumber, "2", "rec-1").
					Return(&repository.PalletMatch{ReceptionID: "rec-1", Pallet: lookupPallet()}, nil)
				f.index.On("Put", mock.Anything, mock.Anything).Return(nil)
				f.missEverywhere()
			},
			expectedSource: model.SourcePartitions,
			expectedField:  model.FieldNumber,
		},
		{
			name:  "legacy reception pallet by palletNumber",
			query: model.LookupQuery{Value: "7"},
			setup: func(f *lookupFixture) {
				f.receptions.On("FindByPallet", mock.Anything, "tenant-a", model.FieldPalletNumber, "7", "").
					Return(&repository.PalletMatch{ReceptionID: "rec-9", Pallet: model.Pallet{Number: 7, Crates: 40}}, nil)
				f.missEverywhere()
			},
			expectedSource: model.SourceReceptions,
			expectedField:  model.FieldPalletNumber,
			validate: func(t *testing.T, f *lookupFixture) {
				f.index.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
			},
		},
		{
			name:  "failing location does not stop the chain",
			query: model.LookupQuery{Value: lookupRef},
			setup: func(f *lookupFixture) {
				f.index.On("Get", mock.Anything, "tenant-a", lookupRef).Return(nil, errors.New("redis down"))
				f.partitions.On("FindByPallet", mock.Anything, "tenant-a", model.FieldReference, lookupRef, "").
					Return(&repository.PalletMatch{ReceptionID: "rec-1", Pallet: lookupPallet()}, nil)
				f.index.On("Put", mock.Anything, mock.Anything).Return(errors.New("redis down"))
			},
			expectedSource: model.SourcePartitions,
			expectedField:  model.FieldReference,
		},
		{
			name:  "not found anywhere",
			query: model.LookupQuery{Value: "PAL-20990101-XXX-001"},
			setup: func(f *lookupFixture) {
				f.missEverywhere()
			},
			expectedErr: ErrPalletNotFound,
		},
		{
			name:  "storage outage is not reported as not found",
			query: model.LookupQuery{Value: lookupRef},
			setup: func(f *lookupFixture) {
				f.index.On("Get", mock.Anything, "tenant-a", lookupRef).Return(nil, nil)
				f.partitions.On("FindByPallet", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil, circuitbreaker.ErrCircuitOpen)
				f.receptions.On("FindByPallet", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil, circuitbreaker.ErrCircuitOpen)
			},
			expectedErr: ErrLookupUnavailable,
			validate: func(t *testing.T, f *lookupFixture) {
				_, err := f.service.Lookup(context.Background(), "tenant-a", model.LookupQuery{Value: lookupRef})
				assert.NotErrorIs(t, err, ErrPalletNotFound)
				assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
			},
		},
		{
			name:  "one failing store still blocks a not found answer",
			query: model.LookupQuery{Value: lookupRef},
			setup: func(f *lookupFixture) {
				f.partitions.On("FindByPallet", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.New("server selection timeout"))
				f.missEverywhere()
			},
			expectedErr: ErrLookupUnavailable,
		},
		{
			name:  "index failure alone is a plain miss",
			query: model.LookupQuery{Value: lookupRef},
			setup: func(f *lookupFixture) {
				f.index.On("Get", mock.Anything, "tenant-a", lookupRef).Return(nil, errors.New("redis down"))
				f.missEverywhere()
			},
			expectedErr: ErrPalletNotFound,
		},
		{
			name:        "blank value",
			query:       model.LookupQuery{Value: "   "},
			setup:       func(*lookupFixture) {},
			expectedErr: ErrEmptyLookup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLookupFixture()
			tt.setup(f)

			loc, err := f.service.Lookup(context.Background(), "tenant-a", tt.query)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, loc)
			} else {
				require.NoError(t, err)
				require.NotNil(t, loc)
				assert.Equal(t, tt.expectedSource, loc.Source)
				assert.Equal(t, tt.expectedField, loc.MatchedField)
				assert.Equal(t, "tenant-a", loc.TenantID)
			}
			if tt.validate != nil {
				tt.validate(t, f)
			}
		})
	}
}

func TestLookupService_RequiresTenant(t *testing.T) {
	f := newLookupFixture()

	_, err := f.service.Lookup(context.Background(), "", model.LookupQuery{Value: lookupRef})
	assert.ErrorIs(t, err, ErrTenantRequired)

	_, err = f.service.Scan(context.Background(), " ", lookupRef)
	assert.ErrorIs(t, err, ErrTenantRequired)
}

func TestLookupService_CanceledContext(t *testing.T) {
	f := newLookupFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.index.On("Get", mock.Anything, "tenant-a", lookupRef).Return(nil, context.Canceled)

	_, err := f.service.Lookup(ctx, "tenant-a", model.LookupQuery{Value: lookupRef})
	assert.ErrorIs(t, err, context.Canceled)
	f.partitions.AssertNotCalled(t, "FindByPallet", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLookupService_Scan(t *testing.T) {
	f := newLookupFixture()
	f.index.On("Get", mock.Anything, "tenant-a", lookupRef).Return(&model.PalletLocation{
		TenantID: "tenant-a", ReceptionID: "rec-1", Pallet: lookupPallet(),
	}, nil)

	loc, err := f.service.Scan(context.Background(), "tenant-a", `{"t":"tenant-a","r":"rec-1","n":2,"ref":"`+lookupRef+`"}`)
	require.NoError(t, err)
	assert.Equal(t, "rec-1", loc.ReceptionID)

	_, err = f.service.Scan(context.Background(), "tenant-a", `{"t":"tenant-b","ref":"`+lookupRef+`"}`)
	assert.ErrorIs(t, err, ErrInvalidScanPayload)
}

func TestIndexStrategy_IgnoresOtherReception(t *testing.T) {
	index := new(mocks.MockPalletIndex)
	index.On("Get", mock.Anything, "tenant-a", lookupRef).Return(&model.PalletLocation{
		TenantID: "tenant-a", ReceptionID: "rec-2", Pallet: lookupPallet(),
	}, nil)

	loc, err := IndexStrategy{Index: index}.Find(context.Background(), "tenant-a", model.LookupQuery{Value: lookupRef, ReceptionID: "rec-1"})
	require.NoError(t, err)
	assert.Nil(t, loc)
}
