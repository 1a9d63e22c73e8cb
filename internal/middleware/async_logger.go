package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/guttosm/pallet-service/internal/logger"
	"github.com/guttosm/pallet-service/internal/metrics"
	"github.com/guttosm/pallet-service/internal/service"
)

// AsyncLoggerConfig sizes the audit writer.
type AsyncLoggerConfig struct {
	// BufferSize is how many entries may wait before new ones are dropped.
	BufferSize int
	// NumWorkers is the number of goroutines draining the buffer.
	NumWorkers int
	// BatchSize caps the entries stored per bulk insert.
	BatchSize int
	// FlushInterval bounds how long a partial batch waits.
	FlushInterval time.Duration
	// WriteTimeout bounds one bulk insert.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the audit writer defaults.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:    1000,
		NumWorkers:    4,
		BatchSize:     50,
		FlushInterval: 500 * time.Millisecond,
		WriteTimeout:  5 * time.Second,
	}
}

// AsyncLogger batches audit entries from partition saves, label prints and
// lookups into bulk inserts. Entries are dropped when the buffer is full so a
// slow audit collection never holds up a scanner station.
type AsyncLogger struct {
	loggingService service.LoggingService
	entryCh        chan *model.AuditEntry
	stopCh         chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup
	batchSize      int
	flushInterval  time.Duration
	writeTimeout   time.Duration

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	failed   atomic.Int64
}

// NewAsyncLogger starts the worker pool. It returns nil without a logging service.
func NewAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if loggingService == nil {
		return nil
	}
	defaults := DefaultAsyncLoggerConfig()
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = defaults.NumWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaults.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaults.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaults.WriteTimeout
	}

	al := &AsyncLogger{
		loggingService: loggingService,
		entryCh:        make(chan *model.AuditEntry, cfg.BufferSize),
		stopCh:         make(chan struct{}),
		batchSize:      cfg.BatchSize,
		flushInterval:  cfg.FlushInterval,
		writeTimeout:   cfg.WriteTimeout,
	}
	for i := 0; i < cfg.NumWorkers; i++ {
		al.wg.Add(1)
		go al.worker()
	}
	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	batch := make([]*model.AuditEntry, 0, al.batchSize)
	ticker := time.NewTicker(al.flushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		al.writeBatch(batch)
		batch = make([]*model.AuditEntry, 0, al.batchSize)
	}

	for {
		select {
		case entry := <-al.entryCh:
			batch = append(batch, entry)
			if len(batch) >= al.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-al.stopCh:
			for {
				select {
				case entry := <-al.entryCh:
					batch = append(batch, entry)
					if len(batch) >= al.batchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}

func (al *AsyncLogger) writeBatch(batch []*model.AuditEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.loggingService.CreateEntries(ctx, batch); err != nil {
		al.failed.Add(int64(len(batch)))
		metrics.RecordAuditEntries("failed", len(batch))
		log := logger.Logger()
		log.Warn().
			Err(err).
			Int("entries", len(batch)).
			Str("first_action", batch[0].Action).
			Str("tenant_id", batch[0].TenantID).
			Msg("Failed to write audit batch")
		return
	}
	al.written.Add(int64(len(batch)))
	metrics.RecordAuditEntries("written", len(batch))
}

// Log enqueues entry and reports whether it was accepted.
func (al *AsyncLogger) Log(entry *model.AuditEntry) bool {
	if entry == nil {
		return false
	}
	select {
	case <-al.stopCh:
		al.drop()
		return false
	default:
	}
	select {
	case al.entryCh <- entry:
		al.enqueued.Add(1)
		return true
	default:
		al.drop()
		return false
	}
}

func (al *AsyncLogger) drop() {
	al.dropped.Add(1)
	metrics.RecordAuditEntries("dropped", 1)
}

// Stop flushes pending entries and waits for the workers.
func (al *AsyncLogger) Stop() {
	al.stopOnce.Do(func() {
		close(al.stopCh)
		al.wg.Wait()
	})
}

// AsyncLoggerStats counts entries by outcome.
type AsyncLoggerStats struct {
	Enqueued int64
	Dropped  int64
	Written  int64
	Failed   int64
}

// Stats returns the entry counters.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	return AsyncLoggerStats{
		Enqueued: al.enqueued.Load(),
		Dropped:  al.dropped.Load(),
		Written:  al.written.Load(),
		Failed:   al.failed.Load(),
	}
}

var (
	globalAsyncLogger   *AsyncLogger
	globalAsyncLoggerMu sync.RWMutex
)

// InitAsyncLogger starts the process-wide audit writer, stopping any previous one.
func InitAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
	}
	globalAsyncLogger = NewAsyncLogger(loggingService, cfg)
}

// GetAsyncLogger returns the process-wide audit writer, or nil.
func GetAsyncLogger() *AsyncLogger {
	globalAsyncLoggerMu.RLock()
	defer globalAsyncLoggerMu.RUnlock()
	return globalAsyncLogger
}

// StopAsyncLogger flushes and clears the process-wide audit writer.
func StopAsyncLogger() {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger == nil {
		return
	}
	globalAsyncLogger.Stop()
	stats := globalAsyncLogger.Stats()
	globalAsyncLogger = nil

	log := logger.Logger()
	log.Info().
		Int64("enqueued", stats.Enqueued).
		Int64("written", stats.Written).
		Int64("failed", stats.Failed).
		Int64("dropped", stats.Dropped).
		Msg("Audit writer stopped")
}
