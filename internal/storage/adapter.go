// Package storage mirrors cart and last-order state to a local SQLite file,
// the Go stand-in for the original application's on-device key-value store.
// Reads happen once, during hydration; writes are asynchronous, best-effort
// and never surfaced to the mutating caller.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Yashkatiyar24/E-commerce-app/internal/cart"
	"github.com/Yashkatiyar24/E-commerce-app/internal/orders"
	pkgerrors "github.com/Yashkatiyar24/E-commerce-app/pkg/errors"
	"github.com/Yashkatiyar24/E-commerce-app/pkg/logger"
	"github.com/Yashkatiyar24/E-commerce-app/pkg/metrics"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/multierr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WriteResult reports the outcome of one background snapshot task. The
// surrounding application may log, count or ignore it per policy.
type WriteResult struct {
	TaskID   uuid.UUID
	Slot     string
	Deleted  bool
	Attempts int
	Duration time.Duration
	Err      error
}

// Options tunes the adapter's write pipeline.
type Options struct {
	QueueSize    int
	WriteRetries uint64
	WriteBackoff time.Duration
	Metrics      *metrics.PersistenceMetrics
	OnResult     func(WriteResult)
}

type task struct {
	id      uuid.UUID
	slot    string
	payload []byte // nil means delete the slot
}

// Adapter persists the two slot documents. Lifecycle: New, Hydrate, Attach,
// Close.
type Adapter struct {
	db   *gorm.DB
	log  *logger.Logger
	opts Options

	mu       sync.RWMutex
	hydrated bool
	attached bool
	closed   bool

	tasks chan task
	done  chan struct{}
}

// New builds an adapter over an open database handle and prepares its schema.
func New(db *gorm.DB, log *logger.Logger, opts Options) (*Adapter, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 64
	}
	if opts.WriteBackoff <= 0 {
		opts.WriteBackoff = 250 * time.Millisecond
	}
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "migrating snapshot schema")
	}
	return &Adapter{
		db:    db,
		log:   log,
		opts:  opts,
		tasks: make(chan task, opts.QueueSize),
		done:  make(chan struct{}),
	}, nil
}

// Hydrate loads both slots into the given store and recorder. Absent or
// unreadable slots are "no prior state": the returned error aggregates what
// went wrong so the caller can log it as a warning, but hydration itself
// always completes.
func (a *Adapter) Hydrate(ctx context.Context, store *cart.Store, recorder *orders.Recorder) error {
	var issues error

	if payload, ok, err := a.readSlot(ctx, SlotCart); err != nil {
		issues = multierr.Append(issues, err)
	} else if ok {
		var lines []cart.Line
		if err := json.Unmarshal(payload, &lines); err != nil {
			issues = multierr.Append(issues, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "decoding cart slot"))
		} else {
			store.Replace(lines)
		}
	}

	if payload, ok, err := a.readSlot(ctx, SlotOrder); err != nil {
		issues = multierr.Append(issues, err)
	} else if ok {
		var summary orders.Summary
		if err := json.Unmarshal(payload, &summary); err != nil {
			issues = multierr.Append(issues, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "decoding last-order slot"))
		} else {
			recorder.Record(summary)
		}
	}

	a.mu.Lock()
	a.hydrated = true
	a.mu.Unlock()
	return issues
}

// Attach subscribes to the store and recorder and starts the write worker.
// It refuses to run before hydration so unread prior state can never be
// clobbered with empty defaults.
func (a *Adapter) Attach(store *cart.Store, recorder *orders.Recorder) error {
	a.mu.RLock()
	hydrated := a.hydrated
	a.mu.RUnlock()
	if !hydrated {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "attach before hydration")
	}
	a.mu.Lock()
	if a.attached {
		a.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeStateConflict, "already attached")
	}
	a.attached = true
	a.mu.Unlock()

	store.Subscribe(func(lines []cart.Line) {
		payload, err := json.Marshal(lines)
		if err != nil {
			a.log.Error(a.log.WithSlot(context.Background(), SlotCart), "encoding cart snapshot", err)
			return
		}
		a.enqueue(SlotCart, payload)
	})
	recorder.Subscribe(func(last *orders.Summary) {
		if last == nil {
			a.enqueue(SlotOrder, nil)
			return
		}
		payload, err := json.Marshal(last)
		if err != nil {
			a.log.Error(a.log.WithSlot(context.Background(), SlotOrder), "encoding order snapshot", err)
			return
		}
		a.enqueue(SlotOrder, payload)
	})

	go a.run()
	return nil
}

// Close drains queued tasks and stops the worker.
func (a *Adapter) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	attached := a.attached
	a.mu.Unlock()

	close(a.tasks)
	if attached {
		<-a.done
	}
	return nil
}

func (a *Adapter) enqueue(slot string, payload []byte) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return
	}
	t := task{id: uuid.New(), slot: slot, payload: payload}
	select {
	case a.tasks <- t:
	default:
		// The queue is bounded so mutations never block; under sustained
		// backpressure the oldest unwritten snapshot loses to a later one
		// anyway, so dropping is reported but not fatal.
		err := pkgerrors.New(pkgerrors.CodeStorage, "write queue full, snapshot dropped")
		a.report(WriteResult{TaskID: t.id, Slot: slot, Deleted: payload == nil, Err: err})
	}
}

func (a *Adapter) run() {
	for t := range a.tasks {
		a.process(context.Background(), t)
	}
	close(a.done)
}

func (a *Adapter) process(ctx context.Context, t task) {
	start := time.Now()
	attempts := 0

	backoff := retry.WithMaxRetries(a.opts.WriteRetries, retry.NewConstant(a.opts.WriteBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		if err := a.writeSlot(ctx, t); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})

	a.report(WriteResult{
		TaskID:   t.id,
		Slot:     t.slot,
		Deleted:  t.payload == nil,
		Attempts: attempts,
		Duration: time.Since(start),
		Err:      err,
	})
}

func (a *Adapter) report(result WriteResult) {
	ctx := a.log.WithFields(context.Background(), map[string]any{
		"slot":     result.Slot,
		"task_id":  result.TaskID.String(),
		"attempts": result.Attempts,
	})
	if result.Err != nil {
		a.opts.Metrics.IncFailure(result.Slot)
		a.log.Warn(ctx, "snapshot write failed: "+result.Err.Error())
	} else {
		a.opts.Metrics.IncSuccess(result.Slot)
		a.opts.Metrics.ObserveDuration(result.Slot, result.Duration)
		a.log.Debug(ctx, "snapshot written")
	}
	if a.opts.OnResult != nil {
		a.opts.OnResult(result)
	}
}

func (a *Adapter) readSlot(ctx context.Context, slot string) ([]byte, bool, error) {
	var row Snapshot
	err := a.db.WithContext(ctx).Where("slot = ?", slot).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "reading slot "+slot)
	}
	return row.Payload, true, nil
}

func (a *Adapter) writeSlot(ctx context.Context, t task) error {
	if t.payload == nil {
		return a.db.WithContext(ctx).Where("slot = ?", t.slot).Delete(&Snapshot{}).Error
	}
	row := Snapshot{ID: uuid.New(), Slot: t.slot, Payload: t.payload}
	return a.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&row).Error
}
