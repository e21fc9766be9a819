package lineitems

import (
	"context"
	"fmt"

	"order-items/core/lock"
	"order-items/core/storage"
	"order-items/feature/lineitems/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service implements the item operations on top of a Store.
type Service struct {
	store  *Store
	cfg    Config
	locker lock.Locker
	client storage.Client
	bucket string
	logger *zap.Logger
	reads  singleflight.Group
}

// NewService creates a new item service. locker and client may be nil:
// writes are then serialised by the database alone and Export is disabled.
func NewService(store *Store, cfg Config, locker lock.Locker, client storage.Client, bucket string, logger *zap.Logger) *Service {
	if locker == nil {
		locker = lock.Noop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DefaultUnit == "" {
		cfg.DefaultUnit = "式"
	}
	return &Service{
		store:  store,
		cfg:    cfg,
		locker: locker,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Logger returns the service logger.
func (s *Service) Logger() *zap.Logger {
	return s.logger
}

func checkKind(kind models.Kind) error {
	if kind != models.KindInvoice && kind != models.KindCost {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return nil
}

// withLock holds the document lock of each kind, in the given order, while fn runs.
func (s *Service) withLock(ctx context.Context, documentID uint64, kinds []models.Kind, fn func() error) error {
	for _, kind := range kinds {
		unlock, err := s.locker.Lock(ctx, lock.DocumentKey(string(kind), documentID))
		if err != nil {
			return err
		}
		defer unlock()
	}
	return fn()
}

func (s *Service) fail(op string, kind models.Kind, documentID uint64, err error) error {
	s.logger.Error("Item operation failed",
		zap.String("operation", op),
		zap.String("kind", string(kind)),
		zap.Uint64("document_id", documentID),
		zap.Error(err),
	)
	return err
}
