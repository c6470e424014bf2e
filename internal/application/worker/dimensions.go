package worker

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF header decoder
	_ "image/jpeg" // register JPEG header decoder
	_ "image/png"  // register PNG header decoder
	"sync"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // register WebP header decoder

	"snapshare/internal/domain/repository/broker"
	"snapshare/internal/domain/repository/database"
	"snapshare/internal/domain/repository/storage"
	"snapshare/pkg/logger"
	"snapshare/pkg/utils"
)

// DimensionProcessor fills in metadata width and height for uploaded photos
// whose client did not report them.
type DimensionProcessor struct {
	receiver  broker.Receiver
	retriever database.Retriever
	updater   database.Updater
	store     storage.BlobStore
	config    Config
}

func NewDimensionProcessor(receiver broker.Receiver, retriever database.Retriever,
	updater database.Updater, store storage.BlobStore, cfg Config,
) *DimensionProcessor {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10000
	}

	return &DimensionProcessor{
		receiver:  receiver,
		retriever: retriever,
		updater:   updater,
		store:     store,
		config:    cfg,
	}
}

// Run consumes photo ids until ctx is cancelled.
func (p *DimensionProcessor) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	for i := 0; i < p.config.Concurrency; i++ {
		name := "dimensions-" + uuid.NewString()

		messages, err := p.receiver.Messages(ctx, name)
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", name, err)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			for msg := range messages {
				p.handle(ctx, msg)
			}
		}()
	}

	logger.Info("dimension worker started", "consumers", p.config.Concurrency)
	wg.Wait()

	return nil
}

func (p *DimensionProcessor) handle(ctx context.Context, msg broker.Message) {
	if err := p.Process(ctx, msg.Body()); err != nil {
		logger.Error("dimension extraction failed, leaving message pending", "id", msg.Body(), "err", err)
		if err := msg.Nack(); err != nil {
			logger.Error("failed to nack message", "id", msg.Body(), "err", err)
		}

		return
	}

	if err := msg.Ack(); err != nil {
		logger.Error("failed to ack message", "id", msg.Body(), "err", err)
	}
}

// Process handles a single photo id. A nil error means the message is done
// with, including photos that were deleted or cannot be decoded.
func (p *DimensionProcessor) Process(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(p.config.Timeout)*time.Millisecond)
	defer cancel()

	photo, err := p.retriever.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil
		}

		return err
	}

	if photo.Metadata.HasDimensions() || !utils.IsImage(photo.MimeType) {
		return nil
	}

	rc, err := p.store.Get(ctx, photo.BinaryRef)
	if err != nil {
		return err
	}
	defer rc.Close()

	cfg, format, err := image.DecodeConfig(rc)
	if err != nil {
		logger.Warn("couldn't decode image header", "id", id, "mime", photo.MimeType, "err", err)

		return nil
	}

	if err := p.updater.SetDimensions(ctx, id, cfg.Width, cfg.Height); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil
		}

		return err
	}

	logger.Debug("photo dimensions stored", "id", id, "format", format,
		"width", cfg.Width, "height", cfg.Height)

	return nil
}
