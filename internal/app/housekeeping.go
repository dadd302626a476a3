package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

// Housekeeper периодическая уборка хранилища:
// старые ручные слоты и блокировки удаляются, счётчики пакетов сверяются с сессиями
type Housekeeper struct {
	customSlots   Pruner
	blocks        Pruner
	usage         UsageReconciler
	retentionDays int
	timeProvider  TimeProvider
	logger        Logger
}

// NewHousekeeper создает Housekeeper; retentionDays = 0 отключает удаление
func NewHousekeeper(customSlots, blocks Pruner, usage UsageReconciler, retentionDays int, logger Logger) *Housekeeper {
	return &Housekeeper{
		customSlots:   customSlots,
		blocks:        blocks,
		usage:         usage,
		retentionDays: retentionDays,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// RunOnce выполняет один проход уборки
// Ошибка одного шага не останавливает остальные
func (h *Housekeeper) RunOnce(ctx context.Context) error {
	var errs []error

	if h.retentionDays > 0 {
		cutoff := h.timeProvider.Now().AddDate(0, 0, -h.retentionDays).Format(domain.DateFormat)

		removed, err := h.customSlots.DeleteBefore(ctx, cutoff)
		if err != nil {
			h.logger.Error("Housekeeper: failed to prune custom slots: %v", err)
			errs = append(errs, fmt.Errorf("custom slots: %w", err))
		} else if removed > 0 {
			h.logger.Info("Housekeeper: pruned custom slots before=%s, removed=%d", cutoff, removed)
		}

		removed, err = h.blocks.DeleteBefore(ctx, cutoff)
		if err != nil {
			h.logger.Error("Housekeeper: failed to prune blocks: %v", err)
			errs = append(errs, fmt.Errorf("blocks: %w", err))
		} else if removed > 0 {
			h.logger.Info("Housekeeper: pruned blocks before=%s, removed=%d", cutoff, removed)
		}
	}

	if _, err := h.usage.ReconcileUsage(ctx); err != nil {
		h.logger.Error("Housekeeper: failed to reconcile usage: %v", err)
		errs = append(errs, fmt.Errorf("usage: %w", err))
	}

	return errors.Join(errs...)
}

// Start запускает уборку по cron расписанию; возвращает функцию остановки
func (h *Housekeeper) Start(ctx context.Context, spec string) (func(), error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		runCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		_ = h.RunOnce(runCtx)
	})
	if err != nil {
		return nil, fmt.Errorf("housekeeping schedule %q: %w", spec, err)
	}
	c.Start()
	h.logger.Info("Housekeeper: scheduled with spec=%q, retention_days=%d", spec, h.retentionDays)

	return func() {
		<-c.Stop().Done()
	}, nil
}

// ImportLegacy однократный перенос данных старого формата при старте
func ImportLegacy(ctx context.Context, importer LegacyImporter, usage UsageReconciler, logger Logger) error {
	moved, err := importer.ImportLegacyPartitions(ctx)
	if err != nil {
		return fmt.Errorf("import legacy sessions: %w", err)
	}
	if moved > 0 {
		logger.Info("ImportLegacy: merged %d sessions from legacy partitions", moved)
	}

	if _, err := usage.ReconcileUsage(ctx); err != nil {
		return fmt.Errorf("reconcile usage: %w", err)
	}
	return nil
}
