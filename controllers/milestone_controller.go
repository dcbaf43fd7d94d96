package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dojoroll/config"
	"dojoroll/models"
	"dojoroll/store"
	"dojoroll/utils"
)

// MilestoneType labels every total-class milestone event.
const MilestoneType = "Total BJJ Classes"

// MilestoneController scans user profiles for newly crossed class-count
// thresholds.
type MilestoneController struct {
	store store.Store
	log   *zap.Logger
}

// NewMilestoneController creates a new controller instance.
func NewMilestoneController(st store.Store, log *zap.Logger) *MilestoneController {
	return &MilestoneController{store: st, log: log}
}

// CheckMilestones handles GET /milestones: it returns the fired events and
// acknowledges them so an immediate rescan returns nothing new.
func (m *MilestoneController) CheckMilestones(ctx *gin.Context) {
	events, err := m.Scan(ctx.Request.Context())
	if err != nil {
		m.log.Error("error checking milestones", zap.Error(err))
		utils.InternalErrorJSON(ctx)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// Scan walks every user profile and fires one event per threshold multiple
// crossed since the last acknowledged milestone. A total that jumped over a
// multiple between scans still fires for it: crossing is detected by
// comparing threshold floors, not by landing exactly on a multiple. The
// highest crossed multiple is persisted before moving to the next user, so
// the invariant totalMilestone <= total holds whenever a scan completes.
func (m *MilestoneController) Scan(ctx context.Context) ([]models.MilestoneEvent, error) {
	step := config.Get().MilestoneStep

	users, err := m.store.Users(ctx)
	if err != nil {
		return nil, err
	}

	events := []models.MilestoneEvent{}
	for _, u := range users {
		total := u.Total()
		if total/step <= u.TotalMilestone/step {
			continue
		}

		name := u.DisplayName
		if name == "" {
			name = u.Email
		}

		// One event per crossed multiple, lowest first.
		for threshold := (u.TotalMilestone/step + 1) * step; threshold <= total; threshold += step {
			events = append(events, models.MilestoneEvent{
				Name:  name,
				Type:  MilestoneType,
				Count: threshold,
			})
		}

		acked := total / step * step
		if err := m.store.AcknowledgeMilestone(ctx, u.UID, acked); err != nil {
			return nil, err
		}
	}

	return events, nil
}

// StartScanWorker runs Scan on a fixed interval and logs whatever fires.
// Events surfaced here are informational; the HTTP endpoint remains the
// authoritative consumer. Best-effort, failures are logged and retried on
// the next tick.
func (m *MilestoneController) StartScanWorker(interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		for {
			time.Sleep(interval)
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			events, err := m.Scan(ctx)
			cancel()
			if err != nil {
				m.log.Error("milestone scan worker failed", zap.Error(err))
				continue
			}
			for _, ev := range events {
				m.log.Info("milestone reached",
					zap.String("name", ev.Name),
					zap.String("type", ev.Type),
					zap.Int("count", ev.Count),
				)
			}
		}
	}()
}
