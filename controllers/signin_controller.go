package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dojoroll/config"
	"dojoroll/models"
	"dojoroll/store"
	"dojoroll/utils"
)

const dateLayout = "2006-01-02"

// SignInController handles recording and querying class sign-ins.
type SignInController struct {
	store store.Store
	log   *zap.Logger
}

// NewSignInController creates a new controller instance.
func NewSignInController(st store.Store, log *zap.Logger) *SignInController {
	return &SignInController{store: st, log: log}
}

// Classify maps a class name onto the profile counter it increments. The
// no-gi marker is checked first: "No-Gi Open Mat" contains "gi" too, but
// counts as no-gi. A class matching neither marker counts toward nothing.
func Classify(className string) store.Counter {
	cfg := config.Get()
	lower := strings.ToLower(className)
	switch {
	case strings.Contains(lower, strings.ToLower(cfg.NoGiMarker)):
		return store.CounterNogi
	case strings.Contains(lower, strings.ToLower(cfg.GiMarker)):
		return store.CounterGi
	default:
		return store.CounterNone
	}
}

// RecordSignIn handles POST /signins. The record lands in today's bucket
// regardless of any date in the payload; the submitted timestamp is kept for
// audit only.
func (s *SignInController) RecordSignIn(ctx *gin.Context) {
	var req models.SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	ts, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		s.log.Error("invalid sign-in timestamp", zap.String("timestamp", req.Timestamp), zap.Error(err))
		utils.InternalErrorText(ctx)
		return
	}

	today := time.Now().Format(dateLayout)
	rec := models.SignInRecord{
		Name:      utils.Sanitize(req.Name),
		Time:      req.Time,
		Type:      req.Type,
		Timestamp: ts,
	}

	if err := s.store.RecordSignIn(ctx.Request.Context(), today, req.ClassName, req.UID, rec, Classify(req.ClassName)); err != nil {
		s.log.Error("error recording sign-in",
			zap.String("uid", req.UID),
			zap.String("className", req.ClassName),
			zap.Error(err),
		)
		utils.InternalErrorText(ctx)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Sign-in recorded and count updated."})
}

// ListSignIns handles GET /signins/:date, returning every class recorded
// under the date mapped to its sign-in records. A date with no sign-ins is an
// empty object, not an error.
func (s *SignInController) ListSignIns(ctx *gin.Context) {
	date := ctx.Param("date")

	classes, err := s.store.ClassesOn(ctx.Request.Context(), date)
	if err != nil {
		s.log.Error("error fetching sign-ins", zap.String("date", date), zap.Error(err))
		utils.InternalErrorJSON(ctx)
		return
	}

	result := map[string][]models.SignInRecord{}
	for _, className := range classes {
		records, err := s.store.SignInsFor(ctx.Request.Context(), date, className)
		if err != nil {
			s.log.Error("error fetching sign-ins",
				zap.String("date", date),
				zap.String("className", className),
				zap.Error(err),
			)
			utils.InternalErrorJSON(ctx)
			return
		}
		result[className] = records
	}

	ctx.JSON(http.StatusOK, result)
}
