package schedule

import (
	"context"
	"fmt"
	"handicare-service/internal/app/config"
	"handicare-service/internal/app/contracts"
	"handicare-service/internal/app/models"
	"handicare-service/internal/pkg/constvars"
	"handicare-service/internal/pkg/exceptions"
	"handicare-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	redisGatewayInstance contracts.ScheduleGateway
	onceRedisGateway     sync.Once
)

// redisScheduleGateway stores availability documents in Redis with a rolling
// TTL. Writes are full replacements: the document's availableTime is always
// the complete schedule, never a partial merge. The nurse document keeps its
// seniors assignment across rewrites.
type redisScheduleGateway struct {
	redisRepo contracts.RedisRepository
	ttl       time.Duration
	Log       *zap.Logger
	now       func() time.Time
}

func NewRedisScheduleGateway(redisRepo contracts.RedisRepository, scheduleConfig config.Schedule, logger *zap.Logger) contracts.ScheduleGateway {
	onceRedisGateway.Do(func() {
		redisGatewayInstance = &redisScheduleGateway{
			redisRepo: redisRepo,
			ttl:       time.Duration(scheduleConfig.StoreTTLDays) * 24 * time.Hour,
			Log:       logger,
			now:       time.Now,
		}
	})
	return redisGatewayInstance
}

func (g *redisScheduleGateway) ReadSchedule(ctx context.Context, actorID string) ([]time.Time, error) {
	key := fmt.Sprintf(constvars.RedisKeyEmployeeScheduleFormat, actorID)
	raw, err := g.redisRepo.Get(ctx, key)
	if err != nil {
		return nil, exceptions.ErrScheduleGatewayRead(err)
	}
	if raw == "" {
		return nil, nil
	}

	doc := new(models.EmployeeScheduleData)
	if err := json.Unmarshal([]byte(raw), doc); err != nil {
		return nil, exceptions.ErrScheduleGatewayRead(err)
	}
	return parseWireTimes(doc.AvailableTime)
}

func (g *redisScheduleGateway) WriteSchedule(ctx context.Context, actorID string, times []time.Time) error {
	key := fmt.Sprintf(constvars.RedisKeyEmployeeScheduleFormat, actorID)

	doc := new(models.EmployeeScheduleData)
	raw, err := g.redisRepo.Get(ctx, key)
	if err != nil {
		return exceptions.ErrScheduleGatewayRead(err)
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), doc); err != nil {
			return exceptions.ErrScheduleGatewayRead(err)
		}
	}

	now := g.now()
	doc.AvailableTime = formatWireTimes(times)
	if doc.CreatedAt == "" {
		doc.CreatedAt = utils.FormatWireDateTime(now)
	}
	doc.ExpiresAt = utils.FormatWireDateTime(now.Add(g.ttl))

	if err := g.redisRepo.Set(ctx, key, doc, g.ttl); err != nil {
		return exceptions.ErrScheduleGatewayWrite(err)
	}

	g.Log.Info("redisScheduleGateway.WriteSchedule replaced schedule",
		zap.String(constvars.LoggingActorIDKey, actorID),
		zap.Int("slot_count", len(times)),
	)
	return nil
}

func (g *redisScheduleGateway) ReadGuardianRequest(ctx context.Context, seniorID int) (*models.GuardianRequestData, error) {
	key := fmt.Sprintf(constvars.RedisKeySeniorRequestFormat, seniorID)
	raw, err := g.redisRepo.Get(ctx, key)
	if err != nil {
		return nil, exceptions.ErrScheduleGatewayRead(err)
	}
	if raw == "" {
		return nil, nil
	}

	doc := new(models.GuardianRequestData)
	if err := json.Unmarshal([]byte(raw), doc); err != nil {
		return nil, exceptions.ErrScheduleGatewayRead(err)
	}
	return doc, nil
}

// WriteGuardianRequest stores the guardian's requested times for one senior.
// An empty time list withdraws the request and removes the key.
func (g *redisScheduleGateway) WriteGuardianRequest(ctx context.Context, guardianID string, seniorID int, times []time.Time) error {
	key := fmt.Sprintf(constvars.RedisKeySeniorRequestFormat, seniorID)

	if len(times) == 0 {
		if err := g.redisRepo.Delete(ctx, key); err != nil {
			return exceptions.ErrScheduleGatewayWrite(err)
		}
		return nil
	}

	doc := &models.GuardianRequestData{
		UserID:        guardianID,
		AvailableTime: formatWireTimes(times),
		RequestedAt:   utils.FormatWireDateTime(g.now()),
		Status:        constvars.MeetingMatchStatusPending,
	}
	if err := g.redisRepo.Set(ctx, key, doc, g.ttl); err != nil {
		return exceptions.ErrScheduleGatewayWrite(err)
	}

	g.Log.Info("redisScheduleGateway.WriteGuardianRequest stored request",
		zap.String(constvars.LoggingActorIDKey, guardianID),
		zap.Int(constvars.LoggingSeniorIDKey, seniorID),
		zap.Int("slot_count", len(times)),
	)
	return nil
}

func parseWireTimes(values []string) ([]time.Time, error) {
	times := make([]time.Time, 0, len(values))
	for _, value := range values {
		t, err := utils.ParseWireDateTime(value)
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, nil
}

func formatWireTimes(times []time.Time) []string {
	values := make([]string, 0, len(times))
	for _, t := range times {
		values = append(values, utils.FormatWireDateTime(t))
	}
	return values
}
