package matching

import (
	"context"
	"fmt"
	"handicare-service/internal/app/config"
	"handicare-service/internal/app/contracts"
	"handicare-service/internal/app/models"
	"handicare-service/internal/pkg/constvars"
	"handicare-service/internal/pkg/exceptions"
	"handicare-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	matchingUsecaseInstance contracts.MatchingUsecase
	onceMatchingUsecase     sync.Once
)

// matchingUsecase pairs each nurse's remaining availability with the guardian
// requests of their assigned seniors for one target date. Per nurse, confirmed
// matches are persisted to MongoDB and announced on the match queue first,
// then reflected back into the Redis store: matched guardian requests are
// removed and the nurse's schedule is rewritten without the claimed times.
// A failed insert therefore leaves that nurse's Redis state untouched.
type matchingUsecase struct {
	redisRepo    contracts.RedisRepository
	gateway      contracts.ScheduleGateway
	matchRepo    contracts.MeetingMatchRepository
	notifier     contracts.MatchNotifier
	Log          *zap.Logger
	leadTimeDays int
	now          func() time.Time
}

func NewMatchingUsecase(
	redisRepo contracts.RedisRepository,
	gateway contracts.ScheduleGateway,
	matchRepo contracts.MeetingMatchRepository,
	notifier contracts.MatchNotifier,
	scheduleConfig config.Schedule,
	logger *zap.Logger,
) contracts.MatchingUsecase {
	onceMatchingUsecase.Do(func() {
		matchingUsecaseInstance = &matchingUsecase{
			redisRepo:    redisRepo,
			gateway:      gateway,
			matchRepo:    matchRepo,
			notifier:     notifier,
			Log:          logger,
			leadTimeDays: scheduleConfig.LeadTimeDays,
			now:          time.Now,
		}
	})
	return matchingUsecaseInstance
}

func (uc *matchingUsecase) PerformMatching(ctx context.Context, targetDate string) ([]models.MeetingMatch, error) {
	now := uc.now()
	if targetDate == "" {
		// The nightly run matches the first date leaving the edit window.
		targetDate = utils.FormatWireDate(now.AddDate(0, 0, uc.leadTimeDays))
	} else if _, err := utils.ParseWireDate(targetDate); err != nil {
		return nil, err
	}

	keys, err := uc.redisRepo.ScanKeys(ctx, constvars.RedisKeyEmployeeSchedulePrefix+"*")
	if err != nil {
		return nil, err
	}

	uc.Log.Info("matchingUsecase.PerformMatching started",
		zap.String(constvars.LoggingTargetDateKey, targetDate),
		zap.Int("employee_count", len(keys)),
	)

	var allMatches []models.MeetingMatch
	for _, key := range keys {
		employeeID := strings.TrimPrefix(key, constvars.RedisKeyEmployeeSchedulePrefix)
		matches, err := uc.matchEmployee(ctx, employeeID, targetDate, now)
		if err != nil {
			return nil, err
		}
		allMatches = append(allMatches, matches...)
	}

	uc.Log.Info("matchingUsecase.PerformMatching finished",
		zap.String(constvars.LoggingTargetDateKey, targetDate),
		zap.Int(constvars.LoggingMatchCountKey, len(allMatches)),
	)
	return allMatches, nil
}

func (uc *matchingUsecase) ListMatches(ctx context.Context) ([]models.MeetingMatch, error) {
	return uc.matchRepo.ListMatches(ctx)
}

func (uc *matchingUsecase) matchEmployee(ctx context.Context, employeeID, targetDate string, now time.Time) ([]models.MeetingMatch, error) {
	key := fmt.Sprintf(constvars.RedisKeyEmployeeScheduleFormat, employeeID)
	raw, err := uc.redisRepo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	doc := new(models.EmployeeScheduleData)
	if err := json.Unmarshal([]byte(raw), doc); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if len(doc.Seniors) == 0 || len(doc.AvailableTime) == 0 {
		return nil, nil
	}

	requests := make(map[int][]string, len(doc.Seniors))
	guardians := make(map[int]string, len(doc.Seniors))
	for _, seniorID := range doc.Seniors {
		request, err := uc.gateway.ReadGuardianRequest(ctx, seniorID)
		if err != nil {
			return nil, err
		}
		if request == nil || request.Status != constvars.MeetingMatchStatusPending {
			continue
		}
		requests[seniorID] = request.AvailableTime
		guardians[seniorID] = request.UserID
	}
	if len(requests) == 0 {
		return nil, nil
	}

	assignments := matchSeniors(doc.AvailableTime, requests, targetDate)
	if len(assignments) == 0 {
		return nil, nil
	}

	matches := make([]models.MeetingMatch, 0, len(assignments))
	claimed := make(map[string]struct{}, len(assignments))
	for _, a := range assignments {
		meetingTime, err := utils.ParseWireDateTime(a.Time)
		if err != nil {
			return nil, err
		}
		claimed[a.Time] = struct{}{}
		matches = append(matches, models.MeetingMatch{
			ID:          uuid.NewString(),
			EmployeeID:  employeeID,
			GuardianID:  guardians[a.SeniorID],
			SeniorID:    a.SeniorID,
			MeetingTime: meetingTime,
			MatchedAt:   now,
			Status:      constvars.MeetingMatchStatusPending,
		})
	}

	// Persist before touching Redis: if the insert fails the requests and
	// the schedule are still intact for the next run.
	if err := uc.matchRepo.InsertMatches(ctx, matches); err != nil {
		return nil, err
	}
	for _, match := range matches {
		if err := uc.notifier.NotifyMatched(ctx, match); err != nil {
			// Already persisted; a lost event must not undo the run.
			uc.Log.Error("matchingUsecase.matchEmployee failed to publish match event",
				zap.String(constvars.LoggingActorIDKey, match.EmployeeID),
				zap.Int(constvars.LoggingSeniorIDKey, match.SeniorID),
				zap.Error(err),
			)
		}
	}

	for _, a := range assignments {
		requestKey := fmt.Sprintf(constvars.RedisKeySeniorRequestFormat, a.SeniorID)
		if err := uc.redisRepo.Delete(ctx, requestKey); err != nil {
			return nil, err
		}
	}

	var remaining []time.Time
	for _, value := range doc.AvailableTime {
		if _, taken := claimed[value]; taken {
			continue
		}
		t, err := utils.ParseWireDateTime(value)
		if err != nil {
			return nil, err
		}
		remaining = append(remaining, t)
	}
	if err := uc.gateway.WriteSchedule(ctx, employeeID, remaining); err != nil {
		return nil, err
	}

	uc.Log.Info("matchingUsecase.matchEmployee matched seniors",
		zap.String(constvars.LoggingActorIDKey, employeeID),
		zap.String(constvars.LoggingTargetDateKey, targetDate),
		zap.Int(constvars.LoggingMatchCountKey, len(matches)),
	)
	return matches, nil
}
