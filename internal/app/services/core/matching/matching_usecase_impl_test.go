package matching

import (
	"context"
	"errors"
	"fmt"
	"handicare-service/internal/app/models"
	"handicare-service/internal/pkg/constvars"
	"handicare-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) ScanKeys(ctx context.Context, pattern string) ([]string, error) {
	args := m.Called(ctx, pattern)
	keys, _ := args.Get(0).([]string)
	return keys, args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

type MockScheduleGateway struct {
	mock.Mock
}

func (m *MockScheduleGateway) ReadSchedule(ctx context.Context, actorID string) ([]time.Time, error) {
	args := m.Called(ctx, actorID)
	times, _ := args.Get(0).([]time.Time)
	return times, args.Error(1)
}

func (m *MockScheduleGateway) WriteSchedule(ctx context.Context, actorID string, times []time.Time) error {
	args := m.Called(ctx, actorID, times)
	return args.Error(0)
}

func (m *MockScheduleGateway) ReadGuardianRequest(ctx context.Context, seniorID int) (*models.GuardianRequestData, error) {
	args := m.Called(ctx, seniorID)
	doc, _ := args.Get(0).(*models.GuardianRequestData)
	return doc, args.Error(1)
}

func (m *MockScheduleGateway) WriteGuardianRequest(ctx context.Context, guardianID string, seniorID int, times []time.Time) error {
	args := m.Called(ctx, guardianID, seniorID, times)
	return args.Error(0)
}

type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) InsertMatches(ctx context.Context, matches []models.MeetingMatch) error {
	args := m.Called(ctx, matches)
	return args.Error(0)
}

func (m *MockMatchRepository) ListMatches(ctx context.Context) ([]models.MeetingMatch, error) {
	args := m.Called(ctx)
	matches, _ := args.Get(0).([]models.MeetingMatch)
	return matches, args.Error(1)
}

type MockMatchNotifier struct {
	mock.Mock
}

func (m *MockMatchNotifier) NotifyMatched(ctx context.Context, match models.MeetingMatch) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

type usecaseMocks struct {
	redisRepo *MockRedisRepository
	gateway   *MockScheduleGateway
	matchRepo *MockMatchRepository
	notifier  *MockMatchNotifier
}

func newTestUsecase() (*matchingUsecase, *usecaseMocks) {
	mocks := &usecaseMocks{
		redisRepo: new(MockRedisRepository),
		gateway:   new(MockScheduleGateway),
		matchRepo: new(MockMatchRepository),
		notifier:  new(MockMatchNotifier),
	}
	usecase := &matchingUsecase{
		redisRepo:    mocks.redisRepo,
		gateway:      mocks.gateway,
		matchRepo:    mocks.matchRepo,
		notifier:     mocks.notifier,
		Log:          zap.NewNop(),
		leadTimeDays: 3,
		now: func() time.Time {
			return time.Date(2025, time.August, 18, 0, 30, 0, 0, time.Local)
		},
	}
	return usecase, mocks
}

func employeeDoc(t *testing.T, seniors []int, availableTime []string) string {
	t.Helper()
	raw, err := json.Marshal(models.EmployeeScheduleData{
		Seniors:       seniors,
		AvailableTime: availableTime,
		CreatedAt:     "20250810120000",
	})
	require.NoError(t, err)
	return string(raw)
}

func TestPerformMatching_MatchesAndCleansUp(t *testing.T) {
	usecase, mocks := newTestUsecase()
	employeeKey := fmt.Sprintf(constvars.RedisKeyEmployeeScheduleFormat, "nurse-1")

	mocks.redisRepo.On("ScanKeys", mock.Anything, constvars.RedisKeyEmployeeSchedulePrefix+"*").
		Return([]string{employeeKey}, nil).Once()
	mocks.redisRepo.On("Get", mock.Anything, employeeKey).
		Return(employeeDoc(t, []int{7}, []string{"20250825090000", "20250825100000"}), nil).Once()
	mocks.gateway.On("ReadGuardianRequest", mock.Anything, 7).
		Return(&models.GuardianRequestData{
			UserID:        "guardian-1",
			AvailableTime: []string{"20250825090000"},
			Status:        constvars.MeetingMatchStatusPending,
		}, nil).Once()

	// The matched request is removed and the nurse keeps only the
	// unclaimed time.
	mocks.redisRepo.On("Delete", mock.Anything, fmt.Sprintf(constvars.RedisKeySeniorRequestFormat, 7)).
		Return(nil).Once()
	mocks.gateway.On("WriteSchedule", mock.Anything, "nurse-1", []time.Time{
		time.Date(2025, time.August, 25, 10, 0, 0, 0, time.Local),
	}).Return(nil).Once()

	mocks.matchRepo.On("InsertMatches", mock.Anything, mock.MatchedBy(func(matches []models.MeetingMatch) bool {
		return len(matches) == 1 &&
			matches[0].EmployeeID == "nurse-1" &&
			matches[0].GuardianID == "guardian-1" &&
			matches[0].SeniorID == 7 &&
			matches[0].Status == constvars.MeetingMatchStatusPending &&
			matches[0].MeetingTime.Equal(time.Date(2025, time.August, 25, 9, 0, 0, 0, time.Local))
	})).Return(nil).Once()
	mocks.notifier.On("NotifyMatched", mock.Anything, mock.Anything).Return(nil).Once()

	matches, err := usecase.PerformMatching(context.Background(), "20250825")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.NotEmpty(t, matches[0].ID)

	mocks.redisRepo.AssertExpectations(t)
	mocks.gateway.AssertExpectations(t)
	mocks.matchRepo.AssertExpectations(t)
	mocks.notifier.AssertExpectations(t)
}

func TestPerformMatching_DefaultTargetDateLeavesEditWindow(t *testing.T) {
	usecase, mocks := newTestUsecase()
	employeeKey := fmt.Sprintf(constvars.RedisKeyEmployeeScheduleFormat, "nurse-1")

	mocks.redisRepo.On("ScanKeys", mock.Anything, mock.Anything).
		Return([]string{employeeKey}, nil).Once()
	// Availability on 2025-08-21, exactly leadTimeDays after "now".
	mocks.redisRepo.On("Get", mock.Anything, employeeKey).
		Return(employeeDoc(t, []int{7}, []string{"20250821090000"}), nil).Once()
	mocks.gateway.On("ReadGuardianRequest", mock.Anything, 7).
		Return(&models.GuardianRequestData{
			UserID:        "guardian-1",
			AvailableTime: []string{"20250821090000"},
			Status:        constvars.MeetingMatchStatusPending,
		}, nil).Once()
	mocks.redisRepo.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()
	mocks.gateway.On("WriteSchedule", mock.Anything, "nurse-1", mock.Anything).Return(nil).Once()
	mocks.matchRepo.On("InsertMatches", mock.Anything, mock.Anything).Return(nil).Once()
	mocks.notifier.On("NotifyMatched", mock.Anything, mock.Anything).Return(nil).Once()

	matches, err := usecase.PerformMatching(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestPerformMatching_InsertFailureLeavesRedisUntouched(t *testing.T) {
	usecase, mocks := newTestUsecase()
	employeeKey := fmt.Sprintf(constvars.RedisKeyEmployeeScheduleFormat, "nurse-1")

	mocks.redisRepo.On("ScanKeys", mock.Anything, mock.Anything).
		Return([]string{employeeKey}, nil).Once()
	mocks.redisRepo.On("Get", mock.Anything, employeeKey).
		Return(employeeDoc(t, []int{7}, []string{"20250825090000"}), nil).Once()
	mocks.gateway.On("ReadGuardianRequest", mock.Anything, 7).
		Return(&models.GuardianRequestData{
			UserID:        "guardian-1",
			AvailableTime: []string{"20250825090000"},
			Status:        constvars.MeetingMatchStatusPending,
		}, nil).Once()
	mocks.matchRepo.On("InsertMatches", mock.Anything, mock.Anything).
		Return(exceptions.ErrMongoDBInsertDocument(errors.New("mongo down"))).Once()

	_, err := usecase.PerformMatching(context.Background(), "20250825")
	require.Error(t, err)

	// The request and the schedule survive so the next run can retry.
	mocks.redisRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mocks.gateway.AssertNotCalled(t, "WriteSchedule", mock.Anything, mock.Anything, mock.Anything)
	mocks.notifier.AssertNotCalled(t, "NotifyMatched", mock.Anything, mock.Anything)
}

func TestPerformMatching_InvalidTargetDate(t *testing.T) {
	usecase, _ := newTestUsecase()

	_, err := usecase.PerformMatching(context.Background(), "2025-08-25")
	assert.Error(t, err)
}

func TestPerformMatching_SkipsNonPendingRequests(t *testing.T) {
	usecase, mocks := newTestUsecase()
	employeeKey := fmt.Sprintf(constvars.RedisKeyEmployeeScheduleFormat, "nurse-1")

	mocks.redisRepo.On("ScanKeys", mock.Anything, mock.Anything).
		Return([]string{employeeKey}, nil).Once()
	mocks.redisRepo.On("Get", mock.Anything, employeeKey).
		Return(employeeDoc(t, []int{7}, []string{"20250825090000"}), nil).Once()
	mocks.gateway.On("ReadGuardianRequest", mock.Anything, 7).
		Return(&models.GuardianRequestData{
			UserID:        "guardian-1",
			AvailableTime: []string{"20250825090000"},
			Status:        constvars.MeetingMatchStatusConducted,
		}, nil).Once()

	matches, err := usecase.PerformMatching(context.Background(), "20250825")
	require.NoError(t, err)
	assert.Empty(t, matches)
	mocks.matchRepo.AssertNotCalled(t, "InsertMatches", mock.Anything, mock.Anything)
	mocks.gateway.AssertNotCalled(t, "WriteSchedule", mock.Anything, mock.Anything, mock.Anything)
}

func TestPerformMatching_NoEmployees(t *testing.T) {
	usecase, mocks := newTestUsecase()

	mocks.redisRepo.On("ScanKeys", mock.Anything, mock.Anything).Return(nil, nil).Once()

	matches, err := usecase.PerformMatching(context.Background(), "20250825")
	require.NoError(t, err)
	assert.Empty(t, matches)
}
