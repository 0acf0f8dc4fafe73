package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"handicare-service/internal/app/config"
	"handicare-service/internal/app/delivery/http/controllers"
	"handicare-service/internal/app/delivery/http/middlewares"
	"handicare-service/internal/app/models"
	"handicare-service/internal/pkg/constvars"
	"handicare-service/internal/pkg/dto/responses"
	"handicare-service/internal/pkg/exceptions"
	"handicare-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockScheduleUsecase struct {
	mock.Mock
}

func (m *MockScheduleUsecase) GetEmployeeSchedule(ctx context.Context, actorID string) (*responses.EmployeeSchedule, error) {
	args := m.Called(ctx, actorID)
	response, _ := args.Get(0).(*responses.EmployeeSchedule)
	return response, args.Error(1)
}

func (m *MockScheduleUsecase) RegisterEmployeeSchedule(ctx context.Context, actorID string, checkedTime []string) error {
	args := m.Called(ctx, actorID, checkedTime)
	return args.Error(0)
}

func (m *MockScheduleUsecase) GetGuardianSchedule(ctx context.Context, seniorID int) (*responses.GuardianSchedule, error) {
	args := m.Called(ctx, seniorID)
	response, _ := args.Get(0).(*responses.GuardianSchedule)
	return response, args.Error(1)
}

func (m *MockScheduleUsecase) RegisterGuardianSchedule(ctx context.Context, guardianID string, seniorID int, checkedTime []string) error {
	args := m.Called(ctx, guardianID, seniorID, checkedTime)
	return args.Error(0)
}

func (m *MockScheduleUsecase) OpenEditor(ctx context.Context, actorID string) (*responses.EditorState, error) {
	args := m.Called(ctx, actorID)
	state, _ := args.Get(0).(*responses.EditorState)
	return state, args.Error(1)
}

func (m *MockScheduleUsecase) CloseEditor(actorID string) {
	m.Called(actorID)
}

func (m *MockScheduleUsecase) EditorState(actorID string) (*responses.EditorState, error) {
	args := m.Called(actorID)
	state, _ := args.Get(0).(*responses.EditorState)
	return state, args.Error(1)
}

func (m *MockScheduleUsecase) EditorSelectDate(actorID string, date string) (*responses.EditorState, error) {
	args := m.Called(actorID, date)
	state, _ := args.Get(0).(*responses.EditorState)
	return state, args.Error(1)
}

func (m *MockScheduleUsecase) EditorToggleSlot(actorID string, slot string) (*responses.EditorState, error) {
	args := m.Called(actorID, slot)
	state, _ := args.Get(0).(*responses.EditorState)
	return state, args.Error(1)
}

func (m *MockScheduleUsecase) EditorSelectAllSlots(actorID string) (*responses.EditorState, error) {
	args := m.Called(actorID)
	state, _ := args.Get(0).(*responses.EditorState)
	return state, args.Error(1)
}

func (m *MockScheduleUsecase) EditorStageCurrentDate(actorID string) (*responses.EditorState, error) {
	args := m.Called(actorID)
	state, _ := args.Get(0).(*responses.EditorState)
	return state, args.Error(1)
}

func (m *MockScheduleUsecase) EditorResetCurrentDate(actorID string) (*responses.EditorState, error) {
	args := m.Called(actorID)
	state, _ := args.Get(0).(*responses.EditorState)
	return state, args.Error(1)
}

func (m *MockScheduleUsecase) EditorSubmitAll(ctx context.Context, actorID string) (*responses.EditorState, error) {
	args := m.Called(ctx, actorID)
	state, _ := args.Get(0).(*responses.EditorState)
	return state, args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

const testJWTSecret = "test-secret"

func bearerFor(t *testing.T, sessionService *MockSessionService, sessionID, userID, role string) string {
	t.Helper()
	session := models.Session{SessionID: sessionID, UserID: userID, Role: role}
	sessionJSON, err := json.Marshal(session)
	require.NoError(t, err)

	sessionService.On("GetSessionData", mock.Anything, sessionID).Return(string(sessionJSON), nil)
	sessionService.On("ParseSessionData", mock.Anything, string(sessionJSON)).Return(&session, nil)

	token, err := utils.GenerateJWT(sessionID, testJWTSecret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestScheduleRouter_EditorEndpoints(t *testing.T) {
	logger := zap.NewNop()
	scheduleUsecase := new(MockScheduleUsecase)
	sessionService := new(MockSessionService)

	internalConfig := &config.InternalConfig{
		App: config.App{Env: "development"},
		JWT: config.JWT{Secret: testJWTSecret},
	}
	middlewareInstance := middlewares.NewMiddlewares(logger, sessionService, internalConfig)
	scheduleController := controllers.NewScheduleController(logger, scheduleUsecase)

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	router.Route("/meeting/schedule", func(r chi.Router) {
		attachScheduleRoutes(r, middlewareInstance, scheduleController)
	})

	nurseBearer := bearerFor(t, sessionService, "sess-nurse", "nurse-1", constvars.RoleEmployee)
	guardianBearer := bearerFor(t, sessionService, "sess-guardian", "guardian-1", constvars.RoleGuardian)

	t.Run("open editor succeeds for a nurse", func(t *testing.T) {
		scheduleUsecase.On("OpenEditor", mock.Anything, "nurse-1").Return(&responses.EditorState{
			State:       constvars.EditorStateIdle,
			SlotCatalog: []string{"09:00", "09:30"},
		}, nil).Once()

		req := httptest.NewRequest("POST", "/meeting/schedule/editor/", nil)
		req.Header.Set(constvars.HeaderAuthorization, nurseBearer)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, constvars.EditorOpenedSuccessMessage, body.Message)
	})

	t.Run("missing token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/meeting/schedule/editor/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("guardian role cannot reach the editor", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/meeting/schedule/editor/", nil)
		req.Header.Set(constvars.HeaderAuthorization, guardianBearer)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("toggle on a blocked date surfaces the policy rejection", func(t *testing.T) {
		scheduleUsecase.On("EditorToggleSlot", "nurse-1", "09:00").
			Return(nil, exceptions.ErrScheduleEditBlocked("2025-08-20")).Once()

		body, err := json.Marshal(map[string]string{"slot": "09:00"})
		require.NoError(t, err)
		req := httptest.NewRequest("PUT", "/meeting/schedule/editor/slot", bytes.NewBuffer(body))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		req.Header.Set(constvars.HeaderAuthorization, nurseBearer)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var response exceptions.CustomError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.False(t, response.Success)
		assert.Equal(t, constvars.ErrClientDateEditBlocked, response.ClientMessage)
	})

	t.Run("malformed date fails input validation", func(t *testing.T) {
		body, err := json.Marshal(map[string]string{"date": "25-08-2025"})
		require.NoError(t, err)
		req := httptest.NewRequest("PUT", "/meeting/schedule/editor/date", bytes.NewBuffer(body))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		req.Header.Set(constvars.HeaderAuthorization, nurseBearer)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		scheduleUsecase.AssertNotCalled(t, "EditorSelectDate", mock.Anything, mock.Anything)
	})

	t.Run("submit returns the refreshed state", func(t *testing.T) {
		scheduleUsecase.On("EditorSubmitAll", mock.Anything, "nurse-1").Return(&responses.EditorState{
			State: constvars.EditorStateIdle,
		}, nil).Once()

		req := httptest.NewRequest("POST", "/meeting/schedule/editor/submit", nil)
		req.Header.Set(constvars.HeaderAuthorization, nurseBearer)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	scheduleUsecase.AssertExpectations(t)
}
