package controllers

import (
	"context"
	"encoding/json"
	"handicare-service/internal/app/contracts"
	"handicare-service/internal/app/models"
	"handicare-service/internal/pkg/constvars"
	"handicare-service/internal/pkg/dto/requests"
	"handicare-service/internal/pkg/exceptions"
	"handicare-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
}

var (
	scheduleControllerInstance *ScheduleController
	onceScheduleController     sync.Once
)

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase) *ScheduleController {
	onceScheduleController.Do(func() {
		instance := &ScheduleController{
			Log:             logger,
			ScheduleUsecase: scheduleUsecase,
		}
		scheduleControllerInstance = instance
	})
	return scheduleControllerInstance
}

// requestSession pulls the request ID and authenticated session off the
// context, writing the error response itself when either is missing.
func (ctrl *ScheduleController) requestSession(w http.ResponseWriter, r *http.Request, operation string) (string, *models.Session, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error(operation + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", nil, false
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		ctrl.Log.Error(operation+" sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return "", nil, false
	}

	ctrl.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorIDKey, session.UserID),
	)
	return requestID, session, true
}

func (ctrl *ScheduleController) GetEmployeeSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.requestSession(w, r, "ScheduleController.GetEmployeeSchedule")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.GetEmployeeSchedule(ctx, session.UserID)
	if err != nil {
		ctrl.Log.Error("ScheduleController.GetEmployeeSchedule error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEmployeeScheduleSuccessMessage, response)
}

func (ctrl *ScheduleController) RegisterEmployeeSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.requestSession(w, r, "ScheduleController.RegisterEmployeeSchedule")
	if !ok {
		return
	}

	request := new(requests.RegisterEmployeeSchedule)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("ScheduleController.RegisterEmployeeSchedule error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ScheduleUsecase.RegisterEmployeeSchedule(ctx, session.UserID, request.CheckedTime); err != nil {
		ctrl.Log.Error("ScheduleController.RegisterEmployeeSchedule error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegisterEmployeeScheduleSuccessMessage, nil)
}

func (ctrl *ScheduleController) GetGuardianSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, _, ok := ctrl.requestSession(w, r, "ScheduleController.GetGuardianSchedule")
	if !ok {
		return
	}

	seniorID, err := strconv.Atoi(chi.URLParam(r, "seniorID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.GetGuardianSchedule(ctx, seniorID)
	if err != nil {
		ctrl.Log.Error("ScheduleController.GetGuardianSchedule error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetGuardianScheduleSuccessMessage, response)
}

func (ctrl *ScheduleController) RegisterGuardianSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.requestSession(w, r, "ScheduleController.RegisterGuardianSchedule")
	if !ok {
		return
	}

	request := new(requests.RegisterGuardianSchedule)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ScheduleUsecase.RegisterGuardianSchedule(ctx, session.UserID, request.SeniorID, request.CheckedTime); err != nil {
		ctrl.Log.Error("ScheduleController.RegisterGuardianSchedule error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingSeniorIDKey, request.SeniorID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegisterGuardianScheduleSuccessMessage, nil)
}

func (ctrl *ScheduleController) OpenEditor(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.requestSession(w, r, "ScheduleController.OpenEditor")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	state, err := ctrl.ScheduleUsecase.OpenEditor(ctx, session.UserID)
	if err != nil {
		ctrl.Log.Error("ScheduleController.OpenEditor error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EditorOpenedSuccessMessage, state)
}

func (ctrl *ScheduleController) CloseEditor(w http.ResponseWriter, r *http.Request) {
	_, session, ok := ctrl.requestSession(w, r, "ScheduleController.CloseEditor")
	if !ok {
		return
	}

	ctrl.ScheduleUsecase.CloseEditor(session.UserID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EditorClosedSuccessMessage, nil)
}

func (ctrl *ScheduleController) EditorState(w http.ResponseWriter, r *http.Request) {
	_, session, ok := ctrl.requestSession(w, r, "ScheduleController.EditorState")
	if !ok {
		return
	}

	state, err := ctrl.ScheduleUsecase.EditorState(session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EditorStateSuccessMessage, state)
}

func (ctrl *ScheduleController) EditorSelectDate(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.requestSession(w, r, "ScheduleController.EditorSelectDate")
	if !ok {
		return
	}

	request := new(requests.EditorSelectDate)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	state, err := ctrl.ScheduleUsecase.EditorSelectDate(session.UserID, request.Date)
	if err != nil {
		ctrl.Log.Error("ScheduleController.EditorSelectDate error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, request.Date),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EditorDateSelectedSuccessMessage, state)
}

func (ctrl *ScheduleController) EditorToggleSlot(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.requestSession(w, r, "ScheduleController.EditorToggleSlot")
	if !ok {
		return
	}

	request := new(requests.EditorToggleSlot)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	state, err := ctrl.ScheduleUsecase.EditorToggleSlot(session.UserID, request.Slot)
	if err != nil {
		ctrl.Log.Error("ScheduleController.EditorToggleSlot error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotKey, request.Slot),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EditorSlotToggledSuccessMessage, state)
}

func (ctrl *ScheduleController) EditorSelectAllSlots(w http.ResponseWriter, r *http.Request) {
	_, session, ok := ctrl.requestSession(w, r, "ScheduleController.EditorSelectAllSlots")
	if !ok {
		return
	}

	state, err := ctrl.ScheduleUsecase.EditorSelectAllSlots(session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EditorAllSlotsToggledSuccessMessage, state)
}

func (ctrl *ScheduleController) EditorStageCurrentDate(w http.ResponseWriter, r *http.Request) {
	_, session, ok := ctrl.requestSession(w, r, "ScheduleController.EditorStageCurrentDate")
	if !ok {
		return
	}

	state, err := ctrl.ScheduleUsecase.EditorStageCurrentDate(session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EditorDateStagedSuccessMessage, state)
}

func (ctrl *ScheduleController) EditorResetCurrentDate(w http.ResponseWriter, r *http.Request) {
	_, session, ok := ctrl.requestSession(w, r, "ScheduleController.EditorResetCurrentDate")
	if !ok {
		return
	}

	state, err := ctrl.ScheduleUsecase.EditorResetCurrentDate(session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EditorDateResetSuccessMessage, state)
}

func (ctrl *ScheduleController) EditorSubmitAll(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.requestSession(w, r, "ScheduleController.EditorSubmitAll")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	state, err := ctrl.ScheduleUsecase.EditorSubmitAll(ctx, session.UserID)
	if err != nil {
		ctrl.Log.Error("ScheduleController.EditorSubmitAll error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.EditorSubmitAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EditorSubmittedSuccessMessage, state)
}
