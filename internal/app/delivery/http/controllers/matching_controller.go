package controllers

import (
	"context"
	"encoding/json"
	"handicare-service/internal/app/contracts"
	"handicare-service/internal/pkg/constvars"
	"handicare-service/internal/pkg/dto/requests"
	"handicare-service/internal/pkg/dto/responses"
	"handicare-service/internal/pkg/exceptions"
	"handicare-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type MatchingController struct {
	Log             *zap.Logger
	MatchingUsecase contracts.MatchingUsecase
}

var (
	matchingControllerInstance *MatchingController
	onceMatchingController     sync.Once
)

func NewMatchingController(logger *zap.Logger, matchingUsecase contracts.MatchingUsecase) *MatchingController {
	onceMatchingController.Do(func() {
		instance := &MatchingController{
			Log:             logger,
			MatchingUsecase: matchingUsecase,
		}
		matchingControllerInstance = instance
	})
	return matchingControllerInstance
}

// RunMatching triggers a matching pass on demand. The nightly worker runs the
// same usecase; this endpoint exists for operators and integration tests.
func (ctrl *MatchingController) RunMatching(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("MatchingController.RunMatching requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("MatchingController.RunMatching called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.RunMatching)
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
		if err := utils.ValidateStruct(request); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	matches, err := ctrl.MatchingUsecase.PerformMatching(ctx, request.TargetDate)
	if err != nil {
		ctrl.Log.Error("MatchingController.RunMatching error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTargetDateKey, request.TargetDate),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := responses.MatchingRun{
		TargetDate: request.TargetDate,
		Matches:    make([]responses.MeetingMatch, 0, len(matches)),
	}
	for _, match := range matches {
		response.Matches = append(response.Matches, responses.MeetingMatch{
			ID:          match.ID,
			EmployeeID:  match.EmployeeID,
			GuardianID:  match.GuardianID,
			SeniorID:    match.SeniorID,
			MeetingTime: match.MeetingTime,
			MatchedAt:   match.MatchedAt,
			Status:      match.Status,
		})
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RunMatchingSuccessMessage, response)
}

func (ctrl *MatchingController) ListMatches(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("MatchingController.ListMatches requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	matches, err := ctrl.MatchingUsecase.ListMatches(ctx)
	if err != nil {
		ctrl.Log.Error("MatchingController.ListMatches error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := make([]responses.MeetingMatch, 0, len(matches))
	for _, match := range matches {
		response = append(response, responses.MeetingMatch{
			ID:          match.ID,
			EmployeeID:  match.EmployeeID,
			GuardianID:  match.GuardianID,
			SeniorID:    match.SeniorID,
			MeetingTime: match.MeetingTime,
			MatchedAt:   match.MatchedAt,
			Status:      match.Status,
		})
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListMatchesSuccessMessage, response)
}
