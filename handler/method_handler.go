// file: handler/method_handler.go

package handler

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"

	"scoring-api/common"
	"scoring-api/logger"
	"scoring-api/model"
	"scoring-api/service"
)

// Admin callers get a fixed score; the store is bypassed entirely.
const adminScore = 42

// MethodHandler dispatches /method calls: envelope validation, token
// check, then routing to the requested operation.
type MethodHandler struct {
	authService    *service.AuthService
	scoringService *service.ScoringService
}

func NewMethodHandler(authService *service.AuthService, scoringService *service.ScoringService) *MethodHandler {
	return &MethodHandler{
		authService:    authService,
		scoringService: scoringService,
	}
}

// Method godoc
// @Summary      Invoke an API method
// @Description  Validates the envelope, authenticates the caller and routes to online_score or clients_interests.
// @Tags         method
// @Accept       json
// @Produce      json
// @Param        request  body      object  true  "Method envelope"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  common.AppError
// @Failure      403      {object}  common.AppError
// @Failure      404      {object}  common.AppError
// @Failure      422      {object}  common.AppError
// @Failure      500      {object}  common.AppError
// @Router       /method [post]
func (h *MethodHandler) Method(w http.ResponseWriter, r *http.Request) *common.AppError {
	if r.Method != http.MethodPost {
		return common.NewAppError(http.StatusNotFound, "", nil)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return common.NewAppError(http.StatusBadRequest, "", err)
	}

	req, err := model.ParseMethodRequest(body)
	if err != nil {
		return common.NewAppError(http.StatusUnprocessableEntity, err.Error(), nil)
	}

	if !h.authService.Check(req) {
		return common.NewAppError(http.StatusForbidden, "Forbidden", nil)
	}

	switch req.Method {
	case "online_score":
		return h.onlineScore(w, r, req)
	case "clients_interests":
		return h.clientsInterests(w, r, req)
	default:
		return common.NewAppError(http.StatusNotFound, "unknown method", nil)
	}
}

func (h *MethodHandler) onlineScore(w http.ResponseWriter, r *http.Request, req *model.MethodRequest) *common.AppError {
	args, err := model.ParseOnlineScoreRequest(req.Arguments)
	if err != nil {
		return common.NewAppError(http.StatusUnprocessableEntity, err.Error(), nil)
	}
	if !args.PairFilled() {
		return common.NewAppError(http.StatusUnprocessableEntity, "at least one pair must be filled", nil)
	}

	logger.Log.WithFields(logrus.Fields{
		"request_id": RequestIDFromContext(r.Context()),
		"has":        presentArguments(req.Arguments),
	}).Info("online_score request")

	var score float64
	if h.authService.IsAdmin(req) {
		score = adminScore
	} else {
		score = h.scoringService.GetScore(r.Context(), args)
	}

	common.SendResponse(w, map[string]float64{"score": score})
	return nil
}

func (h *MethodHandler) clientsInterests(w http.ResponseWriter, r *http.Request, req *model.MethodRequest) *common.AppError {
	args, err := model.ParseClientsInterestsRequest(req.Arguments)
	if err != nil {
		return common.NewAppError(http.StatusUnprocessableEntity, err.Error(), nil)
	}

	logger.Log.WithFields(logrus.Fields{
		"request_id": RequestIDFromContext(r.Context()),
		"nclients":   len(args.ClientIDs),
	}).Info("clients_interests request")

	interests := make(map[string][]string, len(args.ClientIDs))
	for _, id := range args.ClientIDs {
		list, err := h.scoringService.GetInterests(r.Context(), id)
		if err != nil {
			return common.NewAppError(http.StatusInternalServerError, "", err)
		}
		interests[strconv.FormatInt(id, 10)] = list
	}

	common.SendResponse(w, interests)
	return nil
}

// presentArguments lists the argument names whose supplied value is
// non-absent and non-empty, for observability.
func presentArguments(args map[string]interface{}) []string {
	names := make([]string, 0, len(args))
	for name, v := range args {
		if v == nil || v == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
