package v1

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/rescue_coordination_system/internal/apperror"
	"github.com/shenikar/rescue_coordination_system/internal/config"
	"github.com/shenikar/rescue_coordination_system/internal/realtime"
	"github.com/shenikar/rescue_coordination_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	alertService  service.AlertService
	rescueService service.RescueService
	reportService service.ReportService
	hub           *realtime.Hub
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(
	alertService service.AlertService,
	rescueService service.RescueService,
	reportService service.ReportService,
	hub *realtime.Hub,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	validate := validator.New()
	// report JSON field names in validation messages
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		alertService:  alertService,
		rescueService: rescueService,
		reportService: reportService,
		hub:           hub,
		logger:        logger,
		validate:      validate,
		cfg:           cfg,
	}
}

var kindStatus = map[apperror.Kind]int{
	apperror.KindBadRequest: http.StatusBadRequest,
	apperror.KindNotFound:   http.StatusNotFound,
	apperror.KindConflict:   http.StatusConflict,
	apperror.KindForbidden:  http.StatusForbidden,
	apperror.KindInternal:   http.StatusInternalServerError,
}

// respondError renders err as {"kind","message"}. Internal errors never
// leak their cause.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		appErr = apperror.Internal(err)
	}
	status, ok := kindStatus[appErr.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Warn("Request rejected")
	}
	c.JSON(status, ErrorResponse{Kind: string(appErr.Kind), Message: appErr.Message})
}

func (h *Handler) badRequest(c *gin.Context, log *logrus.Entry, message string, err error) {
	log.WithError(err).Warn(message)
	c.JSON(http.StatusBadRequest, ErrorResponse{Kind: string(apperror.KindBadRequest), Message: message})
}

// bindJSON decodes and validates the request body. It writes the 400
// response itself and reports whether the handler may continue.
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.badRequest(c, log, "invalid request body", err)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.badRequest(c, log, validationMessage(err), err)
		return false
	}
	return true
}

// validationMessage turns validator errors into "field is required" style text.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "oneof":
			msgs = append(msgs, fe.Field()+" must be one of "+fe.Param())
		case "gte":
			msgs = append(msgs, fe.Field()+" must be at least "+fe.Param())
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "ok",
		Subscribers: h.hub.SubscriberCount(),
	})
}
