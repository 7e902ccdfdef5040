package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"VCS_Link_Checker/internal/link-service/api/dto/request"
	"VCS_Link_Checker/internal/link-service/api/dto/response"
	apperrors "VCS_Link_Checker/internal/link-service/errors"
	"VCS_Link_Checker/internal/link-service/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type LinkCheckerHandler interface {
	GetResourcesToCheck() gin.HandlerFunc
	Upsert() gin.HandlerFunc
	GetResult() gin.HandlerFunc
	BrokenLinksByOrganization() gin.HandlerFunc
	BrokenLinksByEmail() gin.HandlerFunc
	Health() gin.HandlerFunc
}

type linkCheckerHandler struct {
	logger                  Logger
	schedulerService        service.SchedulerService
	resultService           service.ResultService
	reportService           service.ReportService
	defaultResourcesToCheck int
}

func (*linkCheckerHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "gt":
		return fmt.Sprintf("The %s field must be greater than %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (h *linkCheckerHandler) badRequest(c *gin.Context, err error) {
	var validatorError validator.ValidationErrors
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validatorError):
		c.JSON(http.StatusBadRequest, response.Response{
			Message: h.formatValidationError(validatorError[0]),
		})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, response.Response{
			Message: validationErr.Error(),
		})
	default:
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid request body",
		})
	}
}

func (h *linkCheckerHandler) GetResourcesToCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.GetResourcesToCheckRequest
		// an empty body asks for the defaults
		if c.Request.Body != nil && c.Request.Body != http.NoBody {
			if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
				h.badRequest(c, err)
				return
			}
		}
		n := h.defaultResourcesToCheck
		if req.N != nil {
			n = *req.N
		}
		var since, pendingSince time.Duration
		if req.SinceHours != nil {
			since = time.Duration(*req.SinceHours) * time.Hour
		}
		if req.PendingSinceHours != nil {
			pendingSince = time.Duration(*req.PendingSinceHours) * time.Hour
		}

		ids, err := h.schedulerService.GetResourcesToCheck(c, n, since, pendingSince)
		if err != nil {
			err = fmt.Errorf("LinkCheckerHandler.GetResourcesToCheck: %w", err)
			h.logger.LoggingError(c, err, "failed to get resources to check", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, ids)
	}
}

func (h *linkCheckerHandler) Upsert() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpsertResultRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.badRequest(c, err)
			return
		}
		_, err := h.resultService.Upsert(c, req.ResourceID, req.Alive, req.Status, req.Reason)
		if err != nil {
			var validationErr *apperrors.ValidationError
			if errors.As(err, &validationErr) {
				h.badRequest(c, err)
				return
			}
			err = fmt.Errorf("LinkCheckerHandler.Upsert: %w", err)
			h.logger.LoggingError(c, err, fmt.Sprintf("failed to save link check result for resource %s", req.ResourceID), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Link check result saved",
		})
	}
}

func (h *linkCheckerHandler) GetResult() gin.HandlerFunc {
	return func(c *gin.Context) {
		resourceID := c.Query("resource_id")
		if resourceID == "" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "The resource_id field is required",
			})
			return
		}
		res, err := h.resultService.Get(c, resourceID)
		if err != nil {
			if errors.Is(err, apperrors.ErrResultNotFound) {
				c.JSON(http.StatusOK, nil)
				return
			}
			err = fmt.Errorf("LinkCheckerHandler.GetResult: %w", err)
			h.logger.LoggingError(c, err, fmt.Sprintf("failed to get link check result for resource %s", resourceID), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, toLinkCheckResultResponse(res))
	}
}

func (h *linkCheckerHandler) BrokenLinksByOrganization() gin.HandlerFunc {
	return func(c *gin.Context) {
		reports, err := h.reportService.BrokenLinksByOrganization(c)
		if err != nil {
			err = fmt.Errorf("LinkCheckerHandler.BrokenLinksByOrganization: %w", err)
			h.logger.LoggingError(c, err, "failed to build broken links by organization report", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		res := make([]response.OrganizationReportResponse, 0, len(reports))
		for _, r := range reports {
			res = append(res, response.OrganizationReportResponse{
				Name:                    r.Name,
				Title:                   r.Title,
				NumBrokenLinks:          r.NumBrokenLinks,
				DatasetsWithBrokenLinks: toDatasetReportResponses(r.Datasets),
			})
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *linkCheckerHandler) BrokenLinksByEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		reports, err := h.reportService.BrokenLinksByEmail(c)
		if err != nil {
			err = fmt.Errorf("LinkCheckerHandler.BrokenLinksByEmail: %w", err)
			h.logger.LoggingError(c, err, "failed to build broken links by email report", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		res := make([]response.EmailReportResponse, 0, len(reports))
		for _, r := range reports {
			item := response.EmailReportResponse{
				NumBrokenLinks:          r.NumBrokenLinks,
				DatasetsWithBrokenLinks: toDatasetReportResponses(r.Datasets),
				MailtoLink:              r.MailtoLink,
			}
			if r.Email != "" {
				email := r.Email
				item.Email = &email
			}
			res = append(res, item)
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *linkCheckerHandler) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.Response{
			Message: "OK",
		})
	}
}

func toLinkCheckResultResponse(res service.ResourceResult) response.LinkCheckResultResponse {
	r := res.Result
	return response.LinkCheckResultResponse{
		ResourceID:     r.ResourceID,
		Alive:          r.Alive,
		LastChecked:    r.LastChecked,
		LastSuccessful: r.LastSuccessful,
		NumFails:       r.NumFails,
		Pending:        r.Pending(),
		State:          r.State().String(),
		PendingSince:   r.PendingSince,
		Status:         r.Status,
		Reason:         r.Reason,
		Broken:         res.Verdict.Broken(),
	}
}

func toDatasetReportResponses(datasets []service.DatasetReport) []response.DatasetReportResponse {
	res := make([]response.DatasetReportResponse, 0, len(datasets))
	for _, d := range datasets {
		res = append(res, response.DatasetReportResponse{
			Name:                     d.Name,
			Title:                    d.Title,
			URL:                      d.URL,
			NumBrokenLinks:           d.NumBrokenLinks,
			ResourcesWithBrokenLinks: d.BrokenResourceIDs,
		})
	}
	return res
}

func NewLinkCheckerHandler(logger Logger, schedulerService service.SchedulerService, resultService service.ResultService, reportService service.ReportService, defaultResourcesToCheck int) LinkCheckerHandler {
	return &linkCheckerHandler{
		logger:                  logger,
		schedulerService:        schedulerService,
		resultService:           resultService,
		reportService:           reportService,
		defaultResourcesToCheck: defaultResourcesToCheck,
	}
}
