package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbook/internal/compute"
	"gstbook/internal/domain"
	"gstbook/internal/middleware"
	"gstbook/internal/service"
	"gstbook/internal/xlsxexport"
)

// ReturnHandler handles return preparation and filing endpoints.
type ReturnHandler struct {
	returnService service.ReturnService
}

// NewReturnHandler creates a new ReturnHandler.
func NewReturnHandler(returnService service.ReturnService) *ReturnHandler {
	return &ReturnHandler{returnService: returnService}
}

func parsePeriodParam(c *gin.Context) (domain.ReturnPeriod, bool) {
	period, err := domain.ParsePeriod(c.Param("period"))
	if err != nil {
		HandleError(c, err)
		return domain.ReturnPeriod{}, false
	}
	return period, true
}

// Open handles POST /api/v1/returns
// @Summary Open a return for a period
// @Description Open or resume the working GSTR-3B return for the given period
// @Tags returns
// @Accept json
// @Produce json
// @Param request body handler.OpenReturnRequest true "Return period"
// @Success 201 {object} APIResponse{data=domain.ReturnDocument} "Working return"
// @Failure 400 {object} APIResponse "Invalid period"
// @Security BearerAuth
// @Router /returns [post]
func (h *ReturnHandler) Open(c *gin.Context) {
	gstin, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req OpenReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "period is required")
		return
	}
	period, err := domain.ParsePeriod(req.Period)
	if err != nil {
		HandleError(c, err)
		return
	}

	doc, err := h.returnService.Open(c.Request.Context(), &service.OpenReturnInput{
		GSTIN:     gstin,
		LegalName: middleware.GetLegalName(c),
		TradeName: middleware.GetTradeName(c),
		Period:    period,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, doc)
}

// OpenReturnRequest is the body for POST /returns.
type OpenReturnRequest struct {
	Period string `json:"period" binding:"required"`
}

// List handles GET /api/v1/returns
// @Summary List returns
// @Description List saved and filed returns for the authenticated registration
// @Tags returns
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.ReturnSummary} "Return summaries"
// @Security BearerAuth
// @Router /returns [get]
func (h *ReturnHandler) List(c *gin.Context) {
	gstin, ok := extractAuthContext(c)
	if !ok {
		return
	}

	summaries, err := h.returnService.List(c.Request.Context(), gstin)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summaries)
}

// Get handles GET /api/v1/returns/:period
// @Summary Get the working return
// @Tags returns
// @Produce json
// @Param period path string true "Period (MMYYYY)"
// @Success 200 {object} APIResponse{data=domain.ReturnDocument} "Working return"
// @Failure 404 {object} APIResponse "No return for period"
// @Security BearerAuth
// @Router /returns/{period} [get]
func (h *ReturnHandler) Get(c *gin.Context) {
	gstin, ok := extractAuthContext(c)
	if !ok {
		return
	}
	period, ok := parsePeriodParam(c)
	if !ok {
		return
	}

	doc, err := h.returnService.Get(c.Request.Context(), gstin, period)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// UpdateRequest is the body for PATCH /returns/:period. Section selects
// the typed command; slot and entry complete it.
type UpdateRequest struct {
	Section string          `json:"section" binding:"required"`
	Slot    string          `json:"slot"`
	Entry   json.RawMessage `json:"entry"`
}

// Update handles PATCH /api/v1/returns/:period
// @Summary Apply a field update
// @Description Apply one typed update command to a section of the working return
// @Tags returns
// @Accept json
// @Produce json
// @Param period path string true "Period (MMYYYY)"
// @Param request body handler.UpdateRequest true "Update command"
// @Success 200 {object} APIResponse{data=domain.ReturnDocument} "Updated return"
// @Failure 400 {object} APIResponse "Unknown section or slot"
// @Failure 409 {object} APIResponse "Return already submitted"
// @Security BearerAuth
// @Router /returns/{period} [patch]
func (h *ReturnHandler) Update(c *gin.Context) {
	gstin, ok := extractAuthContext(c)
	if !ok {
		return
	}
	period, ok := parsePeriodParam(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "section is required")
		return
	}

	upd, err := decodeUpdate(&req)
	if err != nil {
		HandleError(c, err)
		return
	}

	doc, err := h.returnService.ApplyUpdate(c.Request.Context(), gstin, period, upd)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// decodeUpdate turns a wire update request into a typed command.
func decodeUpdate(req *UpdateRequest) (domain.Update, error) {
	entry := req.Entry
	if len(entry) == 0 {
		entry = json.RawMessage("{}")
	}

	unmarshal := func(v interface{}) error {
		if err := json.Unmarshal(entry, v); err != nil {
			return fmt.Errorf("decoding entry: %w", err)
		}
		return nil
	}

	switch req.Section {
	case "basic_info":
		var u domain.SetBasicInfo
		if err := unmarshal(&u); err != nil {
			return nil, err
		}
		return u, nil
	case "outward_supplies":
		u := domain.SetOutwardSupply{Slot: domain.OutwardSlot(req.Slot)}
		if err := unmarshal(&u.Entry); err != nil {
			return nil, err
		}
		return u, nil
	case "amendment_outward":
		var u domain.SetAmendmentOutward
		if err := unmarshal(&u.Entry); err != nil {
			return nil, err
		}
		return u, nil
	case "inward_supplies":
		u := domain.SetInwardSupply{Slot: domain.InwardSlot(req.Slot)}
		if err := unmarshal(&u.Entry); err != nil {
			return nil, err
		}
		return u, nil
	case "eligible_itc":
		u := domain.SetEligibleITC{Slot: domain.ITCSlot(req.Slot)}
		if err := unmarshal(&u.Entry); err != nil {
			return nil, err
		}
		return u, nil
	case "itc_reversed":
		u := domain.SetITCReversal{Slot: domain.ReversalSlot(req.Slot)}
		if err := unmarshal(&u.Entry); err != nil {
			return nil, err
		}
		return u, nil
	case "exempt_inward":
		var u domain.SetExemptInward
		if err := unmarshal(&u); err != nil {
			return nil, err
		}
		return u, nil
	case "interest_late_fee":
		var u domain.SetInterestLateFee
		if err := unmarshal(&u.Entry); err != nil {
			return nil, err
		}
		return u, nil
	case "tax_paid":
		u := domain.SetTaxPaid{Head: domain.TaxHead(req.Slot)}
		if err := unmarshal(&u.Entry); err != nil {
			return nil, err
		}
		return u, nil
	case "verification":
		var u domain.SetVerification
		if err := unmarshal(&u); err != nil {
			return nil, err
		}
		return u, nil
	default:
		return nil, domain.ErrUnknownSection
	}
}

// Totals handles GET /api/v1/returns/:period/totals
// @Summary Get computed totals
// @Tags returns
// @Produce json
// @Param period path string true "Period (MMYYYY)"
// @Success 200 {object} APIResponse{data=compute.Totals} "Computed totals"
// @Security BearerAuth
// @Router /returns/{period}/totals [get]
func (h *ReturnHandler) Totals(c *gin.Context) {
	gstin, ok := extractAuthContext(c)
	if !ok {
		return
	}
	period, ok := parsePeriodParam(c)
	if !ok {
		return
	}

	totals, err := h.returnService.Totals(c.Request.Context(), gstin, period)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, totals)
}

// Validation handles GET /api/v1/returns/:period/validation
// @Summary Validate the working return
// @Tags returns
// @Produce json
// @Param period path string true "Period (MMYYYY)"
// @Success 200 {object} APIResponse{data=validator.Report} "Validation report"
// @Security BearerAuth
// @Router /returns/{period}/validation [get]
func (h *ReturnHandler) Validation(c *gin.Context) {
	gstin, ok := extractAuthContext(c)
	if !ok {
		return
	}
	period, ok := parsePeriodParam(c)
	if !ok {
		return
	}

	report, err := h.returnService.Validate(c.Request.Context(), gstin, period)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Preview handles POST /api/v1/returns/:period/preview
// @Summary Preview the return before filing
// @Description Validate and compute totals; a clean report moves the return to previewed
// @Tags returns
// @Produce json
// @Param period path string true "Period (MMYYYY)"
// @Success 200 {object} APIResponse{data=service.PreviewResult} "Preview with totals and report"
// @Failure 409 {object} APIResponse "Return already submitted"
// @Security BearerAuth
// @Router /returns/{period}/preview [post]
func (h *ReturnHandler) Preview(c *gin.Context) {
	gstin, ok := extractAuthContext(c)
	if !ok {
		return
	}
	period, ok := parsePeriodParam(c)
	if !ok {
		return
	}

	res, err := h.returnService.Preview(c.Request.Context(), gstin, period)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, res)
}

// SubmitRequest is the body for POST /returns/:period/submit. The caller
// echoes the liability shown on preview; a mismatch blocks the filing.
type SubmitRequest struct {
	ConfirmedLiability domain.Amount `json:"confirmed_liability"`
}

// Submit handles POST /api/v1/returns/:period/submit
// @Summary Submit the return
// @Description File the return and record the acknowledgement; repeated calls return the same acknowledgement
// @Tags returns
// @Accept json
// @Produce json
// @Param period path string true "Period (MMYYYY)"
// @Param request body handler.SubmitRequest true "Confirmed liability"
// @Success 200 {object} APIResponse{data=service.SubmissionResult} "Acknowledgement"
// @Failure 409 {object} APIResponse "Confirmation mismatch"
// @Failure 422 {object} APIResponse "Outstanding validation errors"
// @Failure 502 {object} APIResponse "Filing failed"
// @Security BearerAuth
// @Router /returns/{period}/submit [post]
func (h *ReturnHandler) Submit(c *gin.Context) {
	gstin, ok := extractAuthContext(c)
	if !ok {
		return
	}
	period, ok := parsePeriodParam(c)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "confirmed_liability is required")
		return
	}

	res, err := h.returnService.Submit(c.Request.Context(), &service.SubmitInput{
		GSTIN:              gstin,
		Period:             period,
		ConfirmedLiability: req.ConfirmedLiability,
		NotifyEmail:        middleware.GetNotifyEmail(c),
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, res)
}

// SaveDraft handles POST /api/v1/returns/:period/draft
// @Summary Save the working return as a draft
// @Tags drafts
// @Produce json
// @Param period path string true "Period (MMYYYY)"
// @Success 200 {object} APIResponse "Draft saved"
// @Security BearerAuth
// @Router /returns/{period}/draft [post]
func (h *ReturnHandler) SaveDraft(c *gin.Context) {
	gstin, ok := extractAuthContext(c)
	if !ok {
		return
	}
	period, ok := parsePeriodParam(c)
	if !ok {
		return
	}

	if err := h.returnService.SaveDraft(c.Request.Context(), gstin, period); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"saved": true})
}

// PeekDraft handles GET /api/v1/returns/:period/draft
// @Summary Get the saved draft without touching the working return
// @Tags drafts
// @Produce json
// @Param period path string true "Period (MMYYYY)"
// @Success 200 {object} APIResponse{data=domain.ReturnDocument} "Saved draft"
// @Failure 404 {object} APIResponse "No saved draft"
// @Security BearerAuth
// @Router /returns/{period}/draft [get]
func (h *ReturnHandler) PeekDraft(c *gin.Context) {
	gstin, ok := extractAuthContext(c)
	if !ok {
		return
	}
	period, ok := parsePeriodParam(c)
	if !ok {
		return
	}

	doc, err := h.returnService.PeekDraft(c.Request.Context(), gstin, period)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// RestoreDraft handles POST /api/v1/returns/:period/draft/restore
// @Summary Replace the working return with the saved draft
// @Tags drafts
// @Produce json
// @Param period path string true "Period (MMYYYY)"
// @Success 200 {object} APIResponse{data=domain.ReturnDocument} "Restored return"
// @Failure 404 {object} APIResponse "No saved draft"
// @Security BearerAuth
// @Router /returns/{period}/draft/restore [post]
func (h *ReturnHandler) RestoreDraft(c *gin.Context) {
	gstin, ok := extractAuthContext(c)
	if !ok {
		return
	}
	period, ok := parsePeriodParam(c)
	if !ok {
		return
	}

	doc, err := h.returnService.RestoreDraft(c.Request.Context(), gstin, period)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// Export handles GET /api/v1/returns/:period/export
// @Summary Export the return as an XLSX workbook
// @Tags returns
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param period path string true "Period (MMYYYY)"
// @Success 200 {file} binary "XLSX workbook"
// @Security BearerAuth
// @Router /returns/{period}/export [get]
func (h *ReturnHandler) Export(c *gin.Context) {
	gstin, ok := extractAuthContext(c)
	if !ok {
		return
	}
	period, ok := parsePeriodParam(c)
	if !ok {
		return
	}

	doc, err := h.returnService.Get(c.Request.Context(), gstin, period)
	if err != nil {
		HandleError(c, err)
		return
	}

	data, err := xlsxexport.WriteSummary(doc, compute.ComputeTotals(doc))
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("gstr3b_%s_%s.xlsx", gstin, period.Key())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
