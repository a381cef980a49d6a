package research

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/univault/univault-api/services"
	"github.com/univault/univault-api/utils/middleware"
	"github.com/univault/univault-api/utils/response"
	"github.com/univault/univault-api/utils/validation"
)

// ResearchHandler handles research catalogue requests.
type ResearchHandler struct {
	service   *services.ResearchService
	validator *validation.Validator
}

// NewResearchHandler creates a new research handler.
func NewResearchHandler(service *services.ResearchService) *ResearchHandler {
	return &ResearchHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// CreateResearchRequest represents the request body for creating research.
type CreateResearchRequest struct {
	Title         string   `json:"title" validate:"required,min=1,max=255"`
	Grade         string   `json:"grade" validate:"required,min=1,max=10"`
	Price         float64  `json:"price" validate:"gte=0"`
	InstitutionID string   `json:"institution_id" validate:"omitempty,max=64"`
	Degree        string   `json:"degree" validate:"omitempty,max=100"`
	Course        string   `json:"course" validate:"omitempty,max=255"`
	SubjectCode   string   `json:"subject_code" validate:"omitempty,max=50"`
	YearSubmitted int      `json:"year_submitted" validate:"omitempty,gte=1900,lte=2100"`
	YearPublished int      `json:"year_published" validate:"omitempty,gte=1900,lte=2100"`
	Abstract      string   `json:"abstract"`
	Keywords      []string `json:"keywords"`
}

// UpdateResearchRequest represents the request body for updating research.
// Absent fields leave the stored record untouched.
type UpdateResearchRequest struct {
	Title         *string   `json:"title" validate:"omitempty,min=1,max=255"`
	Grade         *string   `json:"grade" validate:"omitempty,min=1,max=10"`
	Price         *float64  `json:"price" validate:"omitempty,gte=0"`
	InstitutionID *string   `json:"institution_id" validate:"omitempty,max=64"`
	Degree        *string   `json:"degree" validate:"omitempty,max=100"`
	Course        *string   `json:"course" validate:"omitempty,max=255"`
	SubjectCode   *string   `json:"subject_code" validate:"omitempty,max=50"`
	YearSubmitted *int      `json:"year_submitted" validate:"omitempty,gte=1900,lte=2100"`
	YearPublished *int      `json:"year_published" validate:"omitempty,gte=1900,lte=2100"`
	Abstract      *string   `json:"abstract"`
	Keywords      *[]string `json:"keywords"`
}

// serviceError maps a service failure onto the response envelope.
func serviceError(c *fiber.Ctx, err error) error {
	switch services.KindOf(err) {
	case services.KindValidation:
		return response.BadRequest(c, err.Error())
	case services.KindNotFound:
		return response.NotFound(c, err.Error())
	case services.KindForbidden:
		return response.Forbidden(c, err.Error())
	case services.KindUnauthenticated:
		return response.Unauthorized(c, err.Error())
	}
	return response.InternalServerError(c, "Failed to process research request")
}

// parseFilters reads the optional filter query parameters.
func parseFilters(c *fiber.Ctx) (services.ResearchFilters, error) {
	filters := services.ResearchFilters{
		Degree:        c.Query("degree"),
		Course:        c.Query("course"),
		SubjectCode:   c.Query("subjectCode"),
		InstitutionID: c.Query("institutionId"),
	}

	if raw := c.Query("minRating"); raw != "" {
		minRating, err := strconv.Atoi(raw)
		if err != nil {
			return filters, err
		}
		filters.MinRating = &minRating
	}
	if raw := c.Query("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, err
		}
		filters.MaxPrice = &maxPrice
	}
	return filters, nil
}

// ListResearch handles GET /api/v1/research (public catalogue).
func (h *ResearchHandler) ListResearch(c *fiber.Ctx) error {
	filters, err := parseFilters(c)
	if err != nil {
		return response.BadRequest(c, "Invalid filter parameter")
	}

	recs, err := h.service.List(c.Context(), filters)
	if err != nil {
		return serviceError(c, err)
	}
	return response.List(c, recs, len(recs))
}

// MyResearch handles GET /api/v1/research/mine (owner-scoped listing).
func (h *ResearchHandler) MyResearch(c *fiber.Ctx) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	filters, err := parseFilters(c)
	if err != nil {
		return response.BadRequest(c, "Invalid filter parameter")
	}

	recs, err := h.service.ListOwned(c.Context(), identity, filters)
	if err != nil {
		return serviceError(c, err)
	}
	return response.List(c, recs, len(recs))
}

// GetResearch handles GET /api/v1/research/:id.
func (h *ResearchHandler) GetResearch(c *fiber.Ctx) error {
	rec, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, rec)
}

// CreateResearch handles POST /api/v1/research.
func (h *ResearchHandler) CreateResearch(c *fiber.Ctx) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req CreateResearchRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, "Validation failed", validation.FormatValidationDetails(err))
	}

	rec, err := h.service.Create(c.Context(), identity, services.CreateResearchInput{
		Title:         validation.SanitizeString(req.Title),
		Grade:         validation.SanitizeString(req.Grade),
		Price:         req.Price,
		InstitutionID: validation.SanitizeString(req.InstitutionID),
		Degree:        validation.SanitizeString(req.Degree),
		Course:        validation.SanitizeString(req.Course),
		SubjectCode:   validation.SanitizeString(req.SubjectCode),
		YearSubmitted: req.YearSubmitted,
		YearPublished: req.YearPublished,
		Abstract:      validation.SanitizeString(req.Abstract),
		Keywords:      req.Keywords,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return response.Created(c, rec)
}

// UpdateResearch handles PUT /api/v1/research/:id.
func (h *ResearchHandler) UpdateResearch(c *fiber.Ctx) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req UpdateResearchRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, "Validation failed", validation.FormatValidationDetails(err))
	}

	rec, err := h.service.Update(c.Context(), identity, c.Params("id"), services.ResearchPatch{
		Title:         req.Title,
		Grade:         req.Grade,
		Price:         req.Price,
		InstitutionID: req.InstitutionID,
		Degree:        req.Degree,
		Course:        req.Course,
		SubjectCode:   req.SubjectCode,
		YearSubmitted: req.YearSubmitted,
		YearPublished: req.YearPublished,
		Abstract:      req.Abstract,
		Keywords:      req.Keywords,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return response.SuccessWithMessage(c, "Research updated successfully", rec)
}

// DeleteResearch handles DELETE /api/v1/research/:id.
func (h *ResearchHandler) DeleteResearch(c *fiber.Ctx) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	if err := h.service.Delete(c.Context(), identity, c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return response.SuccessWithMessage(c, "Research deleted successfully", nil)
}
