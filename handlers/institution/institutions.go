package institution

import (
	"github.com/gofiber/fiber/v2"
	"github.com/univault/univault-api/services"
	"github.com/univault/univault-api/utils/response"
)

// InstitutionHandler handles institution catalogue requests. The catalogue
// is read-only from the API.
type InstitutionHandler struct {
	service *services.InstitutionService
}

// NewInstitutionHandler creates a new institution handler.
func NewInstitutionHandler(service *services.InstitutionService) *InstitutionHandler {
	return &InstitutionHandler{service: service}
}

// ListInstitutions handles GET /api/v1/institutions.
func (h *InstitutionHandler) ListInstitutions(c *fiber.Ctx) error {
	insts, err := h.service.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch institutions")
	}
	return response.List(c, insts, len(insts))
}

// GetInstitution handles GET /api/v1/institutions/:id.
func (h *InstitutionHandler) GetInstitution(c *fiber.Ctx) error {
	inst, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if services.IsNotFound(err) {
			return response.NotFound(c, "Institution not found")
		}
		return response.InternalServerError(c, "Failed to fetch institution")
	}
	return response.Success(c, inst)
}
