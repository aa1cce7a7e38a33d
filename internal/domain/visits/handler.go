package visits

import (
	"encoding/json"
	"net/http"
	"time"

	"shelter-care/internal/platform/clock"
	"shelter-care/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes solo registra el alta. El listado (visitas + dosis) lo expone
// el módulo de medicación porque necesita las dosis de cada visita.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/animals/{animalID}/visits", createVisitHandler(svc))
}

type createVisitRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Diagnosis    string   `json:"diagnosis"`
	Treatment    string   `json:"treatment"`
	Medication   string   `json:"medication"`
	Veterinarian string   `json:"veterinarian"`
	VisitDate    string   `json:"visit_date"` // YYYY-MM-DD
	NextVisit    string   `json:"next_visit"` // opcional
	Cost         *float64 `json:"cost"`
	Notes        string   `json:"notes"`
}

// Response es la forma JSON de una visita (la reutiliza medication).
type Response struct {
	ID           string      `json:"id"`
	AnimalID     string      `json:"animal_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Diagnosis    string      `json:"diagnosis"`
	Treatment    string      `json:"treatment"`
	Medication   string      `json:"medication"`
	Veterinarian string      `json:"veterinarian"`
	VisitDate    clock.Date  `json:"visit_date"`
	NextVisit    *clock.Date `json:"next_visit,omitempty"`
	Cost         *float64    `json:"cost,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// @Summary Registrar visita veterinaria
// @Description Registra una visita. Las dosis que se registren después sin agenda se asocian a la visita creada más recientemente.
// @Tags visits
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body createVisitRequest true "Visita; fechas en formato YYYY-MM-DD, cost >= 0"
// @Success 201 {object} Response
// @Failure 400 {object} respond.ErrorBody "ValidationError"
// @Failure 404 {object} respond.ErrorBody "animal not found"
// @Router /animals/{animalID}/visits [post]
func createVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.BadRequest(w, "invalid json")
			return
		}

		v, err := svc.Create(r.Context(), chi.URLParam(r, "animalID"), CreateInput{
			Title:        req.Title,
			Description:  req.Description,
			Diagnosis:    req.Diagnosis,
			Treatment:    req.Treatment,
			Medication:   req.Medication,
			Veterinarian: req.Veterinarian,
			VisitDate:    req.VisitDate,
			NextVisit:    req.NextVisit,
			Cost:         req.Cost,
			Notes:        req.Notes,
		})
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusCreated, ToResponse(v))
	}
}

func ToResponse(v Visit) Response {
	return Response{
		ID:           v.ID,
		AnimalID:     v.AnimalID,
		Title:        v.Title,
		Description:  v.Description,
		Diagnosis:    v.Diagnosis,
		Treatment:    v.Treatment,
		Medication:   v.Medication,
		Veterinarian: v.Veterinarian,
		VisitDate:    v.VisitDate,
		NextVisit:    v.NextVisit,
		Cost:         v.Cost,
		Notes:        v.Notes,
		CreatedAt:    v.CreatedAt,
	}
}
