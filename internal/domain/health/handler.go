package health

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"shelter-care/internal/domain/validate"
	"shelter-care/internal/platform/clock"
	"shelter-care/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/animals/{animalID}/health-observations", createObservationHandler(svc))
	r.Get("/animals/{animalID}/health-observations", listObservationsHandler(svc))
}

type createObservationRequest struct {
	Date     string `json:"date"` // YYYY-MM-DD
	TimeSlot string `json:"time_slot"`
	Appetite string `json:"appetite"`
	Stool    string `json:"stool"`
	Urine    string `json:"urine"`
	Vomiting string `json:"vomiting"`
	Cough    string `json:"cough"`
	Symptoms string `json:"symptoms"`
	Behavior string `json:"behavior"`
	Notes    string `json:"notes"`
}

type observationResponse struct {
	ID         string     `json:"id"`
	AnimalID   string     `json:"animal_id"`
	Date       clock.Date `json:"date"`
	TimeSlot   TimeSlot   `json:"time_slot"`
	Appetite   string     `json:"appetite"`
	Stool      string     `json:"stool"`
	Urine      string     `json:"urine"`
	Vomiting   string     `json:"vomiting"`
	Cough      string     `json:"cough"`
	Symptoms   string     `json:"symptoms,omitempty"`
	Behavior   string     `json:"behavior,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	RecordedAt time.Time  `json:"recorded_at"`
}

// @Summary Registrar observación de salud
// @Description Registra el chequeo diario (apetito, heces, orina, vómitos, tos). Si faltan campos requeridos responde 400 con la lista completa en `fields`.
// @Tags health
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body createObservationRequest true "Observación; date en formato YYYY-MM-DD"
// @Success 201 {object} observationResponse
// @Failure 400 {object} respond.ErrorBody "ValidationError"
// @Failure 404 {object} respond.ErrorBody "animal not found"
// @Router /animals/{animalID}/health-observations [post]
func createObservationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createObservationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.BadRequest(w, "invalid json")
			return
		}

		o, err := svc.Create(r.Context(), chi.URLParam(r, "animalID"), CreateInput{
			Date:     req.Date,
			TimeSlot: req.TimeSlot,
			Appetite: req.Appetite,
			Stool:    req.Stool,
			Urine:    req.Urine,
			Vomiting: req.Vomiting,
			Cough:    req.Cough,
			Symptoms: req.Symptoms,
			Behavior: req.Behavior,
			Notes:    req.Notes,
		})
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toObservationResponse(o))
	}
}

// @Summary Listar observaciones de salud
// @Description Lista las observaciones del animal, la más reciente primero.
// @Tags health
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param from query string false "Fecha mínima (YYYY-MM-DD)"
// @Param to query string false "Fecha máxima (YYYY-MM-DD)"
// @Param limit query int false "Máximo a devolver (1-200). Por defecto 50"
// @Success 200 {array} observationResponse
// @Failure 400 {object} respond.ErrorBody "Parámetros de filtro inválidos"
// @Failure 404 {object} respond.ErrorBody "animal not found"
// @Router /animals/{animalID}/health-observations [get]
func listObservationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var filter ListFilter
		if v := strings.TrimSpace(q.Get("limit")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				respond.BadRequest(w, "limit must be a positive integer")
				return
			}
			filter.Limit = n
		}
		var c validate.Checker
		from := c.OptionalDate("from", q.Get("from"))
		to := c.OptionalDate("to", q.Get("to"))
		if err := c.Err(); err != nil {
			respond.Error(w, r, err)
			return
		}
		if from != nil && to != nil {
			if err := validate.DateRange(*from, *to); err != nil {
				respond.Error(w, r, err)
				return
			}
		}
		filter.From, filter.To = from, to

		items, err := svc.ListByAnimal(r.Context(), chi.URLParam(r, "animalID"), filter)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]observationResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toObservationResponse(o))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func toObservationResponse(o Observation) observationResponse {
	return observationResponse{
		ID:         o.ID,
		AnimalID:   o.AnimalID,
		Date:       o.Date,
		TimeSlot:   o.TimeSlot,
		Appetite:   o.Appetite,
		Stool:      o.Stool,
		Urine:      o.Urine,
		Vomiting:   o.Vomiting,
		Cough:      o.Cough,
		Symptoms:   o.Symptoms,
		Behavior:   o.Behavior,
		Notes:      o.Notes,
		RecordedAt: o.RecordedAt,
	}
}
