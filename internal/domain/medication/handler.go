package medication

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/domain/visits"
	"shelter-care/internal/platform/clock"
	"shelter-care/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, eval *Evaluator) {
	// Historial clínico: visitas con sus dosis
	r.Get("/animals/{animalID}/visits", listVisitsWithDosesHandler(svc))

	// Dosis contra la última visita
	r.Post("/animals/{animalID}/doses", logVisitDoseHandler(svc))
	r.Get("/animals/{animalID}/doses", listLatestVisitDosesHandler(svc))
	r.Get("/animals/{animalID}/doses/today", todayStatusHandler(eval))

	r.Post("/animals/{animalID}/schedules", createScheduleHandler(svc))
	r.Get("/animals/{animalID}/schedules", listAnimalSchedulesHandler(svc))

	r.Route("/schedules", func(sr chi.Router) {
		sr.Get("/", listAllSchedulesHandler(svc))
		sr.Delete("/{scheduleID}", deleteScheduleHandler(svc))
		sr.Post("/{scheduleID}/doses", logScheduleDoseHandler(svc))
	})
}

type doseRequest struct {
	Volunteer string `json:"volunteer"`
	Morning   bool   `json:"morning"`
	Afternoon bool   `json:"afternoon"`
	Evening   bool   `json:"evening"`
	Night     bool   `json:"night"`
	Notes     string `json:"notes"`
}

type doseResponse struct {
	ID         string     `json:"id"`
	VisitID    string     `json:"visit_id,omitempty"`
	ScheduleID string     `json:"schedule_id,omitempty"`
	Date       clock.Date `json:"date"`
	Volunteer  string     `json:"volunteer"`
	Morning    bool       `json:"morning"`
	Afternoon  bool       `json:"afternoon"`
	Evening    bool       `json:"evening"`
	Night      bool       `json:"night"`
	Notes      string     `json:"notes,omitempty"`
	RecordedAt time.Time  `json:"recorded_at"`
}

type visitWithDosesResponse struct {
	visits.Response
	Doses []doseResponse `json:"doses"`
}

type latestVisitDosesResponse struct {
	Visit *visits.Response `json:"visit"`
	Doses []doseResponse   `json:"doses"`
}

type statusResponse struct {
	AnimalID string        `json:"animal_id"`
	Date     clock.Date    `json:"date"`
	Slots    map[Slot]bool `json:"slots"`
}

type createScheduleRequest struct {
	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"` // por defecto "daily"
	Morning        bool   `json:"morning"`
	Afternoon      bool   `json:"afternoon"`
	Evening        bool   `json:"evening"`
	Night          bool   `json:"night"`
	StartDate      string `json:"start_date"` // YYYY-MM-DD
	EndDate        string `json:"end_date"`   // YYYY-MM-DD
	Notes          string `json:"notes"`
}

type scheduleResponse struct {
	ID             string     `json:"id"`
	AnimalID       string     `json:"animal_id"`
	MedicationName string     `json:"medication_name"`
	Dosage         string     `json:"dosage"`
	Frequency      string     `json:"frequency"`
	Morning        bool       `json:"morning"`
	Afternoon      bool       `json:"afternoon"`
	Evening        bool       `json:"evening"`
	Night          bool       `json:"night"`
	StartDate      clock.Date `json:"start_date"`
	EndDate        clock.Date `json:"end_date"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type scheduleDeletionResponse struct {
	ScheduleID   string    `json:"schedule_id"`
	RemovedDoses int       `json:"removed_doses"`
	DeletedAt    time.Time `json:"deleted_at"`
}

// @Summary Listar visitas con dosis
// @Description Historial clínico del animal: visitas por fecha de visita descendente, cada una con sus dosis registradas.
// @Tags visits
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {array} visitWithDosesResponse
// @Failure 404 {object} respond.ErrorBody "animal not found"
// @Router /animals/{animalID}/visits [get]
func listVisitsWithDosesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListVisitsWithDoses(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		out := make([]visitWithDosesResponse, 0, len(items))
		for _, it := range items {
			out = append(out, visitWithDosesResponse{
				Response: visits.ToResponse(it.Visit),
				Doses:    toDoseResponses(it.Doses),
			})
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// @Summary Registrar dosis (última visita)
// @Description Registra una dosis en la visita creada más recientemente. La fecha la asigna el servidor. Requiere `volunteer` y al menos una de `morning`/`evening`. Sin visitas responde 409 NoVisitFound.
// @Tags medication
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body doseRequest true "Voluntario y ventanas"
// @Success 201 {object} doseResponse
// @Failure 400 {object} respond.ErrorBody "ValidationError"
// @Failure 404 {object} respond.ErrorBody "animal not found"
// @Failure 409 {object} respond.ErrorBody "NoVisitFound"
// @Router /animals/{animalID}/doses [post]
func logVisitDoseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req doseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.BadRequest(w, "invalid json")
			return
		}
		d, err := svc.LogDoseAgainstLatestVisit(r.Context(), chi.URLParam(r, "animalID"), req.toInput())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toDoseResponse(d))
	}
}

// @Summary Medicación actual
// @Description Devuelve la última visita (medicación indicada, veterinario) con sus dosis. Sin visitas devuelve `visit: null`.
// @Tags medication
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} latestVisitDosesResponse
// @Failure 404 {object} respond.ErrorBody "animal not found"
// @Router /animals/{animalID}/doses [get]
func listLatestVisitDosesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.ListLatestVisitDoses(r.Context(), chi.URLParam(r, "animalID"))
		if errs.KindOf(err) == errs.KindNoVisitFound {
			respond.JSON(w, http.StatusOK, latestVisitDosesResponse{Doses: []doseResponse{}})
			return
		}
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		v := visits.ToResponse(res.Visit)
		respond.JSON(w, http.StatusOK, latestVisitDosesResponse{
			Visit: &v,
			Doses: toDoseResponses(res.Doses),
		})
	}
}

// @Summary Estado de dosis de hoy
// @Description Indica por ventana (morning/evening, y afternoon/night si el animal tiene agendas) si ya se registró una dosis hoy. "Hoy" lo define el reloj del servidor.
// @Tags medication
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} statusResponse
// @Failure 404 {object} respond.ErrorBody "animal not found"
// @Router /animals/{animalID}/doses/today [get]
func todayStatusHandler(eval *Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := eval.TodayStatus(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, statusResponse{
			AnimalID: st.AnimalID,
			Date:     st.Date,
			Slots:    st.Slots,
		})
	}
}

// @Summary Crear agenda de medicación
// @Description Crea una agenda independiente con hasta cuatro ventanas diarias. start_date debe ser <= end_date.
// @Tags medication
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body createScheduleRequest true "Agenda; fechas en formato YYYY-MM-DD"
// @Success 201 {object} scheduleResponse
// @Failure 400 {object} respond.ErrorBody "ValidationError / InvalidDateRange"
// @Failure 404 {object} respond.ErrorBody "animal not found"
// @Router /animals/{animalID}/schedules [post]
func createScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.BadRequest(w, "invalid json")
			return
		}

		sc, err := svc.CreateSchedule(r.Context(), chi.URLParam(r, "animalID"), ScheduleInput{
			MedicationName: req.MedicationName,
			Dosage:         req.Dosage,
			Frequency:      req.Frequency,
			Slots: Slots{
				Morning:   req.Morning,
				Afternoon: req.Afternoon,
				Evening:   req.Evening,
				Night:     req.Night,
			},
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Notes:     req.Notes,
		})
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toScheduleResponse(sc))
	}
}

// @Summary Listar agendas del animal
// @Tags medication
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {array} scheduleResponse
// @Failure 404 {object} respond.ErrorBody "animal not found"
// @Router /animals/{animalID}/schedules [get]
func listAnimalSchedulesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		animalID := strings.TrimSpace(chi.URLParam(r, "animalID"))
		if animalID == "" {
			respond.Error(w, r, errs.NotFound("animal", animalID))
			return
		}
		writeSchedules(w, r, svc, ScheduleFilter{AnimalID: animalID})
	}
}

// @Summary Listar todas las agendas
// @Description Todas las agendas del refugio, la más nueva primero.
// @Tags medication
// @Produce json
// @Success 200 {array} scheduleResponse
// @Router /schedules [get]
func listAllSchedulesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSchedules(w, r, svc, ScheduleFilter{})
	}
}

func writeSchedules(w http.ResponseWriter, r *http.Request, svc *Service, filter ScheduleFilter) {
	items, err := svc.ListSchedules(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	out := make([]scheduleResponse, 0, len(items))
	for _, sc := range items {
		out = append(out, toScheduleResponse(sc))
	}
	respond.JSON(w, http.StatusOK, out)
}

// @Summary Borrar agenda
// @Description Borra la agenda y sus dosis. No toca visitas ni dosis de visitas.
// @Tags medication
// @Produce json
// @Param scheduleID path string true "ID de la agenda"
// @Success 200 {object} scheduleDeletionResponse
// @Failure 404 {object} respond.ErrorBody "schedule not found"
// @Router /schedules/{scheduleID} [delete]
func deleteScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		del, err := svc.DeleteSchedule(r.Context(), chi.URLParam(r, "scheduleID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, scheduleDeletionResponse{
			ScheduleID:   del.ScheduleID,
			RemovedDoses: del.RemovedDoses,
			DeletedAt:    del.DeletedAt,
		})
	}
}

// @Summary Registrar dosis de agenda
// @Description Registra una dosis de la agenda con fecha de hoy. Solo se aceptan ventanas habilitadas en la agenda y días dentro de su vigencia.
// @Tags medication
// @Accept json
// @Produce json
// @Param scheduleID path string true "ID de la agenda"
// @Param payload body doseRequest true "Voluntario y ventanas"
// @Success 201 {object} doseResponse
// @Failure 400 {object} respond.ErrorBody "ValidationError"
// @Failure 404 {object} respond.ErrorBody "schedule not found"
// @Router /schedules/{scheduleID}/doses [post]
func logScheduleDoseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req doseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.BadRequest(w, "invalid json")
			return
		}
		d, err := svc.LogScheduleDose(r.Context(), chi.URLParam(r, "scheduleID"), req.toInput())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toDoseResponse(d))
	}
}

func (req doseRequest) toInput() DoseInput {
	return DoseInput{
		Volunteer: req.Volunteer,
		Slots: Slots{
			Morning:   req.Morning,
			Afternoon: req.Afternoon,
			Evening:   req.Evening,
			Night:     req.Night,
		},
		Notes: req.Notes,
	}
}

func toDoseResponse(d Dose) doseResponse {
	out := doseResponse{
		ID:         d.ID,
		Date:       d.Date,
		Volunteer:  d.Volunteer,
		Morning:    d.Slots.Morning,
		Afternoon:  d.Slots.Afternoon,
		Evening:    d.Slots.Evening,
		Night:      d.Slots.Night,
		Notes:      d.Notes,
		RecordedAt: d.RecordedAt,
	}
	if id, ok := d.Owner.VisitID(); ok {
		out.VisitID = id
	}
	if id, ok := d.Owner.ScheduleID(); ok {
		out.ScheduleID = id
	}
	return out
}

func toDoseResponses(ds []Dose) []doseResponse {
	out := make([]doseResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, toDoseResponse(d))
	}
	return out
}

func toScheduleResponse(sc Schedule) scheduleResponse {
	return scheduleResponse{
		ID:             sc.ID,
		AnimalID:       sc.AnimalID,
		MedicationName: sc.MedicationName,
		Dosage:         sc.Dosage,
		Frequency:      sc.Frequency,
		Morning:        sc.Slots.Morning,
		Afternoon:      sc.Slots.Afternoon,
		Evening:        sc.Slots.Evening,
		Night:          sc.Slots.Night,
		StartDate:      sc.StartDate,
		EndDate:        sc.EndDate,
		Notes:          sc.Notes,
		CreatedAt:      sc.CreatedAt,
	}
}
