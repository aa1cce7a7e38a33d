package animals

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"shelter-care/internal/domain/cascade"
	"shelter-care/internal/domain/errs"
	"shelter-care/internal/domain/validate"
	"shelter-care/internal/middleware"
	"shelter-care/internal/platform/clock"
	"shelter-care/internal/platform/respond"
	"shelter-care/internal/ports/images"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 10 << 20

// Deleter es el coordinador de borrado en cascada.
type Deleter interface {
	DeleteAnimal(ctx context.Context, animalID string) (cascade.Confirmation, error)
}

func RegisterRoutes(r chi.Router, svc *Service, deleter Deleter, pictures images.Store) {
	// Rutas planas: health/visits/medication cuelgan otras rutas de /animals/{animalID}
	// y un Route() acá las taparía.
	r.Post("/animals", createAnimalHandler(svc, pictures))
	r.Get("/animals", listAnimalsHandler(svc))

	r.Get("/animals/{animalID}", getAnimalHandler(svc))
	r.Patch("/animals/{animalID}", updateAnimalHandler(svc))
	r.Delete("/animals/{animalID}", deleteAnimalHandler(deleter))

	// Flag operativo de jaula/aislamiento
	r.Put("/animals/{animalID}/confinement", setConfinementHandler(svc))
}

type createAnimalRequest struct {
	OwnerID     string `json:"owner_id"`
	OwnerEmail  string `json:"owner_email"`
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Color       string `json:"color"`
	Gender      string `json:"gender"`
	BirthDate   string `json:"birth_date"` // YYYY-MM-DD opcional
	Description string `json:"description"`
}

type updateAnimalRequest struct {
	Name        *string `json:"name"`
	Breed       *string `json:"breed"`
	Color       *string `json:"color"`
	Gender      *string `json:"gender"`
	Description *string `json:"description"`
}

type confinementRequest struct {
	Confined *bool `json:"confined"`
}

type animalResponse struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"owner_id"`
	Name        string      `json:"name"`
	Breed       string      `json:"breed"`
	Color       string      `json:"color"`
	Gender      Gender      `json:"gender"`
	BirthDate   *clock.Date `json:"birth_date,omitempty"`
	Description string      `json:"description"`
	ImageRef    string      `json:"image_ref,omitempty"`
	Confined    bool        `json:"confined"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type deletionResponse struct {
	AnimalID            string    `json:"animal_id"`
	RemovedDoses        int       `json:"removed_doses"`
	RemovedVisits       int       `json:"removed_visits"`
	RemovedObservations int       `json:"removed_observations"`
	RemovedSchedules    int       `json:"removed_schedules"`
	CompletedAt         time.Time `json:"completed_at"`
}

// @Summary Registrar animal
// @Description Registra un animal del refugio. Acepta JSON o multipart/form-data (con archivo opcional `picture`). Si viene `owner_email` se resuelve contra el directorio de responsables; si no viene dueño se usa el usuario autenticado.
// @Tags animals
// @Accept json,mpfd
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createAnimalRequest true "Datos del animal; birth_date en formato YYYY-MM-DD"
// @Success 201 {object} animalResponse
// @Failure 400 {object} respond.ErrorBody "ValidationError (lista de campos)"
// @Failure 401 {object} respond.ErrorBody "unauthorized"
// @Router /animals [post]
func createAnimalHandler(svc *Service, pictures images.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var (
			req      createAnimalRequest
			imageRef string
		)
		if isMultipart(r) {
			if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
				respond.BadRequest(w, "invalid multipart form")
				return
			}
			req = createAnimalRequest{
				OwnerID:     r.FormValue("owner_id"),
				OwnerEmail:  r.FormValue("owner_email"),
				Name:        r.FormValue("name"),
				Breed:       r.FormValue("breed"),
				Color:       r.FormValue("color"),
				Gender:      r.FormValue("gender"),
				BirthDate:   r.FormValue("birth_date"),
				Description: r.FormValue("description"),
			}

			file, header, err := r.FormFile("picture")
			switch {
			case errors.Is(err, http.ErrMissingFile):
				// foto opcional
			case err != nil:
				respond.BadRequest(w, "invalid picture upload")
				return
			default:
				defer file.Close()
				if pictures == nil {
					respond.BadRequest(w, "picture uploads are not enabled")
					return
				}
				ref, err := pictures.Save(r.Context(), filepath.Base(header.Filename), file)
				if errors.Is(err, images.ErrInvalidImage) {
					respond.Error(w, r, &errs.ValidationError{Fields: []string{"picture"}})
					return
				}
				if err != nil {
					respond.Error(w, r, err)
					return
				}
				imageRef = ref
			}
		} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.BadRequest(w, "invalid json")
			return
		}

		ownerID := req.OwnerID
		if strings.TrimSpace(ownerID) == "" && strings.TrimSpace(req.OwnerEmail) == "" {
			ownerID = claims.UserID
		}

		a, err := svc.Register(r.Context(), RegisterInput{
			OwnerID:     ownerID,
			OwnerEmail:  req.OwnerEmail,
			Name:        req.Name,
			Breed:       req.Breed,
			Color:       req.Color,
			Gender:      req.Gender,
			BirthDate:   req.BirthDate,
			Description: req.Description,
			ImageRef:    imageRef,
		})
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// @Summary Listar animales
// @Description Lista los animales del refugio ordenados por fecha de alta. Permite filtrar por `confined`.
// @Tags animals
// @Produce json
// @Param confined query bool false "true = solo en jaula/aislamiento, false = solo sueltos"
// @Success 200 {array} animalResponse
// @Failure 400 {object} respond.ErrorBody "filtro inválido"
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter ListFilter
		if v := strings.TrimSpace(r.URL.Query().Get("confined")); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				respond.BadRequest(w, "confined must be true or false")
				return
			}
			filter.Confined = &b
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// @Summary Obtener animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {object} respond.ErrorBody "animal not found"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// @Summary Actualizar perfil del animal
// @Description PATCH real: solo se modifican los campos enviados. `birth_date: null` limpia la fecha.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body updateAnimalRequest true "Campos a modificar"
// @Success 200 {object} animalResponse
// @Failure 400 {object} respond.ErrorBody "ValidationError"
// @Failure 404 {object} respond.ErrorBody "animal not found"
// @Router /animals/{animalID} [patch]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Para distinguir "birth_date": null de "no enviado" decodificamos a map primero.
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			respond.BadRequest(w, "invalid json")
			return
		}

		var req updateAnimalRequest
		{
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &req); err != nil {
				respond.BadRequest(w, "invalid json")
				return
			}
		}

		var bd PatchDate
		if v, exists := raw["birth_date"]; exists {
			bd.Present = true
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					respond.BadRequest(w, "birth_date must be YYYY-MM-DD or null")
					return
				}
				bd.Raw = s
			}
		}

		updated, err := svc.UpdateProfile(r.Context(), chi.URLParam(r, "animalID"), UpdateProfileInput{
			Name:        req.Name,
			Breed:       req.Breed,
			Color:       req.Color,
			Gender:      req.Gender,
			BirthDate:   bd,
			Description: req.Description,
		})
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toAnimalResponse(updated))
	}
}

// @Summary Marcar jaula/aislamiento
// @Description Idempotente: enviar el mismo valor dos veces deja el mismo estado.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body confinementRequest true "confined = true/false"
// @Success 200 {object} animalResponse
// @Failure 400 {object} respond.ErrorBody "ValidationError"
// @Failure 404 {object} respond.ErrorBody "animal not found"
// @Router /animals/{animalID}/confinement [put]
func setConfinementHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req confinementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.BadRequest(w, "invalid json")
			return
		}
		if req.Confined == nil {
			var c validate.Checker
			c.Invalid("confined")
			respond.Error(w, r, c.Err())
			return
		}

		a, err := svc.SetConfinement(r.Context(), chi.URLParam(r, "animalID"), *req.Confined)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// @Summary Borrar animal
// @Description Borra el animal y todos sus registros (dosis, visitas, observaciones, agendas) en una sola transacción. Ante una falla no se borra nada y se responde 503 reintentable.
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} deletionResponse
// @Failure 404 {object} respond.ErrorBody "animal not found"
// @Failure 503 {object} respond.ErrorBody "TransactionFailed (reintentable)"
// @Router /animals/{animalID} [delete]
func deleteAnimalHandler(deleter Deleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conf, err := deleter.DeleteAnimal(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, deletionResponse{
			AnimalID:            conf.AnimalID,
			RemovedDoses:        conf.Removed.Doses,
			RemovedVisits:       conf.Removed.Visits,
			RemovedObservations: conf.Removed.Observations,
			RemovedSchedules:    conf.Removed.Schedules,
			CompletedAt:         conf.CompletedAt,
		})
	}
}

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:          a.ID,
		OwnerID:     a.OwnerID,
		Name:        a.Name,
		Breed:       a.Breed,
		Color:       a.Color,
		Gender:      a.Gender,
		BirthDate:   a.BirthDate,
		Description: a.Description,
		ImageRef:    a.ImageRef,
		Confined:    a.Confined,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
