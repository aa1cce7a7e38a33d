package clock

import (
	"net/http"
	"time"

	"shelter-care/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, p *Provider) {
	r.Get("/time", timeHandler(p))
}

type timeResponse struct {
	Date      Date      `json:"date"`
	Timestamp time.Time `json:"timestamp"`
	Timezone  string    `json:"timezone"`
}

// @Summary Fecha y hora del servidor
// @Description Devuelve el "hoy" que usa el servicio para fechar dosis y evaluar ventanas. Los clientes no deben usar su propio reloj.
// @Tags time
// @Produce json
// @Success 200 {object} timeResponse
// @Router /time [get]
func timeHandler(p *Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, timeResponse{
			Date:      p.Today(r.Context()),
			Timestamp: p.Now(),
			Timezone:  p.Location().String(),
		})
	}
}
