package handlers

import (
	"encoding/json"
	"net/http"

	"cleartrack/src/api/controllers"
	"cleartrack/src/utils"

	"github.com/sirupsen/logrus"
)

type Handler struct {
	HoldingsController  controllers.HoldingsControllerI
	PortfolioController controllers.PortfolioControllerI
	PricesController    controllers.PricesControllerI
	Logger              *logrus.Logger
}

func NewHandler(controller *controllers.Controller, logger *logrus.Logger) *Handler {
	return &Handler{
		HoldingsController:  controller,
		PortfolioController: controller,
		PricesController:    controller,
		Logger:              logger,
	}
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	utils.WriteError(w, err)
}

func Healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"message": "ClearTrack API is running"}`))
}
