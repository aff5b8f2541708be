package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/KirkDiggler/drinkwheel/internal/models"
	"github.com/KirkDiggler/drinkwheel/internal/services/catalog"
	"github.com/KirkDiggler/drinkwheel/internal/services/game"
	"github.com/KirkDiggler/drinkwheel/internal/services/sequencer"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

const maxBodyBytes = 64 << 10

type errorBody struct {
	Error string `json:"error"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type drinkRequest struct {
	Drink string `json:"drink"`
}

type featureRequest struct {
	Name         string            `json:"name"`
	Message      string            `json:"message"`
	Duration     float64           `json:"duration"`
	TargetType   models.TargetType `json:"targetType"`
	TargetPlayer string            `json:"targetPlayer"`
}

type ruleRequest struct {
	Text string `json:"text"`
}

type playersResponse struct {
	Added   bool     `json:"added,omitempty"`
	Players []string `json:"players"`
}

type drinksResponse struct {
	Added  bool     `json:"added,omitempty"`
	Drinks []string `json:"drinks"`
}

type featuresResponse struct {
	Features []*models.Feature `json:"features"`
}

type featureResponse struct {
	Feature *models.Feature `json:"feature"`
}

type rulesResponse struct {
	Rules []string `json:"rules"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// statusFor maps service errors onto HTTP statuses
func statusFor(err error) int {
	switch {
	case errors.Is(err, sequencer.ErrPaused),
		errors.Is(err, sequencer.ErrSpinInProgress),
		errors.Is(err, sequencer.ErrQueueBusy),
		errors.Is(err, sequencer.ErrNoPopup),
		errors.Is(err, sequencer.ErrNoRulePrompt):
		return http.StatusConflict
	case errors.Is(err, sequencer.ErrInvalidState):
		return http.StatusUnprocessableEntity
	case errors.Is(err, sequencer.ErrFeatureNotFound),
		errors.Is(err, catalog.ErrFeatureNotFound),
		errors.Is(err, game.ErrOptionNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorBody{Error: err.Error()})
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return false
	}
	return true
}

// fail logs unexpected errors and writes the mapped response
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if statusFor(err) == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
	}
	writeError(w, err)
}

func (s *Server) getState(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	out, err := s.game.GetState(r.Context(), &game.GetStateInput{})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) spin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, err := s.game.Spin(r.Context(), &game.SpinInput{}); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, okResponse{OK: true})
}

func (s *Server) listPlayers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	out, err := s.game.ListPlayers(r.Context(), &game.ListPlayersInput{})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, playersResponse{Players: out.Players})
}

func (s *Server) addPlayer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req nameRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := s.game.AddPlayer(r.Context(), &game.AddPlayerInput{Name: req.Name})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, playersResponse{Added: out.Added, Players: out.Players})
}

func (s *Server) removePlayer(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	out, err := s.game.RemovePlayer(r.Context(), &game.RemovePlayerInput{Name: p.ByName("name")})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, playersResponse{Players: out.Players})
}

func (s *Server) listDrinks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	out, err := s.game.ListDrinks(r.Context(), &game.ListDrinksInput{})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, drinksResponse{Drinks: out.Drinks})
}

func (s *Server) addDrink(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req drinkRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := s.game.AddDrink(r.Context(), &game.AddDrinkInput{Drink: req.Drink})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, drinksResponse{Added: out.Added, Drinks: out.Drinks})
}

func (s *Server) removeDrink(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	out, err := s.game.RemoveDrink(r.Context(), &game.RemoveDrinkInput{Drink: p.ByName("name")})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, drinksResponse{Drinks: out.Drinks})
}

func (s *Server) listFeatures(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	out, err := s.game.ListFeatures(r.Context(), &game.ListFeaturesInput{})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, featuresResponse{Features: out.Features})
}

func (s *Server) addFeature(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req featureRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := s.game.AddFeature(r.Context(), &game.AddFeatureInput{
		Name:            req.Name,
		Message:         req.Message,
		DurationSeconds: req.Duration,
		TargetType:      req.TargetType,
		TargetPlayer:    req.TargetPlayer,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, featureResponse{Feature: out.Feature})
}

func (s *Server) removeFeature(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if _, err := s.game.RemoveFeature(r.Context(), &game.RemoveFeatureInput{FeatureID: p.ByName("id")}); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) triggerFeature(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if _, err := s.game.TriggerFeature(r.Context(), &game.TriggerFeatureInput{FeatureID: p.ByName("id")}); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, okResponse{OK: true})
}

func (s *Server) listRules(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	out, err := s.game.ListRules(r.Context(), &game.ListRulesInput{})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rulesResponse{Rules: out.Rules})
}

func (s *Server) submitRule(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req ruleRequest
	if !decode(w, r, &req) {
		return
	}

	if _, err := s.game.SubmitRule(r.Context(), &game.SubmitRuleInput{Text: req.Text}); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) dismissRulePrompt(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, err := s.game.DismissRulePrompt(r.Context(), &game.DismissRulePromptInput{}); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) dismissPopup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, err := s.game.DismissPopup(r.Context(), &game.DismissPopupInput{}); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
