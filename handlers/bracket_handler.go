package handlers

import (
	"net/http"

	"github.com/Dosada05/bracketboard/brackets"
	"github.com/Dosada05/bracketboard/models"
	"github.com/Dosada05/bracketboard/services"
)

type BracketHandler struct {
	bracketService services.BracketService
}

func NewBracketHandler(bs services.BracketService) *BracketHandler {
	return &BracketHandler{
		bracketService: bs,
	}
}

type buildBracketInput struct {
	Matches []models.Match `json:"matches"`
}

// BuildHandler godoc
// @Summary Build a bracket from raw matches
// @Description Groups matches by canonical round, resolves slots and flags winners. Matches with unknown round labels are listed in dropped_match_ids.
// @Tags brackets
// @Accept json
// @Produce json
// @Param input body buildBracketInput true "Matches"
// @Success 200 {object} models.BracketResult
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /brackets [post]
func (h *BracketHandler) BuildHandler(w http.ResponseWriter, r *http.Request) {
	var input buildBracketInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.bracketService.BuildBracket(r.Context(), input.Matches)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// TournamentBracketHandler godoc
// @Summary Get the bracket of a stored tournament
// @Tags brackets
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {object} models.BracketResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /tournaments/{tournamentID}/bracket [get]
func (h *BracketHandler) TournamentBracketHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.bracketService.TournamentBracket(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ConnectorsHandler godoc
// @Summary Get the connector lines between bracket rounds
// @Description Derived from round and match order only. The bronze round is never linked.
// @Tags brackets
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {array} brackets.Connector
// @Failure 404 {object} map[string]string
// @Router /tournaments/{tournamentID}/connectors [get]
func (h *BracketHandler) ConnectorsHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.bracketService.TournamentBracket(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"connectors": brackets.Connectors(result)}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
