package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Gaetan-M/SocialWishlist/internal/domain"
	"github.com/Gaetan-M/SocialWishlist/internal/ledger"
	"github.com/Gaetan-M/SocialWishlist/internal/middleware"
)

type contributionRequest struct {
	Amount *int64 `json:"amount"`
}

type contributionDTO struct {
	ID        string `json:"id"`
	ItemID    string `json:"item_id"`
	UserID    string `json:"user_id"`
	Amount    int64  `json:"amount"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type contributionResponse struct {
	Contribution contributionDTO        `json:"contribution"`
	Funding      ledger.FundingSnapshot `json:"funding"`
}

func toContributionDTO(c *domain.Contribution) contributionDTO {
	return contributionDTO{
		ID:        c.ID.String(),
		ItemID:    c.ItemID.String(),
		UserID:    c.UserID.String(),
		Amount:    c.Amount,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func (a *App) ContributionCreate(w http.ResponseWriter, r *http.Request) {
	itemID, userID, ok := a.contributionScope(w, r)
	if !ok {
		return
	}
	var req contributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount == nil {
		a.error(w, r, http.StatusBadRequest, "bad_request")
		return
	}

	contribution, snapshot, err := a.Ledger.Contribute(r.Context(), itemID, userID, *req.Amount)
	if err != nil {
		a.ledgerError(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, contributionResponse{Contribution: toContributionDTO(contribution), Funding: snapshot})
}

func (a *App) ContributionReserve(w http.ResponseWriter, r *http.Request) {
	itemID, userID, ok := a.contributionScope(w, r)
	if !ok {
		return
	}

	contribution, snapshot, err := a.Ledger.Reserve(r.Context(), itemID, userID)
	if err != nil {
		a.ledgerError(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, contributionResponse{Contribution: toContributionDTO(contribution), Funding: snapshot})
}

func (a *App) ContributionUpdate(w http.ResponseWriter, r *http.Request) {
	itemID, userID, ok := a.contributionScope(w, r)
	if !ok {
		return
	}
	var req contributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount == nil {
		a.error(w, r, http.StatusBadRequest, "bad_request")
		return
	}

	contribution, snapshot, err := a.Ledger.UpdateContribution(r.Context(), itemID, userID, *req.Amount)
	if err != nil {
		a.ledgerError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, contributionResponse{Contribution: toContributionDTO(contribution), Funding: snapshot})
}

// ContributionMine returns the caller's own pledge, or null when there
// is none.
func (a *App) ContributionMine(w http.ResponseWriter, r *http.Request) {
	itemID, userID, ok := a.contributionScope(w, r)
	if !ok {
		return
	}

	contribution, err := a.Ledger.GetContribution(r.Context(), itemID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		a.json(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("get contribution failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	a.json(w, http.StatusOK, toContributionDTO(contribution))
}

func (a *App) contributionScope(w http.ResponseWriter, r *http.Request) (itemID, userID uuid.UUID, ok bool) {
	userID, authed := middleware.UserIDFromContext(r.Context())
	if !authed {
		a.error(w, r, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, uuid.Nil, false
	}
	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		a.error(w, r, http.StatusNotFound, "not_found")
		return uuid.Nil, uuid.Nil, false
	}
	return itemID, userID, true
}
