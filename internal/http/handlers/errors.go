package handlers

import (
	"errors"
	"net/http"

	"github.com/Gaetan-M/SocialWishlist/internal/domain"
	"github.com/Gaetan-M/SocialWishlist/internal/middleware"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// messages holds the user-facing text per error code and locale. The
// negotiated locale comes from the Locale middleware; English is the
// fallback for anything unlisted.
var messages = map[string]map[string]string{
	"bad_request": {
		"en": "invalid payload",
		"fr": "requête invalide",
	},
	"unauthorized": {
		"en": "not authenticated",
		"fr": "authentification requise",
	},
	"not_found": {
		"en": "not found",
		"fr": "introuvable",
	},
	"email_taken": {
		"en": "email already registered",
		"fr": "cette adresse e-mail est déjà utilisée",
	},
	"invalid_credentials": {
		"en": "invalid email or password",
		"fr": "e-mail ou mot de passe invalide",
	},
	"validation": {
		"en": "invalid amount",
		"fr": "montant invalide",
	},
	"duplicate_contribution": {
		"en": "you already have a contribution for this item, use update instead",
		"fr": "vous avez déjà une participation pour ce cadeau, modifiez-la",
	},
	"fully_funded": {
		"en": "item is already fully funded",
		"fr": "ce cadeau est déjà entièrement financé",
	},
	"already_funded": {
		"en": "cannot reserve: item already has contributions",
		"fr": "réservation impossible : ce cadeau a déjà des participations",
	},
	"exceeds_remaining": {
		"en": "amount exceeds the remaining unfunded part",
		"fr": "le montant dépasse ce qu'il reste à financer",
	},
	"cannot_withdraw": {
		"en": "cannot withdraw: item is fully funded",
		"fr": "retrait impossible : ce cadeau est entièrement financé",
	},
	"price_locked": {
		"en": "price cannot change once the item has contributions",
		"fr": "le prix ne peut plus changer une fois le cadeau financé en partie",
	},
	"conflict": {
		"en": "conflicting funding state",
		"fr": "état de financement en conflit",
	},
	"internal": {
		"en": "internal error",
		"fr": "erreur interne",
	},
}

func (a *App) error(w http.ResponseWriter, r *http.Request, status int, code string) {
	locale := middleware.LocaleFromContext(r.Context())
	byLocale, ok := messages[code]
	if !ok {
		byLocale = messages["internal"]
	}
	msg, ok := byLocale[locale]
	if !ok {
		msg = byLocale["en"]
	}
	a.json(w, status, errorResponse{Error: code, Message: msg})
}

// ledgerError maps a funding-ledger error kind onto an HTTP response.
// Every rejected operation surfaces its specific kind so the client can
// render an accurate message.
func (a *App) ledgerError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		a.error(w, r, http.StatusBadRequest, "validation")
	case errors.Is(err, domain.ErrDuplicateContribution):
		a.error(w, r, http.StatusBadRequest, "duplicate_contribution")
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, r, http.StatusNotFound, "not_found")
	case errors.Is(err, domain.ErrFullyFunded):
		a.error(w, r, http.StatusConflict, "fully_funded")
	case errors.Is(err, domain.ErrAlreadyFunded):
		a.error(w, r, http.StatusConflict, "already_funded")
	case errors.Is(err, domain.ErrExceedsRemaining):
		a.error(w, r, http.StatusConflict, "exceeds_remaining")
	case errors.Is(err, domain.ErrCannotWithdraw):
		a.error(w, r, http.StatusConflict, "cannot_withdraw")
	case errors.Is(err, domain.ErrConflict):
		a.error(w, r, http.StatusConflict, "conflict")
	default:
		a.Logger.Error().Err(err).Msg("ledger operation failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
	}
}
