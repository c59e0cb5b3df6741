package handler

import (
	"errors"
	"net/http"

	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/pow"
	"medconnect/internal/pkg/req"
	"medconnect/internal/pkg/resp"
)

// PowVerifyInput is a solved challenge.
type PowVerifyInput struct {
	Nonce   string `json:"nonce" validate:"required"`
	Counter string `json:"counter" validate:"required,max=32"`
}

// HandlePowChallenge issues a fresh nonce and the difficulty it must be solved at.
func HandlePowChallenge(manager *pow.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"nonce":      manager.GenerateNonce(),
			"difficulty": manager.Difficulty(),
		})
	}
}

// HandlePowVerify exchanges a solved challenge for a single-use proof token.
func HandlePowVerify(manager *pow.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input PowVerifyInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		token, err := manager.ValidateProof(input.Nonce, input.Counter)
		if err != nil {
			if errors.Is(err, pow.ErrNonceInvalid) || errors.Is(err, pow.ErrProofInsufficient) {
				resp.RespondError(w, r, errs.Wrap(errs.ErrPowChallengeInvalid, err))
				return
			}
			resp.RespondError(w, r, errs.Wrap(errs.ErrPowChallengeInternal, err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"token":     token,
			"header":    pow.TokenHeaderKey,
			"expiresIn": int(pow.ProofTokenDuration.Seconds()),
		})
	}
}
