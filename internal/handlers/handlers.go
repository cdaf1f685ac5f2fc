// Package handlers wires HTTP endpoints to the service layer. Handlers are
// thin: decode, call, encode; the services own the rules.
package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"fieldbook/internal/middleware"
	"fieldbook/internal/models"
	"fieldbook/internal/utils"
)

var validate = validator.New()

// actorFrom builds the authenticated actor from context values placed there
// by the auth middleware. Routes behind RequireAuth always have a user id.
func actorFrom(r *http.Request) models.Actor {
	uid, _ := utils.GetString(r.Context(), middleware.CtxUserID)
	role, _ := utils.GetString(r.Context(), middleware.CtxRole)
	return models.Actor{ID: uid, Role: role}
}

// fail maps the error taxonomy to a response; anything outside it is logged
// server-side and answered with a generic 500 body.
func fail(w http.ResponseWriter, log zerolog.Logger, err error) {
	if utils.IsInternal(err) {
		log.Error().Err(err).Msg("request failed")
	}
	utils.ErrorFrom(w, err)
}
