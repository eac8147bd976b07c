package http

import (
	"net/http"

	"github.com/shramsetu/rozgar-backend-go/internal/domain/user"
	"github.com/shramsetu/rozgar-backend-go/internal/handler/http/response"
)

type ProfileHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	userService user.UserService
}

func NewProfileHandler(userService user.UserService) ProfileHandler {
	return &profileHandlerImpl{
		userService: userService,
	}
}

// Me implements ProfileHandler.
func (h *profileHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.Me(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
