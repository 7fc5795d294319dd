package handler

import (
	"net/http"

	"parikshamitra/internal/pkg/errs"
	"parikshamitra/internal/pkg/resp"
)

// HandleTeacherOverview serves the teacher dashboard payload. The route is
// reachable only through Authenticate + RequireRole(teacher).
func HandleTeacherOverview(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := UserFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNoToken))
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, map[string]any{
			"message": "Welcome to the teacher dashboard",
			"teacher": userResponse(r.Context(), deps, identity),
		})
	}
}
