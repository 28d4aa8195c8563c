package httputil

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PathVar returns the named path parameter and whether the matched route
// supplied it. Absence and an empty value are distinct: defaults documented
// for a parameter apply only when it is syntactically absent.
func PathVar(r *http.Request, key string) (string, bool) {
	val, ok := mux.Vars(r)[key]
	return val, ok
}

// GetPathVars returns all path variables from the request
func GetPathVars(r *http.Request) map[string]string {
	return mux.Vars(r)
}
