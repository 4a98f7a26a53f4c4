package handler

import (
	"net/http"

	"github.com/iho/finledger/internal/adapter/http/dto"
)

// Categories lists every transaction category.
func Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.CategoriesFromDomain())
}

// AccountTypes lists every account type.
func AccountTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.AccountTypesFromDomain())
}
