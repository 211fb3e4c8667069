// Copyright (C) 2025 MoltBridge
//
// This file is part of moltbridge-go.
//
// moltbridge-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// moltbridge-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with moltbridge-go.  If not, see <https://www.gnu.org/licenses/>.

package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/moltbridge/moltbridge-go/pkg/errors"
)

// HTTPServer represents a subset of http.Server methods.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

func jsonResponse(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// jsonError writes the structured error envelope the SDK expects:
// {"error": {"message": "...", "code": "..."}}
func jsonError(w http.ResponseWriter, err error) {
	type errorBody struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	}
	type errorResponse struct {
		Error errorBody `json:"error"`
	}

	status := http.StatusInternalServerError
	body := errorBody{Message: err.Error()}

	var typed *errors.Error
	if stderrors.As(err, &typed) {
		status = typed.HTTPStatus()
		body.Message = typed.Message
		body.Code = string(typed.Code)
	}

	jsonResponse(w, status, &errorResponse{Error: body})
}
