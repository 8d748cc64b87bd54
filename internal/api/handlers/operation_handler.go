package handlers

import (
	"encoding/json"
	"net/http"
)

// OperationPayload defines the structure for arithmetic requests.
type OperationPayload struct {
	Num1      float64 `json:"num1"`
	Num2      float64 `json:"num2"`
	Operation string  `json:"operation"`
}

// Operation dispatches on the operation tag. An unknown tag is answered
// with HTTP 200 and success:false, not an error status.
func Operation(w http.ResponseWriter, r *http.Request) {
	var payload OperationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondInternalError(w, err)
		return
	}

	var result float64
	switch payload.Operation {
	case "sum":
		result = payload.Num1 + payload.Num2
	case "substraction":
		result = payload.Num1 - payload.Num2
	case "multiplication":
		result = payload.Num1 * payload.Num2
	default:
		respondJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "operation type not defined"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "result": result})
}
