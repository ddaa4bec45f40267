package patternsapi

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/fwbench/patterns-api/serializer"
)

// writeResponse serializes the payload in the requested format and writes
// it with the matching content type.
func writeResponse(w http.ResponseWriter, status int, payload any, s serializer.Serializer) {
	buf, err := s.Serialize(payload)
	if err != nil {
		log.WithError(err).Error("serialize response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"serialization failed"}`))
		return
	}
	w.Header().Set("Content-Type", s.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(buf)
}

// writeError emits an error payload in the requested format.
func writeError(w http.ResponseWriter, status int, msg string, s serializer.Serializer) {
	writeResponse(w, status, map[string]any{"error": msg}, s)
}
