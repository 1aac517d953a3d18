// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"time"
)

// maxUploadSize is the maximum allowed file upload size (50 MB).
const maxUploadSize = 50 << 20

// unsafeFilenameChars matches every character that is not kept in an
// object key. Keeping only alphanumerics, underscore, hyphen, and dot
// prevents path traversal through the stored key.
var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// sanitizeFilename replaces unsafe filename characters with underscores.
func sanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

// uploadResponse is the upload endpoint's success body.
type uploadResponse struct {
	Message string `json:"message"`
	FileURL string `json:"fileUrl"`
}

// Upload accepts one multipart file, stores it in the object bucket under
// a timestamped key, and returns the public URL.
func (a *Admin) Upload(w http.ResponseWriter, r *http.Request) {
	if !a.storage.Configured() {
		slog.Error("upload rejected: object storage not configured")
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "File upload is not configured on the server.",
		})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "Could not read the upload. Maximum file size is 50 MB.",
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No file provided."})
		return
	}
	defer file.Close()

	// Timestamp prefix makes the key globally unique; the sanitized
	// original name keeps it recognisable in the bucket.
	key := fmt.Sprintf("%d-%s", time.Now().UnixNano(), sanitizeFilename(header.Filename))

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := a.storage.Upload(r.Context(), key, contentType, file, header.Size); err != nil {
		slog.Error("upload failed", "key", key, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Upload failed.",
			Details: "The storage service did not accept the file.",
		})
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		Message: "File uploaded successfully.",
		FileURL: a.storage.FileURL(key),
	})
}
