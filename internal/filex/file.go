// Package filex contains local-file helpers for the client, most notably
// the data-URL encoding used to stage a profile picture for registration.
package filex

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ReadDataURL reads the file at path and returns its base name together
// with a "data:<mime>;base64,<payload>" representation of its content.
//
// The content type is taken from the file extension when it is a known
// image type, otherwise sniffed from the leading bytes.
func ReadDataURL(path string) (name string, dataURL string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" || !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(data)
	}
	// data URLs carry the bare media type, without parameters.
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return filepath.Base(path), "data:" + contentType + ";base64," + encoded, nil
}
