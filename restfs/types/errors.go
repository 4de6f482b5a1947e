package types

import (
	"net/http"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/filescom/filestore"
)

// Error codes specific to the REST path. Operation failures reuse the filestore codes.
const (
	// CodeRequestFailed is returned when the API answers with an unexpected status.
	CodeRequestFailed = "FILES_COM_REQUEST_FAILED"

	// CodeMissingDownloadURI is returned when file metadata carries no download_uri.
	CodeMissingDownloadURI = "MISSING_DOWNLOAD_URI"

	// CodeMissingUploadURI is returned when an upload intent carries no upload_uri.
	CodeMissingUploadURI = "MISSING_UPLOAD_URI"
)

// StatusError builds a typed error for a failed REST call.
func StatusError(method, url string, status int, apiErr *APIError) error {
	msg := http.StatusText(status)
	if apiErr != nil && apiErr.Error() != "" {
		msg = apiErr.Error()
	}

	code, typ := CodeRequestFailed, errx.T_Internal
	switch {
	case status == http.StatusNotFound:
		code, typ = filestore.CodeFileNotFound, errx.T_NotFound
	case status == http.StatusUnauthorized:
		code, typ = filestore.CodeAuthenticationFailed, errx.T_Authentication
	case status == http.StatusForbidden:
		typ = errx.T_Forbidden
	case status == http.StatusTooManyRequests:
		typ = errx.T_Throttling
	case status == http.StatusConflict:
		typ = errx.T_Conflict
	}

	return errx.New(msg,
		errx.WithCode(code),
		errx.WithType(typ),
		errx.WithDetails(errx.D{"method": method, "url": url, "status": status}),
	)
}

// MissingField reports a response that lacks a required field.
func MissingField(code, field string) error {
	return errx.New("Files.com response is missing "+field,
		errx.WithCode(code),
		errx.WithType(errx.T_Internal),
	)
}
