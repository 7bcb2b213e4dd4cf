package core

// error_messages.go maps internal errors to user-friendly messages with
// support codes. Users can quote the code to support staff for faster
// diagnosis.
//
//	DS001  - Dataset not found
//	FILE001 - Uploaded file is empty
//	FILE002 - Unsupported file format
//	FILE003 - File could not be parsed
//	FILE004 - No file provided
//	FILE005 - File too large
//	VAL001  - Invalid table structure (duplicate or ragged columns)
//	SYS001  - Unexpected internal error

import (
	"errors"
	"strings"
)

// UserMessage is a user-facing error with a support code and a
// suggested next step.
type UserMessage struct {
	Code    string
	Message string
	Action  string
}

// ErrNoFile is reported by the web layer when the multipart form has no
// file field. Defined here so MapError covers the whole upload flow.
var ErrNoFile = errors.New("no file provided")

// MapError converts an internal error to a UserMessage.
// The technical error should still be logged server-side; only the
// mapped message is shown to clients.
func MapError(err error) UserMessage {
	switch {
	case errors.Is(err, ErrDatasetNotFound):
		return UserMessage{
			Code:    "DS001",
			Message: "Dataset not found.",
			Action:  "Check the dataset ID or upload the file again.",
		}
	case errors.Is(err, ErrEmptyFile):
		return UserMessage{
			Code:    "FILE001",
			Message: "Uploaded file is empty.",
			Action:  "Select a file that contains at least a header row.",
		}
	case errors.Is(err, ErrUnsupportedFormat):
		return UserMessage{
			Code:    "FILE002",
			Message: "Unsupported file type. Please upload a CSV or Excel file.",
			Action:  "Save the data as .csv or .xlsx and try again.",
		}
	case errors.Is(err, ErrInvalidFile):
		if strings.Contains(err.Error(), "duplicate column") {
			return UserMessage{
				Code:    "VAL001",
				Message: "The file has duplicate column names.",
				Action:  "Rename the duplicated columns so every header is unique.",
			}
		}
		return UserMessage{
			Code:    "FILE003",
			Message: "Failed to parse the uploaded file.",
			Action:  "Ensure the file is a valid CSV or Excel export.",
		}
	case errors.Is(err, ErrNoFile):
		return UserMessage{
			Code:    "FILE004",
			Message: "No file was provided.",
			Action:  "Select a file to upload.",
		}
	}
	return UserMessage{
		Code:    "SYS001",
		Message: "An unexpected error occurred.",
		Action:  "Please try again. Contact support with this code if it persists.",
	}
}
