package dto

import "mime/multipart"

// TranscribeForm is the multipart body of POST /transcribe.
type TranscribeForm struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

// TranscribeResponse is returned on success.
type TranscribeResponse struct {
	Text string `json:"text" example:"Hello and welcome to the show."`
}

// ErrorResponse documents the 500 body.
type ErrorResponse struct {
	Error string `json:"error" example:"transcribe: createTranscription failed: error, status code: 401"`
}

// DetailResponse documents the 400 body.
type DetailResponse struct {
	Detail string `json:"detail" example:"file is required"`
}
