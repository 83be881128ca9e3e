package controllers

import "dbvaultapi/services"

// Response models used only by swagger documentation.

// MessageResponse is a generic message envelope.
type MessageResponse struct {
	Message string `json:"message" example:"pong"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error string `json:"error" example:"Database credentials not found"`
}

// LoginResponse wraps the token payload returned on login.
type LoginResponse struct {
	Data services.LoginResult `json:"data"`
}
