// Package api contains the HTTP handlers for the study-tracking endpoints.
// Handlers stay thin: they parse path and query parameters, call into the
// service layer, and render the response DTOs. Error mapping to status codes
// is centralized in HandleAPIError so every endpoint reports failures the
// same way.
package api
