// Package models holds the GORM persistence models. Domain aggregates never
// carry gorm tags; each model converts with ToDomain and FromDomain.
package models
