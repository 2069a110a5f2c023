package telemetry

import (
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/gorm"
)

// RegisterDBTracing adds otelgorm spans to db. Query variables are kept out
// of spans unless withVariables is set.
func RegisterDBTracing(db *gorm.DB, dbName string, withVariables bool) error {
	opts := []otelgorm.Option{otelgorm.WithDBName(dbName)}
	if !withVariables {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	return db.Use(otelgorm.NewPlugin(opts...))
}
