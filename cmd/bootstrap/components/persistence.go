package components

import (
	"content-dispatch/internal/infra/query"
	"content-dispatch/internal/infra/readstore"
	"content-dispatch/internal/infra/uow"
	"content-dispatch/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per session inside the unit of work, so
// only the UoW and the read stores are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Content
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ContentViewQueries)),
		),
		fx.Annotate(
			readstore.NewContentReadStore,
			fx.As(new(queries.ContentReadStore)),
		),
		// Job
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.JobViewQueries)),
		),
		fx.Annotate(
			readstore.NewJobReadStore,
			fx.As(new(queries.JobReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
