package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(clean, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(tables, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
