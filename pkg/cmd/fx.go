package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(explore, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(ping, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(sandbox, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
