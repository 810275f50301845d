package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(fmtCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(indentCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(settingsCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
