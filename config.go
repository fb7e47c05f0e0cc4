package sitegen

import "github.com/goliatone/go-sitegen/internal/runtimeconfig"

var (
	ErrContentDirRequired      = runtimeconfig.ErrContentDirRequired
	ErrOutputDirRequired       = runtimeconfig.ErrOutputDirRequired
	ErrWorkersInvalid          = runtimeconfig.ErrWorkersInvalid
	ErrThemePathRequired       = runtimeconfig.ErrThemePathRequired
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config          = runtimeconfig.Config
	SiteConfig      = runtimeconfig.SiteConfig
	ContentConfig   = runtimeconfig.ContentConfig
	ParserConfig    = runtimeconfig.ParserConfig
	GeneratorConfig = runtimeconfig.GeneratorConfig
	ThemeConfig     = runtimeconfig.ThemeConfig
	TemplateConfig  = runtimeconfig.TemplateConfig
	CommandsConfig  = runtimeconfig.CommandsConfig
	LoggingConfig   = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
