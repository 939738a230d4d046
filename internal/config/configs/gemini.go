package configs

// Gemini configures the Google Gemini content generator. When APIKey is
// empty the application falls back to the sandbox generator.
type Gemini struct {
	APIKey string `env:"API_KEY"`

	// Model names. Empty values use the adapter's defaults.
	TextModel  string `env:"TEXT_MODEL"`
	ImageModel string `env:"IMAGE_MODEL"`
	VideoModel string `env:"VIDEO_MODEL"`

	// AssetsDir is where generated media files are written; AssetsBaseURL
	// is the public prefix under which they are served to the ad
	// platforms.
	AssetsDir     string `env:"ASSETS_DIR" envDefault:"/var/lib/launchpro/assets"`
	AssetsBaseURL string `env:"ASSETS_BASE_URL"`
}
