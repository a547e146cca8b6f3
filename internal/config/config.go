// Package config loads and validates application configuration from the
// environment and an optional config file.
package config

// Config holds all application configuration, organized into logical groups.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
	Forms  FormsConfig  `mapstructure:"forms"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains the Gemini integration settings. Distinct model
// identifiers are used for text, image, and speech generation.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	TextModel    string `mapstructure:"text_model" validate:"required"`
	ImageModel   string `mapstructure:"image_model" validate:"required"`
	TTSModel     string `mapstructure:"tts_model" validate:"required"`
	TTSVoice     string `mapstructure:"tts_voice" validate:"required"`
}

// FormsConfig contains the Google Forms API settings. BaseURL is only
// overridden in tests.
type FormsConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}
