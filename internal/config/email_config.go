package config

// EmailConfig holds the SMTP settings used to send the change notice.
// The values come from the environment only. They are checked when a
// notice is about to be sent, not when the run starts.
type EmailConfig struct {
	Username string `json:"-" yaml:"-" validate:"required"`
	Password string `json:"-" yaml:"-" validate:"required"`
	Server   string `json:"-" yaml:"-" validate:"required"`
	To       string `json:"-" yaml:"-" validate:"required"`
}

// Validate reports the first missing setting as a configuration error.
func (ec EmailConfig) Validate() error {
	return validateStruct(ec, map[string]string{
		"Username": EnvEmailUsername,
		"Password": EnvEmailPassword,
		"Server":   EnvEmailServer,
		"To":       EnvEmailTo,
	})
}
