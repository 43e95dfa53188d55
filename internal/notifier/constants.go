package notifier

// Email composition constants
const (
	EmailSubject    = "Website update notice"
	EmailBodyPrefix = "Website address: "
	EmailURLSep     = "<br>"
	EmailFromName   = "web watcher"
)

// DefaultSMTPPort is SMTPS, used with implicit TLS
const DefaultSMTPPort = 465

const emailChannel = "email"
