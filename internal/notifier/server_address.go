package notifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aleister1102/webwatcher/internal/common"
	"github.com/aleister1102/webwatcher/internal/config"
)

// ParseServerAddress splits an EMAIL_SERVER value into host and port.
// The text after the last colon is the port; without a colon the whole
// value is the host and DefaultSMTPPort is used.
func ParseServerAddress(server string) (string, int, error) {
	idx := strings.LastIndex(server, ":")
	if idx < 0 {
		if server == "" {
			return "", 0, serverError("host is empty", nil)
		}
		return server, DefaultSMTPPort, nil
	}

	host, portText := server[:idx], server[idx+1:]
	if host == "" {
		return "", 0, serverError("host is empty", nil)
	}

	port, err := strconv.Atoi(portText)
	if err != nil {
		return "", 0, serverError(fmt.Sprintf("port %q is not a number", portText), err)
	}
	if port < 1 || port > 65535 {
		return "", 0, serverError(fmt.Sprintf("port %d out of range", port), common.ErrInvalidConfiguration)
	}
	return host, port, nil
}

func serverError(reason string, wrapped error) *common.ConfigurationError {
	if wrapped == nil {
		wrapped = common.ErrInvalidConfiguration
	}
	return &common.ConfigurationError{
		Section: "email",
		Field:   config.EnvEmailServer,
		Reason:  reason,
		Wrapped: wrapped,
	}
}
