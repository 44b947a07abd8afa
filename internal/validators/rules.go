package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	serverIDPattern      = regexp.MustCompile(`^s-([0-9a-f]{17})$`)
	agreementIDPattern   = regexp.MustCompile(`^a-([0-9a-f]{17})$`)
	profileIDPattern     = regexp.MustCompile(`^p-([0-9a-f]{17})$`)
	certificateIDPattern = regexp.MustCompile(`^cert-([0-9a-f]{17})$`)
	webAppIDPattern      = regexp.MustCompile(`^webapp-([0-9a-f]{17})$`)
	userNamePattern      = regexp.MustCompile(`^[\w][\w@.-]{2,99}$`)
	roleARNPattern       = regexp.MustCompile(`^arn:.*role/\S+$`)
)

// rules maps validate tags to the pattern they enforce
var rules = map[string]validator.Func{
	"serverid":         matches(serverIDPattern),
	"agreementid":      matches(agreementIDPattern),
	"profileid":        matches(profileIDPattern),
	"certificateid":    matches(certificateIDPattern),
	"webappid":         matches(webAppIDPattern),
	"transferusername": matches(userNamePattern),
	"iamrolearn":       matches(roleARNPattern),
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}
