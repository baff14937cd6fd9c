package dnsimple

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// asciiName converts an internationalized domain name to its ASCII form. A
// trailing dot is dropped.
func asciiName(name string) (string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")
	if name == "" {
		return "", ErrInvalidDomainName.Msg("domain name is empty")
	}
	ascii, err := idna.ToASCII(name)
	if err != nil {
		return "", ErrInvalidDomainName.MsgErr(name, err)
	}
	return ascii, nil
}

// domainPath builds "domains/<name>/<parts...>" with every segment escaped.
func domainPath(name string, parts ...string) (string, error) {
	ascii, err := asciiName(name)
	if err != nil {
		return "", err
	}
	return joinPath(append([]string{"domains", ascii}, parts...)...), nil
}

func joinPath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.Join(escaped, "/")
}
