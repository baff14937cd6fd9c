package provider

import (
	"strconv"
	"strings"
	"time"

	"github.com/libdns/libdns"
	"github.com/tansive/dnsimple-go/pkg/dnsimple"
)

// toLibdns converts an API record. The apex, an empty name in the API, is
// "@" in libdns. MX and SRV priorities are folded into Data.
func toLibdns(rec dnsimple.Record) libdns.Record {
	name := rec.Name
	if name == "" {
		name = "@"
	}
	data := rec.Content
	switch strings.ToUpper(rec.Type) {
	case "MX", "SRV":
		data = strconv.Itoa(rec.Priority) + " " + rec.Content
	}
	return libdns.RR{
		Name: name,
		TTL:  time.Duration(rec.TTL) * time.Second,
		Type: strings.ToUpper(rec.Type),
		Data: data,
	}
}

// fromLibdns converts a libdns record into the API's writable fields.
func fromLibdns(rec libdns.Record) (dnsimple.RecordInput, error) {
	rr := rec.RR()
	if rr.Type == "" {
		return dnsimple.RecordInput{}, ErrRecordUnsupported.Msg("record has no type")
	}

	in := dnsimple.RecordInput{
		Name:    rr.Name,
		Type:    strings.ToUpper(rr.Type),
		Content: rr.Data,
		TTL:     int(rr.TTL / time.Second),
	}
	if in.Name == "@" {
		in.Name = ""
	}

	switch in.Type {
	case "MX", "SRV":
		if rr.Data == "" {
			break
		}
		prio, rest, ok := strings.Cut(rr.Data, " ")
		if !ok {
			return dnsimple.RecordInput{}, ErrRecordUnsupported.Msg(in.Type + " data must start with a priority")
		}
		n, err := strconv.Atoi(prio)
		if err != nil {
			return dnsimple.RecordInput{}, ErrRecordUnsupported.MsgErr(in.Type+" priority "+prio, err)
		}
		in.Priority = n
		in.Content = strings.TrimSpace(rest)
	}
	return in, nil
}
