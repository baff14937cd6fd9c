package httpclient

import (
	"bytes"
	"net/http"

	"github.com/tidwall/gjson"
)

// Meta is returned with every response, successful or not.
type Meta struct {
	StatusCode     int
	RequestID      string
	Runtime        string
	TwoFactorToken string // set only when the server issued one; persist it for later calls
}

// Response is the outcome of a call that reached the server.
type Response struct {
	// Data is the parsed JSON body: map[string]any, []any, string,
	// json.Number, bool or nil. It is true for 204 No Content and nil for an
	// empty body.
	Data any
	Meta Meta
}

func metaFromResponse(resp *http.Response) Meta {
	return Meta{
		StatusCode:     resp.StatusCode,
		RequestID:      resp.Header.Get(HeaderRequestID),
		Runtime:        resp.Header.Get(HeaderRuntime),
		TwoFactorToken: resp.Header.Get(HeaderOTPToken),
	}
}

// interpret classifies a fully read response body.
func interpret(meta Meta, header http.Header, raw []byte, op Operation) (*Response, error) {
	res := &Response{Meta: meta}
	status := meta.StatusCode

	if status == http.StatusNoContent {
		res.Data = true
		return res, nil
	}

	text := bytes.TrimSpace(raw)
	if len(text) > 0 {
		var data any
		if err := json.Unmarshal(text, &data); err != nil {
			return res, &Error{
				Kind:       InvalidResponseBody,
				StatusCode: status,
				Payload:    string(text),
				Err:        err,
			}
		}
		res.Data = data
	}

	if status < http.StatusMultipleChoices || isSuccessException(op, status) {
		return res, nil
	}

	kind := APIError
	if status == http.StatusUnauthorized && header.Get(HeaderOTP) == "required" {
		kind = OtpRequired
	}
	return res, &Error{
		Kind:       kind,
		StatusCode: status,
		Message:    extractMessage(text),
		Payload:    res.Data,
	}
}

// extractMessage finds the human readable message in an error payload:
// "message", then "error", then the first entry of the "errors" object.
func extractMessage(body []byte) string {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return ""
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return ""
	}

	for _, key := range []string{"message", "error"} {
		if v := doc.Get(key); v.Exists() && v.Type != gjson.Null && v.String() != "" {
			return v.String()
		}
	}

	var msg string
	if errs := doc.Get("errors"); errs.IsObject() {
		errs.ForEach(func(_, value gjson.Result) bool {
			if value.IsArray() {
				msg = value.Get("0").String()
			} else {
				msg = value.String()
			}
			return false
		})
	}
	return msg
}
