package payhere

import (
	"strconv"
	"strings"

	"github.com/fatflowers/gemcashier/pkg/types"
)

// StatusCode is a gateway payment status code.
type StatusCode int

const (
	StatusChargedback StatusCode = -3
	StatusFailed      StatusCode = -2
	StatusCancelled   StatusCode = -1
	StatusPending     StatusCode = 0
	StatusSuccess     StatusCode = 2
)

// Status is the parsed form of a raw status_code field. Codes the gateway may
// add later parse with Known=false and never map to a terminal outcome.
type Status struct {
	Code  StatusCode
	Raw   string
	Known bool
}

func ParseStatus(raw string) Status {
	raw = strings.TrimSpace(raw)
	st := Status{Raw: raw}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return st
	}
	switch code := StatusCode(n); code {
	case StatusChargedback, StatusFailed, StatusCancelled, StatusPending, StatusSuccess:
		st.Code = code
		st.Known = true
	}
	return st
}

// PaymentStatus maps the code to a terminal payment outcome. ok is false for
// pending and unknown codes.
func (s Status) PaymentStatus() (types.PaymentStatus, bool) {
	if !s.Known {
		return "", false
	}
	switch s.Code {
	case StatusSuccess:
		return types.PaymentStatusCompleted, true
	case StatusCancelled, StatusFailed:
		return types.PaymentStatusFailed, true
	case StatusChargedback:
		return types.PaymentStatusChargedback, true
	}
	return "", false
}

func (s Status) String() string {
	if !s.Known {
		return "unknown(" + s.Raw + ")"
	}
	switch s.Code {
	case StatusSuccess:
		return "success"
	case StatusPending:
		return "pending"
	case StatusCancelled:
		return "cancelled"
	case StatusFailed:
		return "failed"
	case StatusChargedback:
		return "chargedback"
	}
	return s.Raw
}
