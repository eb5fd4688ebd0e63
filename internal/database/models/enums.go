package models

import "strings"

// AuthType is the kind of authority an employee holds on a piece of equipment
type AuthType string

const (
	// AuthTypeResv allows reserving the equipment
	AuthTypeResv AuthType = "RESV"
	// AuthTypeAdmin allows managing equipment authorizations
	AuthTypeAdmin AuthType = "ADMIN"
)

// Reservation status display values. The product is Korean-facing, so the
// persisted status codes are the Korean display strings, same as the source
// system they are imported from.
const (
	StatusWaiting  = "대기"
	StatusApproved = "승인"
	StatusRejected = "반려"
)

// ApprovalSeqPreApproval is the fixed approval-sequence slot for the
// pre-approval notification stage. No other slot is produced today.
const ApprovalSeqPreApproval = "0"

// SiteAll is the sentinel meaning "no site scope"
const SiteAll = "ALL"

// SiteHQ is the default site and the only one with a reservation
// authorization gate
const SiteHQ = "HQ"

// NormalizeSite trims and upper-cases a site value; blank means HQ
func NormalizeSite(site string) string {
	s := strings.ToUpper(strings.TrimSpace(site))
	if s == "" {
		return SiteHQ
	}
	return s
}

// ParseAuthType maps a raw code to an AuthType; anything but ADMIN is RESV
func ParseAuthType(code string) AuthType {
	if strings.EqualFold(strings.TrimSpace(code), string(AuthTypeAdmin)) {
		return AuthTypeAdmin
	}
	return AuthTypeResv
}

// SplitFilter splits a comma-joined query filter into trimmed, de-duplicated
// (case-insensitive) values. Blank input yields an empty slice.
func SplitFilter(source string) []string {
	if strings.TrimSpace(source) == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var values []string
	for _, part := range strings.Split(source, ",") {
		v := strings.TrimSpace(part)
		if v == "" {
			continue
		}
		key := strings.ToUpper(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		values = append(values, v)
	}
	return values
}
