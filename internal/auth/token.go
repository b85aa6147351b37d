package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"travelai/internal/model"
)

// legacyTokenPrefix marks bearer credentials in the historical
// "token_<id>_<role>" format still accepted on the read side.
const legacyTokenPrefix = "token_"

// ErrMalformedToken is returned when a credential cannot be parsed.
var ErrMalformedToken = errors.New("malformed token")

// IsLegacyToken reports whether token uses the historical format.
func IsLegacyToken(token string) bool {
	return strings.HasPrefix(token, legacyTokenPrefix)
}

// FormatLegacyToken renders the historical bearer credential,
// e.g. "token_42_admin". Kept for wire compatibility with old clients.
func FormatLegacyToken(userID uint, role model.Role) string {
	return fmt.Sprintf("%s%d_%s", legacyTokenPrefix, userID, role)
}

// ParseLegacyToken extracts the user id from a "token_<id>_<role>"
// credential. The id must parse as a non-negative integer. The embedded
// role is returned for completeness but must never drive authorization
// decisions; callers re-read the role from the store so a forged or
// stale claim cannot grant privilege.
func ParseLegacyToken(token string) (uint, model.Role, error) {
	rest, ok := strings.CutPrefix(token, legacyTokenPrefix)
	if !ok {
		return 0, "", ErrMalformedToken
	}
	idPart, rolePart, ok := strings.Cut(rest, "_")
	if !ok {
		return 0, "", ErrMalformedToken
	}
	id, err := strconv.ParseUint(idPart, 10, 32)
	if err != nil {
		return 0, "", ErrMalformedToken
	}
	return uint(id), model.Role(rolePart), nil
}
