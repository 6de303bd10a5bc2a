package utils

import (
	"net/url"
	"sort"
	"strings"
)

// The custom field is an opaque &-delimited string PayPal round-trips through
// the order lifecycle, carrying buyer metadata (ip, cart id) across the
// create/capture request boundary.

// ParseCustomVar splits a custom field string into its key/value pairs. The
// string is URL-decoded once first, since callers may have encoded it.
// Segments without an equals sign map to an empty value; malformed input
// degrades to a best-effort partial parse.
func ParseCustomVar(custom string) map[string]string {
	if decoded, err := url.QueryUnescape(custom); err == nil {
		custom = decoded
	}

	vars := map[string]string{}
	if custom == "" {
		return vars
	}

	for _, combo := range strings.Split(custom, "&") {
		key, value, found := strings.Cut(combo, "=")
		if !found {
			vars[combo] = ""
			continue
		}
		vars[key] = value
	}

	return vars
}

// EncodeCustomVar joins key/value pairs back into a custom field string. Keys
// are sorted so the output is stable.
func EncodeCustomVar(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	combos := make([]string, 0, len(keys))
	for _, key := range keys {
		combos = append(combos, key+"="+vars[key])
	}

	return strings.Join(combos, "&")
}

// AppendCustomVar appends one key=value pair to an existing custom field
// string without re-encoding the rest of it.
func AppendCustomVar(custom, key, value string) string {
	pair := key + "=" + value
	if custom == "" {
		return pair
	}
	return custom + "&" + pair
}
