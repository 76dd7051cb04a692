package log

import "sort"

// KV is a bag of key-value attributes attached to one log line.
type KV map[string]any

// kvToArgs flattens the first KV bag into slog's alternating key-value
// argument form. Keys are emitted in sorted order so log output stays
// stable across runs; extra bags beyond the first are ignored.
func kvToArgs(keyVals ...KV) []any {
	args := []any{}
	if len(keyVals) == 0 {
		return args
	}

	keys := make([]string, 0, len(keyVals[0]))
	for key := range keyVals[0] {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		args = append(args, key, keyVals[0][key])
	}
	return args
}

// kvToArgsNs is kvToArgs with the namespace prepended as the "ns" pair.
func kvToArgsNs(namespace string, keyVals ...KV) []any {
	return append([]any{"ns", namespace}, kvToArgs(keyVals...)...)
}
