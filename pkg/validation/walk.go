package validation

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/docsafe-go/docsafe/pkg/docvalue"
)

// reservedFieldChars are structural separators in path-addressed document
// stores. Keys containing them cannot be written and are dropped.
const reservedFieldChars = "./"

// walker carries the state of one fused sanitize+validate traversal. A fresh
// walker is built per call; nothing outlives the walk.
type walker struct {
	opts     Options
	maxDepth int
	ctx      Context
	errors   []string
	warnings []string
	// visited tracks container identities on the current ancestor chain to
	// turn a cyclic input into a reported error instead of infinite
	// recursion. Entries are removed on the way back up, so sharing the
	// same container in two sibling positions is fine.
	visited map[uintptr]struct{}
	log     *slog.Logger
}

func newWalker(opts Options) *walker {
	return &walker{
		opts:     opts,
		maxDepth: opts.maxDepth(),
		visited:  make(map[uintptr]struct{}),
		log:      opts.Logger,
	}
}

// walk sanitizes and validates v in a single depth-first pre-order pass. It
// returns the cleaned value and whether it survives; kept == false means the
// value was stripped and its slot must be omitted from the parent. The walk
// never fails: every anomaly becomes a collected message.
func (w *walker) walk(v any, path string, depth int) (clean any, kept bool) {
	w.ctx.NodesVisited++

	rv, kind := docvalue.Resolve(v)

	// Containers at the depth limit are replaced with the marker before
	// recursing, so no node in the output sits deeper than maxDepth.
	// Scalars at the limit still pass: they add no nesting.
	if (kind == docvalue.KindArray || kind == docvalue.KindObject) && depth >= w.maxDepth {
		w.ctx.MaxDepthReached = true
		w.warnf("%s: truncated at max depth", at(path))
		w.debug("subtree truncated", slog.String("path", at(path)), slog.Int("depth", depth))
		return docvalue.TruncatedMarker, true
	}

	switch kind {
	case docvalue.KindNull:
		if !w.opts.AllowNullValues {
			w.errorf("%s: null value not allowed", at(path))
		}
		return nil, true
	case docvalue.KindBool, docvalue.KindNumber, docvalue.KindString:
		return rv, true
	case docvalue.KindArray:
		return w.walkArray(rv.([]any), path, depth)
	case docvalue.KindObject:
		return w.walkObject(rv.(map[string]any), path, depth)
	default:
		// Any kind outside the known set is treated as forbidden
		// rather than raising.
		return w.stripForbidden(rv, path)
	}
}

func (w *walker) walkArray(items []any, path string, depth int) (any, bool) {
	if !w.enter(items, path) {
		return nil, false
	}
	defer w.leave(items)

	// Stripped elements are dropped, not replaced with null: document
	// stores cannot represent gaps, so the output stays dense.
	out := make([]any, 0, len(items))
	for i, item := range items {
		clean, kept := w.walk(item, fmt.Sprintf("%s[%d]", path, i), depth+1)
		if kept {
			out = append(out, clean)
		}
	}
	return out, true
}

func (w *walker) walkObject(fields map[string]any, path string, depth int) (any, bool) {
	if !w.enter(fields, path) {
		return nil, false
	}
	defer w.leave(fields)

	// Sorted keys keep traversal order, message order, and the report
	// deterministic across runs.
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(fields))
	for _, key := range keys {
		if strings.ContainsAny(key, reservedFieldChars) {
			w.ctx.InvalidFieldNamesFound++
			w.errorf("%s: invalid field name '%s'", at(joinPath(path, key)), key)
			w.debug("field dropped", slog.String("path", at(path)), slog.String("field", key))
			continue
		}
		clean, kept := w.walk(fields[key], joinPath(path, key), depth+1)
		if !kept {
			// The value was stripped; omitting the key entirely is
			// the only representation of "absent" the store has.
			continue
		}
		out[key] = clean
	}
	return out, true
}

// stripForbidden records the policy or structural violation for a
// Forbidden-classified leaf and removes it from the output.
func (w *walker) stripForbidden(v any, path string) (any, bool) {
	if docvalue.IsUndefined(v) {
		if w.opts.AllowUndefined {
			// Stores have no "undefined"; null is the closest
			// persistable representation when the policy allows it.
			return nil, true
		}
		w.ctx.UndefinedFieldsRemoved++
		w.errorf("%s: undefined value not allowed", at(path))
		return nil, false
	}
	if docvalue.IsCallable(v) {
		w.ctx.FunctionsRemoved++
	}
	w.errorf("%s: %s", at(path), docvalue.DescribeForbidden(v))
	w.debug("forbidden value stripped", slog.String("path", at(path)))
	return nil, false
}

// enter registers a container on the ancestor chain. It reports false when
// the container is already an ancestor of itself, which marks a cycle.
func (w *walker) enter(container any, path string) bool {
	id, ok := docvalue.Identity(container)
	if !ok {
		return true
	}
	if _, seen := w.visited[id]; seen {
		w.errorf("%s: circular reference not allowed", at(path))
		return false
	}
	w.visited[id] = struct{}{}
	return true
}

func (w *walker) leave(container any) {
	if id, ok := docvalue.Identity(container); ok {
		delete(w.visited, id)
	}
}

func (w *walker) errorf(format string, args ...any) {
	w.errors = append(w.errors, fmt.Sprintf(format, args...))
}

func (w *walker) warnf(format string, args ...any) {
	w.warnings = append(w.warnings, fmt.Sprintf(format, args...))
}

func (w *walker) debug(msg string, attrs ...any) {
	if w.log != nil {
		w.log.Debug(msg, attrs...)
	}
}

// joinPath appends an object key to a dotted path prefix.
func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// at renders a path for a diagnostic message; the document root has no path
// of its own.
func at(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}
