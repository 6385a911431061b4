package validate

import (
	"net/url"
	"regexp"
	"slices"
	"strconv"

	"github.com/eykd/origami-lint/internal/expect"
	"github.com/eykd/origami-lint/internal/jsonpath"
	"github.com/eykd/origami-lint/internal/jsonvalue"
	"github.com/eykd/origami-lint/internal/model"
	"github.com/eykd/origami-lint/internal/workspace"
)

// kebab matches lowercase ASCII words joined by single hyphens.
var kebab = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func quote(s string) string {
	return strconv.Quote(s)
}

func typeProblem(src model.Source, code model.Code, msg string, kinds ...jsonvalue.Kind) *model.Problem {
	return model.NewProblem(src, expect.TypeOf{Expected: kinds, Received: src.Value}, code, msg)
}

// requiredString resolves path and requires a string there.
func requiredString(r *jsonpath.Resolver, code model.Code, msg string, path ...any) model.Required[*model.Value[string]] {
	v, src := r.Resolve(path...)
	s, ok := v.(string)
	if !ok {
		return model.Fail[*model.Value[string]](typeProblem(src, code, msg, jsonvalue.KindString))
	}
	return model.Ok(model.NewValue(model.NodeString, src, s))
}

// optionalString is requiredString for a field that may be absent.
func optionalString(r *jsonpath.Resolver, code model.Code, msg string, path ...any) model.Optional[*model.Value[string]] {
	if _, src := r.Resolve(path...); !src.Found() {
		return model.None[*model.Value[string]](src)
	}
	return model.Lift(requiredString(r, code, msg, path...))
}

// optionalBool resolves a boolean field. The strings "true" and "false" are
// coerced, with one boolean-as-string opinion; any other value fails.
func optionalBool(r *jsonpath.Resolver, path ...any) model.Optional[*model.Value[bool]] {
	v, src := r.Resolve(path...)
	if !src.Found() {
		return model.None[*model.Value[bool]](src)
	}
	switch x := v.(type) {
	case bool:
		return model.Some(model.NewValue(model.NodeBoolean, src, x))
	case string:
		if x == "true" || x == "false" {
			n := model.NewValue(model.NodeBoolean, src, x == "true")
			n.Opine(model.NewOpinion(src,
				expect.TypeOf{Expected: []jsonvalue.Kind{jsonvalue.KindBoolean}, Received: x},
				CodeBooleanAsString, src.Path.String()+" should be a boolean, not a string"))
			return model.Some(n)
		}
	}
	return model.Refuse[*model.Value[bool]](typeProblem(src, CodeBooleanType,
		src.Path.String()+" must be a boolean", jsonvalue.KindBoolean))
}

// listRule describes the elements of an array of strings.
type listRule struct {
	// itemCode is reported for an element that is not a string.
	itemCode model.Code
	// dupCode, when set, is an opinion attached to repeated elements.
	dupCode model.Code
	// check, when set, may reject an element or opine on it.
	check func(item *model.Value[string]) *model.Problem
}

// stringItems builds one node per element of the array at path. The caller
// has already established that path holds an array. Element failures are
// collected rather than stopping at the first.
func stringItems(r *jsonpath.Resolver, path model.Path, rule listRule) ([]*model.Value[string], model.Failure) {
	v, src := r.Resolve(path...)
	arr, _ := v.([]any)
	items := make([]*model.Value[string], 0, len(arr))
	seen := make(map[string]bool, len(arr))
	var fails []model.Failure
	for i := range arr {
		iv, isrc := r.Resolve(path.Append(i)...)
		s, ok := iv.(string)
		if !ok {
			fails = append(fails, typeProblem(isrc, rule.itemCode,
				isrc.Path.String()+" must be a string", jsonvalue.KindString))
			continue
		}
		item := model.NewValue(model.NodeString, isrc, s)
		if rule.check != nil {
			if p := rule.check(item); p != nil {
				fails = append(fails, p)
				continue
			}
		}
		if rule.dupCode != "" && seen[s] {
			item.Opine(model.NewOpinion(isrc, expect.Message{}, rule.dupCode,
				quote(s)+" is listed more than once"))
		}
		seen[s] = true
		items = append(items, item)
	}
	return items, model.Collect(src, fails...)
}

// isHTTPURL reports whether s is an absolute http or https URL with a host.
func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// unknownKeys opines on every key of the object at path that is not in
// known, in document order.
func unknownKeys(r *jsonpath.Resolver, path model.Path, known []string, code model.Code) []*model.Opinion {
	var ops []*model.Opinion
	for _, key := range r.Keys(path...) {
		if slices.Contains(known, key) {
			continue
		}
		_, src := r.Resolve(path.Append(key)...)
		ops = append(ops, model.NewOpinion(src,
			expect.MemberOf{Allowed: expect.Strings(known...), Received: key}, code,
			path.String()+" has an unknown key "+quote(key)))
	}
	return ops
}

// isFile classifies path and reports whether it names a regular file.
func (b *builder) isFile(path string) bool {
	return b.paths.Classify(b.ctx, path) == workspace.File
}
