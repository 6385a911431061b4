package validate

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/eykd/origami-lint/internal/expect"
	"github.com/eykd/origami-lint/internal/jsonvalue"
	"github.com/eykd/origami-lint/internal/model"
)

// OrigamiTypes lists the permitted origamiType values.
var OrigamiTypes = []string{"component", "imageset", "service", "cli", "library", "module", "config"}

// CIServices lists the ci keys the registry understands.
var CIServices = []string{"circle", "travis", "jenkins"}

// BrandNames lists the permitted brands.
var BrandNames = []string{model.BrandMaster, model.BrandInternal, model.BrandWhitelabel}

// scopedPrefix is the npm scope a package.json name may carry.
const scopedPrefix = "@financial-times/"

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	slackPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*/[a-z0-9][a-z0-9_.-]*$`)
)

func (b *builder) origamiType() model.Required[*model.Value[string]] {
	v, src := b.origami.Resolve("origamiType")
	s, ok := v.(string)
	if !ok {
		return model.Fail[*model.Value[string]](typeProblem(src, CodeOrigamiTypeType,
			"origamiType must be a string", jsonvalue.KindString))
	}
	if !slices.Contains(OrigamiTypes, s) {
		return model.Fail[*model.Value[string]](model.NewProblem(src,
			expect.MemberOf{Allowed: expect.Strings(OrigamiTypes...), Received: s},
			CodeOrigamiTypeInvalid, "origamiType is not a known component type"))
	}
	return model.Ok(model.NewValue(model.NodeString, src, s))
}

func (b *builder) origamiVersion() model.Required[*model.Value[int64]] {
	v, src := b.origami.Resolve("origamiVersion")
	switch x := v.(type) {
	case string:
		if x != "1" {
			break
		}
		n := model.NewValue(model.NodeNumber, src, int64(1))
		n.Opine(model.NewOpinion(src,
			expect.TypeOf{Expected: []jsonvalue.Kind{jsonvalue.KindNumber}, Received: x},
			CodeOrigamiVersionAsString, "origamiVersion should be the number 1, not a string"))
		return model.Ok(n)
	default:
		if !jsonvalue.IsNumber(x) {
			break
		}
		if i, ok := jsonvalue.AsInt(x); ok && i == 1 {
			return model.Ok(model.NewValue(model.NodeNumber, src, i))
		}
		return model.Fail[*model.Value[int64]](model.NewProblem(src,
			expect.ValueOf{Expected: 1, Received: x},
			CodeOrigamiVersionInvalid, "origamiVersion must be 1"))
	}
	return model.Fail[*model.Value[int64]](typeProblem(src, CodeOrigamiVersionType,
		"origamiVersion must be a number", jsonvalue.KindNumber))
}

func (b *builder) brands() model.Optional[*model.Brands] {
	v, src := b.origami.Resolve("brands")
	if !src.Found() {
		return model.None[*model.Brands](src)
	}
	if !jsonvalue.IsArray(v) {
		return model.Refuse[*model.Brands](typeProblem(src, CodeBrandsType,
			"brands must be an array of strings", jsonvalue.KindArray))
	}
	items, f := stringItems(b.origami, model.Path{"brands"}, listRule{
		itemCode: CodeBrandType,
		dupCode:  CodeBrandDuplicate,
		check: func(item *model.Value[string]) *model.Problem {
			if slices.Contains(BrandNames, item.Value) {
				return nil
			}
			return model.NewProblem(item.Src,
				expect.MemberOf{Allowed: expect.Strings(BrandNames...), Received: item.Value},
				CodeBrandInvalid, quote(item.Value)+" is not an Origami brand")
		},
	})
	if f != nil {
		return model.Refuse[*model.Brands](f)
	}
	brands := model.NewBrands(src, items)
	if len(items) == 0 {
		brands.Opine(model.NewOpinion(src, expect.Message{}, CodeBrandsEmpty,
			"brands is empty; list at least one brand or remove the key"))
	}
	return model.Some(brands)
}

func (b *builder) category() model.Required[*model.Category] {
	v, src := b.origami.Resolve("origamiCategory")
	s, ok := v.(string)
	if !ok {
		return model.Fail[*model.Category](typeProblem(src, CodeCategoryType,
			"origamiCategory must be a string", jsonvalue.KindString))
	}
	c, ok := model.NewCategory(src, s)
	if !ok {
		return model.Fail[*model.Category](model.NewProblem(src,
			expect.MemberOf{Allowed: expect.Strings(model.Categories...), Received: s},
			CodeCategoryInvalid, "origamiCategory is not a known category"))
	}
	return model.Ok(c)
}

// name reads the component name from bower.json and checks package.json
// agrees with it.
func (b *builder) name() model.Required[*model.Value[string]] {
	v, src := b.bower.Resolve("name")
	s, ok := v.(string)
	if !ok {
		return model.Fail[*model.Value[string]](typeProblem(src, CodeNameType,
			"bower.json name must be a string", jsonvalue.KindString))
	}
	if !kebab.MatchString(s) {
		return model.Fail[*model.Value[string]](model.NewProblem(src,
			expect.Match{Pattern: kebab.String(), Received: s},
			CodeNameNotKebab, "name must be lowercase letters, digits and hyphens"))
	}
	if b.pkg != nil {
		if pv, psrc := b.pkg.Resolve("name"); psrc.Found() && pv != s && pv != scopedPrefix+s {
			return model.Fail[*model.Value[string]](model.NewProblem(psrc,
				expect.MemberOf{Allowed: expect.Strings(s, scopedPrefix+s), Received: pv},
				CodeNamePackageMismatch, "package.json name does not match bower.json name"))
		}
	}
	n := model.NewValue(model.NodeString, src, s)
	if !strings.HasPrefix(s, "o-") {
		n.Opine(model.NewOpinion(src, expect.StartsWith{Prefix: "o-", Received: s},
			CodeNameNotOPrefixed, "component names conventionally start with o-"))
	}
	return model.Ok(n)
}

// description reads origami.json description and opines when bower.json or
// package.json say something different.
func (b *builder) description() model.Required[*model.Value[string]] {
	r := requiredString(b.origami, CodeDescriptionType, "description must be a string", "description")
	n, ok := r.Get()
	if !ok {
		return r
	}
	if strings.TrimSpace(n.Value) == "" {
		return model.Fail[*model.Value[string]](model.NewProblem(n.Src, expect.Message{},
			CodeDescriptionEmpty, "description must not be empty"))
	}
	if bv, bsrc := b.bower.Resolve("description"); bsrc.Found() && bv != n.Value {
		n.Opine(model.NewOpinion(bsrc, expect.ValueOf{Expected: n.Value, Received: bv},
			CodeDescriptionBowerMismatch, "bower.json description differs from origami.json"))
	}
	if b.pkg != nil {
		if pv, psrc := b.pkg.Resolve("description"); psrc.Found() && pv != n.Value {
			n.Opine(model.NewOpinion(psrc, expect.ValueOf{Expected: n.Value, Received: pv},
				CodeDescriptionPackageMismatch, "package.json description differs from origami.json"))
		}
	}
	return r
}

func (b *builder) status() model.Required[*model.Status] {
	v, src := b.origami.Resolve("supportStatus")
	s, ok := v.(string)
	if !ok {
		return model.Fail[*model.Status](typeProblem(src, CodeStatusType,
			"supportStatus must be a string", jsonvalue.KindString))
	}
	st, ok := model.NewStatus(src, s)
	if !ok {
		return model.Fail[*model.Status](model.NewProblem(src,
			expect.MemberOf{Allowed: expect.Strings(model.Statuses...), Received: s},
			CodeStatusInvalid, "supportStatus is not a known status"))
	}
	return model.Ok(st)
}

// keywords accepts an array of strings or, with an opinion, a single
// comma-separated string.
func (b *builder) keywords() model.Optional[*model.Keywords] {
	v, src := b.origami.Resolve("keywords")
	base := model.Base{Kind: model.NodeKeywords, Src: src}
	switch x := v.(type) {
	case string:
		kw := &model.Keywords{Base: base, Words: []string{}}
		kw.Opine(model.NewOpinion(src,
			expect.TypeOf{Expected: []jsonvalue.Kind{jsonvalue.KindArray}, Received: x},
			CodeKeywordsAsString, "keywords should be an array of strings"))
		if strings.TrimSpace(x) == "" {
			return model.Some(kw)
		}
		for i, w := range strings.Split(x, ",") {
			w = strings.TrimSpace(w)
			if w == "" {
				kw.Opine(model.NewOpinion(src, expect.Message{}, CodeKeywordEmpty,
					"keyword "+strconv.Itoa(i+1)+" is empty"))
				continue
			}
			kw.Words = append(kw.Words, w)
		}
		return model.Some(kw)
	case []any:
		items, f := stringItems(b.origami, model.Path{"keywords"}, listRule{
			itemCode: CodeKeywordType,
			check: func(item *model.Value[string]) *model.Problem {
				if strings.TrimSpace(item.Value) == "" {
					item.Opine(model.NewOpinion(item.Src, expect.Message{}, CodeKeywordEmpty,
						"keyword is empty"))
				}
				return nil
			},
		})
		if f != nil {
			return model.Refuse[*model.Keywords](f)
		}
		kw := &model.Keywords{Base: base, Words: make([]string, len(items)), Items: items}
		for i, it := range items {
			kw.Words[i] = it.Value
		}
		return model.Some(kw)
	}
	if !src.Found() {
		return model.None[*model.Keywords](src)
	}
	return model.Refuse[*model.Keywords](typeProblem(src, CodeKeywordsType,
		"keywords must be an array of strings", jsonvalue.KindArray, jsonvalue.KindString))
}

// ci reads the map of CI services to status URLs, in document order.
func (b *builder) ci() model.Optional[*model.CI] {
	v, src := b.origami.Resolve("ci")
	if !src.Found() {
		return model.None[*model.CI](src)
	}
	if !jsonvalue.IsObject(v) {
		return model.Refuse[*model.CI](typeProblem(src, CodeCIType,
			"ci must be an object", jsonvalue.KindObject))
	}
	ci := &model.CI{Base: model.Base{Kind: model.NodeCI, Src: src}, Items: []*model.Value[string]{}}
	var fails []model.Failure
	for _, service := range b.origami.Keys("ci") {
		sv, ssrc := b.origami.Resolve("ci", service)
		s, ok := sv.(string)
		if !ok {
			fails = append(fails, typeProblem(ssrc, CodeCIURLType,
				"ci."+service+" must be a URL string", jsonvalue.KindString))
			continue
		}
		if !isHTTPURL(s) {
			fails = append(fails, model.NewProblem(ssrc, expect.URL{Received: s},
				CodeCIURLInvalid, "ci."+service+" is not a valid URL"))
			continue
		}
		item := model.NewValue(model.NodeString, ssrc, s)
		if !slices.Contains(CIServices, service) {
			item.Opine(model.NewOpinion(ssrc,
				expect.MemberOf{Allowed: expect.Strings(CIServices...), Received: service},
				CodeCIUnknownService, quote(service)+" is not a known CI service"))
		}
		ci.Items = append(ci.Items, item)
	}
	if f := model.Collect(src, fails...); f != nil {
		return model.Refuse[*model.CI](f)
	}
	return model.Some(ci)
}

var browserFeatureKeys = []string{"required", "optional"}

// browserFeatures checks the object's keys before its lists: an unexpected
// key fails the whole field.
func (b *builder) browserFeatures() model.Optional[*model.BrowserFeatures] {
	v, src := b.origami.Resolve("browserFeatures")
	if !src.Found() {
		return model.None[*model.BrowserFeatures](src)
	}
	if !jsonvalue.IsObject(v) {
		return model.Refuse[*model.BrowserFeatures](typeProblem(src, CodeBrowserFeaturesType,
			"browserFeatures must be an object", jsonvalue.KindObject))
	}
	var fails []model.Failure
	for _, key := range b.origami.Keys("browserFeatures") {
		if slices.Contains(browserFeatureKeys, key) {
			continue
		}
		_, ksrc := b.origami.Resolve("browserFeatures", key)
		fails = append(fails, model.NewProblem(ksrc,
			expect.MemberOf{Allowed: expect.Strings(browserFeatureKeys...), Received: key},
			CodeBrowserFeaturesKey, "browserFeatures has an unexpected key "+quote(key)))
	}
	if f := model.Collect(src, fails...); f != nil {
		return model.Refuse[*model.BrowserFeatures](f)
	}
	return model.Some(&model.BrowserFeatures{
		Base:     model.Base{Kind: model.NodeBrowserFeatures, Src: src},
		Required: b.featureList("required"),
		Optional: b.featureList("optional"),
	})
}

func (b *builder) featureList(key string) model.Optional[*model.List] {
	path := model.Path{"browserFeatures", key}
	v, src := b.origami.Resolve(path...)
	if !src.Found() {
		return model.None[*model.List](src)
	}
	if !jsonvalue.IsArray(v) {
		return model.Refuse[*model.List](typeProblem(src, CodeBrowserFeaturesListType,
			"browserFeatures."+key+" must be an array of strings", jsonvalue.KindArray))
	}
	items, f := stringItems(b.origami, path, listRule{
		itemCode: CodeBrowserFeatureType,
		dupCode:  CodeBrowserFeatureDuplicate,
	})
	if f != nil {
		return model.Refuse[*model.List](f)
	}
	return model.Some(model.NewList(model.NodeList, src, items))
}

func (b *builder) supportURL() model.Required[*model.Value[string]] {
	r := requiredString(b.origami, CodeSupportURLType, "support must be a URL string", "support")
	n, ok := r.Get()
	if !ok {
		return r
	}
	if !isHTTPURL(n.Value) {
		return model.Fail[*model.Value[string]](model.NewProblem(n.Src, expect.URL{Received: n.Value},
			CodeSupportURLInvalid, "support is not a valid URL"))
	}
	if !strings.HasPrefix(n.Value, "https://") {
		n.Opine(model.NewOpinion(n.Src, expect.StartsWith{Prefix: "https://", Received: n.Value},
			CodeSupportURLNotHTTPS, "support should use https"))
	}
	return r
}

func (b *builder) supportEmail() model.Required[*model.Value[string]] {
	return b.contact("email", emailPattern, CodeSupportEmailType, CodeSupportEmailInvalid)
}

func (b *builder) supportSlack() model.Required[*model.Value[string]] {
	return b.contact("slack", slackPattern, CodeSupportSlackType, CodeSupportSlackInvalid)
}

func (b *builder) contact(key string, pattern *regexp.Regexp, typeCode, invalidCode model.Code) model.Required[*model.Value[string]] {
	field := "supportContact." + key
	r := requiredString(b.origami, typeCode, field+" must be a string", "supportContact", key)
	n, ok := r.Get()
	if !ok {
		return r
	}
	if !pattern.MatchString(n.Value) {
		return model.Fail[*model.Value[string]](model.NewProblem(n.Src,
			expect.Match{Pattern: pattern.String(), Received: n.Value},
			invalidCode, field+" is malformed"))
	}
	return r
}
