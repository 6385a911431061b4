package validate

import (
	"github.com/eykd/origami-lint/internal/expect"
	"github.com/eykd/origami-lint/internal/jsonvalue"
	"github.com/eykd/origami-lint/internal/model"
)

// demoAssetKeys are the keys demosDefaults accepts.
var demoAssetKeys = []string{"template", "sass", "js", "data", "documentClasses", "dependencies"}

// demoKeys are the keys a demo accepts.
var demoKeys = append([]string{"name", "title", "description"},
	append(append([]string(nil), demoAssetKeys...), "brands", "hidden", "display_html")...)

func (b *builder) demosDefaults() model.Optional[*model.DemosDefaults] {
	v, src := b.origami.Resolve("demosDefaults")
	if !src.Found() {
		return model.None[*model.DemosDefaults](src)
	}
	if !jsonvalue.IsObject(v) {
		return model.Refuse[*model.DemosDefaults](typeProblem(src, CodeDemosDefaultsType,
			"demosDefaults must be an object", jsonvalue.KindObject))
	}
	base := model.Path{"demosDefaults"}
	d := &model.DemosDefaults{
		Base:       model.Base{Kind: model.NodeDemosDefaults, Src: src},
		DemoAssets: b.demoAssets(base),
	}
	d.Opine(unknownKeys(b.origami, base, demoAssetKeys, CodeDemosDefaultsUnknownKey)...)
	return model.Some(d)
}

// demos validates each entry independently; a malformed entry fails alone.
// Demo brands are checked against the already-built root brands.
func (b *builder) demos(root model.Optional[*model.Brands]) model.Optional[*model.Demos] {
	v, src := b.origami.Resolve("demos")
	if !src.Found() {
		return model.None[*model.Demos](src)
	}
	arr, ok := v.([]any)
	if !ok {
		return model.Refuse[*model.Demos](typeProblem(src, CodeDemosType,
			"demos must be an array", jsonvalue.KindArray))
	}

	ds := &model.Demos{Base: model.Base{Kind: model.NodeDemos, Src: src}, Items: make([]model.Required[*model.Demo], 0, len(arr))}
	names := make(map[string]bool, len(arr))
	for i := range arr {
		d := b.demo(model.Path{"demos", i}, root)
		if demo, ok := d.Get(); ok {
			if n, ok := demo.Name.Get(); ok {
				if names[n.Value] {
					n.Opine(model.NewOpinion(n.Src, expect.Message{}, CodeDemoNameDuplicate,
						"another demo is already named "+quote(n.Value)))
				}
				names[n.Value] = true
			}
		}
		ds.Items = append(ds.Items, d)
	}
	return model.Some(ds)
}

func (b *builder) demo(at model.Path, root model.Optional[*model.Brands]) model.Required[*model.Demo] {
	v, src := b.origami.Resolve(at...)
	if !jsonvalue.IsObject(v) {
		return model.Fail[*model.Demo](typeProblem(src, CodeDemoType,
			at.String()+" must be an object", jsonvalue.KindObject))
	}
	d := &model.Demo{
		Base:        model.Base{Kind: model.NodeDemo, Src: src},
		Name:        b.demoName(at),
		Title:       requiredString(b.origami, CodeDemoTitleType, at.String()+".title must be a string", at.Append("title")...),
		Description: requiredString(b.origami, CodeDemoDescriptionType, at.String()+".description must be a string", at.Append("description")...),
		DemoAssets:  b.demoAssets(at),
		Brands:      b.demoBrands(at.Append("brands"), root),
		Hidden:      optionalBool(b.origami, at.Append("hidden")...),
		DisplayHTML: optionalBool(b.origami, at.Append("display_html")...),
	}
	d.Opine(unknownKeys(b.origami, at, demoKeys, CodeDemoUnknownKey)...)
	return model.Ok(d)
}

func (b *builder) demoName(at model.Path) model.Required[*model.Value[string]] {
	r := requiredString(b.origami, CodeDemoNameType, at.String()+".name must be a string", at.Append("name")...)
	n, ok := r.Get()
	if !ok {
		return r
	}
	if !kebab.MatchString(n.Value) {
		return model.Fail[*model.Value[string]](model.NewProblem(n.Src,
			expect.Match{Pattern: kebab.String(), Received: n.Value},
			CodeDemoNameInvalid, "demo names must be lowercase letters, digits and hyphens"))
	}
	return r
}

// demoAssets reads the fields demosDefaults and demos share. Unset fields
// are Empty; nothing is inherited from demosDefaults.
func (b *builder) demoAssets(at model.Path) model.DemoAssets {
	return model.DemoAssets{
		Template:        b.assetPath(at.Append("template"), CodeDemoTemplateMissing),
		Sass:            b.assetPath(at.Append("sass"), CodeDemoSassMissing),
		JS:              b.assetPath(at.Append("js"), CodeDemoJSMissing),
		Data:            b.demoData(at.Append("data")),
		DocumentClasses: optionalString(b.origami, CodeDemoDocumentClassesType, at.String()+".documentClasses must be a string", at.Append("documentClasses")...),
		Dependencies:    b.demoDependencies(at.Append("dependencies")),
	}
}

// assetPath requires an optional path field to name a regular file.
func (b *builder) assetPath(at model.Path, missing model.Code) model.Optional[*model.Value[string]] {
	v, src := b.origami.Resolve(at...)
	if !src.Found() {
		return model.None[*model.Value[string]](src)
	}
	s, ok := v.(string)
	if !ok {
		return model.Refuse[*model.Value[string]](typeProblem(src, CodeDemoPathType,
			at.String()+" must be a path string", jsonvalue.KindString))
	}
	if !b.isFile(s) {
		return model.Refuse[*model.Value[string]](model.NewProblem(src, expect.File{Received: s},
			missing, at.String()+" names a file that does not exist"))
	}
	return model.Some(model.NewValue(model.NodePath, src, s))
}

// demoData is either a path to a data file or the data itself, inline.
func (b *builder) demoData(at model.Path) model.Optional[*model.Value[any]] {
	v, src := b.origami.Resolve(at...)
	if !src.Found() {
		return model.None[*model.Value[any]](src)
	}
	switch x := v.(type) {
	case map[string]any:
		return model.Some(model.NewValue[any](model.NodeObject, src, x))
	case string:
		if !b.isFile(x) {
			return model.Refuse[*model.Value[any]](model.NewProblem(src, expect.File{Received: x},
				CodeDemoDataMissing, at.String()+" names a file that does not exist"))
		}
		return model.Some(model.NewValue[any](model.NodePath, src, x))
	}
	return model.Refuse[*model.Value[any]](typeProblem(src, CodeDemoDataType,
		at.String()+" must be a path or an object", jsonvalue.KindString, jsonvalue.KindObject))
}

func (b *builder) demoDependencies(at model.Path) model.Optional[*model.List] {
	v, src := b.origami.Resolve(at...)
	if !src.Found() {
		return model.None[*model.List](src)
	}
	if !jsonvalue.IsArray(v) {
		return model.Refuse[*model.List](typeProblem(src, CodeDemoDependenciesType,
			at.String()+" must be an array of strings", jsonvalue.KindArray))
	}
	items, f := stringItems(b.origami, at, listRule{itemCode: CodeDemoDependencyType})
	if f != nil {
		return model.Refuse[*model.List](f)
	}
	return model.Some(model.NewList(model.NodeList, src, items))
}

// demoBrands fails closed: when the root brands are unusable or absent no
// demo brand can be accepted.
func (b *builder) demoBrands(at model.Path, root model.Optional[*model.Brands]) model.Optional[*model.List] {
	v, src := b.origami.Resolve(at...)
	if !src.Found() {
		return model.None[*model.List](src)
	}
	if !jsonvalue.IsArray(v) {
		return model.Refuse[*model.List](typeProblem(src, CodeDemoBrandsType,
			at.String()+" must be an array of strings", jsonvalue.KindArray))
	}

	var declared *model.Brands
	var unusable *model.Problem
	root.Match(
		func(*model.Empty) {
			unusable = model.NewProblem(src, expect.Message{}, CodeDemoBrandsWithoutRoot,
				"a demo declares brands but the component declares none")
		},
		func(br *model.Brands) { declared = br },
		func(model.Failure) {
			unusable = model.NewProblem(src, expect.Message{}, CodeDemoBrandsUnchecked,
				"demo brands cannot be checked because the component brands are invalid")
		},
	)
	if unusable != nil {
		return model.Refuse[*model.List](unusable)
	}

	items, f := stringItems(b.origami, at, listRule{
		itemCode: CodeDemoBrandType,
		check: func(item *model.Value[string]) *model.Problem {
			if declared.Has(item.Value) {
				return nil
			}
			return model.NewProblem(item.Src,
				expect.MemberOf{Allowed: expect.Strings(declared.Values()...), Received: item.Value},
				CodeDemoBrandNotInRoot, quote(item.Value)+" is not one of the component's brands")
		},
	})
	if f != nil {
		return model.Refuse[*model.List](f)
	}
	return model.Some(model.NewList(model.NodeList, src, items))
}
