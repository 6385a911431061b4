package validate

import (
	"path"

	"github.com/eykd/origami-lint/internal/expect"
	"github.com/eykd/origami-lint/internal/jsonvalue"
	"github.com/eykd/origami-lint/internal/model"
)

// entry describes one conventional entry point and the codes reported for it.
type entry struct {
	file         string
	missing      model.Code
	unreferenced model.Code
	// ownsMainType marks the entry that reports a malformed bower.json main;
	// the other reports that it could not be checked.
	ownsMainType bool
}

var (
	mainJS = entry{
		file:         "main.js",
		missing:      CodeReferencedMissingMainJS,
		unreferenced: CodeUnreferencedMainJS,
		ownsMainType: true,
	}
	mainScss = entry{
		file:         "main.scss",
		missing:      CodeReferencedMissingMainScss,
		unreferenced: CodeUnreferencedMainScss,
	}
)

// mainRefs reads bower.json main as a list of cleaned paths, each paired
// with its source.
func (b *builder) mainRefs() (map[string]model.Source, model.Source, model.Failure) {
	v, src := b.bower.Resolve("main")
	refs := make(map[string]model.Source)
	switch x := v.(type) {
	case string:
		refs[path.Clean(x)] = src
		return refs, src, nil
	case []any:
		items, f := stringItems(b.bower, model.Path{"main"}, listRule{itemCode: CodeBowerMainType})
		if f != nil {
			return nil, src, f
		}
		for _, it := range items {
			refs[path.Clean(it.Value)] = it.Src
		}
		return refs, src, nil
	}
	if !src.Found() {
		return refs, src, nil
	}
	return nil, src, typeProblem(src, CodeBowerMainType,
		"bower.json main must be a string or an array of strings", jsonvalue.KindString, jsonvalue.KindArray)
}

// entryPoint checks that e is a regular file exactly when bower.json main
// lists it. A node about an entry that main does not list sits at
// $.main[<file>], so the JS and Sass siblings never share a path.
func (b *builder) entryPoint(e entry) model.Optional[*model.Value[string]] {
	refs, mainSrc, f := b.mainRefs()
	own := mainSrc.At(model.Path{"main", e.file})
	if f != nil {
		if e.ownsMainType {
			return model.Refuse[*model.Value[string]](f)
		}
		return model.Refuse[*model.Value[string]](model.NewProblem(own, expect.Message{},
			CodeBowerMainUnchecked, e.file+" cannot be checked because bower.json main is invalid"))
	}

	exists := b.isFile(e.file)
	if refSrc, referenced := refs[e.file]; referenced {
		if !exists {
			return model.Refuse[*model.Value[string]](model.NewProblem(refSrc, expect.File{Received: e.file},
				e.missing, "bower.json main lists "+e.file+" but it does not exist"))
		}
		return model.Some(model.NewValue(model.NodePath, refSrc, e.file))
	}
	if exists {
		return model.Refuse[*model.Value[string]](model.NewProblem(own,
			expect.ValueOf{Expected: e.file, Received: mainSrc.Value},
			e.unreferenced, e.file+" exists but bower.json main does not list it"))
	}
	return model.None[*model.Value[string]](own)
}
