package validate

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/eykd/origami-lint/internal/expect"
	"github.com/eykd/origami-lint/internal/jsonpath"
	"github.com/eykd/origami-lint/internal/jsonvalue"
	"github.com/eykd/origami-lint/internal/model"
	"github.com/eykd/origami-lint/internal/workspace"
)

// KnownKeys lists the top-level origami.json keys the validator reads or
// tolerates. Anything else draws an unknown-key opinion.
var KnownKeys = []string{
	"description",
	"keywords",
	"origamiType",
	"origamiCategory",
	"origamiVersion",
	"brands",
	"support",
	"supportStatus",
	"supportContact",
	"ci",
	"browserFeatures",
	"demosDefaults",
	"demos",
}

// builder holds the state of one Build call. Fields of the component under
// construction are written once, in stage order.
type builder struct {
	ctx     context.Context
	origami *jsonpath.Resolver
	bower   *jsonpath.Resolver
	// pkg is nil when package.json is absent.
	pkg    *jsonpath.Resolver
	paths  PathClassifier
	logger *zap.Logger
}

type stage struct {
	field string
	run   func(b *builder, c *model.Component) model.Node
}

// stages run in Component field order. A stage may read any field an
// earlier stage has set.
var stages = []stage{
	{"origamiType", func(b *builder, c *model.Component) model.Node {
		c.OrigamiType = b.origamiType()
		return c.OrigamiType.Node()
	}},
	{"origamiVersion", func(b *builder, c *model.Component) model.Node {
		c.OrigamiVersion = b.origamiVersion()
		return c.OrigamiVersion.Node()
	}},
	{"brands", func(b *builder, c *model.Component) model.Node {
		c.Brands = b.brands()
		return c.Brands.Node()
	}},
	{"origamiCategory", func(b *builder, c *model.Component) model.Node {
		c.Category = b.category()
		return c.Category.Node()
	}},
	{"name", func(b *builder, c *model.Component) model.Node {
		c.Name = b.name()
		return c.Name.Node()
	}},
	{"description", func(b *builder, c *model.Component) model.Node {
		c.Description = b.description()
		return c.Description.Node()
	}},
	{"supportStatus", func(b *builder, c *model.Component) model.Node {
		c.Status = b.status()
		return c.Status.Node()
	}},
	{"keywords", func(b *builder, c *model.Component) model.Node {
		c.Keywords = b.keywords()
		return c.Keywords.Node()
	}},
	{"ci", func(b *builder, c *model.Component) model.Node {
		c.CI = b.ci()
		return c.CI.Node()
	}},
	{"browserFeatures", func(b *builder, c *model.Component) model.Node {
		c.BrowserFeatures = b.browserFeatures()
		return c.BrowserFeatures.Node()
	}},
	{"js", func(b *builder, c *model.Component) model.Node {
		c.JS = b.entryPoint(mainJS)
		return c.JS.Node()
	}},
	{"sass", func(b *builder, c *model.Component) model.Node {
		c.Sass = b.entryPoint(mainScss)
		return c.Sass.Node()
	}},
	{"support", func(b *builder, c *model.Component) model.Node {
		c.SupportURL = b.supportURL()
		return c.SupportURL.Node()
	}},
	{"supportContact.email", func(b *builder, c *model.Component) model.Node {
		c.SupportEmail = b.supportEmail()
		return c.SupportEmail.Node()
	}},
	{"supportContact.slack", func(b *builder, c *model.Component) model.Node {
		c.SupportSlack = b.supportSlack()
		return c.SupportSlack.Node()
	}},
	{"demosDefaults", func(b *builder, c *model.Component) model.Node {
		c.DemosDefaults = b.demosDefaults()
		return c.DemosDefaults.Node()
	}},
	{"demos", func(b *builder, c *model.Component) model.Node {
		c.Demos = b.demos(c.Brands)
		return c.Demos.Node()
	}},
}

// Build validates the manifests in in. When a required manifest is missing
// or unparseable the result is the root failure and no field is evaluated.
func Build(ctx context.Context, in Input, opts ...Option) model.Required[*model.Component] {
	b := &builder{ctx: ctx, paths: in.Paths, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	if b.paths == nil {
		b.paths = noPaths{}
	}

	if f := b.parse(in.Manifests); f != nil {
		b.logger.Debug("manifests unusable", zap.Stringer("root", f.Type()))
		return model.Fail[*model.Component](f)
	}

	_, src := b.origami.Resolve()
	c := &model.Component{Base: model.Base{Kind: model.NodeComponent, Src: src}}
	c.Opine(b.rootOpinions()...)

	for _, s := range stages {
		n := s.run(b, c)
		b.logger.Debug("field validated", zap.String("field", s.field), zap.Stringer("result", n.Type()))
	}
	return model.Ok(c)
}

// parse builds a resolver per manifest, returning the combined failure of
// every manifest that cannot be used.
func (b *builder) parse(m workspace.Manifests) model.Failure {
	var fails []model.Failure
	var f model.Failure

	if b.origami, f = parseManifest(m.Origami, CodeNoOrigamiJSON, CodeInvalidOrigamiJSON, CodeOrigamiJSONNotObject); f != nil {
		fails = append(fails, f)
	}
	if b.bower, f = parseManifest(m.Bower, CodeNoBowerJSON, CodeInvalidBowerJSON, CodeBowerJSONNotObject); f != nil {
		fails = append(fails, f)
	}
	if m.Package.Exists {
		if b.pkg, f = parseManifest(m.Package, "", CodeInvalidPackageJSON, CodePackageJSONNotObject); f != nil {
			fails = append(fails, f)
		}
	}
	return model.Collect(rootSource(model.FileOrigami), fails...)
}

func parseManifest(t workspace.Text, missing, invalid, notObject model.Code) (*jsonpath.Resolver, model.Failure) {
	src := rootSource(t.File)
	if !t.Exists {
		return nil, model.NewProblem(src, expect.File{Received: string(t.File)}, missing, string(t.File)+" is required")
	}
	r, err := jsonpath.Parse(t.File, t.Raw)
	if err != nil {
		return nil, model.NewProblem(src, expect.Message{}, invalid, err.Error())
	}
	v, src := r.Resolve()
	if !jsonvalue.IsObject(v) {
		return nil, typeProblem(src, notObject, string(t.File)+" must hold a JSON object", jsonvalue.KindObject)
	}
	return r, nil
}

func rootSource(file model.File) model.Source {
	return model.Source{File: file, Path: model.Path{}, Value: jsonvalue.Undefined}
}

// rootOpinions reports the missing package.json and every unknown top-level
// key, in document order.
func (b *builder) rootOpinions() []*model.Opinion {
	var ops []*model.Opinion
	if b.pkg == nil {
		ops = append(ops, model.NewOpinion(rootSource(model.FilePackage),
			expect.File{Received: string(model.FilePackage)}, CodeNoPackageJSON,
			"components should publish a package.json"))
	}
	for _, key := range b.origami.Keys() {
		if slices.Contains(KnownKeys, key) {
			continue
		}
		_, src := b.origami.Resolve(key)
		ops = append(ops, model.NewOpinion(src,
			expect.MemberOf{Allowed: expect.Strings(KnownKeys...), Received: key}, CodeUnknownKey,
			"origami.json has an unknown key "+quote(key)))
	}
	return ops
}
