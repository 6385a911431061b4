package model

import "encoding/json"

// Brand names a supported Origami brand.
const (
	// BrandMaster is the FT.com brand.
	BrandMaster = "master"
	// BrandInternal is the brand for internal tools.
	BrandInternal = "internal"
	// BrandWhitelabel is the unbranded base styling.
	BrandWhitelabel = "whitelabel"
)

// Brands is the component's brand list. Master, Internal and Whitelabel are
// true exactly when a child holds that value.
type Brands struct {
	Base
	Master     bool             `json:"master"`
	Internal   bool             `json:"internal"`
	Whitelabel bool             `json:"whitelabel"`
	Items      []*Value[string] `json:"children"`
}

// NewBrands builds a Brands node, deriving the flags from items.
func NewBrands(src Source, items []*Value[string]) *Brands {
	if items == nil {
		items = []*Value[string]{}
	}
	b := &Brands{Base: Base{Kind: NodeBrands, Src: src}, Items: items}
	for _, it := range items {
		switch it.Value {
		case BrandMaster:
			b.Master = true
		case BrandInternal:
			b.Internal = true
		case BrandWhitelabel:
			b.Whitelabel = true
		}
	}
	return b
}

// Has reports whether brand is declared. Comparison is exact.
func (b *Brands) Has(brand string) bool {
	for _, it := range b.Items {
		if it.Value == brand {
			return true
		}
	}
	return false
}

// Values returns the declared brands in order.
func (b *Brands) Values() []string {
	out := make([]string, len(b.Items))
	for i, it := range b.Items {
		out[i] = it.Value
	}
	return out
}

// Children implements Parent.
func (b *Brands) Children() []Node {
	out := make([]Node, len(b.Items))
	for i, it := range b.Items {
		out[i] = it
	}
	return out
}

// Categories lists the permitted origamiCategory values.
var Categories = []string{"components", "primitives", "utilities", "layouts"}

// Category is the component's origamiCategory. Exactly one flag is true.
type Category struct {
	Base
	Value      string `json:"value"`
	Components bool   `json:"components"`
	Primitives bool   `json:"primitives"`
	Utilities  bool   `json:"utilities"`
	Layouts    bool   `json:"layouts"`
}

// NewCategory returns a Category for value, or false when value is not one
// of Categories.
func NewCategory(src Source, value string) (*Category, bool) {
	c := &Category{Base: Base{Kind: NodeCategory, Src: src}, Value: value}
	switch value {
	case "components":
		c.Components = true
	case "primitives":
		c.Primitives = true
	case "utilities":
		c.Utilities = true
	case "layouts":
		c.Layouts = true
	default:
		return nil, false
	}
	return c, true
}

// Statuses lists the permitted supportStatus values.
var Statuses = []string{"active", "maintained", "deprecated", "dead", "experimental"}

// Status is the component's supportStatus. Exactly one flag is true.
type Status struct {
	Base
	Value        string `json:"value"`
	Active       bool   `json:"active"`
	Maintained   bool   `json:"maintained"`
	Deprecated   bool   `json:"deprecated"`
	Dead         bool   `json:"dead"`
	Experimental bool   `json:"experimental"`
}

// NewStatus returns a Status for value, or false when value is not one of
// Statuses.
func NewStatus(src Source, value string) (*Status, bool) {
	s := &Status{Base: Base{Kind: NodeStatus, Src: src}, Value: value}
	switch value {
	case "active":
		s.Active = true
	case "maintained":
		s.Maintained = true
	case "deprecated":
		s.Deprecated = true
	case "dead":
		s.Dead = true
	case "experimental":
		s.Experimental = true
	default:
		return nil, false
	}
	return s, true
}

// Keywords is the component's keyword list. Words is always populated;
// Items is populated only when keywords was written as an array, since a
// comma-separated string has no per-word source.
type Keywords struct {
	Base
	Words []string         `json:"value"`
	Items []*Value[string] `json:"children,omitempty"`
}

// Children implements Parent.
func (k *Keywords) Children() []Node {
	out := make([]Node, len(k.Items))
	for i, it := range k.Items {
		out[i] = it
	}
	return out
}

// CI maps continuous-integration services to their status URLs. Each item's
// source path ends in the service name.
type CI struct {
	Base
	Items []*Value[string] `json:"children"`
}

// Children implements Parent.
func (c *CI) Children() []Node {
	out := make([]Node, len(c.Items))
	for i, it := range c.Items {
		out[i] = it
	}
	return out
}

// BrowserFeatures holds the required and optional Polyfill feature lists.
type BrowserFeatures struct {
	Base
	Required Optional[*List] `json:"required"`
	Optional Optional[*List] `json:"optional"`
}

// Children implements Parent.
func (b *BrowserFeatures) Children() []Node {
	return nonNil(b.Required.Node(), b.Optional.Node())
}

// DemoAssets are the fields shared by demosDefaults and each demo.
type DemoAssets struct {
	Template        Optional[*Value[string]] `json:"template"`
	Sass            Optional[*Value[string]] `json:"sass"`
	JS              Optional[*Value[string]] `json:"js"`
	Data            Optional[*Value[any]]    `json:"data"`
	DocumentClasses Optional[*Value[string]] `json:"documentClasses"`
	Dependencies    Optional[*List]          `json:"dependencies"`
}

func (a *DemoAssets) children() []Node {
	return []Node{
		a.Template.Node(),
		a.Sass.Node(),
		a.JS.Node(),
		a.Data.Node(),
		a.DocumentClasses.Node(),
		a.Dependencies.Node(),
	}
}

// DemosDefaults holds values shared by every demo.
type DemosDefaults struct {
	Base
	DemoAssets
}

// Children implements Parent.
func (d *DemosDefaults) Children() []Node {
	return nonNil(d.children()...)
}

// Demo is one entry of the demos list.
type Demo struct {
	Base
	Name        Required[*Value[string]] `json:"name"`
	Title       Required[*Value[string]] `json:"title"`
	Description Required[*Value[string]] `json:"description"`
	DemoAssets
	Brands      Optional[*List]        `json:"brands"`
	Hidden      Optional[*Value[bool]] `json:"hidden"`
	DisplayHTML Optional[*Value[bool]] `json:"display_html"`
}

// Children implements Parent.
func (d *Demo) Children() []Node {
	out := []Node{d.Name.Node(), d.Title.Node(), d.Description.Node()}
	out = append(out, d.children()...)
	out = append(out, d.Brands.Node(), d.Hidden.Node(), d.DisplayHTML.Node())
	return nonNil(out...)
}

// Demos is the demos list. A malformed entry fails on its own without
// failing the list.
type Demos struct {
	Base
	Items []Required[*Demo] `json:"children"`
}

// Children implements Parent.
func (d *Demos) Children() []Node {
	out := make([]Node, 0, len(d.Items))
	for _, it := range d.Items {
		out = append(out, it.Node())
	}
	return nonNil(out...)
}

// Component is the root of the diagnostic tree: one field per manifest
// concern, in declaration order.
type Component struct {
	Base
	OrigamiType     Required[*Value[string]]   `json:"origamiType"`
	OrigamiVersion  Required[*Value[int64]]    `json:"origamiVersion"`
	Brands          Optional[*Brands]          `json:"brands"`
	Category        Required[*Category]        `json:"category"`
	Name            Required[*Value[string]]   `json:"name"`
	Description     Required[*Value[string]]   `json:"description"`
	Status          Required[*Status]          `json:"status"`
	Keywords        Optional[*Keywords]        `json:"keywords"`
	CI              Optional[*CI]              `json:"ci"`
	BrowserFeatures Optional[*BrowserFeatures] `json:"browserFeatures"`
	JS              Optional[*Value[string]]   `json:"js"`
	Sass            Optional[*Value[string]]   `json:"sass"`
	SupportURL      Required[*Value[string]]   `json:"supportUrl"`
	SupportEmail    Required[*Value[string]]   `json:"supportEmail"`
	SupportSlack    Required[*Value[string]]   `json:"supportSlack"`
	DemosDefaults   Optional[*DemosDefaults]   `json:"demosDefaults"`
	Demos           Optional[*Demos]           `json:"demos"`
}

// Children returns the fields in declaration order.
func (c *Component) Children() []Node {
	return nonNil(
		c.OrigamiType.Node(),
		c.OrigamiVersion.Node(),
		c.Brands.Node(),
		c.Category.Node(),
		c.Name.Node(),
		c.Description.Node(),
		c.Status.Node(),
		c.Keywords.Node(),
		c.CI.Node(),
		c.BrowserFeatures.Node(),
		c.JS.Node(),
		c.Sass.Node(),
		c.SupportURL.Node(),
		c.SupportEmail.Node(),
		c.SupportSlack.Node(),
		c.DemosDefaults.Node(),
		c.Demos.Node(),
	)
}

// MarshalJSON writes the component with a children list mirroring its
// fields, as the model dump format requires.
func (c *Component) MarshalJSON() ([]byte, error) {
	type plain Component
	return json.Marshal(struct {
		*plain
		Children []Node `json:"children"`
	}{(*plain)(c), c.Children()})
}

func nonNil(nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
