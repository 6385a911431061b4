package validate

import "github.com/eykd/origami-lint/internal/model"

// Unrecoverable manifest failures. Any of these replaces the whole component
// with a root Problem.
const (
	// CodeNoOrigamiJSON indicates origami.json does not exist.
	CodeNoOrigamiJSON model.Code = "no-origami-json"
	// CodeInvalidOrigamiJSON indicates origami.json is not valid JSON.
	CodeInvalidOrigamiJSON model.Code = "invalid-origami-json"
	// CodeOrigamiJSONNotObject indicates origami.json is valid JSON but not an object.
	CodeOrigamiJSONNotObject model.Code = "origami-json-not-object"
	// CodeNoBowerJSON indicates bower.json does not exist.
	CodeNoBowerJSON model.Code = "no-bower-json"
	// CodeInvalidBowerJSON indicates bower.json is not valid JSON.
	CodeInvalidBowerJSON model.Code = "invalid-bower-json"
	// CodeBowerJSONNotObject indicates bower.json is valid JSON but not an object.
	CodeBowerJSONNotObject model.Code = "bower-json-not-object"
	// CodeInvalidPackageJSON indicates package.json exists but is not valid JSON.
	CodeInvalidPackageJSON model.Code = "invalid-package-json"
	// CodePackageJSONNotObject indicates package.json is valid JSON but not an object.
	CodePackageJSONNotObject model.Code = "package-json-not-object"
)

// Root opinions.
const (
	// CodeNoPackageJSON indicates the component has no package.json (warning).
	CodeNoPackageJSON model.Code = "no-package-json"
	// CodeUnknownKey indicates origami.json has a top-level key outside the manifest format (warning).
	CodeUnknownKey model.Code = "unknown-key"
)

// Shared field codes.
const (
	// CodeBooleanAsString indicates a boolean was written as "true" or "false" (warning).
	CodeBooleanAsString model.Code = "boolean-as-string"
	// CodeBooleanType indicates a boolean field holds something other than a boolean.
	CodeBooleanType model.Code = "boolean-type"
)

// Scalar origami.json fields.
const (
	// CodeOrigamiTypeType indicates origamiType is missing or not a string.
	CodeOrigamiTypeType model.Code = "origami-type-type"
	// CodeOrigamiTypeInvalid indicates origamiType is not a known component type.
	CodeOrigamiTypeInvalid model.Code = "origami-type-invalid"
	// CodeOrigamiVersionType indicates origamiVersion is missing, or neither a number nor the string "1".
	CodeOrigamiVersionType model.Code = "origami-version-type"
	// CodeOrigamiVersionInvalid indicates origamiVersion is a number other than 1.
	CodeOrigamiVersionInvalid model.Code = "origami-version-invalid"
	// CodeOrigamiVersionAsString indicates origamiVersion was written as the string "1" (warning).
	CodeOrigamiVersionAsString model.Code = "origami-version-as-string"
	// CodeCategoryType indicates origamiCategory is missing or not a string.
	CodeCategoryType model.Code = "category-type"
	// CodeCategoryInvalid indicates origamiCategory is not a known category.
	CodeCategoryInvalid model.Code = "category-invalid"
	// CodeStatusType indicates supportStatus is missing or not a string.
	CodeStatusType model.Code = "status-type"
	// CodeStatusInvalid indicates supportStatus is not a known status.
	CodeStatusInvalid model.Code = "status-invalid"
	// CodeDescriptionType indicates origami.json description is missing or not a string.
	CodeDescriptionType model.Code = "description-type"
	// CodeDescriptionEmpty indicates the description is empty or only whitespace.
	CodeDescriptionEmpty model.Code = "description-empty"
	// CodeDescriptionBowerMismatch indicates bower.json description differs from origami.json (warning).
	CodeDescriptionBowerMismatch model.Code = "description-bower-mismatch"
	// CodeDescriptionPackageMismatch indicates package.json description differs from origami.json (warning).
	CodeDescriptionPackageMismatch model.Code = "description-package-mismatch"
)

// name.
const (
	// CodeNameType indicates bower.json name is missing or not a string.
	CodeNameType model.Code = "name-type"
	// CodeNameNotKebab indicates the name is not lowercase ASCII letters, digits and hyphens.
	CodeNameNotKebab model.Code = "name-not-kebab"
	// CodeNameNotOPrefixed indicates the name lacks the o- prefix (warning).
	CodeNameNotOPrefixed model.Code = "name-not-o-prefixed"
	// CodeNamePackageMismatch indicates package.json names a different component.
	CodeNamePackageMismatch model.Code = "name-package-mismatch"
)

// brands.
const (
	// CodeBrandsType indicates brands is not an array.
	CodeBrandsType model.Code = "brands-type"
	// CodeBrandsEmpty indicates brands is an empty array (warning).
	CodeBrandsEmpty model.Code = "brands-empty"
	// CodeBrandType indicates a brands element is not a string.
	CodeBrandType model.Code = "brand-type"
	// CodeBrandInvalid indicates a brands element is not a known brand.
	CodeBrandInvalid model.Code = "brand-invalid"
	// CodeBrandDuplicate indicates a brand is listed more than once (warning).
	CodeBrandDuplicate model.Code = "brand-duplicate"
)

// keywords.
const (
	// CodeKeywordsType indicates keywords is neither an array nor a string.
	CodeKeywordsType model.Code = "keywords-type"
	// CodeKeywordsAsString indicates keywords was written as a comma-separated string (warning).
	CodeKeywordsAsString model.Code = "keywords-as-string"
	// CodeKeywordType indicates a keywords element is not a string.
	CodeKeywordType model.Code = "keyword-type"
	// CodeKeywordEmpty indicates a keyword is empty (warning).
	CodeKeywordEmpty model.Code = "keyword-empty"
)

// ci.
const (
	// CodeCIType indicates ci is not an object.
	CodeCIType model.Code = "ci-type"
	// CodeCIURLType indicates a ci service's value is not a string.
	CodeCIURLType model.Code = "ci-url-type"
	// CodeCIURLInvalid indicates a ci service's value is not an http or https URL.
	CodeCIURLInvalid model.Code = "ci-url-invalid"
	// CodeCIUnknownService indicates ci names a service outside the known list (warning).
	CodeCIUnknownService model.Code = "ci-unknown-service"
)

// browserFeatures.
const (
	// CodeBrowserFeaturesType indicates browserFeatures is not an object.
	CodeBrowserFeaturesType model.Code = "browser-features-type"
	// CodeBrowserFeaturesKey indicates browserFeatures has a key other than required and optional.
	CodeBrowserFeaturesKey model.Code = "browser-features-key"
	// CodeBrowserFeaturesListType indicates browserFeatures.required or .optional is not an array.
	CodeBrowserFeaturesListType model.Code = "browser-features-list-type"
	// CodeBrowserFeatureType indicates a browser feature is not a string.
	CodeBrowserFeatureType model.Code = "browser-feature-type"
	// CodeBrowserFeatureDuplicate indicates a browser feature is listed more than once (warning).
	CodeBrowserFeatureDuplicate model.Code = "browser-feature-duplicate"
)

// Entry points.
const (
	// CodeBowerMainType indicates bower.json main is neither a string nor an array of strings.
	CodeBowerMainType model.Code = "bower-main-type"
	// CodeBowerMainUnchecked indicates an entry point could not be checked because bower.json main is invalid.
	CodeBowerMainUnchecked model.Code = "bower-main-unchecked"
	// CodeReferencedMissingMainJS indicates bower.json main lists main.js but it is not a file.
	CodeReferencedMissingMainJS model.Code = "referenced-missing-main-js"
	// CodeUnreferencedMainJS indicates main.js exists but bower.json main does not list it.
	CodeUnreferencedMainJS model.Code = "unreferenced-main-js"
	// CodeReferencedMissingMainScss indicates bower.json main lists main.scss but it is not a file.
	CodeReferencedMissingMainScss model.Code = "referenced-missing-main-scss"
	// CodeUnreferencedMainScss indicates main.scss exists but bower.json main does not list it.
	CodeUnreferencedMainScss model.Code = "unreferenced-main-scss"
)

// support, supportContact.
const (
	// CodeSupportURLType indicates support is missing or not a string.
	CodeSupportURLType model.Code = "support-url-type"
	// CodeSupportURLInvalid indicates support is not an http or https URL.
	CodeSupportURLInvalid model.Code = "support-url-invalid"
	// CodeSupportURLNotHTTPS indicates support uses plain http (warning).
	CodeSupportURLNotHTTPS model.Code = "support-url-not-https"
	// CodeSupportEmailType indicates supportContact.email is missing or not a string.
	CodeSupportEmailType model.Code = "support-email-type"
	// CodeSupportEmailInvalid indicates supportContact.email is not an email address.
	CodeSupportEmailInvalid model.Code = "support-email-invalid"
	// CodeSupportSlackType indicates supportContact.slack is missing or not a string.
	CodeSupportSlackType model.Code = "support-slack-type"
	// CodeSupportSlackInvalid indicates supportContact.slack is not of the form workspace/channel.
	CodeSupportSlackInvalid model.Code = "support-slack-invalid"
)

// demosDefaults and demos.
const (
	// CodeDemosDefaultsType indicates demosDefaults is not an object.
	CodeDemosDefaultsType model.Code = "demos-defaults-type"
	// CodeDemosDefaultsUnknownKey indicates demosDefaults has an unrecognised key (warning).
	CodeDemosDefaultsUnknownKey model.Code = "demos-defaults-unknown-key"
	// CodeDemosType indicates demos is not an array.
	CodeDemosType model.Code = "demos-type"
	// CodeDemoType indicates a demos element is not an object.
	CodeDemoType model.Code = "demo-type"
	// CodeDemoUnknownKey indicates a demo has an unrecognised key (warning).
	CodeDemoUnknownKey model.Code = "demo-unknown-key"
	// CodeDemoNameType indicates a demo name is missing or not a string.
	CodeDemoNameType model.Code = "demo-name-type"
	// CodeDemoNameInvalid indicates a demo name is not lowercase letters, digits and hyphens.
	CodeDemoNameInvalid model.Code = "demo-name-invalid"
	// CodeDemoNameDuplicate indicates two demos share a name (warning).
	CodeDemoNameDuplicate model.Code = "demo-name-duplicate"
	// CodeDemoTitleType indicates a demo title is missing or not a string.
	CodeDemoTitleType model.Code = "demo-title-type"
	// CodeDemoDescriptionType indicates a demo description is missing or not a string.
	CodeDemoDescriptionType model.Code = "demo-description-type"
	// CodeDemoPathType indicates a demo template, sass or js value is not a string.
	CodeDemoPathType model.Code = "demo-path-type"
	// CodeDemoTemplateMissing indicates a demo template names a file that does not exist.
	CodeDemoTemplateMissing model.Code = "demo-template-missing"
	// CodeDemoSassMissing indicates a demo sass entry names a file that does not exist.
	CodeDemoSassMissing model.Code = "demo-sass-missing"
	// CodeDemoJSMissing indicates a demo js entry names a file that does not exist.
	CodeDemoJSMissing model.Code = "demo-js-missing"
	// CodeDemoDataType indicates demo data is neither a path string nor an object.
	CodeDemoDataType model.Code = "demo-data-type"
	// CodeDemoDataMissing indicates demo data names a file that does not exist.
	CodeDemoDataMissing model.Code = "demo-data-missing"
	// CodeDemoDocumentClassesType indicates demo documentClasses is not a string.
	CodeDemoDocumentClassesType model.Code = "demo-document-classes-type"
	// CodeDemoDependenciesType indicates demo dependencies is not an array.
	CodeDemoDependenciesType model.Code = "demo-dependencies-type"
	// CodeDemoDependencyType indicates a demo dependency is not a string.
	CodeDemoDependencyType model.Code = "demo-dependency-type"
	// CodeDemoBrandsType indicates demo brands is not an array.
	CodeDemoBrandsType model.Code = "demo-brands-type"
	// CodeDemoBrandType indicates a demo brands element is not a string.
	CodeDemoBrandType model.Code = "demo-brand-type"
	// CodeDemoBrandNotInRoot indicates a demo lists a brand the component does not declare.
	CodeDemoBrandNotInRoot model.Code = "demo-brand-not-in-root"
	// CodeDemoBrandsUnchecked indicates demo brands cannot be checked because the component brands are invalid.
	CodeDemoBrandsUnchecked model.Code = "demo-brands-unchecked"
	// CodeDemoBrandsWithoutRoot indicates a demo declares brands but the component declares none.
	CodeDemoBrandsWithoutRoot model.Code = "demo-brands-without-root"
)
