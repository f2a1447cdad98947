package profile

import (
	"fmt"
	"maps"
	"slices"

	"beanmapper/beancopy"
	"beanmapper/internal/common"
	"beanmapper/internal/diagnostic"
	"beanmapper/internal/match"
	"beanmapper/primitive"
)

// ConverterTypes returns the supported converter type names.
func ConverterTypes() []string { return slices.Sorted(maps.Keys(registrars)) }

// Validate checks every profile of f. It never stops at the first problem.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(diagnostic.CodeMissingName, "profile file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError(diagnostic.CodeBadVersion, fmt.Sprintf("unsupported version %q", f.Version), "", "version")
	}

	seen := map[string]struct{}{}

	for i := range f.Profiles {
		p := &f.Profiles[i]

		subject := p.Name
		if subject == "" {
			subject = fmt.Sprintf("profiles[%d]", i)
			res.AddError(diagnostic.CodeMissingName, "profile has no name", subject, "name")
		} else if _, dup := seen[p.Name]; dup {
			res.AddError(diagnostic.CodeDuplicateName, fmt.Sprintf("duplicate profile %q", p.Name), subject, "name")
		}
		seen[p.Name] = struct{}{}

		validateProfile(res, subject, p)
	}

	return res
}

func validateProfile(res *diagnostic.Diagnostics, subject string, p *Profile) {
	for _, field := range []struct{ path, value string }{
		{"bean_delimiter", p.BeanDelimiter},
		{"map_delimiter", p.MapDelimiter},
	} {
		if !common.IsSingle([]rune(field.value)) {
			res.AddError(diagnostic.CodeBadDelimiter,
				fmt.Sprintf("delimiter %q must be a single character", field.value), subject, field.path)
		}
	}

	excluded := common.Set(p.Exclude)
	for _, name := range p.Include {
		if _, ok := excluded[name]; ok {
			res.AddWarning(diagnostic.CodeOverlappingFilter,
				fmt.Sprintf("%q is both included and excluded; it is not copied", name), subject, "exclude")
		}
	}

	for _, name := range p.Coercions {
		if _, err := primitive.ParseCategory(name); err != nil {
			res.AddError(diagnostic.CodeUnknownCoercion, fmt.Sprintf("unknown coercion %q", name),
				subject, "coercions", suggestions(name, primitive.CategoryNames())...)
		}
	}

	for i, c := range p.Converters {
		path := fmt.Sprintf("converters[%d]", i)

		register, ok := registrars[c.Type]
		if !ok {
			res.AddError(diagnostic.CodeUnknownConverter, fmt.Sprintf("unknown converter type %q", c.Type),
				subject, path+".type", suggestions(c.Type, ConverterTypes())...)
			continue
		}

		if c.Pattern == "" {
			res.AddError(diagnostic.CodeMissingPattern, "converter pattern is empty", subject, path+".pattern")
			continue
		}

		if err := register(beancopy.NewPolicy(), c.Pattern).Err(); err != nil {
			res.AddError(diagnostic.CodeBadPattern, err.Error(), subject, path+".pattern")
		}
	}
}

func suggestions(name string, candidates []string) []string {
	if s := match.Suggest(name, candidates); s != "" {
		return []string{s}
	}

	return nil
}
